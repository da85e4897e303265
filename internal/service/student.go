package service

import (
	"context"
	"strconv"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type StudentService interface {
	GetList(ctx context.Context, filter model.ListStudentsFilter) (model.StudentPage, error)
	Get(ctx context.Context, id string) (entity.Student, error)
	UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Student, error)
}

type studentService struct {
	base
}

func NewStudentService(gen api.Generator, tokens TokenSource) StudentService {
	return &studentService{base{gen: gen, tokens: tokens}}
}

func (s *studentService) GetList(ctx context.Context, filter model.ListStudentsFilter) (model.StudentPage, error) {
	const fallback = "Cannot load students"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.StudentPage{}, err
	}

	query := api.Parameter{}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.UniversityID != "" {
		query["universityId"] = filter.UniversityID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	resp, err := s.gen.New("/admin/students").Query(query).GET(ctx, opt)
	if err != nil {
		return model.StudentPage{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.StudentPage{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.StudentPage{}, err
	}

	items, err := data.GetArray("items")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read student items: %v", err)
		return model.StudentPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	students, err := entity.DecodeList[entity.Student](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode students: %v", err)
		return model.StudentPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	total, totalPages := pageInfo(data)
	return model.StudentPage{Students: students, Total: total, TotalPages: totalPages}, nil
}

func (s *studentService) Get(ctx context.Context, id string) (entity.Student, error) {
	const fallback = "Cannot load student"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Student{}, err
	}

	resp, err := s.gen.New("/admin/students/%s", id).GET(ctx, opt)
	if err != nil {
		return entity.Student{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Student{}, err
	}

	return decodeStudent(ctx, resp, fallback)
}

func (s *studentService) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Student, error) {
	const fallback = "Cannot update student status"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Student{}, err
	}

	body := api.JSON{"status": string(status)}
	resp, err := s.gen.New("/admin/students/%s/status", id).Body(body).PATCH(ctx, opt)
	if err != nil {
		return entity.Student{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Student{}, err
	}

	return decodeStudent(ctx, resp, fallback)
}

func decodeStudent(ctx context.Context, resp *api.Response, fallback string) (entity.Student, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.Student{}, err
	}

	student, err := entity.Decode[entity.Student](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode student: %v", err)
		return entity.Student{}, errorx.New(errorx.BadResponse, fallback)
	}

	return student, nil
}
