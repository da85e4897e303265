package service

import (
	"context"

	"github.com/fatih/structs"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type UniversityService interface {
	GetList(ctx context.Context) ([]entity.University, error)
	Create(ctx context.Context, form model.UpsertUniversityForm) (entity.University, error)
	Update(ctx context.Context, id string, form model.UpsertUniversityForm) (entity.University, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.University, error)
}

type universityService struct {
	base
}

func NewUniversityService(gen api.Generator, tokens TokenSource) UniversityService {
	return &universityService{base{gen: gen, tokens: tokens}}
}

func (s *universityService) GetList(ctx context.Context) ([]entity.University, error) {
	const fallback = "Cannot load universities"

	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New("/universities").GET(ctx, opt)
	if err != nil {
		return nil, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return nil, err
	}

	array, err := dataArray(resp)
	if err != nil {
		return nil, err
	}

	universities, err := entity.DecodeList[entity.University](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode universities: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return universities, nil
}

func (s *universityService) Create(ctx context.Context, form model.UpsertUniversityForm) (entity.University, error) {
	const fallback = "Cannot create university"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.University{}, err
	}

	resp, err := s.gen.New("/universities").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.University{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.University{}, err
	}

	return decodeUniversity(ctx, resp, fallback)
}

func (s *universityService) Update(ctx context.Context, id string, form model.UpsertUniversityForm) (entity.University, error) {
	const fallback = "Cannot update university"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.University{}, err
	}

	resp, err := s.gen.New("/universities/%s", id).Body(api.JSON(structs.Map(form))).PUT(ctx, opt)
	if err != nil {
		return entity.University{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.University{}, err
	}

	return decodeUniversity(ctx, resp, fallback)
}

func (s *universityService) Delete(ctx context.Context, id string) error {
	const fallback = "Cannot delete university"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/universities/%s", id).DELETE(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *universityService) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.University, error) {
	const fallback = "Cannot update university status"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.University{}, err
	}

	body := api.JSON{"status": string(status)}
	resp, err := s.gen.New("/universities/%s/status", id).Body(body).PATCH(ctx, opt)
	if err != nil {
		return entity.University{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.University{}, err
	}

	return decodeUniversity(ctx, resp, fallback)
}

func decodeUniversity(ctx context.Context, resp *api.Response, fallback string) (entity.University, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.University{}, err
	}

	university, err := entity.Decode[entity.University](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode university: %v", err)
		return entity.University{}, errorx.New(errorx.BadResponse, fallback)
	}

	return university, nil
}
