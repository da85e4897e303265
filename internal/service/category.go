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

type EventCategoryService interface {
	GetList(ctx context.Context) ([]entity.EventCategory, error)
	Create(ctx context.Context, form model.UpsertCategoryForm) (entity.EventCategory, error)
	Update(ctx context.Context, id string, form model.UpsertCategoryForm) (entity.EventCategory, error)
	Delete(ctx context.Context, id string) error
}

type eventCategoryService struct {
	base
}

func NewEventCategoryService(gen api.Generator, tokens TokenSource) EventCategoryService {
	return &eventCategoryService{base{gen: gen, tokens: tokens}}
}

func (s *eventCategoryService) GetList(ctx context.Context) ([]entity.EventCategory, error) {
	const fallback = "Cannot load event categories"

	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New("/event-categories").GET(ctx, opt)
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

	categories, err := entity.DecodeList[entity.EventCategory](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode categories: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return categories, nil
}

func (s *eventCategoryService) Create(ctx context.Context, form model.UpsertCategoryForm) (entity.EventCategory, error) {
	const fallback = "Cannot create category"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.EventCategory{}, err
	}

	resp, err := s.gen.New("/event-categories").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.EventCategory{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.EventCategory{}, err
	}

	return decodeCategory(ctx, resp, fallback)
}

func (s *eventCategoryService) Update(ctx context.Context, id string, form model.UpsertCategoryForm) (entity.EventCategory, error) {
	const fallback = "Cannot update category"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.EventCategory{}, err
	}

	resp, err := s.gen.New("/event-categories/%s", id).Body(api.JSON(structs.Map(form))).PUT(ctx, opt)
	if err != nil {
		return entity.EventCategory{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.EventCategory{}, err
	}

	return decodeCategory(ctx, resp, fallback)
}

func (s *eventCategoryService) Delete(ctx context.Context, id string) error {
	const fallback = "Cannot delete category"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/event-categories/%s", id).DELETE(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func decodeCategory(ctx context.Context, resp *api.Response, fallback string) (entity.EventCategory, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.EventCategory{}, err
	}

	category, err := entity.Decode[entity.EventCategory](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode category: %v", err)
		return entity.EventCategory{}, errorx.New(errorx.BadResponse, fallback)
	}

	return category, nil
}
