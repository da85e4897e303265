package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Categories binds the event-category slice for the admin screens and the
// browse filter dropdown.
type Categories struct {
	svc   service.EventCategoryService
	Store *store.Container[entity.EventCategory]
}

func NewCategories(svc service.EventCategoryService, opts ...store.Option) *Categories {
	return &Categories{
		svc:   svc,
		Store: store.NewContainer[entity.EventCategory](opts...),
	}
}

func (c *Categories) Close() {
	c.Store.Close()
}

func (c *Categories) LoadAll(ctx context.Context) error {
	return loadList(ctx, c.Store, func(ctx context.Context) ([]entity.EventCategory, error) {
		return c.svc.GetList(ctx)
	}, "Cannot load categories")
}

func (c *Categories) Create(ctx context.Context, form model.UpsertCategoryForm) (entity.EventCategory, error) {
	if err := model.Validate(form); err != nil {
		return entity.EventCategory{}, err
	}

	return createItem(ctx, c.Store, func(ctx context.Context) (entity.EventCategory, error) {
		return c.svc.Create(ctx, form)
	}, "Cannot create category")
}

func (c *Categories) Update(ctx context.Context, id string, form model.UpsertCategoryForm) (entity.EventCategory, error) {
	if err := model.Validate(form); err != nil {
		return entity.EventCategory{}, err
	}

	return updateItem(ctx, c.Store, func(ctx context.Context) (entity.EventCategory, error) {
		return c.svc.Update(ctx, id, form)
	}, func(cat entity.EventCategory) bool { return cat.ID == id }, "Cannot update category")
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, c.Store, func(ctx context.Context) error {
		return c.svc.Delete(ctx, id)
	}, func(cat entity.EventCategory) bool { return cat.ID == id }, "Cannot delete category")
}
