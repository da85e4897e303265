package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Universities binds the university slice for the admin screens and for the
// onboarding university picker.
type Universities struct {
	svc   service.UniversityService
	Store *store.Container[entity.University]
}

func NewUniversities(svc service.UniversityService, opts ...store.Option) *Universities {
	return &Universities{
		svc:   svc,
		Store: store.NewContainer[entity.University](opts...),
	}
}

func (u *Universities) Close() {
	u.Store.Close()
}

func (u *Universities) LoadAll(ctx context.Context) error {
	return loadList(ctx, u.Store, func(ctx context.Context) ([]entity.University, error) {
		return u.svc.GetList(ctx)
	}, "Cannot load universities")
}

func (u *Universities) Create(ctx context.Context, form model.UpsertUniversityForm) (entity.University, error) {
	if err := model.Validate(form); err != nil {
		return entity.University{}, err
	}

	return createItem(ctx, u.Store, func(ctx context.Context) (entity.University, error) {
		return u.svc.Create(ctx, form)
	}, "Cannot create university")
}

func (u *Universities) Update(ctx context.Context, id string, form model.UpsertUniversityForm) (entity.University, error) {
	if err := model.Validate(form); err != nil {
		return entity.University{}, err
	}

	return updateItem(ctx, u.Store, func(ctx context.Context) (entity.University, error) {
		return u.svc.Update(ctx, id, form)
	}, func(un entity.University) bool { return un.ID == id }, "Cannot update university")
}

func (u *Universities) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, u.Store, func(ctx context.Context) error {
		return u.svc.Delete(ctx, id)
	}, func(un entity.University) bool { return un.ID == id }, "Cannot delete university")
}

func (u *Universities) SetStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.University, error) {
	return updateItem(ctx, u.Store, func(ctx context.Context) (entity.University, error) {
		return u.svc.UpdateStatus(ctx, id, status)
	}, func(un entity.University) bool { return un.ID == id }, "Cannot update university status")
}
