package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Partners binds the partner slice for the admin partner screens. The partner
// list is small and unpaginated.
type Partners struct {
	svc   service.PartnerService
	Store *store.Container[entity.Partner]
}

func NewPartners(svc service.PartnerService, opts ...store.Option) *Partners {
	return &Partners{
		svc:   svc,
		Store: store.NewContainer[entity.Partner](opts...),
	}
}

func (p *Partners) Close() {
	p.Store.Close()
}

func (p *Partners) LoadAll(ctx context.Context) error {
	return loadList(ctx, p.Store, func(ctx context.Context) ([]entity.Partner, error) {
		return p.svc.GetList(ctx)
	}, "Cannot load partners")
}

func (p *Partners) Create(ctx context.Context, form model.UpsertPartnerForm) (entity.Partner, error) {
	if err := model.Validate(form); err != nil {
		return entity.Partner{}, err
	}

	return createItem(ctx, p.Store, func(ctx context.Context) (entity.Partner, error) {
		return p.svc.Create(ctx, form)
	}, "Cannot create partner")
}

func (p *Partners) Update(ctx context.Context, id string, form model.UpsertPartnerForm) (entity.Partner, error) {
	if err := model.Validate(form); err != nil {
		return entity.Partner{}, err
	}

	return updateItem(ctx, p.Store, func(ctx context.Context) (entity.Partner, error) {
		return p.svc.Update(ctx, id, form)
	}, func(pa entity.Partner) bool { return pa.ID == id }, "Cannot update partner")
}

func (p *Partners) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, p.Store, func(ctx context.Context) error {
		return p.svc.Delete(ctx, id)
	}, func(pa entity.Partner) bool { return pa.ID == id }, "Cannot delete partner")
}

// SetStatus toggles a partner between ACTIVE and INACTIVE.
func (p *Partners) SetStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Partner, error) {
	return updateItem(ctx, p.Store, func(ctx context.Context) (entity.Partner, error) {
		return p.svc.UpdateStatus(ctx, id, status)
	}, func(pa entity.Partner) bool { return pa.ID == id }, "Cannot update partner status")
}
