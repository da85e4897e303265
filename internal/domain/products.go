package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Products binds the product slice to the product service for the admin
// catalog screens.
type Products struct {
	svc   service.ProductService
	Store *store.Container[entity.Product]

	mu         sync.Mutex
	total      int
	totalPages int
}

func NewProducts(svc service.ProductService, opts ...store.Option) *Products {
	return &Products{
		svc:   svc,
		Store: store.NewContainer[entity.Product](opts...),
	}
}

func (p *Products) Close() {
	p.Store.Close()
}

func (p *Products) LoadAll(ctx context.Context, filter model.ListProductsFilter) error {
	return loadList(ctx, p.Store, func(ctx context.Context) ([]entity.Product, error) {
		page, err := p.svc.GetList(ctx, filter)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.total, p.totalPages = page.Total, page.TotalPages
		p.mu.Unlock()
		return page.Products, nil
	}, "Cannot load products")
}

func (p *Products) LoadDetail(ctx context.Context, id string) error {
	return loadDetail(ctx, p.Store, func(ctx context.Context) (entity.Product, error) {
		return p.svc.Get(ctx, id)
	}, "Cannot load product")
}

func (p *Products) Create(ctx context.Context, form model.UpsertProductForm) (entity.Product, error) {
	if err := model.Validate(form); err != nil {
		return entity.Product{}, err
	}

	return createItem(ctx, p.Store, func(ctx context.Context) (entity.Product, error) {
		return p.svc.Create(ctx, form)
	}, "Cannot create product")
}

func (p *Products) Update(ctx context.Context, id string, form model.UpsertProductForm) (entity.Product, error) {
	if err := model.Validate(form); err != nil {
		return entity.Product{}, err
	}

	return updateItem(ctx, p.Store, func(ctx context.Context) (entity.Product, error) {
		return p.svc.Update(ctx, id, form)
	}, func(pr entity.Product) bool { return pr.ID == id }, "Cannot update product")
}

func (p *Products) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, p.Store, func(ctx context.Context) error {
		return p.svc.Delete(ctx, id)
	}, func(pr entity.Product) bool { return pr.ID == id }, "Cannot delete product")
}

// Top returns the best-selling products for the admin dashboard.
func (p *Products) Top(ctx context.Context) ([]entity.Product, error) {
	return p.svc.Top(ctx)
}

// LowStock returns products close to running out.
func (p *Products) LowStock(ctx context.Context) ([]entity.Product, error) {
	return p.svc.LowStock(ctx)
}

func (p *Products) PageInfo() (total, totalPages int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total, p.totalPages
}
