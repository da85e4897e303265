package service

import (
	"context"
	"strconv"

	"github.com/fatih/structs"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type ProductService interface {
	GetList(ctx context.Context, filter model.ListProductsFilter) (model.ProductPage, error)
	Get(ctx context.Context, id string) (entity.Product, error)
	Create(ctx context.Context, form model.UpsertProductForm) (entity.Product, error)
	Update(ctx context.Context, id string, form model.UpsertProductForm) (entity.Product, error)
	Delete(ctx context.Context, id string) error
	Top(ctx context.Context) ([]entity.Product, error)
	LowStock(ctx context.Context) ([]entity.Product, error)
}

type productService struct {
	base
}

func NewProductService(gen api.Generator, tokens TokenSource) ProductService {
	return &productService{base{gen: gen, tokens: tokens}}
}

func (s *productService) GetList(ctx context.Context, filter model.ListProductsFilter) (model.ProductPage, error) {
	const fallback = "Cannot load products"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.ProductPage{}, err
	}

	query := api.Parameter{}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.OnlyLive {
		query["isActive"] = "true"
	}

	resp, err := s.gen.New("/products").Query(query).GET(ctx, opt)
	if err != nil {
		return model.ProductPage{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.ProductPage{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.ProductPage{}, err
	}

	items, err := data.GetArray("items")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read product items: %v", err)
		return model.ProductPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	products, err := entity.DecodeList[entity.Product](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode products: %v", err)
		return model.ProductPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	total, totalPages := pageInfo(data)
	return model.ProductPage{Products: products, Total: total, TotalPages: totalPages}, nil
}

func (s *productService) Get(ctx context.Context, id string) (entity.Product, error) {
	const fallback = "Cannot load product"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	resp, err := s.gen.New("/products/%s", id).GET(ctx, opt)
	if err != nil {
		return entity.Product{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Product{}, err
	}

	return decodeProduct(ctx, resp, fallback)
}

func (s *productService) Create(ctx context.Context, form model.UpsertProductForm) (entity.Product, error) {
	const fallback = "Cannot create product"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	resp, err := s.gen.New("/products").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.Product{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Product{}, err
	}

	return decodeProduct(ctx, resp, fallback)
}

func (s *productService) Update(ctx context.Context, id string, form model.UpsertProductForm) (entity.Product, error) {
	const fallback = "Cannot update product"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	resp, err := s.gen.New("/products/%s", id).Body(api.JSON(structs.Map(form))).PUT(ctx, opt)
	if err != nil {
		return entity.Product{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Product{}, err
	}

	return decodeProduct(ctx, resp, fallback)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	const fallback = "Cannot delete product"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/products/%s", id).DELETE(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *productService) Top(ctx context.Context) ([]entity.Product, error) {
	return s.analytics(ctx, "/products/top", "Cannot load top products")
}

func (s *productService) LowStock(ctx context.Context) ([]entity.Product, error) {
	return s.analytics(ctx, "/products/low-stock", "Cannot load low-stock products")
}

func (s *productService) analytics(ctx context.Context, path, fallback string) ([]entity.Product, error) {
	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New(path).GET(ctx, opt)
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

	products, err := entity.DecodeList[entity.Product](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode products: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return products, nil
}

func decodeProduct(ctx context.Context, resp *api.Response, fallback string) (entity.Product, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.Product{}, err
	}

	product, err := entity.Decode[entity.Product](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode product: %v", err)
		return entity.Product{}, errorx.New(errorx.BadResponse, fallback)
	}

	return product, nil
}
