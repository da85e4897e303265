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

type InvoiceService interface {
	// Create redeems points for a product. The returned invoice carries the
	// product snapshot the confirmation screen renders from.
	Create(ctx context.Context, form model.CreateInvoiceForm) (entity.Invoice, error)
	ConfirmDelivery(ctx context.Context, invoiceID string) (entity.Invoice, error)
	Cancel(ctx context.Context, invoiceID string) (entity.Invoice, error)
	GetRedemptions(ctx context.Context, filter model.ListInvoicesFilter) (model.InvoicePage, error)
}

type invoiceService struct {
	base
}

func NewInvoiceService(gen api.Generator, tokens TokenSource) InvoiceService {
	return &invoiceService{base{gen: gen, tokens: tokens}}
}

func (s *invoiceService) Create(ctx context.Context, form model.CreateInvoiceForm) (entity.Invoice, error) {
	const fallback = "Cannot redeem product"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	resp, err := s.gen.New("/invoices").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.Invoice{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Invoice{}, err
	}

	return decodeInvoice(ctx, resp, fallback)
}

func (s *invoiceService) ConfirmDelivery(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	const fallback = "Cannot confirm delivery"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	resp, err := s.gen.New("/invoices/%s/confirm-delivery", invoiceID).PUT(ctx, opt)
	if err != nil {
		return entity.Invoice{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Invoice{}, err
	}

	return decodeInvoice(ctx, resp, fallback)
}

func (s *invoiceService) Cancel(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	const fallback = "Cannot cancel invoice"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	resp, err := s.gen.New("/invoices/%s/cancel", invoiceID).POST(ctx, opt)
	if err != nil {
		return entity.Invoice{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Invoice{}, err
	}

	return decodeInvoice(ctx, resp, fallback)
}

func (s *invoiceService) GetRedemptions(ctx context.Context, filter model.ListInvoicesFilter) (model.InvoicePage, error) {
	const fallback = "Cannot load redemption invoices"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.InvoicePage{}, err
	}

	query := api.Parameter{}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	resp, err := s.gen.New("/redemptions/invoices").Query(query).GET(ctx, opt)
	if err != nil {
		return model.InvoicePage{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.InvoicePage{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.InvoicePage{}, err
	}

	items, err := data.GetArray("items")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read invoice items: %v", err)
		return model.InvoicePage{}, errorx.New(errorx.BadResponse, fallback)
	}

	invoices, err := entity.DecodeList[entity.Invoice](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode invoices: %v", err)
		return model.InvoicePage{}, errorx.New(errorx.BadResponse, fallback)
	}

	total, totalPages := pageInfo(data)
	return model.InvoicePage{Invoices: invoices, Total: total, TotalPages: totalPages}, nil
}

func decodeInvoice(ctx context.Context, resp *api.Response, fallback string) (entity.Invoice, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.Invoice{}, err
	}

	invoice, err := entity.Decode[entity.Invoice](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode invoice: %v", err)
		return entity.Invoice{}, errorx.New(errorx.BadResponse, fallback)
	}

	return invoice, nil
}
