package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Invoices binds the redemption history for staff screens: list redemptions,
// confirm a delivery, cancel a pending invoice. Creation happens through the
// redeem flow, never here.
type Invoices struct {
	svc   service.InvoiceService
	Store *store.Container[entity.Invoice]

	mu         sync.Mutex
	total      int
	totalPages int
}

func NewInvoices(svc service.InvoiceService, opts ...store.Option) *Invoices {
	return &Invoices{
		svc:   svc,
		Store: store.NewContainer[entity.Invoice](opts...),
	}
}

func (i *Invoices) Close() {
	i.Store.Close()
}

func (i *Invoices) LoadRedemptions(ctx context.Context, filter model.ListInvoicesFilter) error {
	return loadList(ctx, i.Store, func(ctx context.Context) ([]entity.Invoice, error) {
		page, err := i.svc.GetRedemptions(ctx, filter)
		if err != nil {
			return nil, err
		}

		i.mu.Lock()
		i.total, i.totalPages = page.Total, page.TotalPages
		i.mu.Unlock()
		return page.Invoices, nil
	}, "Cannot load redemptions")
}

// ConfirmDelivery marks a pending invoice as delivered.
func (i *Invoices) ConfirmDelivery(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	return updateItem(ctx, i.Store, func(ctx context.Context) (entity.Invoice, error) {
		return i.svc.ConfirmDelivery(ctx, invoiceID)
	}, func(inv entity.Invoice) bool { return inv.InvoiceID == invoiceID }, "Cannot confirm delivery")
}

// Cancel voids a pending invoice; the backend refunds the points.
func (i *Invoices) Cancel(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	return updateItem(ctx, i.Store, func(ctx context.Context) (entity.Invoice, error) {
		return i.svc.Cancel(ctx, invoiceID)
	}, func(inv entity.Invoice) bool { return inv.InvoiceID == invoiceID }, "Cannot cancel invoice")
}

func (i *Invoices) PageInfo() (total, totalPages int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.total, i.totalPages
}
