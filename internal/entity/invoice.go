package entity

import (
	"time"

	"github.com/unipoint-lab/appcore/pkg/enum"
)

type InvoiceStatus string

var (
	InvoicePending   = enum.New(InvoiceStatus("PENDING"))
	InvoiceDelivered = enum.New(InvoiceStatus("DELIVERED"))
	InvoiceCancelled = enum.New(InvoiceStatus("CANCELLED"))
	InvoiceCompleted = enum.New(InvoiceStatus("COMPLETED"))
)

type Invoice struct {
	InvoiceID string        `mapstructure:"invoiceId" structs:"invoiceId"`
	StudentID string        `mapstructure:"studentId" structs:"studentId"`
	Status    InvoiceStatus `mapstructure:"status" structs:"status"`
	Quantity  int           `mapstructure:"quantity" structs:"quantity"`
	TotalCost int64         `mapstructure:"totalCost" structs:"totalCost"`

	// Product is the snapshot carried by the creation response. The
	// confirmation screen renders from it without refetching.
	Product *Product `mapstructure:"product" structs:"product,omitnested"`

	CreatedAt time.Time `mapstructure:"createdAt" structs:"-"`
}

// CanDeliver reports whether the deliver action applies to this invoice.
func (i Invoice) CanDeliver() bool {
	return i.Status == InvoicePending
}

// CanCancel reports whether the cancel action applies to this invoice.
func (i Invoice) CanCancel() bool {
	return i.Status == InvoicePending
}
