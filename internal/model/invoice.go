package model

import (
	"github.com/unipoint-lab/appcore/internal/entity"
)

type CreateInvoiceForm struct {
	ProductID string `structs:"productId" validate:"required"`
	Quantity  int    `structs:"quantity" validate:"gte=1"`
}

type ListInvoicesFilter struct {
	Page   int
	Status string
}

type InvoicePage struct {
	Invoices   []entity.Invoice
	Total      int
	TotalPages int
}
