package model

import (
	"github.com/unipoint-lab/appcore/internal/entity"
)

type ListProductsFilter struct {
	Page     int
	Search   string
	Type     string
	OnlyLive bool
}

type ProductPage struct {
	Products   []entity.Product
	Total      int
	TotalPages int
}

type UpsertProductForm struct {
	Title       string `structs:"title" validate:"required"`
	Description string `structs:"description"`
	Type        string `structs:"type" validate:"required,oneof=VOUCHER GIFT MERCH SERVICE"`
	UnitCost    int64  `structs:"unitCost" validate:"gt=0"`
	Currency    string `structs:"currency" validate:"required"`
	TotalStock  int    `structs:"totalStock" validate:"gte=0"`
	IsActive    bool   `structs:"isActive"`
	PartnerID   string `structs:"partnerId"`
}
