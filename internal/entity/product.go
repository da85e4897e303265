package entity

import (
	"time"

	"github.com/unipoint-lab/appcore/pkg/enum"
)

type ProductType string

var (
	ProductVoucher = enum.New(ProductType("VOUCHER"))
	ProductGift    = enum.New(ProductType("GIFT"))
	ProductMerch   = enum.New(ProductType("MERCH"))
	ProductService = enum.New(ProductType("SERVICE"))
)

type Product struct {
	ID          string      `mapstructure:"id" structs:"id"`
	Title       string      `mapstructure:"title" structs:"title"`
	Description string      `mapstructure:"description" structs:"description"`
	Type        ProductType `mapstructure:"type" structs:"type"`
	UnitCost    int64       `mapstructure:"unitCost" structs:"unitCost"`
	Currency    string      `mapstructure:"currency" structs:"currency"`
	TotalStock  int         `mapstructure:"totalStock" structs:"totalStock"`
	IsActive    bool        `mapstructure:"isActive" structs:"isActive"`
	PartnerID   string      `mapstructure:"partnerId" structs:"partnerId"`
	CreatedAt   time.Time   `mapstructure:"createdAt" structs:"-"`
}

// InStock is derived, never stored.
func (p Product) InStock() bool {
	return p.IsActive && p.TotalStock > 0
}
