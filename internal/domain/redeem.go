package domain

import (
	"context"
	"sync"

	"github.com/pkg/math"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

// Affordability gates the redeem action. The shortfall is reported exactly so
// the caller can render "need N more points" instead of a bare disabled state.
func Affordability(product entity.Product, points int64) (canRedeem bool, needMore int64) {
	needMore = math.MaxInt64(0, product.UnitCost-points)
	return product.InStock() && needMore == 0, needMore
}

// ClampQuantity keeps a requested quantity inside [1, stock]. Every change
// path goes through here, increment buttons and direct numeric input alike.
func ClampQuantity(quantity, stock int) int {
	if stock < 1 {
		return 1
	}

	return math.Min(math.Max(quantity, 1), stock)
}

// RedeemFlow walks a student from the redeemable grid to a confirmed invoice:
// pick a product, adjust the quantity inside the stock bounds, confirm. The
// confirmation snapshot comes from the invoice-create response only; nothing
// is refetched for the success screen.
type RedeemFlow struct {
	invoices service.InvoiceService
	Products *store.Container[entity.Product]
	products service.ProductService

	mu           sync.Mutex
	selected     *entity.Product
	quantity     int
	confirmation *entity.Invoice
}

func NewRedeemFlow(products service.ProductService, invoices service.InvoiceService) *RedeemFlow {
	return &RedeemFlow{
		invoices: invoices,
		products: products,
		Products: store.NewContainer[entity.Product](),
	}
}

func (f *RedeemFlow) Close() {
	f.Products.Close()
}

// LoadProducts fills the redeemable grid.
func (f *RedeemFlow) LoadProducts(ctx context.Context, filter model.ListProductsFilter) error {
	return loadList(ctx, f.Products, func(ctx context.Context) ([]entity.Product, error) {
		page, err := f.products.GetList(ctx, filter)
		if err != nil {
			return nil, err
		}

		return page.Products, nil
	}, "Cannot load products")
}

// Select opens the quantity dialog for one product, starting at quantity 1.
// A stale confirmation from a previous run is discarded.
func (f *RedeemFlow) Select(product entity.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = &product
	f.quantity = 1
	f.confirmation = nil
}

// SetQuantity clamps and stores the requested quantity.
func (f *RedeemFlow) SetQuantity(quantity int) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selected == nil {
		return 0
	}

	f.quantity = ClampQuantity(quantity, f.selected.TotalStock)
	return f.quantity
}

func (f *RedeemFlow) Increment() int {
	f.mu.Lock()
	current := f.quantity
	f.mu.Unlock()
	return f.SetQuantity(current + 1)
}

func (f *RedeemFlow) Decrement() int {
	f.mu.Lock()
	current := f.quantity
	f.mu.Unlock()
	return f.SetQuantity(current - 1)
}

// Confirm creates the invoice for the current selection. On success the
// returned invoice, product snapshot included, becomes the confirmation the
// success screen renders from.
func (f *RedeemFlow) Confirm(ctx context.Context, points int64) (entity.Invoice, error) {
	f.mu.Lock()
	selected, quantity := f.selected, f.quantity
	f.mu.Unlock()

	if selected == nil {
		return entity.Invoice{}, errorx.New(errorx.BadRequest, "No product selected")
	}

	if canRedeem, needMore := Affordability(*selected, points); !canRedeem {
		if needMore > 0 {
			return entity.Invoice{}, errorx.New(errorx.InsufficientPoints,
				"You need %d more points to redeem this product", needMore)
		}

		return entity.Invoice{}, errorx.New(errorx.BadRequest, "This product is out of stock")
	}

	form := model.CreateInvoiceForm{ProductID: selected.ID, Quantity: quantity}
	if err := model.Validate(form); err != nil {
		return entity.Invoice{}, err
	}

	invoice, err := f.invoices.Create(ctx, form)
	if err != nil {
		return entity.Invoice{}, err
	}

	f.mu.Lock()
	f.confirmation = &invoice
	f.selected = nil
	f.quantity = 0
	f.mu.Unlock()

	return invoice, nil
}

// Confirmation returns the last successful redemption, or nil when none
// happened since the last Select.
func (f *RedeemFlow) Confirmation() *entity.Invoice {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.confirmation
}

// Quantity returns the current clamped selection quantity.
func (f *RedeemFlow) Quantity() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.quantity
}
