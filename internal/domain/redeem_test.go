package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

func TestAffordability(t *testing.T) {
	product := entity.Product{UnitCost: 100, TotalStock: 3, IsActive: true}

	canRedeem, needMore := Affordability(product, 100)
	require.True(t, canRedeem)
	require.Zero(t, needMore)

	product.UnitCost = 101
	canRedeem, needMore = Affordability(product, 100)
	require.False(t, canRedeem)
	require.EqualValues(t, 1, needMore)

	// Out of stock blocks the redeem without inventing a shortfall.
	product = entity.Product{UnitCost: 50, TotalStock: 0, IsActive: true}
	canRedeem, needMore = Affordability(product, 100)
	require.False(t, canRedeem)
	require.Zero(t, needMore)
}

func TestClampQuantity(t *testing.T) {
	require.Equal(t, 1, ClampQuantity(0, 5))
	require.Equal(t, 5, ClampQuantity(7, 5))
	require.Equal(t, 3, ClampQuantity(3, 5))
	require.Equal(t, 1, ClampQuantity(-2, 5))
	require.Equal(t, 1, ClampQuantity(4, 0))
}

func TestRedeemFlow_QuantityBounds(t *testing.T) {
	f := NewRedeemFlow(&testutil.MockProductService{}, &testutil.MockInvoiceService{})
	defer f.Close()

	f.Select(entity.Product{ID: "p1", TotalStock: 5, IsActive: true})
	require.Equal(t, 1, f.Quantity())

	require.Equal(t, 1, f.Decrement())
	require.Equal(t, 2, f.Increment())
	require.Equal(t, 5, f.SetQuantity(99))
	require.Equal(t, 5, f.Increment())
}

func TestRedeemFlow_ConfirmSnapshot(t *testing.T) {
	product := entity.Product{
		ID: "p1", Title: "Cinema voucher", UnitCost: 100,
		Currency: "POINT", TotalStock: 5, IsActive: true,
	}

	invoices := &testutil.MockInvoiceService{
		CreateFunc: func(ctx context.Context, form model.CreateInvoiceForm) (entity.Invoice, error) {
			require.Equal(t, "p1", form.ProductID)
			require.Equal(t, 2, form.Quantity)
			return entity.Invoice{
				InvoiceID: "inv-1",
				Status:    entity.InvoicePending,
				Quantity:  form.Quantity,
				TotalCost: 200,
				Product:   &product,
			}, nil
		},
	}

	f := NewRedeemFlow(&testutil.MockProductService{}, invoices)
	defer f.Close()

	f.Select(product)
	f.SetQuantity(2)

	invoice, err := f.Confirm(context.Background(), 500)
	require.NoError(t, err)

	// The success screen renders from the creation response, not a refetch.
	require.Equal(t, "inv-1", invoice.InvoiceID)
	require.NotNil(t, invoice.Product)
	require.Equal(t, "Cinema voucher", invoice.Product.Title)

	confirmation := f.Confirmation()
	require.NotNil(t, confirmation)
	require.Equal(t, "inv-1", confirmation.InvoiceID)
}

func TestRedeemFlow_ConfirmInsufficientPoints(t *testing.T) {
	f := NewRedeemFlow(&testutil.MockProductService{}, &testutil.MockInvoiceService{})
	defer f.Close()

	f.Select(entity.Product{ID: "p1", UnitCost: 101, TotalStock: 5, IsActive: true})

	_, err := f.Confirm(context.Background(), 100)
	require.Error(t, err)

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.InsufficientPoints, xerr.Code)
	require.Contains(t, xerr.Message, "1 more point")
}

func TestRedeemFlow_ConfirmWithoutSelection(t *testing.T) {
	f := NewRedeemFlow(&testutil.MockProductService{}, &testutil.MockInvoiceService{})
	defer f.Close()

	_, err := f.Confirm(context.Background(), 100)
	require.Error(t, err)
}
