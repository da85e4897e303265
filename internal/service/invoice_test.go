package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
)

func TestInvoiceService_CreateCarriesProductSnapshot(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotPath string
	var gotBody api.Body
	gen.NewFunc = func(path string) api.Client {
		gotPath = path
		return &gen.MockClient
	}
	gen.MockClient.BodyFunc = func(body api.Body) api.Client {
		gotBody = body
		return &gen.MockClient
	}
	gen.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{
			"data": map[string]any{
				"invoiceId": "inv-1",
				"studentId": "st-1",
				"status":    "PENDING",
				"quantity":  2,
				"totalCost": 200,
				"product": map[string]any{
					"id":       "p1",
					"title":    "Cinema voucher",
					"unitCost": 100,
					"currency": "POINT",
				},
			},
		}), nil
	}

	svc := NewInvoiceService(gen, StaticToken("token"))
	invoice, err := svc.Create(context.Background(), model.CreateInvoiceForm{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	require.Equal(t, "/invoices", gotPath)

	body, ok := gotBody.(api.JSON)
	require.True(t, ok)
	require.Equal(t, "p1", body["productId"])
	require.EqualValues(t, 2, body["quantity"])

	require.Equal(t, "inv-1", invoice.InvoiceID)
	require.Equal(t, entity.InvoicePending, invoice.Status)
	require.NotNil(t, invoice.Product)
	require.Equal(t, "Cinema voucher", invoice.Product.Title)
	require.True(t, invoice.CanDeliver())
	require.True(t, invoice.CanCancel())
}

func TestInvoiceService_ConfirmDelivery(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotPath string
	gen.NewFunc = func(path string) api.Client {
		gotPath = path
		return &gen.MockClient
	}
	gen.MockClient.PUTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{
			"data": map[string]any{"invoiceId": "inv-1", "status": "DELIVERED"},
		}), nil
	}

	svc := NewInvoiceService(gen, StaticToken("token"))
	invoice, err := svc.ConfirmDelivery(context.Background(), "inv-1")
	require.NoError(t, err)

	require.Equal(t, "/invoices/inv-1/confirm-delivery", gotPath)
	require.Equal(t, entity.InvoiceDelivered, invoice.Status)
	require.False(t, invoice.CanDeliver())
}
