package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
)

func TestWalletService_Get(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotPath string
	gen.NewFunc = func(path string) api.Client {
		gotPath = path
		return &gen.MockClient
	}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{
			"data": map[string]any{
				"id":      "w1",
				"ownerId": "st-1",
				"balance": 350,
				"transactions": []any{
					map[string]any{"id": "t1", "txnType": "EARN", "amount": 50},
					map[string]any{"id": "t2", "txnType": "REDEEM", "amount": -200},
				},
			},
		}), nil
	}

	svc := NewWalletService(gen, StaticToken("token"))
	wallet, transactions, err := svc.Get(context.Background(), "w1")
	require.NoError(t, err)

	require.Equal(t, "/wallets/w1", gotPath)
	require.EqualValues(t, 350, wallet.Balance)
	require.Len(t, transactions, 2)
	require.EqualValues(t, -200, transactions[1].Amount)
}

func TestWalletService_TransferSendsIdempotencyKey(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotBody api.Body
	var gotOpts int
	gen.MockClient.BodyFunc = func(body api.Body) api.Client {
		gotBody = body
		return &gen.MockClient
	}
	gen.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		gotOpts = len(opts)
		return okResponse(api.JSON{}), nil
	}

	svc := NewWalletService(gen, StaticToken("token"))
	form := model.TransferForm{ToWalletID: "w2", Amount: 100, Note: "prize split"}
	require.NoError(t, svc.Transfer(context.Background(), form))

	body, ok := gotBody.(api.JSON)
	require.True(t, ok)
	require.Equal(t, "w2", body["toWalletId"])
	require.EqualValues(t, 100, body["amount"])

	// Authorization plus the idempotency key.
	require.Equal(t, 2, gotOpts)
}
