package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
)

func TestWalletViewer_Load(t *testing.T) {
	svc := &testutil.MockWalletService{
		GetFunc: func(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error) {
			require.Equal(t, "w1", walletID)
			return entity.Wallet{ID: "w1", Balance: 350},
				[]entity.WalletTransaction{{ID: "t1", TxnType: entity.TxnEarn, Amount: 50}}, nil
		},
	}

	w := NewWalletViewer(svc)
	require.NoError(t, w.Load(context.Background(), "w1"))
	require.EqualValues(t, 350, w.Wallet().Balance)
	require.Len(t, w.Transactions(), 1)
	require.False(t, w.Loading())
	require.Empty(t, w.Error())
}

func TestWalletViewer_LoadFailureKeepsOldState(t *testing.T) {
	fail := false
	svc := &testutil.MockWalletService{
		GetFunc: func(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error) {
			if fail {
				return entity.Wallet{}, nil, errors.New("timeout")
			}
			return entity.Wallet{ID: "w1", Balance: 100}, nil, nil
		},
	}

	w := NewWalletViewer(svc)
	require.NoError(t, w.Load(context.Background(), "w1"))

	fail = true
	require.Error(t, w.Load(context.Background(), "w1"))
	require.NotNil(t, w.Wallet())
	require.EqualValues(t, 100, w.Wallet().Balance)
	require.Equal(t, "Cannot load wallet", w.Error())
}

func TestWalletViewer_TransferValidation(t *testing.T) {
	// The mock panics when called; an invalid form must stop before it.
	w := NewWalletViewer(&testutil.MockWalletService{})

	err := w.Transfer(context.Background(), model.TransferForm{ToWalletID: "w2", Amount: 0})
	require.Error(t, err)

	err = w.Redeem(context.Background(), model.RedeemPointsForm{Amount: 10})
	require.Error(t, err)
}
