package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

// WalletViewer is the balance + transaction-history read model. Mutations are
// fire-and-forget: the backend answers with an acknowledgement only, so the
// viewer reloads to observe the new balance.
type WalletViewer struct {
	svc service.WalletService

	mu           sync.Mutex
	wallet       *entity.Wallet
	transactions []entity.WalletTransaction
	loading      bool
	errMessage   string
}

func NewWalletViewer(svc service.WalletService) *WalletViewer {
	return &WalletViewer{svc: svc}
}

func (w *WalletViewer) Load(ctx context.Context, walletID string) error {
	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()

	wallet, transactions, err := w.svc.Get(ctx, walletID)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false

	if err != nil {
		w.errMessage = errorx.Message(err, "Cannot load wallet")
		return err
	}

	w.wallet = &wallet
	w.transactions = transactions
	w.errMessage = ""
	return nil
}

func (w *WalletViewer) Wallet() *entity.Wallet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wallet
}

func (w *WalletViewer) Transactions() []entity.WalletTransaction {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transactions
}

func (w *WalletViewer) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

func (w *WalletViewer) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMessage
}

// Transfer moves points to another wallet. The local state is untouched;
// callers Load again for the new balance.
func (w *WalletViewer) Transfer(ctx context.Context, form model.TransferForm) error {
	if err := model.Validate(form); err != nil {
		return err
	}

	return w.svc.Transfer(ctx, form)
}

func (w *WalletViewer) Redeem(ctx context.Context, form model.RedeemPointsForm) error {
	if err := model.Validate(form); err != nil {
		return err
	}

	return w.svc.Redeem(ctx, form)
}

func (w *WalletViewer) Rollback(ctx context.Context, form model.RollbackForm) error {
	if err := model.Validate(form); err != nil {
		return err
	}

	return w.svc.Rollback(ctx, form)
}
