package service

import (
	"context"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type WalletService interface {
	Get(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error)

	// Transfer, Redeem and Rollback are fire-and-forget. Each carries a
	// client-generated idempotency key so a replay cannot double-apply.
	Transfer(ctx context.Context, form model.TransferForm) error
	Redeem(ctx context.Context, form model.RedeemPointsForm) error
	Rollback(ctx context.Context, form model.RollbackForm) error
}

type walletService struct {
	base
}

func NewWalletService(gen api.Generator, tokens TokenSource) WalletService {
	return &walletService{base{gen: gen, tokens: tokens}}
}

func (s *walletService) Get(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error) {
	const fallback = "Cannot load wallet"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Wallet{}, nil, err
	}

	resp, err := s.gen.New("/wallets/%s", walletID).GET(ctx, opt)
	if err != nil {
		return entity.Wallet{}, nil, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Wallet{}, nil, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return entity.Wallet{}, nil, err
	}

	wallet, err := entity.Decode[entity.Wallet](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode wallet: %v", err)
		return entity.Wallet{}, nil, errorx.New(errorx.BadResponse, fallback)
	}

	items, err := data.GetArray("transactions")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read wallet transactions: %v", err)
		return entity.Wallet{}, nil, errorx.New(errorx.BadResponse, fallback)
	}

	transactions, err := entity.DecodeList[entity.WalletTransaction](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode wallet transactions: %v", err)
		return entity.Wallet{}, nil, errorx.New(errorx.BadResponse, fallback)
	}

	return wallet, transactions, nil
}

func (s *walletService) Transfer(ctx context.Context, form model.TransferForm) error {
	return s.mutate(ctx, "/wallets/transfer", api.JSON(structs.Map(form)), "Cannot transfer points")
}

func (s *walletService) Redeem(ctx context.Context, form model.RedeemPointsForm) error {
	return s.mutate(ctx, "/wallets/redeem", api.JSON(structs.Map(form)), "Cannot redeem points")
}

func (s *walletService) Rollback(ctx context.Context, form model.RollbackForm) error {
	return s.mutate(ctx, "/wallets/rollback", api.JSON(structs.Map(form)), "Cannot rollback transaction")
}

func (s *walletService) mutate(ctx context.Context, path string, body api.JSON, fallback string) error {
	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New(path).Body(body).POST(ctx, opt, api.Idempotency(uuid.NewString()))
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}
