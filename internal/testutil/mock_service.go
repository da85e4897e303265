package testutil

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
)

type MockEventService struct {
	GetListFunc        func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error)
	GetFunc            func(ctx context.Context, id string) (entity.Event, error)
	CreateFunc         func(ctx context.Context, form model.UpsertEventForm) (entity.Event, error)
	UpdateFunc         func(ctx context.Context, id string, form model.UpsertEventForm) (entity.Event, error)
	DeleteFunc         func(ctx context.Context, id string) error
	RegisterFunc       func(ctx context.Context, id string) error
	SubmitFeedbackFunc func(ctx context.Context, id string, form model.FeedbackForm) error
	GetFeedbackFunc    func(ctx context.Context, id string) ([]entity.EventFeedback, error)
	CheckInFunc        func(ctx context.Context, eventID, phone string) (model.CheckInResult, error)
	GetAttendeesFunc   func(ctx context.Context, id string, page int) (model.AttendeePage, error)
}

func (m *MockEventService) GetList(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
	if m.GetListFunc == nil {
		panic("not implemented")
	}
	return m.GetListFunc(ctx, filter)
}

func (m *MockEventService) Get(ctx context.Context, id string) (entity.Event, error) {
	if m.GetFunc == nil {
		panic("not implemented")
	}
	return m.GetFunc(ctx, id)
}

func (m *MockEventService) Create(ctx context.Context, form model.UpsertEventForm) (entity.Event, error) {
	if m.CreateFunc == nil {
		panic("not implemented")
	}
	return m.CreateFunc(ctx, form)
}

func (m *MockEventService) Update(ctx context.Context, id string, form model.UpsertEventForm) (entity.Event, error) {
	if m.UpdateFunc == nil {
		panic("not implemented")
	}
	return m.UpdateFunc(ctx, id, form)
}

func (m *MockEventService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc == nil {
		panic("not implemented")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *MockEventService) Register(ctx context.Context, id string) error {
	if m.RegisterFunc == nil {
		panic("not implemented")
	}
	return m.RegisterFunc(ctx, id)
}

func (m *MockEventService) SubmitFeedback(ctx context.Context, id string, form model.FeedbackForm) error {
	if m.SubmitFeedbackFunc == nil {
		panic("not implemented")
	}
	return m.SubmitFeedbackFunc(ctx, id, form)
}

func (m *MockEventService) GetFeedback(ctx context.Context, id string) ([]entity.EventFeedback, error) {
	if m.GetFeedbackFunc == nil {
		panic("not implemented")
	}
	return m.GetFeedbackFunc(ctx, id)
}

func (m *MockEventService) CheckIn(ctx context.Context, eventID, phone string) (model.CheckInResult, error) {
	if m.CheckInFunc == nil {
		panic("not implemented")
	}
	return m.CheckInFunc(ctx, eventID, phone)
}

func (m *MockEventService) GetAttendees(ctx context.Context, id string, page int) (model.AttendeePage, error) {
	if m.GetAttendeesFunc == nil {
		panic("not implemented")
	}
	return m.GetAttendeesFunc(ctx, id, page)
}

type MockProductService struct {
	GetListFunc  func(ctx context.Context, filter model.ListProductsFilter) (model.ProductPage, error)
	GetFunc      func(ctx context.Context, id string) (entity.Product, error)
	CreateFunc   func(ctx context.Context, form model.UpsertProductForm) (entity.Product, error)
	UpdateFunc   func(ctx context.Context, id string, form model.UpsertProductForm) (entity.Product, error)
	DeleteFunc   func(ctx context.Context, id string) error
	TopFunc      func(ctx context.Context) ([]entity.Product, error)
	LowStockFunc func(ctx context.Context) ([]entity.Product, error)
}

func (m *MockProductService) GetList(ctx context.Context, filter model.ListProductsFilter) (model.ProductPage, error) {
	if m.GetListFunc == nil {
		panic("not implemented")
	}
	return m.GetListFunc(ctx, filter)
}

func (m *MockProductService) Get(ctx context.Context, id string) (entity.Product, error) {
	if m.GetFunc == nil {
		panic("not implemented")
	}
	return m.GetFunc(ctx, id)
}

func (m *MockProductService) Create(ctx context.Context, form model.UpsertProductForm) (entity.Product, error) {
	if m.CreateFunc == nil {
		panic("not implemented")
	}
	return m.CreateFunc(ctx, form)
}

func (m *MockProductService) Update(ctx context.Context, id string, form model.UpsertProductForm) (entity.Product, error) {
	if m.UpdateFunc == nil {
		panic("not implemented")
	}
	return m.UpdateFunc(ctx, id, form)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc == nil {
		panic("not implemented")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *MockProductService) Top(ctx context.Context) ([]entity.Product, error) {
	if m.TopFunc == nil {
		panic("not implemented")
	}
	return m.TopFunc(ctx)
}

func (m *MockProductService) LowStock(ctx context.Context) ([]entity.Product, error) {
	if m.LowStockFunc == nil {
		panic("not implemented")
	}
	return m.LowStockFunc(ctx)
}

type MockInvoiceService struct {
	CreateFunc          func(ctx context.Context, form model.CreateInvoiceForm) (entity.Invoice, error)
	ConfirmDeliveryFunc func(ctx context.Context, invoiceID string) (entity.Invoice, error)
	CancelFunc          func(ctx context.Context, invoiceID string) (entity.Invoice, error)
	GetRedemptionsFunc  func(ctx context.Context, filter model.ListInvoicesFilter) (model.InvoicePage, error)
}

func (m *MockInvoiceService) Create(ctx context.Context, form model.CreateInvoiceForm) (entity.Invoice, error) {
	if m.CreateFunc == nil {
		panic("not implemented")
	}
	return m.CreateFunc(ctx, form)
}

func (m *MockInvoiceService) ConfirmDelivery(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	if m.ConfirmDeliveryFunc == nil {
		panic("not implemented")
	}
	return m.ConfirmDeliveryFunc(ctx, invoiceID)
}

func (m *MockInvoiceService) Cancel(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	if m.CancelFunc == nil {
		panic("not implemented")
	}
	return m.CancelFunc(ctx, invoiceID)
}

func (m *MockInvoiceService) GetRedemptions(ctx context.Context, filter model.ListInvoicesFilter) (model.InvoicePage, error) {
	if m.GetRedemptionsFunc == nil {
		panic("not implemented")
	}
	return m.GetRedemptionsFunc(ctx, filter)
}

type MockWalletService struct {
	GetFunc      func(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error)
	TransferFunc func(ctx context.Context, form model.TransferForm) error
	RedeemFunc   func(ctx context.Context, form model.RedeemPointsForm) error
	RollbackFunc func(ctx context.Context, form model.RollbackForm) error
}

func (m *MockWalletService) Get(ctx context.Context, walletID string) (entity.Wallet, []entity.WalletTransaction, error) {
	if m.GetFunc == nil {
		panic("not implemented")
	}
	return m.GetFunc(ctx, walletID)
}

func (m *MockWalletService) Transfer(ctx context.Context, form model.TransferForm) error {
	if m.TransferFunc == nil {
		panic("not implemented")
	}
	return m.TransferFunc(ctx, form)
}

func (m *MockWalletService) Redeem(ctx context.Context, form model.RedeemPointsForm) error {
	if m.RedeemFunc == nil {
		panic("not implemented")
	}
	return m.RedeemFunc(ctx, form)
}

func (m *MockWalletService) Rollback(ctx context.Context, form model.RollbackForm) error {
	if m.RollbackFunc == nil {
		panic("not implemented")
	}
	return m.RollbackFunc(ctx, form)
}

type MockUserService struct {
	MeFunc              func(ctx context.Context) (entity.User, error)
	MyEventsFunc        func(ctx context.Context) ([]entity.Event, error)
	CompleteProfileFunc func(ctx context.Context, phone, avatarURL string) (entity.User, error)
}

func (m *MockUserService) Me(ctx context.Context) (entity.User, error) {
	if m.MeFunc == nil {
		panic("not implemented")
	}
	return m.MeFunc(ctx)
}

func (m *MockUserService) MyEvents(ctx context.Context) ([]entity.Event, error) {
	if m.MyEventsFunc == nil {
		panic("not implemented")
	}
	return m.MyEventsFunc(ctx)
}

func (m *MockUserService) CompleteProfile(ctx context.Context, phone, avatarURL string) (entity.User, error) {
	if m.CompleteProfileFunc == nil {
		panic("not implemented")
	}
	return m.CompleteProfileFunc(ctx, phone, avatarURL)
}
