package testutil

import (
	"context"

	"github.com/unipoint-lab/appcore/pkg/authenticator"
)

type MockAuthenticator struct {
	AuthCodeURLFunc      func(state string) (string, error)
	ExchangeFunc         func(ctx context.Context, code string) error
	AccessTokenFunc      func(ctx context.Context) (string, error)
	ClaimsFunc           func() (authenticator.Claims, error)
	UpdateAttributesFunc func(ctx context.Context, attrs authenticator.Attributes) error
	RefreshSilentFunc    func(ctx context.Context) error
	ForceReloginFunc     func(state string) (string, error)
}

func (m *MockAuthenticator) AuthCodeURL(state string) (string, error) {
	if m.AuthCodeURLFunc == nil {
		panic("not implemented")
	}
	return m.AuthCodeURLFunc(state)
}

func (m *MockAuthenticator) Exchange(ctx context.Context, code string) error {
	if m.ExchangeFunc == nil {
		panic("not implemented")
	}
	return m.ExchangeFunc(ctx, code)
}

func (m *MockAuthenticator) AccessToken(ctx context.Context) (string, error) {
	if m.AccessTokenFunc == nil {
		panic("not implemented")
	}
	return m.AccessTokenFunc(ctx)
}

func (m *MockAuthenticator) Claims() (authenticator.Claims, error) {
	if m.ClaimsFunc == nil {
		panic("not implemented")
	}
	return m.ClaimsFunc()
}

func (m *MockAuthenticator) UpdateAttributes(ctx context.Context, attrs authenticator.Attributes) error {
	if m.UpdateAttributesFunc == nil {
		panic("not implemented")
	}
	return m.UpdateAttributesFunc(ctx, attrs)
}

func (m *MockAuthenticator) RefreshSilent(ctx context.Context) error {
	if m.RefreshSilentFunc == nil {
		panic("not implemented")
	}
	return m.RefreshSilentFunc(ctx)
}

func (m *MockAuthenticator) ForceRelogin(state string) (string, error) {
	if m.ForceReloginFunc == nil {
		panic("not implemented")
	}
	return m.ForceReloginFunc(state)
}
