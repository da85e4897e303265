package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
	"github.com/unipoint-lab/appcore/pkg/authenticator"
)

func onboardingForm() model.OnboardingForm {
	return model.OnboardingForm{
		UserType:     "STUDENT",
		UniversityID: "uni-1",
		Phone:        "0912-345-678",
	}
}

func TestOnboarding_Required(t *testing.T) {
	auth := &testutil.MockAuthenticator{
		ClaimsFunc: func() (authenticator.Claims, error) {
			return authenticator.Claims{}, nil
		},
	}

	o := NewOnboarding(auth, &testutil.MockUserService{})
	required, err := o.Required()
	require.NoError(t, err)
	require.True(t, required)

	auth.ClaimsFunc = func() (authenticator.Claims, error) {
		return authenticator.Claims{
			Attributes: authenticator.Attributes{UserType: "STUDENT"},
		}, nil
	}
	required, err = o.Required()
	require.NoError(t, err)
	require.False(t, required)
}

func TestOnboarding_Complete(t *testing.T) {
	var calls []string

	auth := &testutil.MockAuthenticator{
		UpdateAttributesFunc: func(ctx context.Context, attrs authenticator.Attributes) error {
			calls = append(calls, "attributes")
			require.Equal(t, "STUDENT", attrs.UserType)
			require.Equal(t, "uni-1", attrs.University)
			return nil
		},
		RefreshSilentFunc: func(ctx context.Context) error {
			calls = append(calls, "refresh")
			return nil
		},
	}
	users := &testutil.MockUserService{
		CompleteProfileFunc: func(ctx context.Context, phone, avatarURL string) (entity.User, error) {
			calls = append(calls, "profile")
			// The backend receives the normalized phone, never the raw input.
			require.Equal(t, "0912345678", phone)
			return entity.User{ID: "u1", Phone: phone}, nil
		},
	}

	o := NewOnboarding(auth, users)
	result, err := o.Complete(context.Background(), onboardingForm())
	require.NoError(t, err)
	require.Equal(t, "u1", result.User.ID)
	require.Empty(t, result.ReloginURL)
	require.Equal(t, []string{"attributes", "profile", "refresh"}, calls)
}

func TestOnboarding_BackendFailureAbortsWithoutRollback(t *testing.T) {
	var calls []string

	auth := &testutil.MockAuthenticator{
		UpdateAttributesFunc: func(ctx context.Context, attrs authenticator.Attributes) error {
			calls = append(calls, "attributes")
			return nil
		},
		RefreshSilentFunc: func(ctx context.Context) error {
			calls = append(calls, "refresh")
			return nil
		},
	}
	users := &testutil.MockUserService{
		CompleteProfileFunc: func(ctx context.Context, phone, avatarURL string) (entity.User, error) {
			calls = append(calls, "profile")
			return entity.User{}, errors.New("backend down")
		},
	}

	o := NewOnboarding(auth, users)
	_, err := o.Complete(context.Background(), onboardingForm())
	require.Error(t, err)

	// The attribute patch already happened and is NOT rolled back; the
	// refresh never runs on an aborted submission.
	require.Equal(t, []string{"attributes", "profile"}, calls)
}

func TestOnboarding_RefreshFailureForcesRelogin(t *testing.T) {
	auth := &testutil.MockAuthenticator{
		UpdateAttributesFunc: func(ctx context.Context, attrs authenticator.Attributes) error {
			return nil
		},
		RefreshSilentFunc: func(ctx context.Context) error {
			return errors.New("refresh token revoked")
		},
		ForceReloginFunc: func(state string) (string, error) {
			return "https://id.unipoint.vn/authorize?state=" + state, nil
		},
	}
	users := &testutil.MockUserService{
		CompleteProfileFunc: func(ctx context.Context, phone, avatarURL string) (entity.User, error) {
			return entity.User{ID: "u1"}, nil
		},
	}

	o := NewOnboarding(auth, users)
	result, err := o.Complete(context.Background(), onboardingForm())
	require.NoError(t, err)
	require.Equal(t, "u1", result.User.ID)
	require.Contains(t, result.ReloginURL, "https://id.unipoint.vn/authorize")
}

func TestOnboarding_InvalidFormNeverTouchesProvider(t *testing.T) {
	o := NewOnboarding(&testutil.MockAuthenticator{}, &testutil.MockUserService{})

	form := onboardingForm()
	form.Phone = "0212345678"

	// The mocks panic when called; an invalid form must stop before them.
	_, err := o.Complete(context.Background(), form)
	require.Error(t, err)
}
