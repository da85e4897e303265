package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/pkg/authenticator"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

// Onboarding gates app access until the minimal profile exists: user type,
// university for students, a valid phone number and an optional avatar. The
// gate reads the identity provider's custom attributes, not the backend.
type Onboarding struct {
	auth  authenticator.Authenticator
	users service.UserService
}

func NewOnboarding(auth authenticator.Authenticator, users service.UserService) *Onboarding {
	return &Onboarding{auth: auth, users: users}
}

// CompletionResult reports how the session was brought up to date after a
// successful submission. When ReloginURL is non-empty the silent refresh
// failed and the caller must send the user through the login flow again.
type CompletionResult struct {
	User       entity.User
	ReloginURL string
}

// Required reports whether the profile gate blocks the current session.
func (o *Onboarding) Required() (bool, error) {
	claims, err := o.auth.Claims()
	if err != nil {
		return false, err
	}

	return claims.Attributes.UserType == "", nil
}

// Complete runs the full submission sequence: validate, patch the provider
// attributes, then finish on the backend. A backend failure aborts the
// submission but the attribute patch is NOT rolled back; the provider and the
// backend stay inconsistent until the next successful attempt, which is why
// the abort is logged loudly.
func (o *Onboarding) Complete(ctx context.Context, form model.OnboardingForm) (CompletionResult, error) {
	if err := model.Validate(form); err != nil {
		return CompletionResult{}, err
	}

	phone := model.NormalizePhone(form.Phone)

	attrs := authenticator.Attributes{
		UserType:   form.UserType,
		University: form.UniversityID,
	}
	if err := o.auth.UpdateAttributes(ctx, attrs); err != nil {
		return CompletionResult{}, err
	}

	user, err := o.users.CompleteProfile(ctx, phone, form.AvatarURL)
	if err != nil {
		xcontext.Logger(ctx).Warnf(
			"Profile completion aborted after attribute update; provider attributes were not rolled back: %v", err)
		return CompletionResult{}, err
	}

	// A refresh picks up the newly granted attributes. When it fails the only
	// way to an attribute-fresh session is a full re-login.
	if err := o.auth.RefreshSilent(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh session after onboarding: %v", err)

		loginURL, err := o.auth.ForceRelogin("onboarding")
		if err != nil {
			return CompletionResult{}, err
		}

		return CompletionResult{User: user, ReloginURL: loginURL}, nil
	}

	return CompletionResult{User: user}, nil
}
