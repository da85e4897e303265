package authenticator

import (
	"context"
	"errors"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/unipoint-lab/appcore/config"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
	"golang.org/x/oauth2"
)

type oidcAuthenticator struct {
	cfg     config.AuthConfigs
	oauth   oauth2.Config
	storage *TokenStorage
	gen     api.Generator

	mu   sync.Mutex
	sess *session
}

// NewOIDC discovers the provider at the configured authority and restores the
// cached session when one exists.
func NewOIDC(ctx context.Context, cfg config.AuthConfigs) (Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Authority)
	if err != nil {
		return nil, err
	}

	a := &oidcAuthenticator{
		cfg: cfg,
		oauth: oauth2.Config{
			ClientID:    cfg.ClientID,
			Endpoint:    provider.Endpoint(),
			RedirectURL: cfg.RedirectURL,
			Scopes:      []string{oidc.ScopeOpenID, "profile", "email", oidc.ScopeOfflineAccess},
		},
		storage: NewTokenStorage(cfg.StorageDir),
		gen:     api.NewGenerator(cfg.Authority),
	}

	if sess, err := a.storage.Load(a.key()); err == nil {
		a.sess = sess
	} else {
		xcontext.Logger(ctx).Debugf("Cannot restore cached session: %v", err)
	}

	return a, nil
}

func (a *oidcAuthenticator) key() string {
	return StorageKey(a.cfg.Authority, a.cfg.ClientID)
}

func (a *oidcAuthenticator) AuthCodeURL(state string) (string, error) {
	verifier := oauth2.GenerateVerifier()

	a.mu.Lock()
	a.sess = &session{PKCEVerifier: verifier}
	err := a.storage.Store(a.key(), a.sess)
	a.mu.Unlock()
	if err != nil {
		return "", err
	}

	return a.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier)), nil
}

func (a *oidcAuthenticator) Exchange(ctx context.Context, code string) error {
	a.mu.Lock()
	sess := a.sess
	a.mu.Unlock()

	if sess == nil || sess.PKCEVerifier == "" {
		return errorx.New(errorx.Unauthenticated, "No login in progress")
	}

	token, err := a.oauth.Exchange(ctx, code, oauth2.VerifierOption(sess.PKCEVerifier))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot exchange authorization code: %v", err)
		return errorx.New(errorx.Unauthenticated, "Cannot complete sign-in")
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return errors.New("no id_token field in oauth2 token")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.sess = &session{Token: token, IDToken: idToken}
	return a.storage.Store(a.key(), a.sess)
}

func (a *oidcAuthenticator) AccessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	sess := a.sess
	a.mu.Unlock()

	if sess == nil || sess.Token == nil {
		return "", errorx.New(errorx.Unauthenticated, "You need to sign in first")
	}

	if sess.Token.Valid() {
		return sess.Token.AccessToken, nil
	}

	if err := a.RefreshSilent(ctx); err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sess.Token.AccessToken, nil
}

func (a *oidcAuthenticator) RefreshSilent(ctx context.Context) error {
	a.mu.Lock()
	sess := a.sess
	a.mu.Unlock()

	if sess == nil || sess.Token == nil {
		return errorx.New(errorx.Unauthenticated, "You need to sign in first")
	}

	// Force a refresh even while the access token is still valid; a refresh
	// is how newly granted attributes reach the next ID token. An empty
	// access token makes the token source treat the cached one as expired.
	expired := *sess.Token
	expired.AccessToken = ""

	token, err := a.oauth.TokenSource(ctx, &expired).Token()
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh token: %v", err)
		return errorx.New(errorx.RefreshFailed, "Cannot refresh your session")
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		idToken = sess.IDToken
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.sess = &session{Token: token, IDToken: idToken}
	return a.storage.Store(a.key(), a.sess)
}

func (a *oidcAuthenticator) ForceRelogin(state string) (string, error) {
	a.mu.Lock()
	a.sess = nil
	err := a.storage.Clear(a.key())
	a.mu.Unlock()
	if err != nil {
		return "", err
	}

	return a.AuthCodeURL(state)
}

func (a *oidcAuthenticator) Claims() (Claims, error) {
	a.mu.Lock()
	sess := a.sess
	a.mu.Unlock()

	if sess == nil || sess.IDToken == "" {
		return Claims{}, errorx.New(errorx.Unauthenticated, "You need to sign in first")
	}

	return parseClaims(sess.IDToken)
}

// UpdateAttributes patches the custom attributes on the provider's profile
// endpoint. Empty fields are omitted so an avatar-only change cannot wipe the
// university.
func (a *oidcAuthenticator) UpdateAttributes(ctx context.Context, attrs Attributes) error {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return err
	}

	body := api.JSON{"user_type": attrs.UserType}
	if attrs.University != "" {
		body["university"] = attrs.University
	}

	resp, err := a.gen.New("/api/users/me/attributes").
		Body(body).
		PATCH(ctx, api.OAuth2("Bearer", token))
	if err != nil {
		return errorx.New(errorx.Unavailable, "Cannot update profile attributes")
	}

	if !resp.Success() {
		return errorx.New(errorx.Internal, resp.Message("Cannot update profile attributes"))
	}

	return nil
}
