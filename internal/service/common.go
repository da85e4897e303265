package service

import (
	"context"

	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

// TokenSource yields the current access token. The authenticator session
// implements it; tests plug in a stub.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token, used by tests and by
// one-shot tooling that already holds a token.
type StaticToken string

func (t StaticToken) AccessToken(ctx context.Context) (string, error) {
	return string(t), nil
}

type base struct {
	gen    api.Generator
	tokens TokenSource
}

func (b base) auth(ctx context.Context) (api.Opt, error) {
	token, err := b.tokens.AccessToken(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "You need to sign in first")
	}

	return api.OAuth2("Bearer", token), nil
}

// check maps a non-2xx response to an errorx value. The backend-provided
// message field wins; the caller-supplied fallback covers everything else.
// Raw transport or decode errors never reach presentation state.
func check(resp *api.Response, fallback string) error {
	if resp.Success() {
		return nil
	}

	return errorx.New(codeOf(resp.Code), resp.Message(fallback))
}

func codeOf(status int) errorx.Code {
	switch status {
	case 400:
		return errorx.BadRequest
	case 401:
		return errorx.Unauthenticated
	case 403:
		return errorx.PermissionDenied
	case 404:
		return errorx.NotFound
	case 409:
		return errorx.AlreadyExists
	case 429:
		return errorx.TooManyRequests
	case 503:
		return errorx.Unavailable
	default:
		return errorx.Internal
	}
}

// Every payload travels inside a data envelope. An unexpected shape is an
// explicit BadResponse, never an empty default.
func dataObject(resp *api.Response) (api.JSON, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "Unexpected response shape")
	}

	data, err := body.GetJSON("data")
	if err != nil {
		return nil, errorx.New(errorx.BadResponse, "Unexpected response shape")
	}

	return data, nil
}

func dataArray(resp *api.Response) (api.Array, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "Unexpected response shape")
	}

	array, err := body.GetArray("data")
	if err != nil {
		return nil, errorx.New(errorx.BadResponse, "Unexpected response shape")
	}

	return array, nil
}

// pageInfo reads pagination counters from a list payload. Endpoints without
// pagination simply omit them.
func pageInfo(data api.JSON) (total, totalPages int) {
	total, _ = data.GetInt("total")
	totalPages, _ = data.GetInt("totalPages")
	return total, totalPages
}
