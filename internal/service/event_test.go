package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

type failingTokens struct{}

func (failingTokens) AccessToken(ctx context.Context) (string, error) {
	return "", errors.New("no cached session")
}

func okResponse(body api.JSON) *api.Response {
	return &api.Response{Code: 200, Body: body}
}

func TestEventService_GetList(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotPath string
	var gotQuery api.Parameter
	gen.NewFunc = func(path string) api.Client {
		gotPath = path
		return &gen.MockClient
	}
	gen.MockClient.QueryFunc = func(query api.Parameter) api.Client {
		gotQuery = query
		return &gen.MockClient
	}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{
			"data": map[string]any{
				"items": []any{
					map[string]any{"id": "e1", "title": "Hackathon", "status": "ACTIVE"},
				},
				"total":      11,
				"totalPages": 2,
			},
		}), nil
	}

	svc := NewEventService(gen, StaticToken("token"))

	filter := model.ListEventsFilter{Page: 2, Search: "hack", CategoryID: "c1"}
	page, err := svc.GetList(context.Background(), filter.WithStatus(entity.EventActive))
	require.NoError(t, err)

	require.Equal(t, "/events", gotPath)
	require.Equal(t, api.Parameter{
		"page":       "2",
		"search":     "hack",
		"status":     "ACTIVE",
		"categoryId": "c1",
	}, gotQuery)

	require.Len(t, page.Events, 1)
	require.Equal(t, "Hackathon", page.Events[0].Title)
	require.Equal(t, entity.EventActive, page.Events[0].Status)
	require.Equal(t, 11, page.Total)
	require.Equal(t, 2, page.TotalPages)
}

func TestEventService_GetList_BackendMessageWins(t *testing.T) {
	gen := &api.MockAPIGenerator{}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code: 400,
			Body: api.JSON{"message": "Search term too long"},
		}, nil
	}

	svc := NewEventService(gen, StaticToken("token"))
	_, err := svc.GetList(context.Background(), model.ListEventsFilter{})
	require.Error(t, err)

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.BadRequest, xerr.Code)
	require.Equal(t, "Search term too long", xerr.Message)
}

func TestEventService_GetList_FallbackWithoutMessage(t *testing.T) {
	gen := &api.MockAPIGenerator{}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{Code: 500, Body: api.JSON{}}, nil
	}

	svc := NewEventService(gen, StaticToken("token"))
	_, err := svc.GetList(context.Background(), model.ListEventsFilter{})

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.Internal, xerr.Code)
	require.Equal(t, "Cannot load events", xerr.Message)
}

func TestEventService_GetList_TransportErrorNormalized(t *testing.T) {
	gen := &api.MockAPIGenerator{}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	svc := NewEventService(gen, StaticToken("token"))
	_, err := svc.GetList(context.Background(), model.ListEventsFilter{})

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.Unavailable, xerr.Code)
	require.Equal(t, "Cannot load events", xerr.Message)
}

func TestEventService_GetList_BadEnvelope(t *testing.T) {
	gen := &api.MockAPIGenerator{}
	gen.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		// No data envelope at all.
		return okResponse(api.JSON{"items": []any{}}), nil
	}

	svc := NewEventService(gen, StaticToken("token"))
	_, err := svc.GetList(context.Background(), model.ListEventsFilter{})

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.BadResponse, xerr.Code)
}

func TestEventService_RequiresToken(t *testing.T) {
	// The client mock panics when called; a missing token must stop earlier.
	svc := NewEventService(&api.MockAPIGenerator{}, failingTokens{})
	_, err := svc.GetList(context.Background(), model.ListEventsFilter{})

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.Unauthenticated, xerr.Code)
}

func TestEventService_Register(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotPath string
	gen.NewFunc = func(path string) api.Client {
		gotPath = path
		return &gen.MockClient
	}
	gen.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{}), nil
	}

	svc := NewEventService(gen, StaticToken("token"))
	require.NoError(t, svc.Register(context.Background(), "ev-9"))
	require.Equal(t, "/events/ev-9/register", gotPath)
}

func TestEventService_CheckIn(t *testing.T) {
	gen := &api.MockAPIGenerator{}

	var gotBody api.Body
	gen.MockClient.BodyFunc = func(body api.Body) api.Client {
		gotBody = body
		return &gen.MockClient
	}
	gen.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return okResponse(api.JSON{
			"data": map[string]any{
				"eventId":       "ev-1",
				"studentId":     "st-1",
				"awardedPoints": 50,
			},
		}), nil
	}

	svc := NewEventService(gen, StaticToken("token"))
	result, err := svc.CheckIn(context.Background(), "ev-1", "0912345678")
	require.NoError(t, err)
	require.Equal(t, "ev-1", result.EventID)
	require.EqualValues(t, 50, result.AwardedPoints)

	body, ok := gotBody.(api.JSON)
	require.True(t, ok)
	require.Equal(t, "ev-1", body["eventId"])
	require.Equal(t, "0912345678", body["phone"])
}
