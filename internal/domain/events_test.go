package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
)

func upsertEventForm() model.UpsertEventForm {
	start := time.Now().Add(time.Hour)
	return model.UpsertEventForm{
		Title:      "Career fair",
		CategoryID: "c1",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
	}
}

func TestEvents_LoadAllStoresPageInfo(t *testing.T) {
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			return model.EventPage{
				Events:     []entity.Event{{ID: "e1"}},
				Total:      42,
				TotalPages: 5,
			}, nil
		},
	}

	e := NewEvents(svc)
	defer e.Close()

	require.NoError(t, e.LoadAll(context.Background(), model.ListEventsFilter{Page: 1}))

	total, totalPages := e.PageInfo()
	require.Equal(t, 42, total)
	require.Equal(t, 5, totalPages)
	require.Len(t, e.Store.Snapshot().List, 1)
}

func TestEvents_LoadFailureNormalizesMessage(t *testing.T) {
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			return model.EventPage{}, errors.New("dial tcp: connection refused")
		},
	}

	e := NewEvents(svc)
	defer e.Close()

	require.Error(t, e.LoadAll(context.Background(), model.ListEventsFilter{}))
	require.Equal(t, "Cannot load events", e.Store.Snapshot().Error)
}

func TestEvents_CreatePatchesList(t *testing.T) {
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			return model.EventPage{Events: []entity.Event{{ID: "e1"}}}, nil
		},
		CreateFunc: func(ctx context.Context, form model.UpsertEventForm) (entity.Event, error) {
			return entity.Event{ID: "e2", Title: form.Title}, nil
		},
	}

	e := NewEvents(svc)
	defer e.Close()

	require.NoError(t, e.LoadAll(context.Background(), model.ListEventsFilter{}))

	created, err := e.Create(context.Background(), upsertEventForm())
	require.NoError(t, err)
	require.Equal(t, "e2", created.ID)

	// The new event is appended locally, not refetched.
	list := e.Store.Snapshot().List
	require.Len(t, list, 2)
	require.Equal(t, "e2", list[1].ID)
}

func TestEvents_InvalidFormNeverCallsService(t *testing.T) {
	// The mock panics when called; validation must stop the call.
	e := NewEvents(&testutil.MockEventService{})
	defer e.Close()

	form := upsertEventForm()
	form.EndTime = form.StartTime.Add(-time.Minute)

	_, err := e.Create(context.Background(), form)
	require.Error(t, err)
}
