package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
)

func eventIn(id, category string) entity.Event {
	ev := entity.Event{ID: id, Title: id}
	if category != "" {
		ev.Category = &entity.EventCategory{ID: category}
	}
	return ev
}

func TestBrowser_MergeDedupFirstWins(t *testing.T) {
	shared := entity.Event{ID: "e2", Title: "from-active"}
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			require.NotNil(t, filter.Status)
			switch *filter.Status {
			case entity.EventActive:
				return model.EventPage{Events: []entity.Event{{ID: "e1"}, shared}}, nil
			case entity.EventFinished:
				finished := shared
				finished.Title = "from-finished"
				return model.EventPage{Events: []entity.Event{finished, {ID: "e3"}}}, nil
			}
			return model.EventPage{}, errors.New("unexpected status")
		},
	}

	b := NewBrowser(svc)
	defer b.Close()

	require.NoError(t, b.Refresh(context.Background()))

	list := b.Events.Snapshot().List
	require.Len(t, list, 3)
	require.Equal(t, "e1", list[0].ID)
	require.Equal(t, "e2", list[1].ID)
	// The ACTIVE branch is concatenated first, so its copy of e2 wins.
	require.Equal(t, "from-active", list[1].Title)
	require.Equal(t, "e3", list[2].ID)
}

func TestBrowser_PaginationOnlyWithConcreteStatus(t *testing.T) {
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			return model.EventPage{
				Events:     []entity.Event{{ID: "e1"}},
				TotalPages: 5,
			}, nil
		},
	}

	b := NewBrowser(svc)
	defer b.Close()

	// All statuses: the merged list has no stable page semantics.
	require.NoError(t, b.Refresh(context.Background()))
	require.False(t, b.PaginationVisible())

	require.NoError(t, b.SetStatus(context.Background(), &entity.EventActive))
	require.True(t, b.PaginationVisible())
}

func TestBrowser_CategoryCountsIgnoreCategoryFilter(t *testing.T) {
	all := []entity.Event{
		eventIn("e1", "c1"),
		eventIn("e2", "c1"),
		eventIn("e3", "c2"),
		eventIn("e4", ""),
	}

	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			if filter.CategoryID == "" {
				return model.EventPage{Events: all}, nil
			}

			var filtered []entity.Event
			for _, ev := range all {
				if ev.CategoryID() == filter.CategoryID {
					filtered = append(filtered, ev)
				}
			}
			return model.EventPage{Events: filtered}, nil
		},
	}

	b := NewBrowser(svc)
	defer b.Close()

	require.NoError(t, b.SetStatus(context.Background(), &entity.EventActive))
	require.NoError(t, b.SetCategory(context.Background(), "c2"))

	// The grid shows only c2, the badges still count the whole population.
	require.Len(t, b.Events.Snapshot().List, 1)
	counts := b.CategoryCounts()
	require.Equal(t, 2, counts["c1"])
	require.Equal(t, 1, counts["c2"])
}

func TestBrowser_CountFailureKeepsOldCounts(t *testing.T) {
	failCounts := false
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			if filter.CategoryID == "" && failCounts {
				return model.EventPage{}, errors.New("boom")
			}
			return model.EventPage{Events: []entity.Event{eventIn("e1", "c1")}}, nil
		},
	}

	b := NewBrowser(svc)
	defer b.Close()

	require.NoError(t, b.SetStatus(context.Background(), &entity.EventActive))
	require.NoError(t, b.SetCategory(context.Background(), "c1"))
	require.Equal(t, 1, b.CategoryCounts()["c1"])

	failCounts = true
	require.NoError(t, b.Refresh(context.Background()))
	require.Equal(t, 1, b.CategoryCounts()["c1"])
}

func TestBrowser_DisplayFailureStoresMessage(t *testing.T) {
	svc := &testutil.MockEventService{
		GetListFunc: func(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
			return model.EventPage{}, errors.New("connection refused")
		},
	}

	b := NewBrowser(svc)
	defer b.Close()

	require.Error(t, b.Refresh(context.Background()))

	// Raw transport errors never leak into presentation state.
	require.Equal(t, "Cannot load events", b.Events.Snapshot().Error)
	require.False(t, b.Loading())
}
