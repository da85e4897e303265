package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/pkg/api"
)

func TestDecode_Event(t *testing.T) {
	event, err := Decode[Event](api.JSON{
		"id":        "e1",
		"title":     "Hackathon",
		"status":    "ACTIVE",
		"startTime": "2026-03-01T09:00:00Z",
		"category":  map[string]any{"id": "c1", "name": "Tech"},
	})
	require.NoError(t, err)
	require.Equal(t, "e1", event.ID)
	require.Equal(t, EventActive, event.Status)
	require.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), event.StartTime)
	require.Equal(t, "c1", event.CategoryID())
}

func TestDecode_EventWithoutCategory(t *testing.T) {
	event, err := Decode[Event](api.JSON{"id": "e2", "title": "Mixer"})
	require.NoError(t, err)
	require.Nil(t, event.Category)
	require.Empty(t, event.CategoryID())
}

func TestDecode_BadShape(t *testing.T) {
	_, err := Decode[Event](api.JSON{"id": "e1", "registeredCount": "many"})
	require.Error(t, err)
}

func TestDecodeList_FailsOnFirstBadElement(t *testing.T) {
	_, err := DecodeList[Product](api.Array{
		{"id": "p1", "unitCost": 100},
		{"id": "p2", "unitCost": "free"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "element 1")
}

func TestProduct_InStock(t *testing.T) {
	require.True(t, Product{IsActive: true, TotalStock: 1}.InStock())
	require.False(t, Product{IsActive: true, TotalStock: 0}.InStock())
	require.False(t, Product{IsActive: false, TotalStock: 5}.InStock())
}
