package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/testutil"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

func TestCheckIn_NormalizesPhone(t *testing.T) {
	svc := &testutil.MockEventService{
		CheckInFunc: func(ctx context.Context, eventID, phone string) (model.CheckInResult, error) {
			require.Equal(t, "ev-1", eventID)
			require.Equal(t, "0912345678", phone)
			return model.CheckInResult{EventID: eventID, AwardedPoints: 50}, nil
		},
	}

	c := NewCheckIn(svc)
	result, err := c.Record(context.Background(), "ev-1", "0912-345-678")
	require.NoError(t, err)
	require.EqualValues(t, 50, result.AwardedPoints)
}

func TestCheckIn_RejectsInvalidPhone(t *testing.T) {
	// The mock panics when called; an invalid phone must never reach it.
	c := NewCheckIn(&testutil.MockEventService{})

	_, err := c.Record(context.Background(), "ev-1", "0212345678")
	require.Error(t, err)

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.InvalidPhone, xerr.Code)
}
