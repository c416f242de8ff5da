package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/stats"
	"github.com/harentsoaR/medicare-api/internal/storage"
	"github.com/harentsoaR/medicare-api/internal/store"
)

func TestScheduler_SendDailyReminders(t *testing.T) {
	ctx := context.Background()
	stores := store.New(storage.NewMemory(), store.Options{IDs: &store.CounterIDs{}})
	now := func() time.Time { return time.Date(2024, 1, 25, 8, 0, 0, 0, time.UTC) }

	// Dangling patient reference: skipped, not an error.
	_, err := stores.Appointments.Add(ctx, models.AppointmentFields{
		PatientID: "gone", DoctorID: "1", Date: "2024-01-25", Status: models.StatusScheduled,
	})
	require.NoError(t, err)

	stub := &textbeltStub{}
	notifier := newSyncService(t, stub, "key")
	s := NewScheduler(stores, notifier, stats.NewAggregator(stats.DefaultUnitPrice, now), now)

	sent, err := s.SendDailyReminders(ctx)
	require.NoError(t, err)

	// Seed appointment 1 is scheduled today; seed 2 is completed.
	assert.Equal(t, 1, sent)
	require.Len(t, stub.requests, 1)
	assert.Equal(t, "+1 (555) 123-4567", stub.requests[0]["phone"])
	assert.Contains(t, stub.requests[0]["message"], "with Dr. Emily Wilson")
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	stores := store.New(storage.NewMemory(), store.Options{})
	s := NewScheduler(stores, NewNotificationService(""), stats.NewAggregator(stats.DefaultUnitPrice, nil), nil)

	assert.Error(t, s.Start("every morning"))
}
