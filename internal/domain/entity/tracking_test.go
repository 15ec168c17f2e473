package entity

import (
	"testing"
	"time"

	"chaintrace/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from TrackingStatus
		to   TrackingStatus
		want bool
	}{
		{"empty accepts seed", "", StatusOrderPlaced, true},
		{"forward", StatusOrderPlaced, StatusShipped, true},
		{"same stage repeat", StatusInTransit, StatusInTransit, true},
		{"same stage alternative", StatusInTransit, StatusCustomsClearance, true},
		{"backward rejected", StatusShipped, StatusProcessing, false},
		{"cancel from open", StatusProcessing, StatusCancelled, true},
		{"cancel after delivered", StatusDelivered, StatusCancelled, false},
		{"nothing after delivered", StatusDelivered, StatusProcessing, false},
		{"return after delivered", StatusDelivered, StatusReturned, true},
		{"return before shipping", StatusPackaging, StatusReturned, false},
		{"return while in transit", StatusInTransit, StatusReturned, true},
		{"nothing after cancelled", StatusCancelled, StatusDelivered, false},
		{"nothing after returned", StatusReturned, StatusReturned, false},
		{"unknown target", StatusOrderPlaced, TrackingStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTrackingStatus_IsFinishedGoods(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusOutForDelivery.IsFinishedGoods())
	assert.True(t, StatusCancelled.IsFinishedGoods())
	assert.False(t, StatusCustomsClearance.IsFinishedGoods())
	assert.False(t, StatusReturned.IsFinishedGoods())
}

func TestTrackingLog_Append_DerivesDurationFromTail(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	var log TrackingLog

	first, err := log.Append(TrackingEvent{Status: StatusOrderPlaced}, start, true)
	require.NoError(t, err)
	assert.Nil(t, first.ActualDuration)
	assert.Equal(t, start, first.Timestamp)

	second, err := log.Append(TrackingEvent{Status: StatusProcessing}, start.Add(95*time.Minute+59*time.Second), true)
	require.NoError(t, err)
	require.NotNil(t, second.ActualDuration)
	assert.Equal(t, int64(95), *second.ActualDuration)
	assert.Equal(t, StatusProcessing, log.CurrentStatus)
	assert.Len(t, log.Events, 2)
}

func TestTrackingLog_Append_PreservesExistingEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	var log TrackingLog
	_, err := log.Append(TrackingEvent{Status: StatusOrderPlaced, Description: "placed"}, now, true)
	require.NoError(t, err)
	before := log.Events
	snapshot := append([]TrackingEvent(nil), log.Events...)

	for i := 1; i <= 3; i++ {
		_, err = log.Append(TrackingEvent{Status: StatusInTransit}, now.Add(time.Duration(i)*time.Hour), true)
		require.NoError(t, err)
	}

	assert.Len(t, log.Events, 4)
	assert.Equal(t, snapshot, log.Events[:1])
	assert.Equal(t, snapshot, before)
}

func TestTrackingLog_Append_Delivered(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	log := TrackingLog{
		CurrentStatus: StatusOutForDelivery,
		Events:        []TrackingEvent{{Status: StatusOutForDelivery, Timestamp: now.Add(-time.Hour)}},
	}

	_, err := log.Append(TrackingEvent{Status: StatusDelivered}, now, true)
	require.NoError(t, err)
	require.NotNil(t, log.ActualDelivery)
	assert.Equal(t, now, *log.ActualDelivery)
	assert.Equal(t, 100, log.Progress())
}

func TestTrackingLog_Append_RejectsInvalidTransition(t *testing.T) {
	t.Parallel()

	now := time.Now()
	log := TrackingLog{
		CurrentStatus: StatusDelivered,
		Events:        []TrackingEvent{{Status: StatusDelivered, Timestamp: now}},
	}

	_, err := log.Append(TrackingEvent{Status: StatusProcessing}, now, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Len(t, log.Events, 1)
	assert.Equal(t, StatusDelivered, log.CurrentStatus)

	_, err = log.Append(TrackingEvent{Status: StatusProcessing}, now, false)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, log.CurrentStatus)
}

func TestTrackingLog_Append_UnknownStatus(t *testing.T) {
	t.Parallel()

	var log TrackingLog
	_, err := log.Append(TrackingEvent{Status: "teleported"}, time.Now(), false)
	assert.True(t, errors.Is(err, ErrUnknownTrackingStatus))
	assert.Empty(t, log.Events)
}

func TestTrackingLog_Progress(t *testing.T) {
	t.Parallel()

	log := TrackingLog{Events: []TrackingEvent{
		{Status: StatusOrderPlaced},
		{Status: StatusShipped},
		{Status: StatusCancelled},
	}}
	assert.Equal(t, 66, log.Progress())
	assert.Equal(t, 0, (&TrackingLog{}).Progress())
}

func TestLocation_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Location{Address: "Dock 4"}.Validate())
	assert.NoError(t, Location{Coordinates: &Coordinates{Latitude: 25.03, Longitude: 121.56}}.Validate())
	assert.Error(t, Location{}.Validate())
	assert.Error(t, Location{Address: "x", Coordinates: &Coordinates{Latitude: 91}}.Validate())
}

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	taipei := Coordinates{Latitude: 25.0330, Longitude: 121.5654}
	kaohsiung := Coordinates{Latitude: 22.6273, Longitude: 120.3014}

	assert.InDelta(t, 297, DistanceKm(taipei, kaohsiung), 5)
	assert.Zero(t, DistanceKm(taipei, taipei))
}

func TestHandledBy_FillFrom(t *testing.T) {
	t.Parallel()

	user := &User{
		Username: "acme",
		Email:    "ops@acme.io",
		Profile:  Profile{DisplayName: "Acme Ops", Company: "Acme", Phone: "+1-555"},
	}

	got := HandledBy{Name: "Driver Dan"}.FillFrom(user)
	assert.Equal(t, HandledBy{Name: "Driver Dan", Company: "Acme", Contact: "ops@acme.io", Phone: "+1-555"}, got)
}
