package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCancelled))
	assert.Error(t, CanConfirm(StatusCompleted))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCancelled))
	assert.Error(t, CanCancel(StatusCompleted))

	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusPending))
	assert.Error(t, CanComplete(StatusCancelled))
	assert.Error(t, CanComplete(StatusCompleted))
}

func TestStatusTransitionErrorsAreBusiness(t *testing.T) {
	err := CanConfirm(StatusCompleted)
	require.Error(t, err)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestStatus_Occupies(t *testing.T) {
	assert.True(t, StatusConfirmed.Occupies())
	assert.False(t, StatusPending.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusCompleted.Occupies())
}

func TestParseStatus(t *testing.T) {
	got, ok := ParseStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, got)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)

	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestConfirm_SetsTimestamp(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	r := &models.Reservation{Status: string(StatusPending)}
	require.NoError(t, Confirm(r, now))
	assert.Equal(t, string(StatusConfirmed), r.Status)
	require.NotNil(t, r.ConfirmedAt)
	assert.Equal(t, now, *r.ConfirmedAt)

	// Une confirmation ne se rejoue pas.
	assert.Error(t, Confirm(r, now))
}

func TestCancel_FromConfirmed(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	r := &models.Reservation{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(r, now))
	assert.Equal(t, string(StatusCancelled), r.Status)
	require.NotNil(t, r.CancelledAt)

	assert.Error(t, Complete(r, now))
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC)

	r := &models.Reservation{Status: string(StatusPending)}
	assert.Error(t, Complete(r, now))

	r.Status = string(StatusConfirmed)
	require.NoError(t, Complete(r, now))
	assert.Equal(t, string(StatusCompleted), r.Status)
	require.NotNil(t, r.CompletedAt)
}
