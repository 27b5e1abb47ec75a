package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

func seedReservation(repo *fakeRepo, id uint, at, status string) {
	repo.reservations = append(repo.reservations, models.Reservation{
		ID:          id,
		InstituteID: 1,
		Date:        "2026-09-10",
		Time:        at,
		Services:    []string{"soin-visage"},
		Status:      status,
	})
	if id >= repo.nextID {
		repo.nextID = id + 1
	}
}

func TestConfirmReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "pending")

	uc := NewConfirmReservation(repo, nil, nil)

	r, err := uc.Execute(context.Background(), 1, 7, 5)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", r.Status)
	assert.NotNil(t, r.ConfirmedAt)
	require.Len(t, repo.updated, 1)

	// La transition ne se rejoue pas.
	_, err = uc.Execute(context.Background(), 1, 7, 5)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmReservation_SlotTakenSinceCreation(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "pending")

	// Un autre rendez-vous a été confirmé sur le même créneau entre la
	// création et la confirmation.
	seedReservation(repo, 6, "10:00", "confirmed")

	uc := NewConfirmReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 7, 5)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestConfirmReservation_IgnoresItself(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "pending")

	// Seul occupant du créneau : sa propre présence ne le bloque pas.
	uc := NewConfirmReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 7, 5)
	assert.NoError(t, err)
}

func TestConfirmReservation_NotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()

	uc := NewConfirmReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 7, 99)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestCancelReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "confirmed")

	uc := NewCancelReservation(repo, nil, nil)

	r, err := uc.Execute(context.Background(), 1, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", r.Status)
	assert.NotNil(t, r.CancelledAt)

	// cancelled est terminal.
	_, err = uc.Execute(context.Background(), 1, 7, 5)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelReservation_FreesTheSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "confirmed")

	cancelUC := NewCancelReservation(repo, nil, nil)
	_, err := cancelUC.Execute(context.Background(), 1, 7, 5)
	require.NoError(t, err)

	createUC := NewCreateReservation(repo, nil, nil)
	_, err = createUC.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestCompleteReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "confirmed")

	uc := NewCompleteReservation(repo, nil, nil)

	r, err := uc.Execute(context.Background(), 1, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, "completed", r.Status)
	assert.NotNil(t, r.CompletedAt)
}

func TestCompleteReservation_RequiresConfirmed(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	seedReservation(repo, 5, "10:00", "pending")

	uc := NewCompleteReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 7, 5)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
