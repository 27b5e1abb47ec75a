package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

func TestListReservationsByDate(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	repo.reservations = []models.Reservation{
		{
			ID:          1,
			InstituteID: 1,
			Date:        "2026-09-10",
			Time:        "10:00",
			Services:    []string{"soin-visage"},
			ServiceName: "Soin du visage",
			Status:      "confirmed",
			TotalPrice:  65,
			Client:      models.Client{Name: "Claire Dupont"},
		},
		{
			ID:          2,
			InstituteID: 1,
			Date:        "2026-09-10",
			Time:        "14:00",
			Services:    []string{"manucure"},
			Status:      "pending",
		},
		{ID: 3, InstituteID: 1, Date: "2026-09-11", Time: "10:00", Status: "confirmed"},
	}

	uc := NewListReservationsByDate(repo)

	out, err := uc.Execute(context.Background(), 1, "2026-09-10")
	require.NoError(t, err)

	// Les fiches du jour montrent tous les statuts, pas seulement les
	// confirmées.
	require.Len(t, out, 2)

	// Fin de soin sans le tampon : 10:00 + 60 min.
	assert.Equal(t, "11:00", out[0].EndTime)
	assert.Equal(t, 60, out[0].Duration)
	assert.Equal(t, "Claire Dupont", out[0].ClientName)
	assert.Equal(t, 65.0, out[0].TotalPrice)

	assert.Equal(t, "14:45", out[1].EndTime)
	assert.Equal(t, "pending", out[1].Status)
}

func TestListReservationsByDate_ExplicitDurationWins(t *testing.T) {
	d := 120
	repo := newFakeRepo()
	repo.services = testServices()
	repo.reservations = []models.Reservation{{
		ID:              1,
		InstituteID:     1,
		Date:            "2026-09-10",
		Time:            "10:00",
		Services:        []string{"soin-visage"},
		ServiceDuration: &d,
		Status:          "confirmed",
	}}

	uc := NewListReservationsByDate(repo)

	out, err := uc.Execute(context.Background(), 1, "2026-09-10")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 120, out[0].Duration)
	assert.Equal(t, "12:00", out[0].EndTime)
}

func TestListReservationsByMonth_Bounds(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	repo.reservations = []models.Reservation{
		{ID: 1, InstituteID: 1, Date: "2026-08-31", Time: "10:00", Status: "confirmed"},
		{ID: 2, InstituteID: 1, Date: "2026-09-01", Time: "10:00", Status: "confirmed"},
		{ID: 3, InstituteID: 1, Date: "2026-09-30", Time: "10:00", Status: "confirmed"},
		{ID: 4, InstituteID: 1, Date: "2026-10-01", Time: "10:00", Status: "confirmed"},
	}

	uc := NewListReservationsByMonth(repo)

	out, err := uc.Execute(context.Background(), 1, 2026, 9)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "2026-09-01", out[0].Date)
	assert.Equal(t, "2026-09-30", out[1].Date)
}

func TestListReservationsByMonth_DecemberRollsOver(t *testing.T) {
	repo := newFakeRepo()
	repo.services = testServices()
	repo.reservations = []models.Reservation{
		{ID: 1, InstituteID: 1, Date: "2026-12-31", Time: "10:00", Status: "confirmed"},
		{ID: 2, InstituteID: 1, Date: "2027-01-01", Time: "10:00", Status: "confirmed"},
	}

	uc := NewListReservationsByMonth(repo)

	out, err := uc.Execute(context.Background(), 1, 2026, 12)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-12-31", out[0].Date)
}
