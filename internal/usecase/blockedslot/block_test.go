package blockedslot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

// fakeRepo n'implémente que la partie blocages ; le reste de l'interface
// n'est pas sollicité par ces cas d'usage.
type fakeRepo struct {
	blocked []models.BlockedSlot
}

func (f *fakeRepo) GetInstituteByID(context.Context, uint) (*models.Institute, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) ListServices(context.Context, uint) ([]models.Service, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) GetOrCreateClient(context.Context, uint, string, string, string) (*models.Client, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) CreateReservation(context.Context, *models.Reservation) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetReservation(context.Context, uint, uint) (*models.Reservation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) UpdateReservation(context.Context, *models.Reservation) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) ListReservationsForDate(context.Context, uint, string) ([]models.Reservation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) ListReservationsForPeriod(context.Context, uint, string, string) ([]models.Reservation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) ListBlockedSlots(_ context.Context, instituteID uint) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range f.blocked {
		if b.InstituteID == instituteID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlockedSlotsForDate(_ context.Context, instituteID uint, date string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range f.blocked {
		if b.InstituteID == instituteID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBlockedSlot(_ context.Context, b *models.BlockedSlot) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.blocked = append(f.blocked, *b)
	return nil
}

func (f *fakeRepo) DeleteBlockedSlot(_ context.Context, instituteID uint, id string) error {
	for i, b := range f.blocked {
		if b.InstituteID == instituteID && b.ID.String() == id {
			f.blocked = append(f.blocked[:i], f.blocked[i+1:]...)
			return nil
		}
	}
	return errors.New("blocked slot not found")
}

func (f *fakeRepo) GetWorkingHours(context.Context, uint, int) (*models.WorkingHours, error) {
	return nil, errors.New("not implemented")
}

func TestBlockSlot_Cell(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewBlockSlot(repo, nil, nil)

	b, err := uc.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		UserID:      7,
		Date:        "2026-09-10",
		Time:        "14:00",
		Reason:      "rendez-vous personnel",
	})
	require.NoError(t, err)

	assert.Equal(t, "14:00", b.Time)
	assert.False(t, b.AllDay)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Len(t, repo.blocked, 1)
}

func TestBlockSlot_AllDayIgnoresTime(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewBlockSlot(repo, nil, nil)

	b, err := uc.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		UserID:      7,
		Date:        "2026-09-10",
		Time:        "14:00",
		AllDay:      true,
	})
	require.NoError(t, err)

	assert.True(t, b.AllDay)
	assert.Empty(t, b.Time)
}

func TestBlockSlot_Validation(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewBlockSlot(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		Date:        "10/09/2026",
		Time:        "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		Date:        "2026-09-10",
		Time:        "quatorze heures",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = uc.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		Date:        "2026-09-10",
		Time:        "14:10",
	})
	assert.True(t, httperr.IsBusiness(err, "off_grid_time"))
}

func TestBlockSlot_DuplicatesTolerated(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewBlockSlot(repo, nil, nil)

	in := BlockSlotInput{InstituteID: 1, Date: "2026-09-10", Time: "14:00"}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, repo.blocked, 2)
}

func TestUnblockSlot(t *testing.T) {
	repo := &fakeRepo{}

	blockUC := NewBlockSlot(repo, nil, nil)
	b, err := blockUC.Execute(context.Background(), BlockSlotInput{
		InstituteID: 1,
		Date:        "2026-09-10",
		Time:        "14:00",
	})
	require.NoError(t, err)

	unblockUC := NewUnblockSlot(repo, nil, nil)
	require.NoError(t, unblockUC.Execute(context.Background(), 1, 7, b.ID.String()))
	assert.Empty(t, repo.blocked)
}

func TestUnblockSlot_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUnblockSlot(repo, nil, nil)

	err := uc.Execute(context.Background(), 1, 7, uuid.NewString())
	assert.True(t, httperr.IsBusiness(err, "blocked_slot_not_found"))
}

func TestUnblockSlot_OtherInstituteInvisible(t *testing.T) {
	repo := &fakeRepo{}

	blockUC := NewBlockSlot(repo, nil, nil)
	b, err := blockUC.Execute(context.Background(), BlockSlotInput{
		InstituteID: 2,
		Date:        "2026-09-10",
		Time:        "14:00",
	})
	require.NoError(t, err)

	uc := NewUnblockSlot(repo, nil, nil)
	err = uc.Execute(context.Background(), 1, 7, b.ID.String())
	assert.True(t, httperr.IsBusiness(err, "blocked_slot_not_found"))
}

func TestListBlockedSlots_DateFilter(t *testing.T) {
	repo := &fakeRepo{}

	blockUC := NewBlockSlot(repo, nil, nil)
	for _, in := range []BlockSlotInput{
		{InstituteID: 1, Date: "2026-09-10", Time: "14:00"},
		{InstituteID: 1, Date: "2026-09-10", AllDay: true},
		{InstituteID: 1, Date: "2026-09-11", Time: "09:00"},
	} {
		_, err := blockUC.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	uc := NewListBlockedSlots(repo)

	all, err := uc.Execute(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	day, err := uc.Execute(context.Background(), 1, "2026-09-10")
	require.NoError(t, err)
	assert.Len(t, day, 2)
}
