package reservation

import (
	"context"
	"errors"

	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

// fakeRepo implémente domain.Repository en mémoire pour les tests de cas
// d'usage, sans base ni Redis.
type fakeRepo struct {
	institute    *models.Institute
	services     []models.Service
	reservations []models.Reservation
	blocked      []models.BlockedSlot
	workingHours map[int]*models.WorkingHours
	clients      []models.Client

	nextID  uint
	created []*models.Reservation
	updated []*models.Reservation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		institute: &models.Institute{
			ID:       1,
			Name:     "Institut Aurélia",
			Slug:     "institut-aurelia",
			Timezone: "Europe/Paris",
		},
		workingHours: map[int]*models.WorkingHours{},
		nextID:       1,
	}
}

func (f *fakeRepo) GetInstituteByID(_ context.Context, id uint) (*models.Institute, error) {
	if f.institute == nil || f.institute.ID != id {
		return nil, errors.New("institute not found")
	}
	return f.institute, nil
}

func (f *fakeRepo) ListServices(_ context.Context, _ uint) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, instituteID uint, name, phone, email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].Phone == phone {
			return &f.clients[i], nil
		}
	}
	f.clients = append(f.clients, models.Client{
		ID:          uint(len(f.clients) + 1),
		InstituteID: instituteID,
		Name:        name,
		Phone:       phone,
		Email:       email,
	})
	return &f.clients[len(f.clients)-1], nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, r *models.Reservation) error {
	r.ID = f.nextID
	f.nextID++
	f.reservations = append(f.reservations, *r)
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRepo) GetReservation(_ context.Context, instituteID, reservationID uint) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == reservationID && f.reservations[i].InstituteID == instituteID {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, errors.New("reservation not found")
}

func (f *fakeRepo) UpdateReservation(_ context.Context, r *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == r.ID {
			f.reservations[i] = *r
			f.updated = append(f.updated, r)
			return nil
		}
	}
	return errors.New("reservation not found")
}

func (f *fakeRepo) ListReservationsForDate(_ context.Context, instituteID uint, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.InstituteID == instituteID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListReservationsForPeriod(_ context.Context, instituteID uint, fromDate, toDate string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.InstituteID == instituteID && r.Date >= fromDate && r.Date < toDate {
			out = append(out, r)
		}
	}
	return out, nil
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

func (f *fakeRepo) GetWorkingHours(_ context.Context, instituteID uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := f.workingHours[weekday]
	if !ok {
		return nil, errors.New("working hours not found")
	}
	return wh, nil
}
