package schedule

import (
	"context"

	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type Repository interface {
	// -------- Institute --------
	GetInstituteByID(
		ctx context.Context,
		id uint,
	) (*models.Institute, error)

	// -------- Services --------
	ListServices(
		ctx context.Context,
		instituteID uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		instituteID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Reservations --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		instituteID uint,
		reservationID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	ListReservationsForDate(
		ctx context.Context,
		instituteID uint,
		date string,
	) ([]models.Reservation, error)

	ListReservationsForPeriod(
		ctx context.Context,
		instituteID uint,
		fromDate string,
		toDate string,
	) ([]models.Reservation, error)

	// -------- Blocages --------
	ListBlockedSlots(
		ctx context.Context,
		instituteID uint,
	) ([]models.BlockedSlot, error)

	ListBlockedSlotsForDate(
		ctx context.Context,
		instituteID uint,
		date string,
	) ([]models.BlockedSlot, error)

	CreateBlockedSlot(
		ctx context.Context,
		b *models.BlockedSlot,
	) error

	DeleteBlockedSlot(
		ctx context.Context,
		instituteID uint,
		id string,
	) error

	// -------- Horaires --------
	GetWorkingHours(
		ctx context.Context,
		instituteID uint,
		weekday int,
	) (*models.WorkingHours, error)
}
