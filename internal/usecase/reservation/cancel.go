package reservation

import (
	"context"

	"github.com/InstitutAurelia/institute-scheduler/internal/audit"
	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
	"github.com/InstitutAurelia/institute-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	instituteID uint,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	institute, err := uc.repo.GetInstituteByID(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	r, err := uc.repo.GetReservation(ctx, instituteID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(institute.Timezone)
	if err := domain.Cancel(r, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	// Le créneau redevient libre immédiatement.
	uc.cache.InvalidateDay(ctx, instituteID, r.Date)

	uc.audit.Dispatch(audit.Event{
		InstituteID: instituteID,
		UserID:      &userID,
		Action:      "reservation_cancelled",
		Entity:      "reservation",
		EntityID:    itoa(r.ID),
	})

	return r, nil
}
