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

type ConfirmReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute confirme une réservation en attente. Une fois confirmée, elle
// occupe le planning : on revérifie donc la disponibilité du créneau au
// moment de la confirmation, pas seulement à la création.
func (uc *ConfirmReservation) Execute(
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

	view := domain.FromModel(*r)

	services, err := uc.repo.ListServices(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	catalog := domain.CatalogFromModels(services)

	dayReservations, err := uc.repo.ListReservationsForDate(ctx, instituteID, r.Date)
	if err != nil {
		return nil, err
	}

	dayBlocks, err := uc.repo.ListBlockedSlotsForDate(ctx, instituteID, r.Date)
	if err != nil {
		return nil, err
	}

	// On écarte la réservation elle-même : en attente, elle est de toute
	// façon transparente pour le moteur.
	others := make([]models.Reservation, 0, len(dayReservations))
	for _, other := range dayReservations {
		if other.ID != r.ID {
			others = append(others, other)
		}
	}

	if !domain.IsSlotAvailable(
		view.Date,
		view.Start,
		domain.ResolveDuration(view, catalog),
		mapReservations(others),
		mapBlocks(dayBlocks),
		catalog,
	) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	now := timezone.NowIn(institute.Timezone)
	if err := domain.Confirm(r, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, instituteID, r.Date)

	uc.audit.Dispatch(audit.Event{
		InstituteID: instituteID,
		UserID:      &userID,
		Action:      "reservation_confirmed",
		Entity:      "reservation",
		EntityID:    itoa(r.ID),
	})

	return r, nil
}
