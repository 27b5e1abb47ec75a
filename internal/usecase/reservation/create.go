package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/InstitutAurelia/institute-scheduler/internal/audit"
	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
	"github.com/InstitutAurelia/institute-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	InstituteID uint
	UserID      uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	// Slugs des soins réservés.
	Services []string

	Date string // "2006-01-02"
	Time string // "15:04"

	// Durée de la sélection étirée sur le planning, en minutes.
	// 0 = durée catalogue.
	DurationMin int

	// Le personnel a confirmé une sélection plus longue que la durée
	// catalogue.
	ConfirmDuration bool

	// pending ou confirmed ; confirmed par défaut (saisie back-office).
	Status string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	institute, err := uc.repo.GetInstituteByID(ctx, in.InstituteID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / heure dans le fuseau de l'institut
	// --------------------------------------------------
	date, err := domain.ParseDateKey(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !start.OnGrid() {
		return nil, httperr.ErrBusiness("off_grid_time")
	}

	// --------------------------------------------------
	// Antécédence minimale
	// --------------------------------------------------
	if institute.MinAdvanceMinutes > 0 {
		loc := timezone.Location(institute.Timezone)
		now := timezone.NowIn(institute.Timezone)
		if date.At(start, loc).Before(now.Add(time.Duration(institute.MinAdvanceMinutes) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// Catalogue et durée
	// --------------------------------------------------
	services, err := uc.repo.ListServices(ctx, in.InstituteID)
	if err != nil {
		return nil, err
	}
	catalog := domain.CatalogFromModels(services)

	candidate := domain.Reservation{
		Date:     date,
		Start:    start,
		Services: in.Services,
		Duration: in.DurationMin,
		Status:   domain.StatusConfirmed,
	}

	duration := domain.ResolveDuration(candidate, catalog)

	// Sélection étirée à la main : on demande confirmation, on ne
	// rejette pas. L'écart volontaire est un usage assumé du personnel.
	if in.DurationMin > 0 && !in.ConfirmDuration &&
		domain.DurationMismatch(in.DurationMin, candidate, catalog) {
		return nil, httperr.ErrBusiness("duration_mismatch")
	}

	// --------------------------------------------------
	// Disponibilité du créneau
	// --------------------------------------------------
	dayReservations, err := uc.repo.ListReservationsForDate(ctx, in.InstituteID, in.Date)
	if err != nil {
		return nil, err
	}

	dayBlocks, err := uc.repo.ListBlockedSlotsForDate(ctx, in.InstituteID, in.Date)
	if err != nil {
		return nil, err
	}

	if !domain.IsSlotAvailable(
		date,
		start,
		duration,
		mapReservations(dayReservations),
		mapBlocks(dayBlocks),
		catalog,
	) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.InstituteID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Statut initial et facturation
	// --------------------------------------------------
	status := domain.StatusConfirmed
	if in.Status != "" {
		parsed, ok := domain.ParseStatus(in.Status)
		if !ok || (parsed != domain.StatusPending && parsed != domain.StatusConfirmed) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		status = parsed
	}

	now := timezone.NowIn(institute.Timezone)

	r := &models.Reservation{
		InstituteID: in.InstituteID,
		ClientID:    client.ID,
		Date:        in.Date,
		Time:        in.Time,
		Services:    in.Services,
		ServiceName: serviceNames(in.Services, catalog),
		Status:      string(status),
		TotalPrice:  billingTotal(in.Services, catalog),
		Notes:       in.Notes,
	}

	if in.DurationMin > 0 {
		d := in.DurationMin
		r.ServiceDuration = &d
	}

	if status == domain.StatusConfirmed {
		r.ConfirmedAt = &now
	}

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.InstituteID, in.Date)

	uc.audit.Dispatch(audit.Event{
		InstituteID: in.InstituteID,
		UserID:      &in.UserID,
		Action:      "reservation_created",
		Entity:      "reservation",
		EntityID:    itoa(r.ID),
	})

	return r, nil
}

// serviceNames joint les noms lisibles, slug en secours.
func serviceNames(slugs []string, catalog domain.Catalog) string {
	names := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if s, ok := catalog.BySlug(slug); ok && s.Name != "" {
			names = append(names, s.Name)
			continue
		}
		names = append(names, slug)
	}
	return strings.Join(names, ", ")
}

// billingTotal somme les prix facturés ; un slug inconnu ne facture rien.
func billingTotal(slugs []string, catalog domain.Catalog) float64 {
	total := 0.0
	for _, slug := range slugs {
		if s, ok := catalog.BySlug(slug); ok {
			total += s.BillingPrice()
		}
	}
	return total
}
