package reservation

import (
	"context"
	"encoding/json"

	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
)

// SlotInfo est une cellule de la grille du jour, prête pour le planning.
type SlotInfo struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	Date   string     `json:"date"`
	Closed bool       `json:"closed"`
	Slots  []SlotInfo `json:"slots"`
}

type GetDayAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetDayAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetDayAvailability {
	return &GetDayAvailability{
		repo:  repo,
		cache: cache,
	}
}

// Execute calcule la grille de disponibilité d'une journée pour un soin
// donné (slug vide = durée de repli). La grille avance par pas de 30
// minutes ; chaque cellule interroge le moteur avec la durée du soin.
func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	instituteID uint,
	dateStr string,
	serviceSlug string,
) (*DayAvailability, error) {

	date, err := domain.ParseDateKey(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// La grille d'une journée se recalcule souvent à l'identique pendant
	// que le personnel navigue : cache court, invalidé à chaque mutation.
	if raw := uc.cache.GetDay(ctx, instituteID, dateStr, serviceSlug); raw != "" {
		var cached DayAvailability
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	out, err := uc.compute(ctx, instituteID, date, dateStr, serviceSlug)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		uc.cache.SetDay(ctx, instituteID, dateStr, serviceSlug, string(b))
	}

	return out, nil
}

func (uc *GetDayAvailability) compute(
	ctx context.Context,
	instituteID uint,
	date domain.DateKey,
	dateStr string,
	serviceSlug string,
) (*DayAvailability, error) {

	services, err := uc.repo.ListServices(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	catalog := domain.CatalogFromModels(services)

	duration := domain.FallbackDurationMin
	if serviceSlug != "" {
		if s, ok := catalog.BySlug(serviceSlug); ok && s.Duration > 0 {
			duration = s.Duration
		}
	}

	blocks, err := uc.repo.ListBlockedSlotsForDate(ctx, instituteID, dateStr)
	if err != nil {
		return nil, err
	}
	blockViews := mapBlocks(blocks)

	// Journée bloquée : toute interaction est désactivée.
	if domain.IsDateBlocked(date, blockViews) {
		return &DayAvailability{Date: dateStr, Closed: true}, nil
	}

	wh, err := uc.repo.GetWorkingHours(ctx, instituteID, int(date.Weekday()))
	if err != nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return &DayAvailability{Date: dateStr, Closed: true}, nil
	}

	dayStart, err := domain.ParseTimeOfDay(wh.StartTime)
	if err != nil {
		return &DayAvailability{Date: dateStr, Closed: true}, nil
	}
	dayEnd, err := domain.ParseTimeOfDay(wh.EndTime)
	if err != nil {
		return &DayAvailability{Date: dateStr, Closed: true}, nil
	}

	hasLunch := wh.LunchStart != "" && wh.LunchEnd != ""
	var lunchStart, lunchEnd domain.TimeOfDay
	if hasLunch {
		lunchStart, _ = domain.ParseTimeOfDay(wh.LunchStart)
		lunchEnd, _ = domain.ParseTimeOfDay(wh.LunchEnd)
	}

	reservations, err := uc.repo.ListReservationsForDate(ctx, instituteID, dateStr)
	if err != nil {
		return nil, err
	}
	reservationViews := mapReservations(reservations)

	out := &DayAvailability{Date: dateStr}

	for cur := dayStart; int(cur)+duration <= int(dayEnd); cur += domain.GridStepMin {
		slotEnd := int(cur) + duration

		// pause déjeuner
		if hasLunch && int(cur) < int(lunchEnd) && slotEnd > int(lunchStart) {
			continue
		}

		available := domain.IsSlotAvailable(
			date,
			cur,
			duration,
			reservationViews,
			blockViews,
			catalog,
		)

		out.Slots = append(out.Slots, SlotInfo{
			Start:     cur.String(),
			End:       domain.TimeOfDay(slotEnd).String(),
			Available: available,
		})
	}

	return out, nil
}
