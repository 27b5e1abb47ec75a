package schedule

import (
	"time"

	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

// ===============================
// Actions de domaine
// ===============================

func Confirm(r *models.Reservation, now time.Time) error {
	if err := CanConfirm(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusConfirmed)
	r.ConfirmedAt = &now
	return nil
}

func Cancel(r *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

func Complete(r *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}

// FromModel projette une réservation stockée dans la vue planning du
// moteur. Les champs mal formés dégradent en valeur zéro : le moteur les
// traitera par ses replis plutôt que d'échouer.
func FromModel(r models.Reservation) Reservation {
	date, _ := ParseDateKey(r.Date)
	start, _ := ParseTimeOfDay(r.Time)

	duration := 0
	if r.ServiceDuration != nil && *r.ServiceDuration > 0 {
		duration = *r.ServiceDuration
	}

	return Reservation{
		Date:     date,
		Start:    start,
		Services: r.Services,
		Duration: duration,
		Status:   Status(r.Status),
	}
}

// BlockFromModel projette un blocage stocké. Une heure absente ou mal
// formée laisse Time à zéro ; seul AllDay la rend non significative.
func BlockFromModel(b models.BlockedSlot) BlockedSlot {
	date, _ := ParseDateKey(b.Date)

	var t TimeOfDay
	if !b.AllDay && b.Time != "" {
		t, _ = ParseTimeOfDay(b.Time)
	}

	return BlockedSlot{
		Date:   date,
		Time:   t,
		AllDay: b.AllDay,
	}
}

// CatalogFromModels construit le catalogue du moteur depuis les soins
// actifs et inactifs : une réservation existante peut référencer un soin
// désactivé depuis, sa durée doit rester résolvable.
func CatalogFromModels(services []models.Service) Catalog {
	infos := make([]ServiceInfo, 0, len(services))
	for _, s := range services {
		infos = append(infos, ServiceInfo{
			Slug:       s.Slug,
			Name:       s.Name,
			Duration:   s.DurationMin,
			Price:      s.Price,
			PromoPrice: s.PromoPrice,
		})
	}
	return NewCatalog(infos)
}
