package blockedslot

import (
	"context"

	"github.com/InstitutAurelia/institute-scheduler/internal/audit"
	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type BlockSlotInput struct {
	InstituteID uint
	UserID      uint

	Date   string // "2006-01-02"
	Time   string // "15:04", vide si AllDay
	AllDay bool
	Reason string
}

type BlockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBlockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *BlockSlot {
	return &BlockSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute bloque une cellule de la grille ou une journée entière. Les
// doublons ne sont pas dédupliqués : re-bloquer une cellule déjà bloquée
// crée une entrée redondante mais inoffensive, le toggle reste idempotent
// côté planning.
func (uc *BlockSlot) Execute(
	ctx context.Context,
	in BlockSlotInput,
) (*models.BlockedSlot, error) {

	if _, err := domain.ParseDateKey(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !in.AllDay {
		t, err := domain.ParseTimeOfDay(in.Time)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		if !t.OnGrid() {
			return nil, httperr.ErrBusiness("off_grid_time")
		}
	}

	b := &models.BlockedSlot{
		InstituteID: in.InstituteID,
		Date:        in.Date,
		AllDay:      in.AllDay,
		Reason:      in.Reason,
	}
	if !in.AllDay {
		b.Time = in.Time
	}

	if err := uc.repo.CreateBlockedSlot(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.InstituteID, in.Date)

	uc.audit.Dispatch(audit.Event{
		InstituteID: in.InstituteID,
		UserID:      &in.UserID,
		Action:      "slot_blocked",
		Entity:      "blocked_slot",
		EntityID:    b.ID.String(),
		Metadata: map[string]any{
			"date":    in.Date,
			"time":    in.Time,
			"all_day": in.AllDay,
		},
	})

	return b, nil
}
