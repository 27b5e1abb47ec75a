package blockedslot

import (
	"context"

	"github.com/InstitutAurelia/institute-scheduler/internal/audit"
	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
)

type UnblockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewUnblockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *UnblockSlot {
	return &UnblockSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UnblockSlot) Execute(
	ctx context.Context,
	instituteID uint,
	userID uint,
	blockID string,
) error {

	// On retrouve l'entrée avant suppression pour invalider la bonne
	// journée en cache.
	blocks, err := uc.repo.ListBlockedSlots(ctx, instituteID)
	if err != nil {
		return err
	}

	date := ""
	for _, b := range blocks {
		if b.ID.String() == blockID {
			date = b.Date
			break
		}
	}
	if date == "" {
		return httperr.ErrBusiness("blocked_slot_not_found")
	}

	if err := uc.repo.DeleteBlockedSlot(ctx, instituteID, blockID); err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, instituteID, date)

	uc.audit.Dispatch(audit.Event{
		InstituteID: instituteID,
		UserID:      &userID,
		Action:      "slot_unblocked",
		Entity:      "blocked_slot",
		EntityID:    blockID,
	})

	return nil
}
