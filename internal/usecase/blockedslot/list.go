package blockedslot

import (
	"context"

	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type ListBlockedSlots struct {
	repo domain.Repository
}

func NewListBlockedSlots(
	repo domain.Repository,
) *ListBlockedSlots {
	return &ListBlockedSlots{
		repo: repo,
	}
}

// Execute liste les blocages, toute la période ou une journée.
func (uc *ListBlockedSlots) Execute(
	ctx context.Context,
	instituteID uint,
	date string,
) ([]models.BlockedSlot, error) {

	if date != "" {
		return uc.repo.ListBlockedSlotsForDate(ctx, instituteID, date)
	}
	return uc.repo.ListBlockedSlots(ctx, instituteID)
}
