package reservation

import (
	"strconv"

	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

func mapReservations(in []models.Reservation) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(in))
	for _, r := range in {
		out = append(out, domain.FromModel(r))
	}
	return out
}

func mapBlocks(in []models.BlockedSlot) []domain.BlockedSlot {
	out := make([]domain.BlockedSlot, 0, len(in))
	for _, b := range in {
		out = append(out, domain.BlockFromModel(b))
	}
	return out
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
