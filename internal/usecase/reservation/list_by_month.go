package reservation

import (
	"context"
	"fmt"
	"time"

	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/dto"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(
	repo domain.Repository,
) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
	}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	instituteID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	services, err := uc.repo.ListServices(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	catalog := domain.CatalogFromModels(services)

	// Les dates ISO se comparent lexicographiquement.
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	to := next.Format("2006-01-02")

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, instituteID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(reservations, catalog), nil
}
