package reservation

import (
	"context"

	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/dto"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	instituteID uint,
	date string,
) ([]dto.ReservationListDTO, error) {

	services, err := uc.repo.ListServices(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	catalog := domain.CatalogFromModels(services)

	reservations, err := uc.repo.ListReservationsForDate(ctx, instituteID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(reservations, catalog), nil
}

func toListDTOs(reservations []models.Reservation, catalog domain.Catalog) []dto.ReservationListDTO {
	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		view := domain.FromModel(r)
		duration := domain.ResolveDuration(view, catalog)

		// Fin de soin hors tampon : le tampon n'apparaît pas sur les
		// fiches, seulement dans le calcul d'occupation.
		end := domain.TimeOfDay(int(view.Start) + duration)

		out = append(out, dto.ReservationListDTO{
			ID:          r.ID,
			Date:        r.Date,
			Time:        r.Time,
			EndTime:     end.String(),
			Status:      r.Status,
			ClientName:  r.Client.Name,
			ServiceName: r.ServiceName,
			Services:    r.Services,
			Duration:    duration,
			TotalPrice:  r.TotalPrice,
		})
	}
	return out
}
