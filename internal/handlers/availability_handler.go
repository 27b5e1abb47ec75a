package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/httpresp"
	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	ucReservation "github.com/InstitutAurelia/institute-scheduler/internal/usecase/reservation"
)

type AvailabilityHandler struct {
	availabilityUC *ucReservation.GetDayAvailability
}

func NewAvailabilityHandler(
	availabilityUC *ucReservation.GetDayAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: availabilityUC,
	}
}

// Day retourne la grille de disponibilité d'une journée, cellule par
// cellule, pour le soin demandé.
func (h *AvailabilityHandler) Day(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	serviceSlug := c.Query("service")

	out, err := h.availabilityUC.Execute(c.Request.Context(), instituteID, dateStr, serviceSlug)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date invalide.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erreur lors du calcul des disponibilités.")
		return
	}

	httpresp.OK(c, out)
}
