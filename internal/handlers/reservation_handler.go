package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/httpresp"
	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	ucReservation "github.com/InstitutAurelia/institute-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC    *ucReservation.CreateReservation
	confirmUC   *ucReservation.ConfirmReservation
	cancelUC    *ucReservation.CancelReservation
	completeUC  *ucReservation.CompleteReservation
	listDateUC  *ucReservation.ListReservationsByDate
	listMonthUC *ucReservation.ListReservationsByMonth
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	completeUC *ucReservation.CompleteReservation,
	listDateUC *ucReservation.ListReservationsByDate,
	listMonthUC *ucReservation.ListReservationsByMonth,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:    createUC,
		confirmUC:   confirmUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
		listDateUC:  listDateUC,
		listMonthUC: listMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Services []string `json:"services" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	// Durée de la sélection sur le planning (minutes), 0 = catalogue.
	DurationMin int `json:"duration_min"`

	// Confirme une sélection plus longue que la durée catalogue.
	ConfirmDuration bool `json:"confirm_duration"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		InstituteID:     instituteID,
		UserID:          userID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		Services:        req.Services,
		Date:            req.Date,
		Time:            req.Time,
		DurationMin:     req.DurationMin,
		ConfirmDuration: req.ConfirmDuration,
		Status:          req.Status,
		Notes:           req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Date ou heure invalide.")
		case httperr.IsBusiness(err, "off_grid_time"):
			httperr.BadRequest(c, "off_grid_time", "L'heure doit tomber sur la grille de 30 minutes.")
		case httperr.IsBusiness(err, "too_soon"):
			httperr.BadRequest(c, "too_soon", "Horaire trop proche.")
		case httperr.IsBusiness(err, "duration_mismatch"):
			// Pas un rejet : le front repropose la création avec
			// confirm_duration=true après accord du personnel.
			httperr.Conflict(c, "duration_mismatch", "La sélection dépasse la durée du soin, confirmation requise.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "Créneau indisponible.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Statut initial invalide.")
		default:
			httperr.Internal(c, "failed_to_create_reservation", "Erreur lors de la création de la réservation.")
		}
		return
	}

	c.JSON(201, created)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	out, err := h.listDateUC.Execute(c.Request.Context(), instituteID, dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erreur lors du chargement des réservations.")
		return
	}

	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	out, err := h.listMonthUC.Execute(c.Request.Context(), instituteID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erreur lors du chargement des réservations.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"reservations": out,
	})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *ReservationHandler) transition(c *gin.Context, action string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var result any
	switch action {
	case "confirm":
		result, err = h.confirmUC.Execute(c.Request.Context(), instituteID, userID, uint(id))
	case "cancel":
		result, err = h.cancelUC.Execute(c.Request.Context(), instituteID, userID, uint(id))
	case "complete":
		result, err = h.completeUC.Execute(c.Request.Context(), instituteID, userID, uint(id))
	}

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Réservation introuvable.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transition de statut impossible.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "Créneau devenu indisponible.")
		default:
			httperr.Internal(c, "failed_to_update_reservation", "Erreur lors de la mise à jour.")
		}
		return
	}

	c.JSON(200, result)
}
