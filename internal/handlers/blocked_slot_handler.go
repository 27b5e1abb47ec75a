package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/InstitutAurelia/institute-scheduler/internal/httperr"
	"github.com/InstitutAurelia/institute-scheduler/internal/httpresp"
	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	ucBlocked "github.com/InstitutAurelia/institute-scheduler/internal/usecase/blockedslot"
)

type BlockedSlotHandler struct {
	blockUC   *ucBlocked.BlockSlot
	unblockUC *ucBlocked.UnblockSlot
	listUC    *ucBlocked.ListBlockedSlots
}

func NewBlockedSlotHandler(
	blockUC *ucBlocked.BlockSlot,
	unblockUC *ucBlocked.UnblockSlot,
	listUC *ucBlocked.ListBlockedSlots,
) *BlockedSlotHandler {
	return &BlockedSlotHandler{
		blockUC:   blockUC,
		unblockUC: unblockUC,
		listUC:    listUC,
	}
}

type BlockSlotRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Time   string `json:"time"`                    // HH:mm, vide si all_day
	AllDay bool   `json:"all_day"`
	Reason string `json:"reason"`
}

func (h *BlockedSlotHandler) List(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	blocks, err := h.listUC.Execute(c.Request.Context(), instituteID, c.Query("date"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocked_slots", "Erreur lors du chargement des blocages.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if !req.AllDay && req.Time == "" {
		httperr.BadRequest(c, "missing_time", "Heure obligatoire pour un blocage de créneau.")
		return
	}

	block, err := h.blockUC.Execute(c.Request.Context(), ucBlocked.BlockSlotInput{
		InstituteID: instituteID,
		UserID:      userID,
		Date:        req.Date,
		Time:        req.Time,
		AllDay:      req.AllDay,
		Reason:      req.Reason,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Date invalide.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Heure invalide.")
		case httperr.IsBusiness(err, "off_grid_time"):
			httperr.BadRequest(c, "off_grid_time", "L'heure doit tomber sur la grille de 30 minutes.")
		default:
			httperr.Internal(c, "failed_to_block_slot", "Erreur lors du blocage du créneau.")
		}
		return
	}

	c.JSON(201, block)
}

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	id := c.Param("id")
	if id == "" {
		httperr.BadRequest(c, "missing_id", "Identifiant obligatoire.")
		return
	}

	if err := h.unblockUC.Execute(c.Request.Context(), instituteID, userID, id); err != nil {
		if httperr.IsBusiness(err, "blocked_slot_not_found") {
			httperr.NotFound(c, "blocked_slot_not_found", "Blocage introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_unblock_slot", "Erreur lors du déblocage du créneau.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
