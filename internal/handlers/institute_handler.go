package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
	"github.com/InstitutAurelia/institute-scheduler/internal/timezone"
)

type InstituteHandler struct {
	db *gorm.DB
}

func NewInstituteHandler(db *gorm.DB) *InstituteHandler {
	return &InstituteHandler{db: db}
}

type UpdateInstituteRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

func (h *InstituteHandler) GetMeInstitute(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	var institute models.Institute
	if err := h.db.First(&institute, instituteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "institute_not_found"})
		return
	}

	c.JSON(http.StatusOK, institute)
}

func (h *InstituteHandler) UpdateMeInstitute(c *gin.Context) {
	instituteID := c.MustGet(middleware.ContextInstituteID).(uint)

	var institute models.Institute
	if err := h.db.First(&institute, instituteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "institute_not_found"})
		return
	}

	var req UpdateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		institute.Name = *req.Name
	}
	if req.Phone != nil {
		institute.Phone = *req.Phone
	}
	if req.Address != nil {
		institute.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		institute.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_min_advance"})
			return
		}
		institute.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&institute).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_institute"})
		return
	}

	c.JSON(http.StatusOK, institute)
}
