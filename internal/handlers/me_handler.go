package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Institute").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"phone":        user.Phone,
		"role":         user.Role,
		"institute_id": user.InstituteID,
		"institute": gin.H{
			"id":       user.Institute.ID,
			"name":     user.Institute.Name,
			"slug":     user.Institute.Slug,
			"timezone": user.Institute.Timezone,
		},
	})
}
