package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Créneau bloqué manuellement depuis le planning. AllDay bloque la
// journée entière, sinon Time désigne une cellule de 30 minutes.
// Les doublons sont tolérés (le toggle reste idempotent).
type BlockedSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InstituteID uint      `gorm:"index" json:"institute_id"`

	Date   string `gorm:"size:10;index;not null" json:"date"`
	Time   string `gorm:"size:5" json:"time,omitempty"`
	AllDay bool   `gorm:"default:false" json:"all_day"`
	Reason string `gorm:"size:255" json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *BlockedSlot) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
