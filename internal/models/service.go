package models

import "time"

// Soin du catalogue. PromoPrice, si présent, remplace Price à la facturation.
type Service struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	InstituteID uint `gorm:"index" json:"institute_id"`

	Slug        string `gorm:"size:100;index;not null" json:"slug"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	DurationMin int      `json:"duration"`
	Price       float64  `json:"price"`
	PromoPrice  *float64 `json:"promo_price,omitempty"`

	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillingPrice retourne le prix facturé (promo prioritaire).
func (s *Service) BillingPrice() float64 {
	if s.PromoPrice != nil {
		return *s.PromoPrice
	}
	return s.Price
}
