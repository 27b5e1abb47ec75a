package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InstituteID uint      `gorm:"index" json:"institute_id"`
	Institute   Institute `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"institute"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Date "2006-01-02" et heure "15:04", dans le fuseau de l'institut.
	// Format identique au JSON consommé par le planning.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	// Slugs des soins réservés. La durée explicite, si renseignée,
	// court-circuite le calcul depuis le catalogue.
	Services        []string `gorm:"serializer:json" json:"services"`
	ServiceName     string   `gorm:"size:255" json:"service_name"`
	ServiceDuration *int     `json:"service_duration,omitempty"`

	Status     string  `gorm:"size:20;default:'pending'" json:"status"`
	TotalPrice float64 `json:"total_price"`
	Notes      string  `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
