package model

import "time"

// Promotion represents a time-bounded promotional offer.
type Promotion struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:255;not null"`
	Description        string    `json:"description,omitempty" gorm:"size:500"`
	StartDate          time.Time `json:"start_date" gorm:"not null"`
	EndDate            time.Time `json:"end_date" gorm:"not null"`
	DiscountPercentage int       `json:"discount_percentage,omitempty"`
	Code               string    `json:"code,omitempty" gorm:"uniqueIndex;size:100"`
}
