package model

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation links a user to a table at a point in time. Capacity and
// conflict checks are out of scope; this is a plain record.
type Reservation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	TableID         uint      `json:"table_id" gorm:"not null;index"`
	ReservationTime time.Time `json:"reservation_time" gorm:"not null"`
	NumGuests       int       `json:"num_guests" gorm:"not null"`
	Status          string    `json:"status" gorm:"size:50;default:'pending';not null"`
	SpecialRequests string    `json:"special_requests,omitempty" gorm:"size:500"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
