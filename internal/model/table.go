package model

// Table represents a physical table in the bar.
type Table struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TableNumber string `json:"table_number" gorm:"uniqueIndex;size:50;not null"`
	Capacity    int    `json:"capacity" gorm:"not null"`
	IsAvailable bool   `json:"is_available" gorm:"default:true"`
	Location    string `json:"location,omitempty" gorm:"size:100"` // e.g. "indoor", "terrace"

	// Relations
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:TableID"`
}
