package models

import "time"

// Building represents a residential building in the housing system
type Building struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	TotalRooms int       `gorm:"not null" json:"total_rooms"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Deleting a building removes all of its rooms
	Rooms []Room `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

// TableName specifies the table name for Building model
func (Building) TableName() string {
	return "buildings"
}
