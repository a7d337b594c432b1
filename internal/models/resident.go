package models

import "time"

// Resident represents a student living in the housing system.
// RoomID is nullable; a nil value means the resident is unhoused.
type Resident struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	RoomID    *uint     `gorm:"index" json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Resident model
func (Resident) TableName() string {
	return "residents"
}

// ResidentResponse is the external representation of a resident.
// RoomNumber is derived from the assigned room and never accepted as input.
type ResidentResponse struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	RoomID     *uint  `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
}

// Response converts a resident (with Room preloaded when assigned) into the
// external representation
func (r *Resident) Response() ResidentResponse {
	resp := ResidentResponse{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		RoomID:    r.RoomID,
	}
	if r.Room != nil {
		resp.RoomNumber = r.Room.RoomNumber
	}
	return resp
}
