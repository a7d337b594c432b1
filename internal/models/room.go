package models

import "time"

// Room represents a room within a building, including its capacity and occupancy flag.
// IsOccupied is a derived flag kept in sync by the service layer whenever a
// resident-room association changes.
type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BuildingID uint      `gorm:"not null;index" json:"building_id"`
	RoomNumber string    `gorm:"size:10;not null" json:"room_number"`
	Capacity   int       `gorm:"not null" json:"capacity"`
	IsOccupied bool      `gorm:"default:false" json:"is_occupied"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Building            Building             `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Residents           []Resident           `gorm:"foreignKey:RoomID;constraint:OnDelete:SET NULL" json:"residents,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"maintenance_requests,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// RoomResponse is the external representation of a room.
// BuildingName and IsAtCapacity are derived read-only fields computed from
// current store state on every read; they are never accepted as input.
type RoomResponse struct {
	ID           uint   `json:"id"`
	RoomNumber   string `json:"room_number"`
	BuildingID   uint   `json:"building_id"`
	BuildingName string `json:"building_name"`
	Capacity     int    `json:"capacity"`
	IsOccupied   bool   `json:"is_occupied"`
	IsAtCapacity bool   `json:"is_at_capacity"`
}

// RoomWithStats carries a room plus the aggregates needed for its response
type RoomWithStats struct {
	Room
	BuildingName  string `json:"building_name"`
	ResidentCount int    `json:"resident_count"`
}

// Response converts the aggregated row into the external representation
func (r *RoomWithStats) Response() RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		RoomNumber:   r.RoomNumber,
		BuildingID:   r.BuildingID,
		BuildingName: r.BuildingName,
		Capacity:     r.Capacity,
		IsOccupied:   r.IsOccupied,
		IsAtCapacity: r.ResidentCount >= r.Capacity,
	}
}
