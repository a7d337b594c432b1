package models

import "time"

// RequestStatus is the lifecycle state of a maintenance request
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDING"
	StatusInProgress RequestStatus = "IN_PROGRESS"
	StatusCompleted  RequestStatus = "COMPLETED"
)

// Valid reports whether the status is one of the known values
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Display returns the human-readable label for the status
func (s RequestStatus) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// MaintenanceRequest represents a maintenance request filed against a room.
// Timestamps are server-assigned and immutable by callers.
type MaintenanceRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	RoomID      uint          `gorm:"not null;index" json:"room_id"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      RequestStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for MaintenanceRequest model
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// MaintenanceRequestResponse is the external representation of a request.
// RoomNumber and StatusDisplay are derived read-only fields.
type MaintenanceRequestResponse struct {
	ID            uint      `json:"id"`
	RoomID        uint      `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Response converts a request (with Room preloaded) into the external representation
func (m *MaintenanceRequest) Response() MaintenanceRequestResponse {
	return MaintenanceRequestResponse{
		ID:            m.ID,
		RoomID:        m.RoomID,
		RoomNumber:    m.Room.RoomNumber,
		Description:   m.Description,
		Status:        string(m.Status),
		StatusDisplay: m.Status.Display(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
