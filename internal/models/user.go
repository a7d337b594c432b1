package models

import "time"

// Role is the account role gating access control decisions.
// The set is closed: every decision point must handle exactly these two
// values and reject anything else.
type Role string

const (
	RoleStudent       Role = "student"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdministrator
}

// User represents the users table.
// ResidentID is an explicit typed reference to the resident record backing a
// student account. It is linked at registration when a resident with the same
// email already exists, or lazily on the first my-room lookup.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:'student'" json:"role"`
	ResidentID   *uint     `gorm:"index" json:"resident_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Resident *Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:SET NULL" json:"resident,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
