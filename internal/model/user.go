package model

import "time"

// Role distinguishes regular users from stylists.
type Role string

const (
	// RoleUser is a regular user who owns a wardrobe.
	RoleUser Role = "USER"
	// RoleStylist is a privileged user managing assigned users' wardrobes.
	RoleStylist Role = "STYLIST"
)

// Valid reports whether the role is one of the two known variants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleStylist
}

// User represents an account in the system. A USER may be linked to at most
// one stylist via AssignedStylistID; a STYLIST never has the field set.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash      string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name              string    `json:"name" gorm:"size:255;not null"`
	Role              Role      `json:"role" gorm:"size:20;not null;default:'USER';index"`
	AssignedStylistID *uint     `json:"assigned_stylist_id,omitempty" gorm:"index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	AssignedStylist *User        `json:"-" gorm:"foreignKey:AssignedStylistID"`
	Profile         *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// Summary is the representation embedded in responses that reference a user
// (outfit authors, dashboard rows) without leaking credentials.
type Summary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Summarize builds a Summary from a User.
func (u *User) Summarize() Summary {
	return Summary{ID: u.ID, Name: u.Name, Role: u.Role}
}
