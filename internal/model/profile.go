package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile holds optional styling attributes, 1:1 with User. Created
// lazily on first save; registration tries to create an empty row but a
// failure there is non-fatal (see AuthService.Register).
type UserProfile struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	UserID          uint             `json:"user_id" gorm:"uniqueIndex;not null"`
	Height          *int             `json:"height,omitempty"`
	Weight          *int             `json:"weight,omitempty"`
	Age             *int             `json:"age,omitempty"`
	BodyType        *string          `json:"body_type,omitempty" gorm:"size:50"`
	PersonalColor   *string          `json:"personal_color,omitempty" gorm:"size:50"`
	ProfileImageURL *string          `json:"profile_image_url,omitempty" gorm:"size:512"`
	StylePreference *string          `json:"style_preference,omitempty" gorm:"size:255"`
	Concerns        *string          `json:"concerns,omitempty" gorm:"type:text"`
	Goals           *string          `json:"goals,omitempty" gorm:"type:text"`
	Budget          *decimal.Decimal `json:"budget,omitempty" gorm:"type:decimal(12,2)"`
	Lifestyle       *string          `json:"lifestyle,omitempty" gorm:"size:255"`
	IsPublic        bool             `json:"is_public" gorm:"default:false"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
