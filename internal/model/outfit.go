package model

import "time"

// Outfit is a named grouping of one user's clothing items. UserID is the
// user who sees it; CreatedByID is the author (the user themselves or their
// assigned stylist).
type Outfit struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"not null;index"`
	CreatedByID    uint       `json:"created_by_id" gorm:"not null;index"`
	Title          string     `json:"title" gorm:"size:255;not null"`
	StylistComment *string    `json:"stylist_comment,omitempty" gorm:"type:text"`
	Tips           *string    `json:"tips,omitempty" gorm:"type:text"`
	StylingAdvice  *string    `json:"styling_advice,omitempty" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	User      User           `json:"-" gorm:"foreignKey:UserID"`
	CreatedBy User           `json:"created_by" gorm:"foreignKey:CreatedByID"`
	Items     []ClothingItem `json:"items" gorm:"many2many:outfit_clothing_items;joinForeignKey:OutfitID;joinReferences:ClothingItemID"`
}

// OutfitClothingItem is the join row linking an outfit to one of its user's
// items. Rows are written explicitly alongside the outfit in one transaction.
type OutfitClothingItem struct {
	OutfitID       uint `gorm:"primaryKey"`
	ClothingItemID uint `gorm:"primaryKey"`
}
