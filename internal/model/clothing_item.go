package model

import "time"

// ItemCategory classifies a clothing item.
type ItemCategory string

const (
	CategoryTops        ItemCategory = "TOPS"
	CategoryBottoms     ItemCategory = "BOTTOMS"
	CategoryShoes       ItemCategory = "SHOES"
	CategoryAccessories ItemCategory = "ACCESSORIES"
	CategoryOuterwear   ItemCategory = "OUTERWEAR"
)

// Valid reports whether the category is a known enum member.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryShoes, CategoryAccessories, CategoryOuterwear:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of a clothing item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "ACTIVE"
	ItemStatusInactive ItemStatus = "INACTIVE"
	ItemStatusRoomwear ItemStatus = "ROOMWEAR"
	// ItemStatusDisposed is terminal. The row is kept for audit and never
	// surfaced in default listings.
	ItemStatusDisposed ItemStatus = "DISPOSED"
)

// Valid reports whether the status is a known enum member.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusActive, ItemStatusInactive, ItemStatusRoomwear, ItemStatusDisposed:
		return true
	}
	return false
}

// ItemAction is a caller-invoked named transition on an item.
type ItemAction string

const (
	ActionMarkUnnecessary ItemAction = "mark_unnecessary"
	ActionMarkActive      ItemAction = "mark_active"
	ActionMarkRoomwear    ItemAction = "mark_roomwear"
	ActionDelete          ItemAction = "delete"
)

// TargetStatus resolves an action to the status it requests. The second
// return is false for unrecognized actions.
func (a ItemAction) TargetStatus() (ItemStatus, bool) {
	switch a {
	case ActionMarkUnnecessary:
		return ItemStatusInactive, true
	case ActionMarkActive:
		return ItemStatusActive, true
	case ActionMarkRoomwear:
		return ItemStatusRoomwear, true
	case ActionDelete:
		return ItemStatusDisposed, true
	}
	return "", false
}

// itemTransitions is the reachability table for item statuses. DISPOSED has
// no outgoing edges; ROOMWEAR can only go back to ACTIVE.
var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusActive:   {ItemStatusInactive, ItemStatusDisposed},
	ItemStatusInactive: {ItemStatusActive, ItemStatusRoomwear, ItemStatusDisposed},
	ItemStatusRoomwear: {ItemStatusActive},
	ItemStatusDisposed: {},
}

// CanTransition reports whether to is reachable from from in one step.
func (s ItemStatus) CanTransition(to ItemStatus) bool {
	for _, next := range itemTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ClothingItem belongs to exactly one user; UserID is immutable after
// creation. Stylists evaluate items but never mutate them.
type ClothingItem struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"not null;index"`
	ImageURL     string       `json:"image_url" gorm:"size:512;not null"`
	Category     ItemCategory `json:"category" gorm:"size:20;not null;index"`
	Color        string       `json:"color" gorm:"size:50;not null"`
	Brand        *string      `json:"brand,omitempty" gorm:"size:255"`
	Description  *string      `json:"description,omitempty" gorm:"type:text"`
	PurchaseDate *time.Time   `json:"purchase_date,omitempty"`
	Status       ItemStatus   `json:"status" gorm:"size:20;not null;default:'ACTIVE';index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
