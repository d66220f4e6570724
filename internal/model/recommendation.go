package model

import "time"

// RecommendationPriority orders purchase recommendations for the user.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "HIGH"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityLow    RecommendationPriority = "LOW"
)

// Valid reports whether the priority is a known enum member.
func (p RecommendationPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// RecommendationStatus is the user-controlled acknowledgment state.
type RecommendationStatus string

const (
	RecommendationPending   RecommendationStatus = "PENDING"
	RecommendationViewed    RecommendationStatus = "VIEWED"
	RecommendationPurchased RecommendationStatus = "PURCHASED"
	RecommendationDeclined  RecommendationStatus = "DECLINED"
)

// Valid reports whether the status is a known enum member.
func (s RecommendationStatus) Valid() bool {
	switch s {
	case RecommendationPending, RecommendationViewed, RecommendationPurchased, RecommendationDeclined:
		return true
	}
	return false
}

// recommendationTransitions is the reachability table for the user-driven
// status machine. PURCHASED and DECLINED are terminal; only a stylist edit
// reopens them, by force-resetting to PENDING.
var recommendationTransitions = map[RecommendationStatus][]RecommendationStatus{
	RecommendationPending:   {RecommendationViewed, RecommendationPurchased, RecommendationDeclined},
	RecommendationViewed:    {RecommendationPurchased, RecommendationDeclined},
	RecommendationPurchased: {},
	RecommendationDeclined:  {},
}

// CanTransition reports whether to is reachable from s via a user action.
func (s RecommendationStatus) CanTransition(to RecommendationStatus) bool {
	for _, next := range recommendationTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// PurchaseRecommendation is a stylist-issued suggestion for a target user.
// DeclineReason is set only while Status is DECLINED and cleared whenever
// the status moves anywhere else (including the edit-forced PENDING reset).
type PurchaseRecommendation struct {
	ID            uint                   `json:"id" gorm:"primaryKey"`
	UserID        uint                   `json:"user_id" gorm:"not null;index"`
	StylistID     uint                   `json:"stylist_id" gorm:"not null;index"`
	ItemType      string                 `json:"item_type" gorm:"size:100;not null"`
	Description   string                 `json:"description" gorm:"type:text;not null"`
	Reason        string                 `json:"reason" gorm:"type:text;not null"`
	ProductURL    *string                `json:"product_url,omitempty" gorm:"size:512"`
	Priority      RecommendationPriority `json:"priority" gorm:"size:10;not null;default:'MEDIUM'"`
	Status        RecommendationStatus   `json:"status" gorm:"size:10;not null;default:'PENDING';index"`
	DeclineReason *string                `json:"decline_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`

	// Relations
	User    User `json:"-" gorm:"foreignKey:UserID"`
	Stylist User `json:"-" gorm:"foreignKey:StylistID"`
}
