package model

import "time"

// EvaluationVerdict is a stylist's verdict on a clothing item.
type EvaluationVerdict string

const (
	VerdictNecessary   EvaluationVerdict = "NECESSARY"
	VerdictUnnecessary EvaluationVerdict = "UNNECESSARY"
	VerdictKeep        EvaluationVerdict = "KEEP"
)

// Valid reports whether the verdict is a known enum member.
func (v EvaluationVerdict) Valid() bool {
	return v == VerdictNecessary || v == VerdictUnnecessary || v == VerdictKeep
}

// ItemEvaluation records one stylist's verdict on one item. The composite
// unique index makes the one-row-per-(item, stylist) invariant a storage
// constraint so concurrent upserts cannot double-insert.
type ItemEvaluation struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	ItemID     uint              `json:"item_id" gorm:"not null;uniqueIndex:idx_item_stylist"`
	StylistID  uint              `json:"stylist_id" gorm:"not null;uniqueIndex:idx_item_stylist"`
	Evaluation EvaluationVerdict `json:"evaluation" gorm:"size:20;not null"`
	Comment    string            `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	// Relations
	Item    ClothingItem `json:"-" gorm:"foreignKey:ItemID"`
	Stylist User         `json:"-" gorm:"foreignKey:StylistID"`
}
