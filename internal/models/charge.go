package models

import (
	"time"
)

// Charge records hours worked on a project on a calendar date. A project can
// be charged at most once per date, enforced by the composite unique index.
type Charge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	User        uint      `json:"user" gorm:"not null;index"`
	Project     uint      `json:"project" gorm:"not null;uniqueIndex:idx_charges_project_date"`
	Hours       int       `json:"hours" gorm:"not null"`
	DateCharged Date      `json:"date_charged" gorm:"not null;uniqueIndex:idx_charges_project_date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// NewCharge is one proposed charge in a batch create. Pointer fields
// distinguish missing values from zero values during validation.
type NewCharge struct {
	Hours       *int    `json:"hours"`
	Project     *uint   `json:"project"`
	DateCharged *string `json:"date_charged"`
}

// ChargeUpdate is one entry in a batch update.
type ChargeUpdate struct {
	ID    *uint `json:"id"`
	Hours *int  `json:"hours"`
}

// DateRange bounds a charge query. Both ends are required when the range is
// present at all.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// GetChargesRequest is the (optional) body for GET /charges/.
type GetChargesRequest struct {
	DateRange *DateRange `json:"date_range"`
}

// CreateChargesRequest is the payload for POST /charges/create.
type CreateChargesRequest struct {
	Charges []NewCharge `json:"charges"`
}

// UpdateChargesRequest is the payload for PUT /charges/update.
type UpdateChargesRequest struct {
	Charges []ChargeUpdate `json:"charges"`
}

// DeleteChargesRequest is the payload for DELETE /charges/delete.
type DeleteChargesRequest struct {
	IDs []uint `json:"ids"`
}
