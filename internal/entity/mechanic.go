package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Mechanic is one entry of the fixed shop roster. HoursResetAt is the
// payroll reset boundary: work sessions before it stop counting toward the
// live hour total.
type Mechanic struct {
	bun.BaseModel `bun:"table:mechanics"`

	BasicEntity
	Name         *string    `json:"name" bun:"name"`
	TotalPoints  *int       `json:"total_points" bun:"total_points"`
	HoursResetAt *time.Time `json:"hours_reset_at" bun:"hours_reset_at"`
}
