package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Punch is one mechanic's clock-in-to-clock-out shift. Status is kept in
// step with the nullable columns by the punch repository; timeclock.StatusOf
// is the single source of derivation.
type Punch struct {
	bun.BaseModel `bun:"table:punches"`

	BasicEntity
	MechanicName   *string    `json:"mechanic_name" bun:"mechanic_name"`
	PunchIn        *time.Time `json:"punch_in" bun:"punch_in"`
	PunchOut       *time.Time `json:"punch_out" bun:"punch_out"`
	WorkDay        *string    `json:"work_day" bun:"work_day"`
	Status         *string    `json:"status" bun:"status"`
	TotalHours     *float64   `json:"total_hours" bun:"total_hours"`
	PausedSeconds  *int       `json:"paused_seconds" bun:"paused_seconds"`
	PauseStartedAt *time.Time `json:"pause_started_at" bun:"pause_started_at"`
	PauseReason    *string    `json:"pause_reason" bun:"pause_reason"`
}
