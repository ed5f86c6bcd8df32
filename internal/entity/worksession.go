package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// WorkSession is one contiguous interval a mechanic spent on a vehicle,
// owned by a punch except for admin hour adjustments, which carry no punch.
// IsPayment marks the synthetic record written when a mechanic's hours are
// reset (paid out); payment rows never count toward hour aggregates.
type WorkSession struct {
	bun.BaseModel `bun:"table:work_sessions"`

	BasicEntity
	PunchID      *int       `json:"punch_id" bun:"punch_id"`
	VehicleID    *int       `json:"vehicle_id" bun:"vehicle_id"`
	MechanicName *string    `json:"mechanic_name" bun:"mechanic_name"`
	StartTime    *time.Time `json:"start_time" bun:"start_time"`
	EndTime      *time.Time `json:"end_time" bun:"end_time"`
	TotalHours   *float64   `json:"total_hours" bun:"total_hours"`
	Notes        *string    `json:"notes" bun:"notes"`
	IsPayment    *bool      `json:"is_payment" bun:"is_payment"`
}
