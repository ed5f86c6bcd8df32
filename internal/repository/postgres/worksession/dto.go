package worksession

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit        *int
	Offset       *int
	Page         *int
	MechanicName *string
	VehicleID    *int
	Date         *string
}

type GetListResponse struct {
	ID           int        `json:"id"`
	PunchID      *int       `json:"punch_id"`
	VehicleID    *int       `json:"vehicle_id"`
	Brand        *string    `json:"brand"`
	Model        *string    `json:"model"`
	Year         *int       `json:"year"`
	MechanicName *string    `json:"mechanic_name"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	TotalHours   *float64   `json:"total_hours,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	IsPayment    *bool      `json:"is_payment"`
}

type SessionResponse struct {
	ID           int        `json:"id"`
	PunchID      *int       `json:"punch_id"`
	VehicleID    *int       `json:"vehicle_id"`
	MechanicName string     `json:"mechanic_name"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	TotalHours   *float64   `json:"total_hours,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	ServerTime   time.Time  `json:"server_time"`
}

type GetActiveResponse struct {
	Active     bool             `json:"active"`
	Session    *SessionResponse `json:"session"`
	ServerTime time.Time        `json:"server_time"`
}

type StartRequest struct {
	PunchID   *int    `json:"punch_id" form:"punch_id"`
	VehicleID *int    `json:"vehicle_id" form:"vehicle_id"`
	Notes     *string `json:"notes" form:"notes"`
}

type EndRequest struct {
	ID         int      `json:"-"`
	TotalHours *float64 `json:"total_hours" form:"total_hours"`
	Notes      *string  `json:"notes" form:"notes"`
}

type EditHoursRequest struct {
	ID         int      `json:"-"`
	TotalHours *float64 `json:"total_hours" form:"total_hours"`
	Password   *string  `json:"password" form:"password"`
}

type TotalsFilter struct {
	StartDate *string
	EndDate   *string
}

type VehicleBreakdown struct {
	VehicleID  *int    `json:"vehicle_id"`
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	Sessions   int     `json:"sessions"`
	TotalHours float64 `json:"total_hours"`
}

type MechanicTotalsResponse struct {
	MechanicName string             `json:"mechanic_name"`
	TotalHours   float64            `json:"total_hours"`
	ResetAt      *time.Time         `json:"hours_reset_at,omitempty"`
	PerVehicle   []VehicleBreakdown `json:"per_vehicle"`
}

type ResetVehicleHoursRequest struct {
	Password *string `json:"password" form:"password"`
}

type AdjustVehicleHoursRequest struct {
	VehicleID  int      `json:"-"`
	TotalHours *float64 `json:"total_hours" form:"total_hours"`
	Password   *string  `json:"password" form:"password"`
}

// row is the insert/update model for the work_sessions table.
type row struct {
	bun.BaseModel `bun:"table:work_sessions"`

	ID           int        `bun:"id,pk,autoincrement"`
	PunchID      *int       `bun:"punch_id"`
	VehicleID    *int       `bun:"vehicle_id"`
	MechanicName string     `bun:"mechanic_name"`
	StartTime    time.Time  `bun:"start_time"`
	EndTime      *time.Time `bun:"end_time"`
	TotalHours   *float64   `bun:"total_hours"`
	Notes        *string    `bun:"notes"`
	IsPayment    bool       `bun:"is_payment"`
	CreatedAt    time.Time  `bun:"created_at"`
}
