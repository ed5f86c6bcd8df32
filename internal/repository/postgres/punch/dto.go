package punch

import (
	"time"

	"garage/backend/internal/timeclock"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit        *int
	Offset       *int
	Page         *int
	MechanicName *string
	Status       *string
	Date         *string
}

type GetListResponse struct {
	ID            int        `json:"id"`
	MechanicName  *string    `json:"mechanic_name"`
	WorkDay       *date.Date `json:"work_day"`
	PunchIn       *time.Time `json:"punch_in"`
	PunchOut      *time.Time `json:"punch_out,omitempty"`
	Status        *string    `json:"status"`
	TotalHours    *float64   `json:"total_hours,omitempty"`
	PausedSeconds *int       `json:"paused_seconds"`
}

// PunchResponse is the full punch payload every mutation returns.
// ServerTime lets the client compute its clock offset once at clock-in; all
// worked-duration math stays server-side.
type PunchResponse struct {
	ID             int        `json:"id"`
	MechanicName   string     `json:"mechanic_name"`
	WorkDay        string     `json:"work_day"`
	PunchIn        time.Time  `json:"punch_in"`
	PunchOut       *time.Time `json:"punch_out,omitempty"`
	Status         string     `json:"status"`
	TotalHours     *float64   `json:"total_hours,omitempty"`
	PausedSeconds  int        `json:"paused_seconds"`
	PauseStartedAt *time.Time `json:"pause_started_at,omitempty"`
	PauseReason    *string    `json:"pause_reason,omitempty"`
	ServerTime     time.Time  `json:"server_time"`
}

type GetActiveResponse struct {
	Active     bool           `json:"active"`
	Punch      *PunchResponse `json:"punch"`
	ServerTime time.Time      `json:"server_time"`
}

type ClockInRequest struct {
	MechanicName *string `json:"mechanic_name" form:"mechanic_name"`
}

type PauseRequest struct {
	ID     int     `json:"-"`
	Reason *string `json:"reason" form:"reason"`
}

type ClockOutRequest struct {
	ID           int                           `json:"-"`
	Distribution []timeclock.DistributionEntry `json:"distribution" form:"distribution"`
}

type EditTimesRequest struct {
	ID       int     `json:"-"`
	PunchIn  *string `json:"punch_in" form:"punch_in"`
	PunchOut *string `json:"punch_out" form:"punch_out"`
	Password *string `json:"password" form:"password"`
}

type SummaryFilter struct {
	StartDate *string
	EndDate   *string
}

type PayrollSummaryResponse struct {
	MechanicName string     `json:"mechanic_name"`
	TotalDays    int        `json:"total_days"`
	TotalHours   float64    `json:"total_hours"`
	AvgHours     float64    `json:"avg_hours_per_day"`
	MinHours     float64    `json:"min_hours"`
	MaxHours     float64    `json:"max_hours"`
	FirstDay     *date.Date `json:"first_day"`
	LastDay      *date.Date `json:"last_day"`
}

// row is the insert/update model for the punches table.
type row struct {
	bun.BaseModel `bun:"table:punches"`

	ID             int        `bun:"id,pk,autoincrement"`
	MechanicName   string     `bun:"mechanic_name"`
	PunchIn        time.Time  `bun:"punch_in"`
	PunchOut       *time.Time `bun:"punch_out"`
	WorkDay        string     `bun:"work_day"`
	Status         string     `bun:"status"`
	TotalHours     *float64   `bun:"total_hours"`
	PausedSeconds  int        `bun:"paused_seconds"`
	PauseStartedAt *time.Time `bun:"pause_started_at"`
	PauseReason    *string    `bun:"pause_reason"`
	CreatedAt      time.Time  `bun:"created_at"`
}
