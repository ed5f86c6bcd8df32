package vehicle

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
	Search *string
}

type GetListResponse struct {
	ID           int     `json:"id"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	LicensePlate *string `json:"license_plate"`
	Status       *string `json:"status"`
	SortOrder    *int    `json:"sort_order"`
	Notes        *string `json:"notes,omitempty"`
}

type CreateRequest struct {
	Brand        *string `json:"brand" form:"brand"`
	Model        *string `json:"model" form:"model"`
	Year         *int    `json:"year" form:"year"`
	LicensePlate *string `json:"license_plate" form:"license_plate"`
	Notes        *string `json:"notes" form:"notes"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:vehicles"`

	ID           int       `json:"id" bun:"-"`
	Brand        *string   `json:"brand" bun:"brand"`
	Model        *string   `json:"model" bun:"model"`
	Year         *int      `json:"year" bun:"year"`
	LicensePlate *string   `json:"license_plate" bun:"license_plate"`
	Status       string    `json:"status" bun:"status"`
	SortOrder    int       `json:"sort_order" bun:"sort_order"`
	Notes        *string   `json:"notes" bun:"notes"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	Brand        *string `json:"brand" form:"brand"`
	Model        *string `json:"model" form:"model"`
	Year         *int    `json:"year" form:"year"`
	LicensePlate *string `json:"license_plate" form:"license_plate"`
	Status       *string `json:"status" form:"status"`
	Notes        *string `json:"notes" form:"notes"`
}

type MoveRequest struct {
	ID        int     `json:"id" form:"id"`
	Direction *string `json:"direction" form:"direction"`
}

type TotalsFilter struct {
	StartDate *string
	EndDate   *string
}

type TotalsResponse struct {
	VehicleID  int     `json:"vehicle_id"`
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	Mechanics  int     `json:"mechanics"`
	Sessions   int     `json:"sessions"`
	TotalHours float64 `json:"total_hours"`
}
