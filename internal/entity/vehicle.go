package entity

import (
	"github.com/uptrace/bun"
)

type Vehicle struct {
	bun.BaseModel `bun:"table:vehicles"`

	BasicEntity
	Brand        *string `json:"brand" bun:"brand"`
	Model        *string `json:"model" bun:"model"`
	Year         *int    `json:"year" bun:"year"`
	LicensePlate *string `json:"license_plate" bun:"license_plate"`
	Status       *string `json:"status" bun:"status"`
	SortOrder    *int    `json:"sort_order" bun:"sort_order"`
	Notes        *string `json:"notes" bun:"notes"`
}
