package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// ShopInfo is the single-row shop configuration. VehicleHoursResetAt is the
// shop-wide reset boundary for per-vehicle hour totals. Url points at the
// uploaded logo under statics/.
type ShopInfo struct {
	bun.BaseModel `bun:"table:shop_info"`

	BasicEntity
	ShopName            *string    `json:"shop_name" bun:"shop_name"`
	Url                 *string    `json:"url" bun:"url"`
	OpenTime            *string    `json:"open_time" bun:"open_time"`
	CloseTime           *string    `json:"close_time" bun:"close_time"`
	VehicleHoursResetAt *time.Time `json:"vehicle_hours_reset_at" bun:"vehicle_hours_reset_at"`
}
