package shopinfo

import (
	"mime/multipart"
	"time"
)

type GetInfoResponse struct {
	ID                  int        `json:"id"`
	ShopName            *string    `json:"shop_name"`
	Logo                *string    `json:"logo,omitempty"`
	OpenTime            *string    `json:"open_time,omitempty"`
	CloseTime           *string    `json:"close_time,omitempty"`
	VehicleHoursResetAt *time.Time `json:"vehicle_hours_reset_at,omitempty"`
}

type UpdateRequest struct {
	ID        int                   `json:"id" form:"id"`
	ShopName  *string               `json:"shop_name" form:"shop_name"`
	Logo      *multipart.FileHeader `json:"-" form:"logo"`
	LogoURL   *string               `json:"-" form:"-"`
	OpenTime  *string               `json:"open_time" form:"open_time"`
	CloseTime *string               `json:"close_time" form:"close_time"`
}
