package mechanic

import "time"

type GetListResponse struct {
	ID           int        `json:"id"`
	Name         *string    `json:"name"`
	TotalPoints  *int       `json:"total_points"`
	HoursResetAt *time.Time `json:"hours_reset_at,omitempty"`
}

type LeaderboardResponse struct {
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
}

type UpdatePointsRequest struct {
	Name        string  `json:"-"`
	TotalPoints *int    `json:"total_points" form:"total_points"`
	Password    *string `json:"password" form:"password"`
}
