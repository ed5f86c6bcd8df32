package punch

import (
	"context"

	"garage/backend/internal/entity"
	"garage/backend/internal/repository/postgres/punch"
)

type Punch interface {
	GetById(ctx context.Context, id int) (entity.Punch, error)
	GetList(ctx context.Context, filter punch.Filter) ([]punch.GetListResponse, int, error)
	GetActiveByMechanic(ctx context.Context, mechanicName string) (punch.GetActiveResponse, error)
	PayrollSummary(ctx context.Context, filter punch.SummaryFilter) ([]punch.PayrollSummaryResponse, error)

	ClockIn(ctx context.Context, request punch.ClockInRequest) (punch.PunchResponse, error)
	Pause(ctx context.Context, request punch.PauseRequest) (punch.PunchResponse, error)
	Resume(ctx context.Context, id int) (punch.PunchResponse, error)
	ClockOut(ctx context.Context, request punch.ClockOutRequest) (punch.PunchResponse, error)
	EditTimes(ctx context.Context, request punch.EditTimesRequest) (punch.PunchResponse, error)
	Delete(ctx context.Context, id int) error
	ResetHours(ctx context.Context, mechanicName string) (float64, error)
	ResetAllHours(ctx context.Context) (map[string]float64, error)
}
