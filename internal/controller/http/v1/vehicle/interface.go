package vehicle

import (
	"context"

	"garage/backend/internal/entity"
	"garage/backend/internal/repository/postgres/vehicle"
)

type Vehicle interface {
	GetById(ctx context.Context, id int) (entity.Vehicle, error)
	GetList(ctx context.Context, filter vehicle.Filter) ([]vehicle.GetListResponse, int, error)
	Totals(ctx context.Context, filter vehicle.TotalsFilter) ([]vehicle.TotalsResponse, error)

	Create(ctx context.Context, request vehicle.CreateRequest) (vehicle.CreateResponse, error)
	UpdateColumns(ctx context.Context, request vehicle.UpdateRequest) error
	Move(ctx context.Context, request vehicle.MoveRequest) error
	Delete(ctx context.Context, id int) error
}
