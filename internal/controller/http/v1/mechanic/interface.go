package mechanic

import (
	"context"

	"garage/backend/internal/entity"
	"garage/backend/internal/repository/postgres/mechanic"
)

type Mechanic interface {
	GetByName(ctx context.Context, name string) (entity.Mechanic, error)
	GetList(ctx context.Context) ([]mechanic.GetListResponse, error)
	Leaderboard(ctx context.Context) ([]mechanic.LeaderboardResponse, error)
	UpdatePoints(ctx context.Context, request mechanic.UpdatePointsRequest) error
}
