package shopinfo

import (
	"context"

	"garage/backend/internal/repository/postgres/shopinfo"
)

type ShopInfo interface {
	GetInfo(ctx context.Context) (shopinfo.GetInfoResponse, error)
	UpdateColumns(ctx context.Context, request shopinfo.UpdateRequest) error
}
