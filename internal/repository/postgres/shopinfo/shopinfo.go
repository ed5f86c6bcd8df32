package shopinfo

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/auth"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetInfo returns the single shop settings row seeded by migration.
func (r Repository) GetInfo(ctx context.Context) (GetInfoResponse, error) {
	var detail entity.ShopInfo
	err := r.NewSelect().Model(&detail).
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetInfoResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetInfoResponse{}, web.NewRequestError(errors.Wrap(err, "selecting shop info"), http.StatusInternalServerError)
	}

	return GetInfoResponse{
		ID:                  detail.ID,
		ShopName:            detail.ShopName,
		Logo:                detail.Url,
		OpenTime:            detail.OpenTime,
		CloseTime:           detail.CloseTime,
		VehicleHoursResetAt: detail.VehicleHoursResetAt,
	}, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("shop_info").Where("deleted_at IS NULL AND id = ?", request.ID)
	if request.ShopName != nil {
		q.Set("shop_name = ?", request.ShopName)
	}
	if request.LogoURL != nil {
		q.Set("url = ?", request.LogoURL)
	}
	if request.OpenTime != nil {
		q.Set("open_time = ?", request.OpenTime)
	}
	if request.CloseTime != nil {
		q.Set("close_time = ?", request.CloseTime)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating shop info"), http.StatusBadRequest)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}
