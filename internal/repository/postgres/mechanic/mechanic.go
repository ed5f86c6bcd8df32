package mechanic

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
	adminPasswordHash string
}

func NewRepository(database *postgresql.Database, adminPasswordHash string) *Repository {
	return &Repository{Database: database, adminPasswordHash: adminPasswordHash}
}

// GetList returns the roster the shop tablet shows. The roster is seeded by
// migration and rarely changes, so there is no pagination.
func (r Repository) GetList(ctx context.Context) ([]GetListResponse, error) {
	query := `
		SELECT
			id,
			name,
			total_points,
			hours_reset_at
		FROM mechanics
		WHERE deleted_at IS NULL
		ORDER BY name`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting mechanics"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.TotalPoints,
			&detail.HoursResetAt,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning mechanic list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) GetByName(ctx context.Context, name string) (entity.Mechanic, error) {
	var detail entity.Mechanic
	err := r.NewSelect().Model(&detail).
		Where("name = ? AND deleted_at IS NULL", name).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Mechanic{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Mechanic{}, web.NewRequestError(errors.Wrap(err, "selecting mechanic"), http.StatusInternalServerError)
	}
	return detail, nil
}

func (r Repository) Leaderboard(ctx context.Context) ([]LeaderboardResponse, error) {
	query := `
		SELECT
			name,
			total_points
		FROM mechanics
		WHERE deleted_at IS NULL
		ORDER BY total_points DESC, name`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leaderboard"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]LeaderboardResponse, 0)
	for rows.Next() {
		var detail LeaderboardResponse
		if err = rows.Scan(&detail.Name, &detail.TotalPoints); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning leaderboard"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) UpdatePoints(ctx context.Context, request UpdatePointsRequest) error {
	if err := r.ValidateStruct(&request, "Name", "Password"); err != nil {
		return err
	}
	if request.TotalPoints == nil {
		return web.NewRequestError(errors.New("field TotalPoints is required"), http.StatusBadRequest)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(r.adminPasswordHash), []byte(*request.Password)); err != nil {
		return web.NewRequestError(errors.New("incorrect admin password"), http.StatusUnauthorized)
	}

	result, err := r.NewUpdate().Table("mechanics").
		Where("deleted_at IS NULL AND name = ?", request.Name).
		Set("total_points = ?", request.TotalPoints).
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating points"), http.StatusBadRequest)
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
