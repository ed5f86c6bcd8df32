package vehicle

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/auth"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := ` WHERE v.deleted_at IS NULL`
	if filter.Status != nil {
		whereQuery += fmt.Sprintf(` AND v.status = '%s'`, escape(*filter.Status))
	}
	if filter.Search != nil {
		search := escape(*filter.Search)
		whereQuery += fmt.Sprintf(` AND (v.brand ILIKE '%s' OR v.model ILIKE '%s' OR v.license_plate ILIKE '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	orderQuery := ` ORDER BY v.sort_order, v.id`

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			v.id,
			v.brand,
			v.model,
			v.year,
			v.license_plate,
			v.status,
			v.sort_order,
			v.notes
		FROM vehicles v
	%s %s %s %s`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting vehicles"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Brand,
			&detail.Model,
			&detail.Year,
			&detail.LicensePlate,
			&detail.Status,
			&detail.SortOrder,
			&detail.Notes,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning vehicle list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(v.id) FROM vehicles v %s`, whereQuery)
	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting vehicles"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Vehicle, error) {
	var detail entity.Vehicle
	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Vehicle{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Vehicle{}, web.NewRequestError(errors.Wrap(err, "selecting vehicle"), http.StatusInternalServerError)
	}
	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}
	if err := r.ValidateStruct(&request, "Brand", "Model"); err != nil {
		return CreateResponse{}, err
	}

	if request.LicensePlate != nil {
		plateUsed := true
		if err := r.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT CASE WHEN
				(SELECT id FROM vehicles WHERE license_plate = '%s' AND deleted_at IS NULL) IS NOT NULL
			THEN true ELSE false END`, escape(*request.LicensePlate))).Scan(&plateUsed); err != nil {
			return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "license plate check"), http.StatusInternalServerError)
		}
		if plateUsed {
			return CreateResponse{}, web.NewRequestError(postgres.ErrAlreadyExists, http.StatusBadRequest)
		}
	}

	var nextOrder int
	if err := r.QueryRowContext(ctx,
		`SELECT COALESCE(max(sort_order), 0) + 1 FROM vehicles WHERE deleted_at IS NULL`).Scan(&nextOrder); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "next sort order"), http.StatusInternalServerError)
	}

	var response CreateResponse
	response.Brand = request.Brand
	response.Model = request.Model
	response.Year = request.Year
	response.LicensePlate = request.LicensePlate
	response.Status = "in_queue"
	response.SortOrder = nextOrder
	response.Notes = request.Notes
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating vehicle"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("vehicles").Where("deleted_at IS NULL AND id = ?", request.ID)
	if request.Brand != nil {
		q.Set("brand = ?", request.Brand)
	}
	if request.Model != nil {
		q.Set("model = ?", request.Model)
	}
	if request.Year != nil {
		q.Set("year = ?", request.Year)
	}
	if request.LicensePlate != nil {
		q.Set("license_plate = ?", request.LicensePlate)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	if request.Notes != nil {
		q.Set("notes = ?", request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating vehicle"), http.StatusBadRequest)
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

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "vehicles", id)
}

// Move swaps the vehicle's board position with its neighbor in the given
// direction. A move past either edge is a no-op.
func (r Repository) Move(ctx context.Context, request MoveRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Direction"); err != nil {
		return err
	}
	direction := *request.Direction
	if direction != "up" && direction != "down" {
		return web.NewRequestError(errors.New("direction must be up or down"), http.StatusBadRequest)
	}

	now := time.Now()

	return r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var order int
		err := tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT sort_order FROM vehicles WHERE id = %d AND deleted_at IS NULL FOR UPDATE`,
			request.ID)).Scan(&order)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting vehicle"), http.StatusInternalServerError)
		}

		comparator, ordering := "<", "DESC"
		if direction == "down" {
			comparator, ordering = ">", "ASC"
		}

		var neighborID, neighborOrder int
		err = tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT id, sort_order FROM vehicles
			WHERE deleted_at IS NULL AND sort_order %s %d
			ORDER BY sort_order %s
			LIMIT 1
			FOR UPDATE`, comparator, order, ordering)).Scan(&neighborID, &neighborOrder)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting neighbor"), http.StatusInternalServerError)
		}

		_, err = tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE vehicles SET sort_order = %d, updated_at = '%s' WHERE id = %d`,
			neighborOrder, now.Format(time.RFC3339Nano), request.ID))
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "moving vehicle"), http.StatusBadRequest)
		}
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE vehicles SET sort_order = %d, updated_at = '%s' WHERE id = %d`,
			order, now.Format(time.RFC3339Nano), neighborID))
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "moving neighbor"), http.StatusBadRequest)
		}
		return nil
	})
}

// Totals reports labor accumulated per vehicle since the shop-wide vehicle
// reset, from closed non-payment sessions.
func (r Repository) Totals(ctx context.Context, filter TotalsFilter) ([]TotalsResponse, error) {
	whereQuery := `
		WHERE ws.end_time IS NOT NULL
		  AND ws.is_payment = false
		  AND ws.deleted_at IS NULL
		  AND ws.vehicle_id IS NOT NULL
		  AND ws.start_time >= COALESCE((SELECT vehicle_hours_reset_at FROM shop_info LIMIT 1), '-infinity')`
	if filter.StartDate != nil {
		whereQuery += fmt.Sprintf(` AND DATE(ws.start_time) >= '%s'`, escape(*filter.StartDate))
	}
	if filter.EndDate != nil {
		whereQuery += fmt.Sprintf(` AND DATE(ws.start_time) <= '%s'`, escape(*filter.EndDate))
	}

	query := fmt.Sprintf(`
		SELECT
			ws.vehicle_id,
			v.brand,
			v.model,
			v.year,
			count(DISTINCT ws.mechanic_name) FILTER (WHERE ws.punch_id IS NOT NULL),
			count(ws.id),
			COALESCE(sum(ws.total_hours), 0)
		FROM work_sessions ws
		JOIN vehicles v ON v.id = ws.vehicle_id
	%s
		GROUP BY ws.vehicle_id, v.brand, v.model, v.year
		ORDER BY sum(ws.total_hours) DESC`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting vehicle totals"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]TotalsResponse, 0)
	for rows.Next() {
		var detail TotalsResponse
		if err = rows.Scan(
			&detail.VehicleID,
			&detail.Brand,
			&detail.Model,
			&detail.Year,
			&detail.Mechanics,
			&detail.Sessions,
			&detail.TotalHours,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning vehicle totals"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	return list, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
