package worksession

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/repository/postgres"
	"garage/backend/internal/timeclock"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
	adminPasswordHash string
}

func NewRepository(database *postgresql.Database, adminPasswordHash string) *Repository {
	return &Repository{Database: database, adminPasswordHash: adminPasswordHash}
}

// Start opens a work session on a vehicle for the mechanic who owns the
// punch. One open session per mechanic, starting a second one is rejected
// until the first is ended.
func (r Repository) Start(ctx context.Context, request StartRequest) (SessionResponse, error) {
	if err := r.ValidateStruct(&request, "PunchID", "VehicleID"); err != nil {
		return SessionResponse{}, err
	}

	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var mechanicName, status string
		err := tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT mechanic_name, status FROM punches
			WHERE id = %d AND deleted_at IS NULL
			FOR UPDATE`, *request.PunchID)).Scan(&mechanicName, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(timeclock.ErrNoOpenPunch, http.StatusBadRequest)
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting punch"), http.StatusInternalServerError)
		}
		if status == string(timeclock.StatusCompleted) {
			return web.NewRequestError(timeclock.ErrNoOpenPunch, http.StatusBadRequest)
		}

		var exists bool
		err = tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT EXISTS (SELECT 1 FROM vehicles WHERE id = %d AND deleted_at IS NULL)`,
			*request.VehicleID)).Scan(&exists)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking vehicle"), http.StatusInternalServerError)
		}
		if !exists {
			return web.NewRequestError(errors.New("unknown vehicle"), http.StatusNotFound)
		}

		var openID int
		err = tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT id FROM work_sessions
			WHERE mechanic_name = '%s' AND end_time IS NULL AND deleted_at IS NULL
			LIMIT 1`, escape(mechanicName))).Scan(&openID)
		if err == nil {
			return web.NewRequestError(timeclock.ErrSessionAlreadyOpen, http.StatusBadRequest)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(errors.Wrap(err, "selecting open session"), http.StatusInternalServerError)
		}

		detail = row{
			PunchID:      request.PunchID,
			VehicleID:    request.VehicleID,
			MechanicName: mechanicName,
			StartTime:    now,
			Notes:        request.Notes,
			IsPayment:    false,
			CreatedAt:    now,
		}
		if _, err = tx.NewInsert().Model(&detail).Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "creating work session"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return toResponse(detail, now), nil
}

// End closes the session. Hours default to wall-clock elapsed time; a
// non-negative total_hours in the request overrides the computation.
func (r Repository) End(ctx context.Context, request EndRequest) (SessionResponse, error) {
	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockSession(ctx, tx, request.ID)
		if err != nil {
			return err
		}
		if detail.EndTime != nil {
			return web.NewRequestError(timeclock.ErrSessionAlreadyClosed, http.StatusBadRequest)
		}

		var total float64
		if request.TotalHours != nil {
			if *request.TotalHours < 0 {
				return web.NewRequestError(timeclock.ErrNegativeHours, http.StatusBadRequest)
			}
			total = *request.TotalHours
		} else {
			total = timeclock.Hours(now.Sub(detail.StartTime))
		}

		detail.EndTime = &now
		detail.TotalHours = &total
		if request.Notes != nil {
			detail.Notes = request.Notes
		}

		_, err = tx.NewUpdate().Model(&detail).
			Set("end_time = ?", detail.EndTime).
			Set("total_hours = ?", detail.TotalHours).
			Set("notes = ?", detail.Notes).
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "closing work session"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return toResponse(detail, now), nil
}

// EditHours rewrites a closed session's total. Admin password gated.
func (r Repository) EditHours(ctx context.Context, request EditHoursRequest) (SessionResponse, error) {
	if err := r.ValidateStruct(&request, "Password"); err != nil {
		return SessionResponse{}, err
	}
	if request.TotalHours == nil {
		return SessionResponse{}, web.NewRequestError(errors.New("field TotalHours is required"), http.StatusBadRequest)
	}
	if err := r.checkAdminPassword(*request.Password); err != nil {
		return SessionResponse{}, err
	}
	if *request.TotalHours < 0 {
		return SessionResponse{}, web.NewRequestError(timeclock.ErrNegativeHours, http.StatusBadRequest)
	}

	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockSession(ctx, tx, request.ID)
		if err != nil {
			return err
		}

		detail.TotalHours = request.TotalHours
		_, err = tx.NewUpdate().Model(&detail).
			Set("total_hours = ?", detail.TotalHours).
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "updating session hours"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return toResponse(detail, now), nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.WorkSession, error) {
	var detail entity.WorkSession
	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.WorkSession{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.WorkSession{}, web.NewRequestError(errors.Wrap(err, "selecting work session"), http.StatusInternalServerError)
	}
	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := ` WHERE ws.deleted_at IS NULL`
	if filter.MechanicName != nil {
		whereQuery += fmt.Sprintf(` AND ws.mechanic_name = '%s'`, escape(*filter.MechanicName))
	}
	if filter.VehicleID != nil {
		whereQuery += fmt.Sprintf(` AND ws.vehicle_id = %d`, *filter.VehicleID)
	}
	if filter.Date != nil {
		whereQuery += fmt.Sprintf(` AND DATE(ws.start_time) = '%s'`, escape(*filter.Date))
	}
	orderQuery := ` ORDER BY ws.start_time DESC`

	var limitQuery, offsetQuery string
	if filter.Page != nil {
		if filter.Limit == nil {
			filter.Limit = new(int)
			*filter.Limit = 10
		}
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
			ws.id,
			ws.punch_id,
			ws.vehicle_id,
			v.brand,
			v.model,
			v.year,
			ws.mechanic_name,
			ws.start_time,
			ws.end_time,
			ws.total_hours,
			ws.notes,
			ws.is_payment
		FROM work_sessions ws
		LEFT JOIN vehicles v ON v.id = ws.vehicle_id
	%s %s %s %s`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting work sessions"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.PunchID,
			&detail.VehicleID,
			&detail.Brand,
			&detail.Model,
			&detail.Year,
			&detail.MechanicName,
			&detail.StartTime,
			&detail.EndTime,
			&detail.TotalHours,
			&detail.Notes,
			&detail.IsPayment,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning session list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(ws.id) FROM work_sessions ws %s`, whereQuery)
	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting work sessions"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetActiveByMechanic(ctx context.Context, mechanicName string) (GetActiveResponse, error) {
	now := time.Now()

	var detail row
	err := r.NewSelect().Model(&detail).
		Where("mechanic_name = ? AND end_time IS NULL AND deleted_at IS NULL", mechanicName).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetActiveResponse{Active: false, ServerTime: now}, nil
	}
	if err != nil {
		return GetActiveResponse{}, web.NewRequestError(errors.Wrap(err, "selecting active session"), http.StatusInternalServerError)
	}

	response := toResponse(detail, now)
	return GetActiveResponse{Active: true, Session: &response, ServerTime: now}, nil
}

// MechanicTotals sums a mechanic's closed non-payment session hours since
// their last pay reset, broken down by vehicle.
func (r Repository) MechanicTotals(ctx context.Context, mechanicName string, filter TotalsFilter) (MechanicTotalsResponse, error) {
	var resetAt *time.Time
	err := r.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT hours_reset_at FROM mechanics WHERE name = '%s' AND deleted_at IS NULL`,
		escape(mechanicName))).Scan(&resetAt)
	if errors.Is(err, sql.ErrNoRows) {
		return MechanicTotalsResponse{}, web.NewRequestError(errors.New("unknown mechanic"), http.StatusNotFound)
	}
	if err != nil {
		return MechanicTotalsResponse{}, web.NewRequestError(errors.Wrap(err, "selecting mechanic"), http.StatusInternalServerError)
	}

	whereQuery := fmt.Sprintf(`
		WHERE ws.mechanic_name = '%s'
		  AND ws.end_time IS NOT NULL
		  AND ws.is_payment = false
		  AND ws.deleted_at IS NULL`, escape(mechanicName))
	if resetAt != nil {
		whereQuery += fmt.Sprintf(` AND ws.start_time >= '%s'`, resetAt.Format(time.RFC3339Nano))
	}
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
			count(ws.id),
			COALESCE(sum(ws.total_hours), 0)
		FROM work_sessions ws
		LEFT JOIN vehicles v ON v.id = ws.vehicle_id
	%s
		GROUP BY ws.vehicle_id, v.brand, v.model, v.year
		ORDER BY sum(ws.total_hours) DESC`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return MechanicTotalsResponse{}, web.NewRequestError(errors.Wrap(err, "selecting mechanic totals"), http.StatusInternalServerError)
	}
	defer rows.Close()

	response := MechanicTotalsResponse{
		MechanicName: mechanicName,
		ResetAt:      resetAt,
		PerVehicle:   make([]VehicleBreakdown, 0),
	}
	for rows.Next() {
		var detail VehicleBreakdown
		if err = rows.Scan(
			&detail.VehicleID,
			&detail.Brand,
			&detail.Model,
			&detail.Year,
			&detail.Sessions,
			&detail.TotalHours,
		); err != nil {
			return MechanicTotalsResponse{}, web.NewRequestError(errors.Wrap(err, "scanning mechanic totals"), http.StatusBadRequest)
		}
		response.TotalHours += detail.TotalHours
		response.PerVehicle = append(response.PerVehicle, detail)
	}

	return response, nil
}

// MechanicSessions lists a mechanic's full session history, payment markers
// included, newest first.
func (r Repository) MechanicSessions(ctx context.Context, mechanicName string, filter Filter) ([]GetListResponse, int, error) {
	filter.MechanicName = &mechanicName
	return r.GetList(ctx, filter)
}

// ResetVehicleHours wipes all closed sessions and stamps the shop-wide
// vehicle reset boundary. Returns how many rows were removed. This is the
// one destructive operation in the system, hence the password gate.
func (r Repository) ResetVehicleHours(ctx context.Context, request ResetVehicleHoursRequest) (int, error) {
	if err := r.ValidateStruct(&request, "Password"); err != nil {
		return 0, err
	}
	if err := r.checkAdminPassword(*request.Password); err != nil {
		return 0, err
	}

	now := time.Now()
	var removed int

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM work_sessions WHERE end_time IS NOT NULL`)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "deleting closed sessions"), http.StatusInternalServerError)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
		}
		removed = int(rows)

		_, err = tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE shop_info SET vehicle_hours_reset_at = '%s', updated_at = '%s'`,
			now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano)))
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "moving vehicle reset boundary"), http.StatusInternalServerError)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// AdjustVehicleHours sets a vehicle's accumulated hours to the given target
// by inserting a delta session, so the correction stays visible in the
// session history instead of silently rewriting past rows. The delta session
// carries no punch and is excluded from mechanic counts.
func (r Repository) AdjustVehicleHours(ctx context.Context, request AdjustVehicleHoursRequest) (float64, error) {
	if err := r.ValidateStruct(&request, "Password"); err != nil {
		return 0, err
	}
	if request.TotalHours == nil {
		return 0, web.NewRequestError(errors.New("field TotalHours is required"), http.StatusBadRequest)
	}
	if err := r.checkAdminPassword(*request.Password); err != nil {
		return 0, err
	}
	target := *request.TotalHours
	if target < 0 {
		return 0, web.NewRequestError(timeclock.ErrNegativeHours, http.StatusBadRequest)
	}

	now := time.Now()

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT EXISTS (SELECT 1 FROM vehicles WHERE id = %d AND deleted_at IS NULL)`,
			request.VehicleID)).Scan(&exists)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "checking vehicle"), http.StatusInternalServerError)
		}
		if !exists {
			return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}

		var current float64
		err = tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT COALESCE(sum(total_hours), 0)
			FROM work_sessions
			WHERE vehicle_id = %d
			  AND end_time IS NOT NULL AND is_payment = false AND deleted_at IS NULL
			  AND start_time >= COALESCE((SELECT vehicle_hours_reset_at FROM shop_info LIMIT 1), '-infinity')`,
			request.VehicleID)).Scan(&current)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "summing vehicle hours"), http.StatusInternalServerError)
		}

		delta := target - current
		if delta == 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, fmt.Sprintf(`
			INSERT INTO work_sessions (vehicle_id, mechanic_name, start_time, end_time, total_hours, notes, is_payment, created_at)
			VALUES (%d, 'admin', '%s', '%s', %f, '%s', false, '%s')`,
			request.VehicleID,
			now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
			delta, escape(adjustmentNote(delta)), now.Format(time.RFC3339Nano)))
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "creating adjustment session"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return target, nil
}

func adjustmentNote(delta float64) string {
	sign := "+"
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	hours := int(delta)
	minutes := int(math.Round((delta - float64(hours)) * 60))
	return fmt.Sprintf("ADJUSTED: %s%dh %dm", sign, hours, minutes)
}

func (r Repository) checkAdminPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(r.adminPasswordHash), []byte(password)); err != nil {
		return web.NewRequestError(errors.New("incorrect admin password"), http.StatusUnauthorized)
	}
	return nil
}

func lockSession(ctx context.Context, tx bun.Tx, id int) (row, error) {
	var detail row
	err := tx.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		For("UPDATE").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return row{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return row{}, web.NewRequestError(errors.Wrap(err, "selecting work session"), http.StatusInternalServerError)
	}
	return detail, nil
}

func toResponse(detail row, now time.Time) SessionResponse {
	return SessionResponse{
		ID:           detail.ID,
		PunchID:      detail.PunchID,
		VehicleID:    detail.VehicleID,
		MechanicName: detail.MechanicName,
		StartTime:    detail.StartTime,
		EndTime:      detail.EndTime,
		TotalHours:   detail.TotalHours,
		Notes:        detail.Notes,
		ServerTime:   now,
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
