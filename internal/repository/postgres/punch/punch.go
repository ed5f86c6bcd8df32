package punch

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"garage/backend/foundation/web"
	"garage/backend/internal/auth"
	"garage/backend/internal/entity"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/repository/postgres"
	"garage/backend/internal/timeclock"

	"github.com/Azure/go-autorest/autorest/date"
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

func (r Repository) ClockIn(ctx context.Context, request ClockInRequest) (PunchResponse, error) {
	if err := r.ValidateStruct(&request, "MechanicName"); err != nil {
		return PunchResponse{}, err
	}

	name := strings.TrimSpace(*request.MechanicName)
	now := time.Now()

	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := rosterCheck(ctx, tx, name); err != nil {
			return err
		}

		var activeID int
		err := tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT id FROM punches
			WHERE mechanic_name = '%s' AND punch_out IS NULL AND deleted_at IS NULL
			FOR UPDATE`, escape(name))).Scan(&activeID)
		if err == nil {
			return web.NewRequestError(timeclock.ErrAlreadyActive, http.StatusBadRequest)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(errors.Wrap(err, "selecting active punch"), http.StatusInternalServerError)
		}

		detail = row{
			MechanicName:  name,
			PunchIn:       now,
			WorkDay:       now.Format("2006-01-02"),
			Status:        string(timeclock.StatusActive),
			PausedSeconds: 0,
			CreatedAt:     now,
		}
		if _, err := tx.NewInsert().Model(&detail).Exec(ctx); err != nil {
			// A concurrent clock-in can slip past the active-punch select and
			// land on the punches_one_active_per_mechanic index instead.
			if isIntegrityViolation(err) {
				return web.NewRequestError(timeclock.ErrAlreadyActive, http.StatusBadRequest)
			}
			return web.NewRequestError(errors.Wrap(err, "creating punch"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}

	return toResponse(detail, now), nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Punch, error) {
	var detail entity.Punch
	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Punch{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Punch{}, web.NewRequestError(errors.Wrap(err, "selecting punch"), http.StatusInternalServerError)
	}
	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := ` WHERE p.deleted_at IS NULL`
	if filter.MechanicName != nil {
		whereQuery += fmt.Sprintf(` AND p.mechanic_name = '%s'`, escape(*filter.MechanicName))
	}
	if filter.Status != nil {
		whereQuery += fmt.Sprintf(` AND p.status = '%s'`, escape(*filter.Status))
	}
	if filter.Date != nil {
		whereQuery += fmt.Sprintf(` AND p.work_day = '%s'`, escape(*filter.Date))
	}
	orderQuery := ` ORDER BY p.punch_in DESC`

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
			p.id,
			p.mechanic_name,
			p.work_day,
			p.punch_in,
			p.punch_out,
			p.status,
			p.total_hours,
			p.paused_seconds
		FROM punches p
	%s %s %s %s`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting punches"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		var workDay *string
		if err = rows.Scan(
			&detail.ID,
			&detail.MechanicName,
			&workDay,
			&detail.PunchIn,
			&detail.PunchOut,
			&detail.Status,
			&detail.TotalHours,
			&detail.PausedSeconds,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning punch list"), http.StatusBadRequest)
		}
		if workDay != nil {
			day, err := date.ParseDate(*workDay)
			if err != nil {
				return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing work_day"), http.StatusBadRequest)
			}
			detail.WorkDay = &day
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(p.id) FROM punches p %s`, whereQuery)
	var count int
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting punches"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetActiveByMechanic reports the mechanic's open punch, if any. Used by the
// shop tablet on load to restore the running clock.
func (r Repository) GetActiveByMechanic(ctx context.Context, mechanicName string) (GetActiveResponse, error) {
	now := time.Now()

	var detail row
	err := r.NewSelect().Model(&detail).
		Where("mechanic_name = ? AND punch_out IS NULL AND deleted_at IS NULL", mechanicName).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetActiveResponse{Active: false, ServerTime: now}, nil
	}
	if err != nil {
		return GetActiveResponse{}, web.NewRequestError(errors.Wrap(err, "selecting active punch"), http.StatusInternalServerError)
	}

	response := toResponse(detail, now)
	return GetActiveResponse{Active: true, Punch: &response, ServerTime: now}, nil
}

func (r Repository) Pause(ctx context.Context, request PauseRequest) (PunchResponse, error) {
	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockPunch(ctx, tx, request.ID)
		if err != nil {
			return err
		}

		clock := toClock(detail)
		if err = timeclock.Pause(&clock, now); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		detail.Status = string(timeclock.StatusPaused)
		detail.PauseStartedAt = clock.PauseStartedAt
		detail.PauseReason = request.Reason

		_, err = tx.NewUpdate().Model(&detail).
			Set("status = ?", detail.Status).
			Set("pause_started_at = ?", detail.PauseStartedAt).
			Set("pause_reason = ?", detail.PauseReason).
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "pausing punch"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}

	return toResponse(detail, now), nil
}

func (r Repository) Resume(ctx context.Context, id int) (PunchResponse, error) {
	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockPunch(ctx, tx, id)
		if err != nil {
			return err
		}

		clock := toClock(detail)
		if err = timeclock.Resume(&clock, now); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		detail.Status = string(timeclock.StatusActive)
		detail.PausedSeconds = clock.PausedSeconds
		detail.PauseStartedAt = nil
		detail.PauseReason = nil

		_, err = tx.NewUpdate().Model(&detail).
			Set("status = ?", detail.Status).
			Set("paused_seconds = ?", detail.PausedSeconds).
			Set("pause_started_at = NULL").
			Set("pause_reason = NULL").
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "resuming punch"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}

	return toResponse(detail, now), nil
}

// ClockOut closes the punch and, when a distribution is supplied, writes one
// already-closed work session per non-zero vehicle entry. The distributed
// total may not exceed the net worked duration; the remainder stays
// unassigned shop time.
func (r Repository) ClockOut(ctx context.Context, request ClockOutRequest) (PunchResponse, error) {
	now := time.Now()
	var detail row

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockPunch(ctx, tx, request.ID)
		if err != nil {
			return err
		}

		var openSessionID int
		err = tx.QueryRowContext(ctx, fmt.Sprintf(`
			SELECT id FROM work_sessions
			WHERE mechanic_name = '%s' AND end_time IS NULL AND deleted_at IS NULL
			LIMIT 1`, escape(detail.MechanicName))).Scan(&openSessionID)
		if err == nil {
			return web.NewRequestError(timeclock.ErrOpenSessionExists, http.StatusBadRequest)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(errors.Wrap(err, "selecting open session"), http.StatusInternalServerError)
		}

		clock := toClock(detail)
		worked, err := timeclock.ClockOut(&clock, now)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
		if err = timeclock.ValidateDistribution(request.Distribution, worked); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		for _, entry := range timeclock.NonZeroEntries(request.Distribution) {
			if err = vehicleCheck(ctx, tx, entry.VehicleID); err != nil {
				return err
			}
			hours := timeclock.Hours(entry.Duration())
			_, err = tx.ExecContext(ctx, fmt.Sprintf(`
				INSERT INTO work_sessions (punch_id, vehicle_id, mechanic_name, start_time, end_time, total_hours, is_payment, created_at)
				VALUES (%d, %d, '%s', '%s', '%s', %f, false, '%s')`,
				detail.ID, entry.VehicleID, escape(detail.MechanicName),
				now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano), hours, now.Format(time.RFC3339Nano)))
			if err != nil {
				return web.NewRequestError(errors.Wrap(err, "creating distributed session"), http.StatusBadRequest)
			}
		}

		total := timeclock.Hours(worked)
		detail.PunchOut = clock.PunchOut
		detail.Status = string(timeclock.StatusCompleted)
		detail.TotalHours = &total
		detail.PausedSeconds = clock.PausedSeconds
		detail.PauseStartedAt = nil
		detail.PauseReason = nil

		_, err = tx.NewUpdate().Model(&detail).
			Set("punch_out = ?", detail.PunchOut).
			Set("status = ?", detail.Status).
			Set("total_hours = ?", detail.TotalHours).
			Set("paused_seconds = ?", detail.PausedSeconds).
			Set("pause_started_at = NULL").
			Set("pause_reason = NULL").
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "closing punch"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}

	return toResponse(detail, now), nil
}

// EditTimes rewrites the recorded punch boundaries. Gated by the shared admin
// password rather than a session, the shop tablet has no per-user login.
func (r Repository) EditTimes(ctx context.Context, request EditTimesRequest) (PunchResponse, error) {
	if err := r.ValidateStruct(&request, "PunchIn", "Password"); err != nil {
		return PunchResponse{}, err
	}
	if err := r.checkAdminPassword(*request.Password); err != nil {
		return PunchResponse{}, err
	}

	punchIn, err := time.Parse(time.RFC3339, *request.PunchIn)
	if err != nil {
		return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "parsing punch_in"), http.StatusBadRequest)
	}
	var punchOut *time.Time
	if request.PunchOut != nil {
		parsed, err := time.Parse(time.RFC3339, *request.PunchOut)
		if err != nil {
			return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "parsing punch_out"), http.StatusBadRequest)
		}
		punchOut = &parsed
	}

	now := time.Now()
	var detail row

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		detail, err = lockPunch(ctx, tx, request.ID)
		if err != nil {
			return err
		}

		if punchOut == nil {
			punchOut = detail.PunchOut
		}

		clock := toClock(detail)
		worked, err := timeclock.OverrideTimes(&clock, punchIn, punchOut)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		detail.PunchIn = clock.PunchIn
		detail.PunchOut = clock.PunchOut
		detail.PausedSeconds = clock.PausedSeconds
		detail.PauseStartedAt = clock.PauseStartedAt
		detail.WorkDay = punchIn.Format("2006-01-02")
		detail.Status = string(timeclock.StatusOf(clock))
		if clock.PunchOut != nil {
			total := timeclock.Hours(worked)
			detail.TotalHours = &total
			detail.PauseReason = nil
		}

		_, err = tx.NewUpdate().Model(&detail).
			Set("punch_in = ?", detail.PunchIn).
			Set("punch_out = ?", detail.PunchOut).
			Set("work_day = ?", detail.WorkDay).
			Set("status = ?", detail.Status).
			Set("total_hours = ?", detail.TotalHours).
			Set("paused_seconds = ?", detail.PausedSeconds).
			Set("pause_started_at = ?", detail.PauseStartedAt).
			Set("pause_reason = ?", detail.PauseReason).
			Set("updated_at = ?", now).
			Where("id = ?", detail.ID).
			Exec(ctx)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "updating punch times"), http.StatusBadRequest)
		}
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}

	return toResponse(detail, now), nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "punches", id)
}

// PayrollSummary aggregates completed punches per mechanic over the given
// day range. Punch-level totals are the payroll truth, work sessions only
// break hours down by vehicle.
func (r Repository) PayrollSummary(ctx context.Context, filter SummaryFilter) ([]PayrollSummaryResponse, error) {
	// total_hours > 0 keeps the zero-hour payment punches written by the
	// reset flow from counting as worked days.
	whereQuery := ` WHERE p.deleted_at IS NULL AND p.status = 'completed' AND p.total_hours > 0`
	if filter.StartDate != nil {
		whereQuery += fmt.Sprintf(` AND p.work_day >= '%s'`, escape(*filter.StartDate))
	}
	if filter.EndDate != nil {
		whereQuery += fmt.Sprintf(` AND p.work_day <= '%s'`, escape(*filter.EndDate))
	}

	query := fmt.Sprintf(`
		SELECT
			p.mechanic_name,
			count(DISTINCT p.work_day),
			COALESCE(sum(p.total_hours), 0),
			COALESCE(avg(p.total_hours), 0),
			COALESCE(min(p.total_hours), 0),
			COALESCE(max(p.total_hours), 0),
			min(p.work_day),
			max(p.work_day)
		FROM punches p
	%s
		GROUP BY p.mechanic_name
		ORDER BY p.mechanic_name`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting payroll summary"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]PayrollSummaryResponse, 0)
	for rows.Next() {
		var detail PayrollSummaryResponse
		var firstDay, lastDay *string
		if err = rows.Scan(
			&detail.MechanicName,
			&detail.TotalDays,
			&detail.TotalHours,
			&detail.AvgHours,
			&detail.MinHours,
			&detail.MaxHours,
			&firstDay,
			&lastDay,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning payroll summary"), http.StatusBadRequest)
		}
		if firstDay != nil {
			day, err := date.ParseDate(*firstDay)
			if err != nil {
				return nil, web.NewRequestError(errors.Wrap(err, "parsing first day"), http.StatusBadRequest)
			}
			detail.FirstDay = &day
		}
		if lastDay != nil {
			day, err := date.ParseDate(*lastDay)
			if err != nil {
				return nil, web.NewRequestError(errors.Wrap(err, "parsing last day"), http.StatusBadRequest)
			}
			detail.LastDay = &day
		}
		list = append(list, detail)
	}

	return list, nil
}

// ResetHours marks a mechanic as paid up. It records a synthetic payment row
// so the history shows when and how much was settled, then moves the
// mechanic's reset boundary so running totals start from zero.
func (r Repository) ResetHours(ctx context.Context, mechanicName string) (float64, error) {
	now := time.Now()
	var paid float64

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		paid, err = resetHoursTx(ctx, tx, mechanicName, now)
		return err
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}

// ResetAllHours settles every mechanic on the roster in one transaction.
func (r Repository) ResetAllHours(ctx context.Context) (map[string]float64, error) {
	now := time.Now()
	paid := make(map[string]float64)

	err := r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT name FROM mechanics WHERE deleted_at IS NULL ORDER BY name`)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting roster"), http.StatusInternalServerError)
		}
		names := make([]string, 0)
		for rows.Next() {
			var name string
			if err = rows.Scan(&name); err != nil {
				rows.Close()
				return web.NewRequestError(errors.Wrap(err, "scanning roster"), http.StatusBadRequest)
			}
			names = append(names, name)
		}
		rows.Close()

		for _, name := range names {
			total, err := resetHoursTx(ctx, tx, name, now)
			if err != nil {
				return err
			}
			paid[name] = total
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

func resetHoursTx(ctx context.Context, tx bun.Tx, mechanicName string, now time.Time) (float64, error) {
	if err := rosterCheck(ctx, tx, mechanicName); err != nil {
		return 0, err
	}

	var total float64
	err := tx.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(sum(ws.total_hours), 0)
		FROM work_sessions ws
		JOIN mechanics m ON m.name = ws.mechanic_name
		WHERE ws.mechanic_name = '%s'
		  AND ws.end_time IS NOT NULL
		  AND ws.is_payment = false
		  AND ws.deleted_at IS NULL
		  AND (m.hours_reset_at IS NULL OR ws.start_time >= m.hours_reset_at)`,
		escape(mechanicName))).Scan(&total)
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "summing unpaid hours"), http.StatusInternalServerError)
	}

	zero := 0.0
	payment := row{
		MechanicName:  mechanicName,
		PunchIn:       now,
		PunchOut:      &now,
		WorkDay:       now.Format("2006-01-02"),
		Status:        string(timeclock.StatusCompleted),
		TotalHours:    &zero,
		PausedSeconds: 0,
		CreatedAt:     now,
	}
	if _, err = tx.NewInsert().Model(&payment).Exec(ctx); err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "creating payment punch"), http.StatusBadRequest)
	}

	hours := int(total)
	minutes := int(math.Round((total - float64(hours)) * 60))
	note := fmt.Sprintf("PAID: %dh %dm", hours, minutes)

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO work_sessions (punch_id, mechanic_name, start_time, end_time, total_hours, notes, is_payment, created_at)
		VALUES (%d, '%s', '%s', '%s', 0, '%s', true, '%s')`,
		payment.ID, escape(mechanicName),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		escape(note), now.Format(time.RFC3339Nano)))
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "creating payment session"), http.StatusBadRequest)
	}

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE mechanics SET hours_reset_at = '%s', updated_at = '%s' WHERE name = '%s'`,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano), escape(mechanicName)))
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "moving reset boundary"), http.StatusInternalServerError)
	}

	return total, nil
}

// isIntegrityViolation reports whether err carries a pgdriver constraint
// violation, the shape the driver surfaces when an insert lands on a unique
// index instead of a row the transaction could lock.
func isIntegrityViolation(err error) bool {
	var pgErr interface{ IntegrityViolation() bool }
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

func (r Repository) checkAdminPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(r.adminPasswordHash), []byte(password)); err != nil {
		return web.NewRequestError(errors.New("incorrect admin password"), http.StatusUnauthorized)
	}
	return nil
}

func lockPunch(ctx context.Context, tx bun.Tx, id int) (row, error) {
	var detail row
	err := tx.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		For("UPDATE").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return row{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return row{}, web.NewRequestError(errors.Wrap(err, "selecting punch"), http.StatusInternalServerError)
	}
	return detail, nil
}

func rosterCheck(ctx context.Context, tx bun.Tx, mechanicName string) error {
	var exists bool
	err := tx.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM mechanics WHERE name = '%s' AND deleted_at IS NULL)`,
		escape(mechanicName))).Scan(&exists)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking roster"), http.StatusInternalServerError)
	}
	if !exists {
		return web.NewRequestError(errors.New("unknown mechanic"), http.StatusNotFound)
	}
	return nil
}

func vehicleCheck(ctx context.Context, tx bun.Tx, vehicleID int) error {
	var exists bool
	err := tx.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM vehicles WHERE id = %d AND deleted_at IS NULL)`, vehicleID)).Scan(&exists)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking vehicle"), http.StatusInternalServerError)
	}
	if !exists {
		return web.NewRequestError(errors.New("unknown vehicle"), http.StatusNotFound)
	}
	return nil
}

func toClock(detail row) timeclock.Punch {
	return timeclock.Punch{
		PunchIn:        detail.PunchIn,
		PunchOut:       detail.PunchOut,
		PausedSeconds:  detail.PausedSeconds,
		PauseStartedAt: detail.PauseStartedAt,
	}
}

func toResponse(detail row, now time.Time) PunchResponse {
	return PunchResponse{
		ID:             detail.ID,
		MechanicName:   detail.MechanicName,
		WorkDay:        detail.WorkDay,
		PunchIn:        detail.PunchIn,
		PunchOut:       detail.PunchOut,
		Status:         detail.Status,
		TotalHours:     detail.TotalHours,
		PausedSeconds:  detail.PausedSeconds,
		PauseStartedAt: detail.PauseStartedAt,
		PauseReason:    detail.PauseReason,
		ServerTime:     now,
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
