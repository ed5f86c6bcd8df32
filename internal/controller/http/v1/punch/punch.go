package punch

import (
	"io"
	"net/http"
	"os"
	"reflect"

	"garage/backend/foundation/web"
	"garage/backend/internal/pkg/notify"
	"garage/backend/internal/repository/postgres/punch"
	"garage/backend/internal/service"
)

type Controller struct {
	punch  Punch
	notify notify.Publisher
}

func NewController(punch Punch, notify notify.Publisher) *Controller {
	return &Controller{punch: punch, notify: notify}
}

func (pc Controller) GetPunchList(c *web.Context) error {
	var filter punch.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if mechanicName, ok := c.GetQueryFunc(reflect.String, "mechanic_name").(*string); ok {
		filter.MechanicName = mechanicName
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := pc.punch.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) GetPunchDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.punch.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) GetActivePunch(c *web.Context) error {
	mechanicName := c.GetParam(reflect.String, "mechanic").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.punch.GetActiveByMechanic(c.Ctx, mechanicName)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ClockIn(c *web.Context) error {
	var request punch.ClockInRequest
	if err := c.BindFunc(&request, "MechanicName"); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.punch.ClockIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchAdded)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) PausePunch(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request punch.PauseRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := pc.punch.Pause(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ResumePunch(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.punch.Resume(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ClockOut(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request punch.ClockOutRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := pc.punch.ClockOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) UpdatePunchTimes(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request punch.EditTimesRequest
	if err := c.BindFunc(&request, "PunchIn", "Password"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := pc.punch.EditTimes(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) DeletePunch(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := pc.punch.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventPunchDeleted)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) GetPayrollSummary(c *web.Context) error {
	var filter punch.SummaryFilter
	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok {
		filter.EndDate = endDate
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := pc.punch.PayrollSummary(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ExportPayroll(c *web.Context) error {
	var filter punch.SummaryFilter
	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok {
		filter.EndDate = endDate
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := pc.punch.PayrollSummary(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	rows := make([]service.PayrollRow, 0, len(list))
	for _, entry := range list {
		row := service.PayrollRow{
			MechanicName: entry.MechanicName,
			TotalDays:    entry.TotalDays,
			TotalHours:   entry.TotalHours,
			AvgHours:     entry.AvgHours,
			MinHours:     entry.MinHours,
			MaxHours:     entry.MaxHours,
		}
		if entry.FirstDay != nil {
			row.FirstDay = entry.FirstDay.String()
		}
		if entry.LastDay != nil {
			row.LastDay = entry.LastDay.String()
		}
		rows = append(rows, row)
	}

	fileName, err := service.WritePayrollExcel(rows)
	if err != nil {
		return c.RespondError(err)
	}
	file, err := os.Open(fileName)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"payroll.xlsx\"")
	if _, err = io.Copy(c.Writer, file); err != nil {
		return c.RespondError(err)
	}
	return nil
}

func (pc Controller) ResetMechanicHours(c *web.Context) error {
	mechanicName := c.GetParam(reflect.String, "mechanic").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	paid, err := pc.punch.ResetHours(c.Ctx, mechanicName)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventHoursReset)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"mechanic_name": mechanicName,
			"paid_hours":    paid,
		},
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ResetAllMechanicHours(c *web.Context) error {
	paid, err := pc.punch.ResetAllHours(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}
	pc.notify.Publish(c.Ctx, notify.EventHoursReset)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"paid_hours": paid,
		},
		"status": true,
	}, http.StatusOK)
}
