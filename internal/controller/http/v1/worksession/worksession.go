package worksession

import (
	"net/http"
	"reflect"

	"garage/backend/foundation/web"
	"garage/backend/internal/pkg/notify"
	"garage/backend/internal/repository/postgres/worksession"
)

type Controller struct {
	session WorkSession
	notify  notify.Publisher
}

func NewController(session WorkSession, notify notify.Publisher) *Controller {
	return &Controller{session: session, notify: notify}
}

func (sc Controller) GetSessionList(c *web.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := sc.session.GetList(c.Ctx, filter)
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

func (sc Controller) GetSessionDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) GetActiveSession(c *web.Context) error {
	mechanicName := c.GetParam(reflect.String, "mechanic").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.GetActiveByMechanic(c.Ctx, mechanicName)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) StartSession(c *web.Context) error {
	var request worksession.StartRequest
	if err := c.BindFunc(&request, "PunchID", "VehicleID"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.Start(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	sc.notify.Publish(c.Ctx, notify.EventSessionStarted)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) EndSession(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request worksession.EndRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := sc.session.End(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	sc.notify.Publish(c.Ctx, notify.EventSessionEnded)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) UpdateSessionHours(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request worksession.EditHoursRequest
	if err := c.BindFunc(&request, "Password"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := sc.session.EditHours(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	sc.notify.Publish(c.Ctx, notify.EventSessionUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) AdjustVehicleHours(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request worksession.AdjustVehicleHoursRequest
	if err := c.BindFunc(&request, "Password"); err != nil {
		return c.RespondError(err)
	}
	request.VehicleID = id

	total, err := sc.session.AdjustVehicleHours(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	sc.notify.Publish(c.Ctx, notify.EventVehicleUpdated)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"vehicle_id":  request.VehicleID,
			"total_hours": total,
		},
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) GetMechanicTotals(c *web.Context) error {
	mechanicName := c.GetParam(reflect.String, "mechanic").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var filter worksession.TotalsFilter
	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok {
		filter.EndDate = endDate
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.MechanicTotals(c.Ctx, mechanicName, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) GetMechanicSessions(c *web.Context) error {
	mechanicName := c.GetParam(reflect.String, "mechanic").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	filter, err := bindFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, count, err := sc.session.MechanicSessions(c.Ctx, mechanicName, filter)
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

func (sc Controller) ResetVehicleHours(c *web.Context) error {
	var request worksession.ResetVehicleHoursRequest
	if err := c.BindFunc(&request, "Password"); err != nil {
		return c.RespondError(err)
	}

	removed, err := sc.session.ResetVehicleHours(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	sc.notify.Publish(c.Ctx, notify.EventHoursReset)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"removed_sessions": removed,
		},
		"status": true,
	}, http.StatusOK)
}

func bindFilter(c *web.Context) (worksession.Filter, error) {
	var filter worksession.Filter

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
	if vehicleID, ok := c.GetQueryFunc(reflect.Int, "vehicle_id").(*int); ok {
		filter.VehicleID = vehicleID
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return worksession.Filter{}, err
	}

	return filter, nil
}
