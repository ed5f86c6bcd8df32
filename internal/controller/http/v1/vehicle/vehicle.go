package vehicle

import (
	"io"
	"net/http"
	"os"
	"reflect"

	"garage/backend/foundation/web"
	"garage/backend/internal/pkg/notify"
	"garage/backend/internal/repository/postgres/vehicle"
	"garage/backend/internal/service"
)

type Controller struct {
	vehicle Vehicle
	notify  notify.Publisher
	baseURL string
}

func NewController(vehicle Vehicle, notify notify.Publisher, baseURL string) *Controller {
	return &Controller{vehicle: vehicle, notify: notify, baseURL: baseURL}
}

func (vc Controller) GetVehicleList(c *web.Context) error {
	var filter vehicle.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := vc.vehicle.GetList(c.Ctx, filter)
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

func (vc Controller) GetVehicleDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := vc.vehicle.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (vc Controller) CreateVehicle(c *web.Context) error {
	var request vehicle.CreateRequest
	if err := c.BindFunc(&request, "Brand", "Model"); err != nil {
		return c.RespondError(err)
	}

	response, err := vc.vehicle.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}
	vc.notify.Publish(c.Ctx, notify.EventVehicleUpdated)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (vc Controller) UpdateVehicleColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request vehicle.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := vc.vehicle.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}
	vc.notify.Publish(c.Ctx, notify.EventVehicleUpdated)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (vc Controller) MoveVehicle(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request vehicle.MoveRequest
	if err := c.BindFunc(&request, "Direction"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := vc.vehicle.Move(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}
	vc.notify.Publish(c.Ctx, notify.EventVehicleUpdated)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (vc Controller) DeleteVehicle(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := vc.vehicle.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}
	vc.notify.Publish(c.Ctx, notify.EventVehicleUpdated)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (vc Controller) GetVehicleTotals(c *web.Context) error {
	var filter vehicle.TotalsFilter
	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok {
		filter.EndDate = endDate
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := vc.vehicle.Totals(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

// GetVehicleQrCodes streams a printable PDF of session-start QR labels for
// every vehicle currently in the shop.
func (vc Controller) GetVehicleQrCodes(c *web.Context) error {
	list, _, err := vc.vehicle.GetList(c.Ctx, vehicle.Filter{})
	if err != nil {
		return c.RespondError(err)
	}

	entries := make([]service.VehicleQrEntry, 0, len(list))
	for _, v := range list {
		entry := service.VehicleQrEntry{VehicleID: v.ID}
		if v.Brand != nil {
			entry.Brand = *v.Brand
		}
		if v.Model != nil {
			entry.Model = *v.Model
		}
		if v.Year != nil {
			entry.Year = *v.Year
		}
		entries = append(entries, entry)
	}

	fileName, err := service.WriteVehicleQrPdf(vc.baseURL, entries)
	if err != nil {
		return c.RespondError(err)
	}
	file, err := os.Open(fileName)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"qr_vehicles.pdf\"")
	if _, err = io.Copy(c.Writer, file); err != nil {
		return c.RespondError(err)
	}
	return nil
}
