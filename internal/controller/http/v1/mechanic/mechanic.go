package mechanic

import (
	"net/http"
	"reflect"

	"garage/backend/foundation/web"
	"garage/backend/internal/repository/postgres/mechanic"
)

type Controller struct {
	mechanic Mechanic
}

func NewController(mechanic Mechanic) *Controller {
	return &Controller{mechanic: mechanic}
}

func (mc Controller) GetMechanicList(c *web.Context) error {
	list, err := mc.mechanic.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (mc Controller) GetMechanicByName(c *web.Context) error {
	name := c.GetParam(reflect.String, "name").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := mc.mechanic.GetByName(c.Ctx, name)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (mc Controller) GetLeaderboard(c *web.Context) error {
	list, err := mc.mechanic.Leaderboard(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (mc Controller) UpdateMechanicPoints(c *web.Context) error {
	name := c.GetParam(reflect.String, "name").(string)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request mechanic.UpdatePointsRequest
	if err := c.BindFunc(&request, "Password"); err != nil {
		return c.RespondError(err)
	}
	request.Name = name

	if err := mc.mechanic.UpdatePoints(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
