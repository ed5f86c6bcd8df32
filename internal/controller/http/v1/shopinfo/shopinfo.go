package shopinfo

import (
	"net/http"
	"reflect"

	"garage/backend/foundation/web"
	"garage/backend/internal/repository/postgres/shopinfo"
	"garage/backend/internal/service"
)

type Controller struct {
	shopInfo ShopInfo
}

func NewController(shopInfo ShopInfo) *Controller {
	return &Controller{shopInfo: shopInfo}
}

func (sc Controller) GetShopInfo(c *web.Context) error {
	response, err := sc.shopInfo.GetInfo(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) UpdateShopInfo(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request shopinfo.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if request.Logo != nil {
		path, err := service.Upload(request.Logo, "shop")
		if err != nil {
			return c.RespondError(err)
		}
		request.LogoURL = &path
	}

	if err := sc.shopInfo.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
