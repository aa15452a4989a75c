package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mfrox/mcb2go/internal/axis"
	"github.com/mfrox/mcb2go/internal/persistence"
	"github.com/mfrox/mcb2go/internal/pid"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/qdm12/reprint"
)

type targetRequest struct {
	Count int32 `json:"count"`
}

func registerAxisEndpoints(rest *echo.Echo, pers persistence.Persistence) {
	group := rest.Group("/axis")

	group.GET("/", getAxes)
	group.GET("/:"+urlParamId+"/", getAxis)
	group.PUT("/:"+urlParamId+"/target/", setAxisTarget)
	group.POST("/:"+urlParamId+"/zero/", zeroAxis)
	group.GET("/:"+urlParamId+"/gains/", getAxisGains)
	group.PUT("/:"+urlParamId+"/gains/", setAxisGains(pers))
}

// returns the status of all currently configured axes
func getAxes(c echo.Context) error {
	data := map[string]axis.Status{}
	for entry := range axis.AxisMap.IterBuffered() {
		data[entry.Key] = entry.Val.GetStatus()
	}
	return c.JSONPretty(http.StatusOK, reprint.This(data), indentationChar)
}

func getAxis(c echo.Context) error {
	id := c.Param(urlParamId)
	a, exists := axis.GetAxis(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, a.GetStatus(), indentationChar)
}

func setAxisTarget(c echo.Context) error {
	id := c.Param(urlParamId)
	a, exists := axis.GetAxis(id)
	if !exists {
		return returnNotFound(c, id)
	}

	var request targetRequest
	if err := c.Bind(&request); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	a.SetCountDesired(request.Count)
	return c.JSONPretty(http.StatusOK, a.GetStatus(), indentationChar)
}

func zeroAxis(c echo.Context) error {
	id := c.Param(urlParamId)
	a, exists := axis.GetAxis(id)
	if !exists {
		return returnNotFound(c, id)
	}

	if err := a.ResetCount(); err != nil {
		return returnError(c, err)
	}
	return c.JSONPretty(http.StatusOK, a.GetStatus(), indentationChar)
}

func getAxisGains(c echo.Context) error {
	id := c.Param(urlParamId)
	a, exists := axis.GetAxis(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, a.GetGains(), indentationChar)
}

func setAxisGains(pers persistence.Persistence) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param(urlParamId)
		a, exists := axis.GetAxis(id)
		if !exists {
			return returnNotFound(c, id)
		}

		var gains pid.Gains
		if err := c.Bind(&gains); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}

		a.SetGains(gains)
		if err := pers.SaveAxisGains(id, gains); err != nil {
			ui.Warning("Unable to persist gains for axis %s: %v", id, err)
		}

		return c.JSONPretty(http.StatusOK, a.GetGains(), indentationChar)
	}
}
