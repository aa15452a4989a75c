package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// return a "not found" message
func returnNotFound(c echo.Context, id string) error {
	return c.JSONPretty(
		http.StatusNotFound,
		Result{
			Name:    "Not Found",
			Message: fmt.Sprintf("No axis with id found: %s", id),
		},
		indentationChar,
	)
}

// return an "internal server error" message
func returnError(c echo.Context, err error) error {
	return c.JSONPretty(
		http.StatusInternalServerError,
		Result{
			Name:    "Internal Server Error",
			Message: err.Error(),
		},
		indentationChar,
	)
}
