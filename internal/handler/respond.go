package handler

// respond.go holds the helpers shared by all handlers: mapping engine
// error kinds onto HTTP status codes and pulling the authenticated
// identity out of the Echo context.

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// engineError translates an engine sentinel into the matching HTTP
// response. The error message is forwarded verbatim; engine messages
// are written for end users.
func engineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrValidation), errors.Is(err, engine.ErrReasonRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrConflict),
		errors.Is(err, engine.ErrInvalidTransition),
		errors.Is(err, engine.ErrAlreadyDecided),
		errors.Is(err, engine.ErrInvalidState):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// currentUser returns the user ID and role injected by the JWT
// middleware. Both come back empty when the route is unprotected.
func currentUser(c echo.Context) (string, model.Role) {
	uid, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	return uid, model.Role(role)
}
