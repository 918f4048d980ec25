package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/middleware"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/tokens"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type ProfileHTTP struct {
	Svc *service.ProfileService
}

// GetOwn serves the caller's profile, scoped by the id in the access token.
func (h *ProfileHTTP) GetOwn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_own")

	claims := middleware.ClaimsFrom(c)
	userID, err := tokens.UserID(claims.Subject)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}

	user, err := h.Svc.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("profile_not_found", "status", 404, "user_id", userID)
			return echo.NewHTTPError(http.StatusNotFound, "user profile not found")
		}
		l.Error("profile_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *ProfileHTTP) UpdateOwn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update_own")

	claims := middleware.ClaimsFrom(c)
	userID, err := tokens.UserID(claims.Subject)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("profile_update_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Update(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("profile_update_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			l.Error("profile_update_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, user)
}

func (h *ProfileHTTP) GetPublic(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_public")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	profile, err := h.Svc.GetPublic(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("profile_get_public_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, profile)
}
