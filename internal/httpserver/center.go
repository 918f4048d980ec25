package httpserver

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type CenterHTTP struct {
	Svc *service.CenterService
}

func (h *CenterHTTP) Affiliate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "center.affiliate")

	var req transport.CreateCenterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("center_affiliate_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	center, err := h.Svc.Affiliate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("center_affiliate_failed", "status", 409, "centercode", req.CenterCode)
			return echo.NewHTTPError(http.StatusConflict, "center with this code already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("center_affiliate_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("center_affiliate_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "error submitting center affiliation")
		}
	}

	l.Info("center_affiliated", "center_id", center.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "center affiliation submitted successfully", "center": center})
}

func (h *CenterHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	centers, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("center_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error while fetching center affiliations")
	}
	return c.JSON(http.StatusOK, centers)
}

func (h *CenterHTTP) GetByCode(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "center.get_by_code")

	code, err := url.PathUnescape(c.Param("centerCode"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid center code")
	}

	center, err := h.Svc.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "center not found")
		}
		l.Error("center_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, center)
}
