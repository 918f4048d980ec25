package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type CertificateHTTP struct {
	Svc *service.CertificateService
}

func (h *CertificateHTTP) Issue(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.issue")

	var req transport.CreateCertificateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("certificate_issue_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cert, err := h.Svc.Issue(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("certificate_issue_failed", "status", 409, "registrationno", req.RegistrationNo)
			return echo.NewHTTPError(http.StatusConflict, "certificate with this registration number already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("certificate_issue_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("certificate_issue_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "error adding certificate")
		}
	}

	l.Info("certificate_issued", "certificate_id", cert.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "certificate added successfully", "certificate": cert})
}

func (h *CertificateHTTP) Lookup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.lookup")

	cert, err := h.Svc.Lookup(ctx, c.Param("registrationno"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "certificate not found")
		}
		l.Error("certificate_lookup_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error while fetching certificate")
	}

	return c.JSON(http.StatusOK, cert)
}
