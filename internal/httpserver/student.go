package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type StudentHTTP struct {
	Svc *service.StudentService
}

func (h *StudentHTTP) Admit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.admit")

	var req transport.CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("student_admit_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	student, err := h.Svc.Admit(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("student_admit_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("student_admit_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error submitting student admission")
	}

	l.Info("student_admitted", "student_id", student.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "student admission submitted successfully", "student": student})
}

func (h *StudentHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	students, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("student_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching students")
	}
	return c.JSON(http.StatusOK, students)
}

func (h *StudentHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}

	var req transport.UpdateStudentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("student_update_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	student, err := h.Svc.Update(ctx, uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("student_update_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("student_update_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "error updating student")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "student updated successfully", "student": student})
}

func (h *StudentHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}

	if err := h.Svc.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "student not found")
		}
		l.Error("student_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error deleting student")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "student deleted successfully"})
}
