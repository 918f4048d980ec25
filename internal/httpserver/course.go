package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/service"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

const defaultSearchSize = 20

type CourseHTTP struct {
	Svc *service.CourseService
}

func (h *CourseHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.create")

	var req transport.CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("course_create_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	course, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("course_create_failed", "status", 409, "serialno", req.SerialNo)
			return echo.NewHTTPError(http.StatusConflict, "course with this serial number already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("course_create_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("course_create_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to add course")
		}
	}

	l.Info("course_created", "course_id", course.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "course added successfully", "course": course})
}

func (h *CourseHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	courses, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("course_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch courses")
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CourseHTTP) GetByName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.get_by_name")

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course name")
	}

	course, err := h.Svc.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "course not found")
		}
		l.Error("course_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, course)
}

func (h *CourseHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query")
	}

	from, _ := strconv.Atoi(c.QueryParam("from"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size < 1 {
		size = defaultSearchSize
	}

	total, courses, err := h.Svc.Search(ctx, q, from, size)
	if err != nil {
		if errors.Is(err, service.ErrSearchUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not available")
		}
		l.Error("course_search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search error")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "courses": courses})
}
