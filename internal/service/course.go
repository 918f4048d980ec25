package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/search"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type CourseService struct {
	Repo     *repo.GormRepo
	Index    *search.CourseIndexer
	Validate *validator.Validate
}

func (s *CourseService) Create(ctx context.Context, req transport.CreateCourseRequest) (*models.Course, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	course := models.Course{
		Name:        req.Name,
		SerialNo:    req.SerialNo,
		Duration:    req.Duration,
		Eligibility: req.Eligibility,
		CourseFee:   req.CourseFee,
		Scholarship: req.Scholarship,
		Details:     req.Details,
	}

	if err := s.Repo.CreateCourse(ctx, &course); err != nil {
		if errors.Is(err, repo.ErrDuplicateCourse) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// The DB row is authoritative; a failed index write only degrades search.
	if s.Index != nil {
		if err := s.Index.Index(ctx, &course); err != nil {
			logging.FromContext(ctx).Warn("course_index_failed", "course_id", course.ID, "error", err)
		}
	}

	return &course, nil
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.Repo.GetCourses(ctx)
}

func (s *CourseService) GetByName(ctx context.Context, name string) (*models.Course, error) {
	course, err := s.Repo.GetCourseByName(ctx, name)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Search(ctx context.Context, query string, from, size int) (int64, []models.Course, error) {
	if s.Index == nil {
		return 0, nil, ErrSearchUnavailable
	}
	return s.Index.Search(ctx, query, from, size)
}
