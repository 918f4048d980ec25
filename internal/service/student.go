package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

const minStudentAgeYears = 9

type StudentService struct {
	Repo     *repo.GormRepo
	Events   events.Publisher
	Validate *validator.Validate
}

func (s *StudentService) Admit(ctx context.Context, req transport.CreateStudentRequest) (*models.Student, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth", ErrValidation)
	}
	if err := checkMinAge(dob); err != nil {
		return nil, err
	}

	student := models.Student{
		FullName:   req.FullName,
		WhatsApp:   req.WhatsApp,
		DOB:        dob,
		Address:    req.Address,
		Course:     req.Course,
		FatherName: req.FatherName,
		MotherName: req.MotherName,
		Religion:   req.Religion,
		Session:    req.Session,
	}

	if err := s.Repo.CreateStudent(ctx, &student); err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicStudentEvents, formatID(student.ID), map[string]any{
		"type":      "student_admitted",
		"studentID": student.ID,
		"course":    student.Course,
		"session":   student.Session,
	})

	return &student, nil
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.Repo.GetStudents(ctx)
}

func (s *StudentService) Update(ctx context.Context, id uint, req transport.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.Repo.GetStudentByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.WhatsApp != nil {
		student.WhatsApp = *req.WhatsApp
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", ErrValidation)
		}
		if err := checkMinAge(dob); err != nil {
			return nil, err
		}
		student.DOB = dob
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.FatherName != nil {
		student.FatherName = *req.FatherName
	}
	if req.MotherName != nil {
		student.MotherName = *req.MotherName
	}
	if req.Religion != nil {
		student.Religion = *req.Religion
	}
	if req.Session != nil {
		student.Session = *req.Session
	}

	if err := s.Repo.SaveStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteStudent(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	publish(ctx, s.Events, events.TopicStudentEvents, formatID(id), map[string]any{
		"type":      "student_deleted",
		"studentID": id,
	})
	return nil
}

func checkMinAge(dob time.Time) error {
	cutoff := time.Now().AddDate(-minStudentAgeYears, 0, 0)
	if dob.After(cutoff) {
		return fmt.Errorf("%w: student must be at least %d years old", ErrValidation, minStudentAgeYears)
	}
	return nil
}
