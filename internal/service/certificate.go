package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type CertificateService struct {
	Repo     *repo.GormRepo
	Events   events.Publisher
	Validate *validator.Validate
}

func (s *CertificateService) Issue(ctx context.Context, req transport.CreateCertificateRequest) (*models.Certificate, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	cert := models.Certificate{
		Name:           req.Name,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		Course:         req.Course,
		RegistrationNo: req.RegistrationNo,
		Address:        req.Address,
		CenterName:     req.CenterName,
		Grade:          req.Grade,
	}

	if err := s.Repo.CreateCertificate(ctx, &cert); err != nil {
		if errors.Is(err, repo.ErrDuplicateCertificate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCertificateEvents, cert.RegistrationNo, map[string]any{
		"type":           "certificate_issued",
		"certificateID":  cert.ID,
		"registrationNo": cert.RegistrationNo,
		"course":         cert.Course,
	})

	return &cert, nil
}

func (s *CertificateService) Lookup(ctx context.Context, registrationNo string) (*models.Certificate, error) {
	cert, err := s.Repo.GetCertificateByRegistrationNo(ctx, registrationNo)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cert, nil
}
