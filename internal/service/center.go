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

type CenterService struct {
	Repo     *repo.GormRepo
	Events   events.Publisher
	Validate *validator.Validate
}

func (s *CenterService) Affiliate(ctx context.Context, req transport.CreateCenterRequest) (*models.CenterAffiliation, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	center := models.CenterAffiliation{
		Name:            req.Name,
		Address:         req.Address,
		CenterCode:      req.CenterCode,
		Qualification:   req.Qualification,
		SeatingCapacity: req.SeatingCapacity,
		Strength:        req.Strength,
		NoOfSystems:     req.NoOfSystems,
		NoOfClassrooms:  req.NoOfClassrooms,
		Office:          defaultYesNo(req.Office),
		ReceptionDesk:   defaultYesNo(req.ReceptionDesk),
		Toilet:          defaultYesNo(req.Toilet),
		Library:         defaultYesNo(req.Library),
		Website:         req.Website,
		ContactNo:       req.ContactNo,
	}

	if err := s.Repo.CreateCenter(ctx, &center); err != nil {
		if errors.Is(err, repo.ErrDuplicateCenter) {
			return nil, ErrConflict
		}
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCenterEvents, center.CenterCode, map[string]any{
		"type":       "center_affiliated",
		"centerID":   center.ID,
		"centerCode": center.CenterCode,
	})

	return &center, nil
}

func (s *CenterService) List(ctx context.Context) ([]models.CenterAffiliation, error) {
	return s.Repo.GetCenters(ctx)
}

func (s *CenterService) GetByCode(ctx context.Context, code string) (*models.CenterAffiliation, error) {
	center, err := s.Repo.GetCenterByCode(ctx, code)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return center, nil
}

func defaultYesNo(v string) string {
	if v == "" {
		return "no"
	}
	return v
}
