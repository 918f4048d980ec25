package repo

import (
	"context"
	"errors"

	"github.com/nsharma-dev/institute_admin/internal/models"
)

var ErrDuplicateCenter = errors.New("center with this code already exists")

func (r *GormRepo) CreateCenter(ctx context.Context, center *models.CenterAffiliation) error {
	tx := r.DB.WithContext(ctx).Where("center_code = ?", center.CenterCode).FirstOrCreate(center)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateCenter
	}
	return nil
}

func (r *GormRepo) GetCenters(ctx context.Context) ([]models.CenterAffiliation, error) {
	var centers []models.CenterAffiliation
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *GormRepo) GetCenterByCode(ctx context.Context, code string) (*models.CenterAffiliation, error) {
	var center models.CenterAffiliation
	if err := r.DB.WithContext(ctx).Where("center_code = ?", code).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}
