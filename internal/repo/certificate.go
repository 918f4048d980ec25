package repo

import (
	"context"
	"errors"

	"github.com/nsharma-dev/institute_admin/internal/models"
)

var ErrDuplicateCertificate = errors.New("certificate with this registration number already exists")

func (r *GormRepo) CreateCertificate(ctx context.Context, cert *models.Certificate) error {
	tx := r.DB.WithContext(ctx).Where("registration_no = ?", cert.RegistrationNo).FirstOrCreate(cert)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateCertificate
	}
	return nil
}

func (r *GormRepo) GetCertificateByRegistrationNo(ctx context.Context, registrationNo string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.DB.WithContext(ctx).Where("registration_no = ?", registrationNo).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}
