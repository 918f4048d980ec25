package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/nsharma-dev/institute_admin/internal/models"
)

func (r *GormRepo) CreateStudent(ctx context.Context, student *models.Student) error {
	return r.DB.WithContext(ctx).Create(student).Error
}

func (r *GormRepo) GetStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *GormRepo) GetStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *GormRepo) SaveStudent(ctx context.Context, student *models.Student) error {
	return r.DB.WithContext(ctx).Save(student).Error
}

func (r *GormRepo) DeleteStudent(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Student{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
