package repo

import (
	"context"
	"errors"

	"github.com/nsharma-dev/institute_admin/internal/models"
)

var ErrDuplicateCourse = errors.New("course with this serial number already exists")

func (r *GormRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	tx := r.DB.WithContext(ctx).Where("serial_no = ?", course.SerialNo).FirstOrCreate(course)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateCourse
	}
	return nil
}

func (r *GormRepo) GetCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormRepo) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
