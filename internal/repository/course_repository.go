package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"markbook/internal/model"
)

// CourseRepository defines persistence operations for the course catalog.
// The catalog is reference data: written by the seed command, read-only
// everywhere else.
type CourseRepository interface {
	UpsertAll(ctx context.Context, courses []model.Course) error
	List(ctx context.Context) ([]model.Course, error)
	FindByCode(ctx context.Context, code string) (*model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository builds a GORM-backed repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) UpsertAll(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "credits", "updated_at"}),
		}).
		Create(&courses).Error
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("code asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
