package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "markbook/internal/errors"
	"markbook/internal/grade"
	"markbook/internal/model"
)

// MarkRepository defines persistence operations for marks records.
type MarkRepository interface {
	// Upsert atomically creates or replaces the record for the
	// (studentEmail, courseCode) pair. The grade is recomputed from marks
	// here, on every write; any previously stored grade is overwritten.
	Upsert(ctx context.Context, studentEmail, courseCode string, marks float64) (*model.Mark, error)
	FindByStudent(ctx context.Context, studentEmail string) ([]model.Mark, error)
	FindByStudentAndCourse(ctx context.Context, studentEmail, courseCode string) (*model.Mark, error)
	FindByCourse(ctx context.Context, courseCode string) ([]model.Mark, error)
	List(ctx context.Context) ([]model.Mark, error)
	DeleteByStudent(ctx context.Context, studentEmail string) error
	Count(ctx context.Context) (int64, error)
}

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository builds a GORM-backed repository.
func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) Upsert(ctx context.Context, studentEmail, courseCode string, marks float64) (*model.Mark, error) {
	record := &model.Mark{
		StudentEmail: studentEmail,
		CourseCode:   courseCode,
		Marks:        marks,
		Grade:        grade.Of(marks),
	}

	// INSERT ... ON DUPLICATE KEY UPDATE on the compound unique index, so
	// concurrent writers for the same pair cannot create duplicate rows and
	// no read-then-write window exists.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_email"}, {Name: "course_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"marks", "grade", "updated_at"}),
		}).
		Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateMark
		}
		return nil, err
	}

	// re-read so the returned row carries the stored id and timestamps
	return r.FindByStudentAndCourse(ctx, studentEmail, courseCode)
}

func (r *markRepository) FindByStudent(ctx context.Context, studentEmail string) ([]model.Mark, error) {
	var marks []model.Mark
	if err := r.db.WithContext(ctx).Where("student_email = ?", studentEmail).Order("course_code asc").Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *markRepository) FindByStudentAndCourse(ctx context.Context, studentEmail, courseCode string) (*model.Mark, error) {
	var mark model.Mark
	if err := r.db.WithContext(ctx).Where("student_email = ? AND course_code = ?", studentEmail, courseCode).First(&mark).Error; err != nil {
		return nil, err
	}
	return &mark, nil
}

func (r *markRepository) FindByCourse(ctx context.Context, courseCode string) ([]model.Mark, error) {
	var marks []model.Mark
	if err := r.db.WithContext(ctx).Where("course_code = ?", courseCode).Order("marks desc").Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *markRepository) List(ctx context.Context) ([]model.Mark, error) {
	var marks []model.Mark
	if err := r.db.WithContext(ctx).Order("student_email asc, course_code asc").Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *markRepository) DeleteByStudent(ctx context.Context, studentEmail string) error {
	return r.db.WithContext(ctx).Where("student_email = ?", studentEmail).Delete(&model.Mark{}).Error
}

func (r *markRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Mark{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
