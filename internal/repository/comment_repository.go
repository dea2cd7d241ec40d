package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "markbook/internal/errors"
	"markbook/internal/model"
)

// CommentRepository defines persistence operations for faculty comments.
type CommentRepository interface {
	// Upsert atomically creates or replaces the comment for the
	// (studentEmail, courseCode) pair, overwriting text and author.
	Upsert(ctx context.Context, studentEmail, courseCode, facultyEmail, comment string) (*model.Comment, error)
	FindByStudent(ctx context.Context, studentEmail string) ([]model.Comment, error)
	FindByCourseAndFaculty(ctx context.Context, courseCode, facultyEmail string) ([]model.Comment, error)
	// DeleteOwned removes the comment only when student, course, and author
	// all match; a miss on any of the three reports not-found.
	DeleteOwned(ctx context.Context, studentEmail, courseCode, facultyEmail string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Upsert(ctx context.Context, studentEmail, courseCode, facultyEmail, comment string) (*model.Comment, error) {
	record := &model.Comment{
		StudentEmail: studentEmail,
		CourseCode:   courseCode,
		FacultyEmail: facultyEmail,
		Comment:      comment,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_email"}, {Name: "course_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"faculty_email", "comment", "updated_at"}),
		}).
		Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateComment
		}
		return nil, err
	}

	var stored model.Comment
	if err := r.db.WithContext(ctx).Where("student_email = ? AND course_code = ?", studentEmail, courseCode).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *commentRepository) FindByStudent(ctx context.Context, studentEmail string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("student_email = ?", studentEmail).Order("course_code asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByCourseAndFaculty(ctx context.Context, courseCode, facultyEmail string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("course_code = ? AND faculty_email = ?", courseCode, facultyEmail).Order("student_email asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) DeleteOwned(ctx context.Context, studentEmail, courseCode, facultyEmail string) error {
	res := r.db.WithContext(ctx).
		Where("student_email = ? AND course_code = ? AND faculty_email = ?", studentEmail, courseCode, facultyEmail).
		Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
