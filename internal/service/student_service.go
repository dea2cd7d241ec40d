package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "markbook/internal/errors"
	"markbook/internal/model"
	"markbook/internal/repository"
)

// StudentService exposes a student's read-only view of their own records.
// Every operation takes the student email from the verified identity; there
// is deliberately no way to pass a different student's email in.
type StudentService interface {
	Marks(ctx context.Context, studentEmail string) ([]model.Mark, error)
	CourseMark(ctx context.Context, studentEmail, courseCode string) (*model.Mark, error)
	Comments(ctx context.Context, studentEmail string) ([]model.Comment, error)
}

type studentService struct {
	markRepo    repository.MarkRepository
	commentRepo repository.CommentRepository
}

// NewStudentService builds a StudentService.
func NewStudentService(markRepo repository.MarkRepository, commentRepo repository.CommentRepository) StudentService {
	return &studentService{
		markRepo:    markRepo,
		commentRepo: commentRepo,
	}
}

func (s *studentService) Marks(ctx context.Context, studentEmail string) ([]model.Mark, error) {
	return s.markRepo.FindByStudent(ctx, NormalizeEmail(studentEmail))
}

func (s *studentService) CourseMark(ctx context.Context, studentEmail, courseCode string) (*model.Mark, error) {
	mark, err := s.markRepo.FindByStudentAndCourse(ctx, NormalizeEmail(studentEmail), strings.ToUpper(strings.TrimSpace(courseCode)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarkNotFound
		}
		return nil, err
	}
	return mark, nil
}

func (s *studentService) Comments(ctx context.Context, studentEmail string) ([]model.Comment, error) {
	return s.commentRepo.FindByStudent(ctx, NormalizeEmail(studentEmail))
}
