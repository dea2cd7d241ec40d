package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"markbook/internal/cache"
	apperrors "markbook/internal/errors"
	"markbook/internal/grade"
	"markbook/internal/model"
	"markbook/internal/repository"
)

const (
	courseStatsCacheTTL       = 30 * time.Second
	courseStatsCacheKeyPrefix = "stats:course:"
)

// CourseStatistics summarizes the marks of a single course.
type CourseStatistics struct {
	Course            string              `json:"course"`
	TotalStudents     int                 `json:"totalStudents"`
	Average           float64             `json:"average"`
	GradeDistribution map[grade.Grade]int `json:"gradeDistribution"`
}

// FacultyCourse is the assignment info returned to a faculty member.
type FacultyCourse struct {
	AssignedCourse string `json:"assignedCourse,omitempty"`
	Name           string `json:"name"`
}

// FacultyService exposes the operations a faculty member may perform, all
// scoped to the single course assigned to them. The assigned course is read
// fresh from the store on every call rather than trusted from the token, so
// a reassignment or demotion takes effect immediately.
type FacultyService interface {
	AddMarks(ctx context.Context, facultyEmail, studentEmail, courseCode string, marks float64) (*model.Mark, error)
	AddComment(ctx context.Context, facultyEmail, studentEmail, comment string) (*model.Comment, error)
	CourseMarks(ctx context.Context, facultyEmail string) ([]model.Mark, string, error)
	Statistics(ctx context.Context, facultyEmail string) (*CourseStatistics, error)
	Students(ctx context.Context) ([]model.User, error)
	DeleteComment(ctx context.Context, facultyEmail, studentEmail string) error
	Comments(ctx context.Context, facultyEmail string) ([]model.Comment, error)
	Course(ctx context.Context, facultyEmail string) (*FacultyCourse, error)
}

type facultyService struct {
	userRepo    repository.UserRepository
	markRepo    repository.MarkRepository
	commentRepo repository.CommentRepository
	cache       *cache.Client
}

// NewFacultyService builds a FacultyService.
func NewFacultyService(
	userRepo repository.UserRepository,
	markRepo repository.MarkRepository,
	commentRepo repository.CommentRepository,
	cache *cache.Client,
) FacultyService {
	return &facultyService{
		userRepo:    userRepo,
		markRepo:    markRepo,
		commentRepo: commentRepo,
		cache:       cache,
	}
}

// assignedCourse loads the acting faculty's course from the store.
func (s *facultyService) assignedCourse(ctx context.Context, facultyEmail string) (string, error) {
	faculty, err := s.userRepo.FindByEmailAndRole(ctx, facultyEmail, model.RoleFaculty)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrNoAssignedCourse
		}
		return "", fmt.Errorf("load faculty: %w", err)
	}
	if faculty.AssignedCourse == "" {
		return "", apperrors.ErrNoAssignedCourse
	}
	return faculty.AssignedCourse, nil
}

// AddMarks upserts a student's marks. Checks run in order: assigned course,
// course match, student existence, then the atomic upsert.
func (s *facultyService) AddMarks(ctx context.Context, facultyEmail, studentEmail, courseCode string, marks float64) (*model.Mark, error) {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return nil, err
	}

	if assigned != strings.ToUpper(strings.TrimSpace(courseCode)) {
		return nil, apperrors.ErrWrongCourse
	}

	studentEmail = NormalizeEmail(studentEmail)
	if _, err := s.userRepo.FindByEmailAndRole(ctx, studentEmail, model.RoleStudent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("load student: %w", err)
	}

	mark, err := s.markRepo.Upsert(ctx, studentEmail, assigned, marks)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, courseStatsCacheKeyPrefix+assigned)
	_ = s.cache.Delete(ctx, systemStatsCacheKey)
	return mark, nil
}

// AddComment upserts feedback for a student. The course is always the
// faculty's assigned one; the request does not name a course.
func (s *facultyService) AddComment(ctx context.Context, facultyEmail, studentEmail, comment string) (*model.Comment, error) {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return nil, err
	}

	studentEmail = NormalizeEmail(studentEmail)
	if _, err := s.userRepo.FindByEmailAndRole(ctx, studentEmail, model.RoleStudent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("load student: %w", err)
	}

	return s.commentRepo.Upsert(ctx, studentEmail, assigned, facultyEmail, strings.TrimSpace(comment))
}

// CourseMarks returns all marks of the assigned course, highest score first.
func (s *facultyService) CourseMarks(ctx context.Context, facultyEmail string) ([]model.Mark, string, error) {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return nil, "", err
	}

	marks, err := s.markRepo.FindByCourse(ctx, assigned)
	if err != nil {
		return nil, "", err
	}
	return marks, assigned, nil
}

// Statistics returns count, average, and the grade histogram of the assigned
// course. The zero-mark shape keeps all six grade buckets at zero so clients
// always see the full histogram.
func (s *facultyService) Statistics(ctx context.Context, facultyEmail string) (*CourseStatistics, error) {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return nil, err
	}

	cacheKey := courseStatsCacheKeyPrefix + assigned
	if data, _ := s.cache.Get(ctx, cacheKey); data != nil {
		var cached CourseStatistics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	marks, err := s.markRepo.FindByCourse(ctx, assigned)
	if err != nil {
		return nil, err
	}

	stats := &CourseStatistics{
		Course:            assigned,
		TotalStudents:     len(marks),
		GradeDistribution: map[grade.Grade]int{},
	}
	for _, g := range grade.All {
		stats.GradeDistribution[g] = 0
	}

	if len(marks) > 0 {
		total := 0.0
		for _, m := range marks {
			total += m.Marks
			stats.GradeDistribution[m.Grade]++
		}
		stats.Average = roundTo2(total / float64(len(marks)))
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, cacheKey, payload, courseStatsCacheTTL)
	}
	return stats, nil
}

// Students lists every student identity, sorted by email.
func (s *facultyService) Students(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleStudent)
}

// DeleteComment removes the faculty's own comment for a student in the
// assigned course. All three key parts must match or the delete reports
// not-found.
func (s *facultyService) DeleteComment(ctx context.Context, facultyEmail, studentEmail string) error {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return err
	}
	return s.commentRepo.DeleteOwned(ctx, NormalizeEmail(studentEmail), assigned, facultyEmail)
}

// Comments lists the faculty's own comments in the assigned course.
func (s *facultyService) Comments(ctx context.Context, facultyEmail string) ([]model.Comment, error) {
	assigned, err := s.assignedCourse(ctx, facultyEmail)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.FindByCourseAndFaculty(ctx, assigned, facultyEmail)
}

// Course returns the faculty's assignment and display name.
func (s *facultyService) Course(ctx context.Context, facultyEmail string) (*FacultyCourse, error) {
	faculty, err := s.userRepo.FindByEmailAndRole(ctx, facultyEmail, model.RoleFaculty)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("load faculty: %w", err)
	}

	name := faculty.Name
	if name == "" {
		name = "Unknown Faculty"
	}
	return &FacultyCourse{AssignedCourse: faculty.AssignedCourse, Name: name}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
