package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"markbook/internal/cache"
	apperrors "markbook/internal/errors"
	"markbook/internal/model"
	"markbook/internal/repository"
)

const (
	systemStatsCacheTTL = time.Minute
	systemStatsCacheKey = "stats:system"
)

// CreateUserInput carries the fields of an admin user-creation request.
type CreateUserInput struct {
	Email          string
	Password       string
	Role           string
	Name           string
	AssignedCourse string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Email          *string
	Role           *string
	Name           *string
	AssignedCourse *string
}

// CourseStat is the per-course slice of the system statistics.
type CourseStat struct {
	TotalStudents int     `json:"totalStudents"`
	Average       float64 `json:"average"`
}

// SystemStatistics aggregates portal-wide counts and per-course averages.
type SystemStatistics struct {
	TotalUsers    int64                 `json:"totalUsers"`
	TotalStudents int64                 `json:"totalStudents"`
	TotalFaculty  int64                 `json:"totalFaculty"`
	TotalMarks    int64                 `json:"totalMarks"`
	CourseStats   map[string]CourseStat `json:"courseStats"`
}

// AdminService exposes account management and portal-wide reporting.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error)
	// DeleteUser removes the account and cascades deletion of that email's
	// marks. Comments are intentionally left in place.
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListMarks(ctx context.Context) ([]model.Mark, error)
	Statistics(ctx context.Context) (*SystemStatistics, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	markRepo   repository.MarkRepository
	courseRepo repository.CourseRepository
	cache      *cache.Client
}

// NewAdminService builds an AdminService.
func NewAdminService(
	userRepo repository.UserRepository,
	markRepo repository.MarkRepository,
	courseRepo repository.CourseRepository,
	cache *cache.Client,
) AdminService {
	return &adminService{
		userRepo:   userRepo,
		markRepo:   markRepo,
		courseRepo: courseRepo,
		cache:      cache,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser registers a student or faculty account on behalf of an admin.
// Admin accounts are not creatable through this path.
func (s *adminService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Role != model.RoleStudent && input.Role != model.RoleFaculty {
		return nil, apperrors.ErrInvalidRole
	}

	assignedCourse := strings.ToUpper(strings.TrimSpace(input.AssignedCourse))
	if input.Role == model.RoleFaculty {
		if assignedCourse == "" {
			return nil, apperrors.ErrCourseRequired
		}
		if !model.ValidCourseCode(assignedCourse) {
			return nil, apperrors.ErrInvalidCourse
		}
	} else {
		assignedCourse = ""
	}

	email := NormalizeEmail(input.Email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		PasswordHash:   string(hashedPassword),
		Role:           input.Role,
		Name:           strings.TrimSpace(input.Name),
		AssignedCourse: assignedCourse,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of input to an existing account.
func (s *adminService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if input.Email != nil {
		user.Email = NormalizeEmail(*input.Email)
	}
	if input.Role != nil {
		if !model.ValidRole(*input.Role) {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if user.Role == model.RoleFaculty {
		if input.AssignedCourse != nil {
			code := strings.ToUpper(strings.TrimSpace(*input.AssignedCourse))
			if !model.ValidCourseCode(code) {
				return nil, apperrors.ErrInvalidCourse
			}
			user.AssignedCourse = code
		}
	} else {
		user.AssignedCourse = ""
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.markRepo.DeleteByStudent(ctx, user.Email); err != nil {
		return fmt.Errorf("cascade marks: %w", err)
	}

	_ = s.cache.Delete(ctx, systemStatsCacheKey)
	return nil
}

func (s *adminService) ListMarks(ctx context.Context) ([]model.Mark, error) {
	return s.markRepo.List(ctx)
}

// Statistics reports portal-wide counts plus average and count for every
// catalog course.
func (s *adminService) Statistics(ctx context.Context) (*SystemStatistics, error) {
	if data, _ := s.cache.Get(ctx, systemStatsCacheKey); data != nil {
		var cached SystemStatistics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &SystemStatistics{CourseStats: map[string]CourseStat{}}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = s.userRepo.CountByRole(ctx, model.RoleStudent); err != nil {
		return nil, err
	}
	if stats.TotalFaculty, err = s.userRepo.CountByRole(ctx, model.RoleFaculty); err != nil {
		return nil, err
	}
	if stats.TotalMarks, err = s.markRepo.Count(ctx); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		marks, err := s.markRepo.FindByCourse(ctx, course.Code)
		if err != nil {
			return nil, err
		}
		stat := CourseStat{TotalStudents: len(marks)}
		if len(marks) > 0 {
			total := 0.0
			for _, m := range marks {
				total += m.Marks
			}
			stat.Average = roundTo2(total / float64(len(marks)))
		}
		stats.CourseStats[course.Code] = stat
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, systemStatsCacheKey, payload, systemStatsCacheTTL)
	}
	return stats, nil
}
