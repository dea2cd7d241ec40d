package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"markbook/internal/auth"
	apperrors "markbook/internal/errors"
	"markbook/internal/model"
	"markbook/internal/repository"
)

const bcryptCost = 12

// ErrInvalidCredentials is returned when email or password is incorrect.
// The same error covers both an unknown email and a wrong password so login
// failures do not leak which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, role, name, assignedCourse string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// NormalizeEmail lowercases and trims an email the way every store key does.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with a hashed password. Self-registration
// accepts any of the three roles; faculty accounts must name a catalog course.
func (s *authService) Register(ctx context.Context, email, password, role, name, assignedCourse string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	assignedCourse = strings.ToUpper(strings.TrimSpace(assignedCourse))
	if role == model.RoleFaculty {
		if assignedCourse == "" {
			return nil, apperrors.ErrCourseRequired
		}
		if !model.ValidCourseCode(assignedCourse) {
			return nil, apperrors.ErrInvalidCourse
		}
	} else {
		// assignedCourse only means something for faculty
		assignedCourse = ""
	}

	email = NormalizeEmail(email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		PasswordHash:   string(hashedPassword),
		Role:           role,
		Name:           strings.TrimSpace(name),
		AssignedCourse: assignedCourse,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and issues a 24-hour identity token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		if errors.Is(err, auth.ErrMissingSecret) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
