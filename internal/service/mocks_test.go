package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"markbook/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockMarkRepository is a mock implementation of MarkRepository.
type MockMarkRepository struct {
	mock.Mock
}

func (m *MockMarkRepository) Upsert(ctx context.Context, studentEmail, courseCode string, marks float64) (*model.Mark, error) {
	args := m.Called(ctx, studentEmail, courseCode, marks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mark), args.Error(1)
}

func (m *MockMarkRepository) FindByStudent(ctx context.Context, studentEmail string) ([]model.Mark, error) {
	args := m.Called(ctx, studentEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mark), args.Error(1)
}

func (m *MockMarkRepository) FindByStudentAndCourse(ctx context.Context, studentEmail, courseCode string) (*model.Mark, error) {
	args := m.Called(ctx, studentEmail, courseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mark), args.Error(1)
}

func (m *MockMarkRepository) FindByCourse(ctx context.Context, courseCode string) ([]model.Mark, error) {
	args := m.Called(ctx, courseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mark), args.Error(1)
}

func (m *MockMarkRepository) List(ctx context.Context) ([]model.Mark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mark), args.Error(1)
}

func (m *MockMarkRepository) DeleteByStudent(ctx context.Context, studentEmail string) error {
	args := m.Called(ctx, studentEmail)
	return args.Error(0)
}

func (m *MockMarkRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Upsert(ctx context.Context, studentEmail, courseCode, facultyEmail, comment string) (*model.Comment, error) {
	args := m.Called(ctx, studentEmail, courseCode, facultyEmail, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByStudent(ctx context.Context, studentEmail string) ([]model.Comment, error) {
	args := m.Called(ctx, studentEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByCourseAndFaculty(ctx context.Context, courseCode, facultyEmail string) ([]model.Comment, error) {
	args := m.Called(ctx, courseCode, facultyEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteOwned(ctx context.Context, studentEmail, courseCode, facultyEmail string) error {
	args := m.Called(ctx, studentEmail, courseCode, facultyEmail)
	return args.Error(0)
}

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) UpsertAll(ctx context.Context, courses []model.Course) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

func (m *MockCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}
