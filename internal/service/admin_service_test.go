package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "markbook/internal/errors"
	"markbook/internal/model"
)

func newAdminService(userRepo *MockUserRepository, markRepo *MockMarkRepository, courseRepo *MockCourseRepository) AdminService {
	return NewAdminService(userRepo, markRepo, courseRepo, nil)
}

func TestAdminService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "creates a student",
			input: CreateUserInput{
				Email:    "New.Student@Test.com",
				Password: "password123",
				Role:     model.RoleStudent,
				Name:     "New Student",
			},
			setupMock: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "new.student@test.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
					return user.Email == "new.student@test.com" &&
						user.Role == model.RoleStudent &&
						user.AssignedCourse == ""
				})).Return(nil)
			},
		},
		{
			name: "admin accounts cannot be created here",
			input: CreateUserInput{
				Email:    "boss@test.com",
				Password: "password123",
				Role:     model.RoleAdmin,
			},
			setupMock:     func(u *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name: "faculty without a course",
			input: CreateUserInput{
				Email:    "prof@test.com",
				Password: "password123",
				Role:     model.RoleFaculty,
			},
			setupMock:     func(u *MockUserRepository) {},
			expectedError: apperrors.ErrCourseRequired,
		},
		{
			name: "duplicate email",
			input: CreateUserInput{
				Email:    "student1@test.com",
				Password: "password123",
				Role:     model.RoleStudent,
			},
			setupMock: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "student1@test.com").Return(&model.User{Email: "student1@test.com"}, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
			user, err := svc.CreateUser(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, user.PasswordHash)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAdminService_UpdateUser(t *testing.T) {
	id := uuid.New()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:    id,
			Email: "student1@test.com",
			Role:  model.RoleStudent,
			Name:  "Old Name",
		}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
			return user.Email == "student1@test.com" && user.Name == "New Name"
		})).Return(nil)

		name := "New Name"
		svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
		user, err := svc.UpdateUser(context.Background(), id, UpdateUserInput{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "student1@test.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("demoting faculty to student clears the assignment", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:             id,
			Email:          "faculty.cs@test.com",
			Role:           model.RoleFaculty,
			AssignedCourse: "CS101",
		}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
			return user.Role == model.RoleStudent && user.AssignedCourse == ""
		})).Return(nil)

		role := model.RoleStudent
		svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
		user, err := svc.UpdateUser(context.Background(), id, UpdateUserInput{Role: &role})

		assert.NoError(t, err)
		assert.Empty(t, user.AssignedCourse)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
		_, err := svc.UpdateUser(context.Background(), id, UpdateUserInput{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("invalid course for faculty", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(&model.User{
			ID:             id,
			Role:           model.RoleFaculty,
			AssignedCourse: "CS101",
		}, nil)

		code := "XX999"
		svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
		_, err := svc.UpdateUser(context.Background(), id, UpdateUserInput{AssignedCourse: &code})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCourse)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	id := uuid.New()

	t.Run("cascades the user's marks", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		markRepo := new(MockMarkRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Email: "student1@test.com", Role: model.RoleStudent}, nil)
		userRepo.On("Delete", mock.Anything, id).Return(nil)
		markRepo.On("DeleteByStudent", mock.Anything, "student1@test.com").Return(nil)

		svc := newAdminService(userRepo, markRepo, new(MockCourseRepository))
		err := svc.DeleteUser(context.Background(), id)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		markRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := newAdminService(userRepo, new(MockMarkRepository), new(MockCourseRepository))
		err := svc.DeleteUser(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAdminService_Statistics(t *testing.T) {
	userRepo := new(MockUserRepository)
	markRepo := new(MockMarkRepository)
	courseRepo := new(MockCourseRepository)

	userRepo.On("Count", mock.Anything).Return(int64(12), nil)
	userRepo.On("CountByRole", mock.Anything, model.RoleStudent).Return(int64(5), nil)
	userRepo.On("CountByRole", mock.Anything, model.RoleFaculty).Return(int64(6), nil)
	markRepo.On("Count", mock.Anything).Return(int64(3), nil)
	courseRepo.On("List", mock.Anything).Return([]model.Course{
		{Code: "CS101"},
		{Code: "MA102"},
	}, nil)
	markRepo.On("FindByCourse", mock.Anything, "CS101").Return([]model.Mark{
		{Marks: 90}, {Marks: 85},
	}, nil)
	markRepo.On("FindByCourse", mock.Anything, "MA102").Return([]model.Mark{}, nil)

	svc := newAdminService(userRepo, markRepo, courseRepo)
	stats, err := svc.Statistics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.TotalStudents)
	assert.Equal(t, int64(6), stats.TotalFaculty)
	assert.Equal(t, int64(3), stats.TotalMarks)
	assert.Equal(t, CourseStat{TotalStudents: 2, Average: 87.5}, stats.CourseStats["CS101"])
	assert.Equal(t, CourseStat{TotalStudents: 0, Average: 0}, stats.CourseStats["MA102"])
	userRepo.AssertExpectations(t)
	markRepo.AssertExpectations(t)
	courseRepo.AssertExpectations(t)
}
