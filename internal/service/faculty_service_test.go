package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "markbook/internal/errors"
	"markbook/internal/grade"
	"markbook/internal/model"
)

const (
	facultyEmail = "faculty.cs@test.com"
	studentEmail = "student1@test.com"
)

func facultyUser(course string) *model.User {
	return &model.User{
		Email:          facultyEmail,
		Role:           model.RoleFaculty,
		Name:           "Dr. John Smith",
		AssignedCourse: course,
	}
}

func newFacultyService(userRepo *MockUserRepository, markRepo *MockMarkRepository, commentRepo *MockCommentRepository) FacultyService {
	return NewFacultyService(userRepo, markRepo, commentRepo, nil)
}

func TestFacultyService_AddMarks(t *testing.T) {
	tests := []struct {
		name          string
		courseCode    string
		setupMock     func(*MockUserRepository, *MockMarkRepository)
		expectedError error
		expectedGrade grade.Grade
	}{
		{
			name:       "successful upsert with lowercase course input",
			courseCode: "cs101",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
				u.On("FindByEmailAndRole", mock.Anything, studentEmail, model.RoleStudent).Return(&model.User{Email: studentEmail, Role: model.RoleStudent}, nil)
				m.On("Upsert", mock.Anything, studentEmail, "CS101", 85.0).Return(&model.Mark{
					StudentEmail: studentEmail,
					CourseCode:   "CS101",
					Marks:        85,
					Grade:        grade.Of(85),
				}, nil)
			},
			expectedGrade: grade.A,
		},
		{
			name:       "faculty record missing",
			courseCode: "CS101",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNoAssignedCourse,
		},
		{
			name:       "faculty has no assigned course",
			courseCode: "CS101",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser(""), nil)
			},
			expectedError: apperrors.ErrNoAssignedCourse,
		},
		{
			name:       "course other than the assigned one",
			courseCode: "MA102",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
			},
			expectedError: apperrors.ErrWrongCourse,
		},
		{
			name:       "student not found",
			courseCode: "CS101",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
				u.On("FindByEmailAndRole", mock.Anything, studentEmail, model.RoleStudent).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrStudentNotFound,
		},
		{
			name:       "duplicate key race surfaces as conflict",
			courseCode: "CS101",
			setupMock: func(u *MockUserRepository, m *MockMarkRepository) {
				u.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
				u.On("FindByEmailAndRole", mock.Anything, studentEmail, model.RoleStudent).Return(&model.User{Email: studentEmail, Role: model.RoleStudent}, nil)
				m.On("Upsert", mock.Anything, studentEmail, "CS101", 85.0).Return(nil, apperrors.ErrDuplicateMark)
			},
			expectedError: apperrors.ErrDuplicateMark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			markRepo := new(MockMarkRepository)
			tt.setupMock(userRepo, markRepo)

			svc := newFacultyService(userRepo, markRepo, new(MockCommentRepository))
			mark, err := svc.AddMarks(context.Background(), facultyEmail, studentEmail, tt.courseCode, 85)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, mark)
				if tt.expectedError != apperrors.ErrDuplicateMark {
					markRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGrade, mark.Grade)
				assert.Equal(t, "CS101", mark.CourseCode)
			}

			userRepo.AssertExpectations(t)
			markRepo.AssertExpectations(t)
		})
	}
}

func TestFacultyService_AddComment(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
	userRepo.On("FindByEmailAndRole", mock.Anything, studentEmail, model.RoleStudent).Return(&model.User{Email: studentEmail, Role: model.RoleStudent}, nil)
	// the course comes from the faculty row and the text is trimmed
	commentRepo.On("Upsert", mock.Anything, studentEmail, "CS101", facultyEmail, "Keep practicing algorithms.").Return(&model.Comment{
		StudentEmail: studentEmail,
		CourseCode:   "CS101",
		FacultyEmail: facultyEmail,
		Comment:      "Keep practicing algorithms.",
	}, nil)

	svc := newFacultyService(userRepo, new(MockMarkRepository), commentRepo)
	comment, err := svc.AddComment(context.Background(), facultyEmail, studentEmail, "  Keep practicing algorithms.  ")

	assert.NoError(t, err)
	assert.Equal(t, "CS101", comment.CourseCode)
	assert.Equal(t, facultyEmail, comment.FacultyEmail)
	userRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestFacultyService_AddComment_DuplicateRace(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
	userRepo.On("FindByEmailAndRole", mock.Anything, studentEmail, model.RoleStudent).Return(&model.User{Email: studentEmail, Role: model.RoleStudent}, nil)
	commentRepo.On("Upsert", mock.Anything, studentEmail, "CS101", facultyEmail, "Good progress.").Return(nil, apperrors.ErrDuplicateComment)

	svc := newFacultyService(userRepo, new(MockMarkRepository), commentRepo)
	comment, err := svc.AddComment(context.Background(), facultyEmail, studentEmail, "Good progress.")

	assert.ErrorIs(t, err, apperrors.ErrDuplicateComment)
	assert.Nil(t, comment)
}

func TestFacultyService_Statistics(t *testing.T) {
	t.Run("histogram and average", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		markRepo := new(MockMarkRepository)
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
		markRepo.On("FindByCourse", mock.Anything, "CS101").Return([]model.Mark{
			{Marks: 94, Grade: grade.S},
			{Marks: 85, Grade: grade.A},
			{Marks: 81, Grade: grade.A},
			{Marks: 40, Grade: grade.F},
		}, nil)

		svc := newFacultyService(userRepo, markRepo, new(MockCommentRepository))
		stats, err := svc.Statistics(context.Background(), facultyEmail)

		assert.NoError(t, err)
		assert.Equal(t, "CS101", stats.Course)
		assert.Equal(t, 4, stats.TotalStudents)
		assert.Equal(t, 75.0, stats.Average)
		assert.Equal(t, 1, stats.GradeDistribution[grade.S])
		assert.Equal(t, 2, stats.GradeDistribution[grade.A])
		assert.Equal(t, 1, stats.GradeDistribution[grade.F])
		assert.Equal(t, 0, stats.GradeDistribution[grade.B])
	})

	t.Run("empty course keeps the full zero histogram", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		markRepo := new(MockMarkRepository)
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
		markRepo.On("FindByCourse", mock.Anything, "CS101").Return([]model.Mark{}, nil)

		svc := newFacultyService(userRepo, markRepo, new(MockCommentRepository))
		stats, err := svc.Statistics(context.Background(), facultyEmail)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.TotalStudents)
		assert.Equal(t, 0.0, stats.Average)
		assert.Len(t, stats.GradeDistribution, len(grade.All))
		for _, g := range grade.All {
			assert.Equal(t, 0, stats.GradeDistribution[g])
		}
	})
}

func TestFacultyService_DeleteComment(t *testing.T) {
	t.Run("ownership triple must match", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		commentRepo := new(MockCommentRepository)
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
		commentRepo.On("DeleteOwned", mock.Anything, studentEmail, "CS101", facultyEmail).Return(apperrors.ErrCommentNotFound)

		svc := newFacultyService(userRepo, new(MockMarkRepository), commentRepo)
		err := svc.DeleteComment(context.Background(), facultyEmail, studentEmail)

		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
		commentRepo.AssertExpectations(t)
	})

	t.Run("deletes own comment", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		commentRepo := new(MockCommentRepository)
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(facultyUser("CS101"), nil)
		commentRepo.On("DeleteOwned", mock.Anything, studentEmail, "CS101", facultyEmail).Return(nil)

		svc := newFacultyService(userRepo, new(MockMarkRepository), commentRepo)
		assert.NoError(t, svc.DeleteComment(context.Background(), facultyEmail, studentEmail))
	})
}

func TestFacultyService_Course(t *testing.T) {
	t.Run("missing faculty record", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(nil, gorm.ErrRecordNotFound)

		svc := newFacultyService(userRepo, new(MockMarkRepository), new(MockCommentRepository))
		_, err := svc.Course(context.Background(), facultyEmail)

		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})

	t.Run("unnamed faculty gets a fallback display name", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		unnamed := facultyUser("CS101")
		unnamed.Name = ""
		userRepo.On("FindByEmailAndRole", mock.Anything, facultyEmail, model.RoleFaculty).Return(unnamed, nil)

		svc := newFacultyService(userRepo, new(MockMarkRepository), new(MockCommentRepository))
		course, err := svc.Course(context.Background(), facultyEmail)

		assert.NoError(t, err)
		assert.Equal(t, "CS101", course.AssignedCourse)
		assert.Equal(t, "Unknown Faculty", course.Name)
	})
}
