package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"markbook/internal/auth"
	"markbook/internal/handler"
	"markbook/internal/model"
)

// Register wires routes and middleware. Each protected group carries the
// token check plus an explicit role predicate; course- and record-ownership
// checks live in the services behind these routes.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	facultyHandler *handler.FacultyHandler,
	studentHandler *handler.StudentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Admin routes
	admin := api.Group("/admin", auth.Required(jwtService), auth.RequireRole(model.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/marks", adminHandler.ListMarks)
	admin.GET("/statistics", adminHandler.Statistics)

	// Faculty routes
	faculty := api.Group("/faculty", auth.Required(jwtService), auth.RequireRole(model.RoleFaculty))
	faculty.POST("/addMarks", facultyHandler.AddMarks)
	faculty.POST("/addComment", facultyHandler.AddComment)
	faculty.GET("/course/marks", facultyHandler.CourseMarks)
	faculty.GET("/statistics", facultyHandler.Statistics)
	faculty.GET("/students", facultyHandler.Students)
	faculty.DELETE("/deleteComment/:studentEmail", facultyHandler.DeleteComment)
	faculty.GET("/comments", facultyHandler.Comments)
	faculty.GET("/course", facultyHandler.Course)

	// Student routes
	student := api.Group("/student", auth.Required(jwtService), auth.RequireRole(model.RoleStudent))
	student.GET("/marks", studentHandler.Marks)
	student.GET("/marks/:courseCode", studentHandler.CourseMark)
	student.GET("/comments", studentHandler.Comments)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
