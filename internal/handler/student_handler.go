package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"markbook/internal/auth"
	"markbook/internal/service"
)

// StudentHandler handles a student's read-only view of their own records.
// The student email is always the one from the verified identity; any email
// a client smuggles into query or body is never consulted.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Marks godoc
// @Summary The student's own marks across all courses
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /student/marks [get]
func (h *StudentHandler) Marks(c echo.Context) error {
	identity := auth.Identity(c)
	marks, err := h.studentService.Marks(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    marks,
		"student": identity.Email,
	})
}

// CourseMark godoc
// @Summary The student's own mark for a single course
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param courseCode path string true "Course code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /student/marks/{courseCode} [get]
func (h *StudentHandler) CourseMark(c echo.Context) error {
	identity := auth.Identity(c)
	mark, err := h.studentService.CourseMark(c.Request().Context(), identity.Email, c.Param("courseCode"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": mark})
}

// Comments godoc
// @Summary The student's own comments across all courses
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /student/comments [get]
func (h *StudentHandler) Comments(c echo.Context) error {
	identity := auth.Identity(c)
	comments, err := h.studentService.Comments(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    comments,
		"student": identity.Email,
	})
}
