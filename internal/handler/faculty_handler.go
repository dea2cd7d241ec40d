package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"markbook/internal/auth"
	"markbook/internal/service"
)

// FacultyHandler handles the course-scoped faculty endpoints. The acting
// faculty's email always comes from the verified identity on the context.
type FacultyHandler struct {
	facultyService service.FacultyService
}

// NewFacultyHandler creates a new faculty handler.
func NewFacultyHandler(facultyService service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

// AddMarksRequest represents a marks upsert request.
type AddMarksRequest struct {
	StudentEmail string   `json:"studentEmail" validate:"required,email"`
	CourseCode   string   `json:"courseCode" validate:"required"`
	Marks        *float64 `json:"marks" validate:"required,gte=0,lte=100"`
}

// AddCommentRequest represents a comment upsert request. The course is the
// faculty's assigned one, so the request does not name it.
type AddCommentRequest struct {
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	Comment      string `json:"comment" validate:"required,max=1000"`
}

// AddMarks godoc
// @Summary Add or update a student's marks for the assigned course
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddMarksRequest true "Marks data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /faculty/addMarks [post]
func (h *FacultyHandler) AddMarks(c echo.Context) error {
	var req AddMarksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity := auth.Identity(c)
	mark, err := h.facultyService.AddMarks(c.Request().Context(), identity.Email, req.StudentEmail, req.CourseCode, *req.Marks)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "marks updated successfully",
		"data":    mark,
	})
}

// AddComment godoc
// @Summary Add or update feedback for a student in the assigned course
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCommentRequest true "Comment data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/addComment [post]
func (h *FacultyHandler) AddComment(c echo.Context) error {
	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity := auth.Identity(c)
	comment, err := h.facultyService.AddComment(c.Request().Context(), identity.Email, req.StudentEmail, req.Comment)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "comment updated successfully",
		"data":    comment,
	})
}

// CourseMarks godoc
// @Summary List the assigned course's marks, highest score first
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /faculty/course/marks [get]
func (h *FacultyHandler) CourseMarks(c echo.Context) error {
	identity := auth.Identity(c)
	marks, course, err := h.facultyService.CourseMarks(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    marks,
		"course":  course,
	})
}

// Statistics godoc
// @Summary Count, average, and grade histogram of the assigned course
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /faculty/statistics [get]
func (h *FacultyHandler) Statistics(c echo.Context) error {
	identity := auth.Identity(c)
	stats, err := h.facultyService.Statistics(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": stats})
}

// Students godoc
// @Summary List all student identities
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /faculty/students [get]
func (h *FacultyHandler) Students(c echo.Context) error {
	students, err := h.facultyService.Students(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": students})
}

// DeleteComment godoc
// @Summary Delete the faculty's own comment for a student
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param studentEmail path string true "Student email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/deleteComment/{studentEmail} [delete]
func (h *FacultyHandler) DeleteComment(c echo.Context) error {
	identity := auth.Identity(c)
	if err := h.facultyService.DeleteComment(c.Request().Context(), identity.Email, c.Param("studentEmail")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "comment deleted successfully",
	})
}

// Comments godoc
// @Summary List the faculty's own comments in the assigned course
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /faculty/comments [get]
func (h *FacultyHandler) Comments(c echo.Context) error {
	identity := auth.Identity(c)
	comments, err := h.facultyService.Comments(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": comments})
}

// Course godoc
// @Summary The faculty's assigned course and display name
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/course [get]
func (h *FacultyHandler) Course(c echo.Context) error {
	identity := auth.Identity(c)
	course, err := h.facultyService.Course(c.Request().Context(), identity.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": course})
}
