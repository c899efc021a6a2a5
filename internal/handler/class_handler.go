package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/repository"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

// ClassHandler handles the class catalog.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// AddClass godoc
// POST /addclass
// Submits a new class for admin review. Instructor only.
func (h *ClassHandler) AddClass(c *gin.Context) {
	var req model.AddClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.classService.Add(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// ListClasses godoc
// GET /allclasses
// Lists every class regardless of status. Admin only.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.All(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// ListApproved godoc
// GET /approvedclasses
// Public catalog of approved classes.
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classService.Approved(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// ListPopular godoc
// GET /popularclasses
// Approved classes with the most enrollments.
func (h *ClassHandler) ListPopular(c *gin.Context) {
	classes, err := h.classService.Popular(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// MyClasses godoc
// GET /myclasses/:email
// Lists an instructor's own classes in every status. Instructor only.
func (h *ClassHandler) MyClasses(c *gin.Context) {
	classes, err := h.classService.ByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// Approve godoc
// PATCH /class/approve/:id
// Moves a pending class to approved. Admin only.
func (h *ClassHandler) Approve(c *gin.Context) {
	h.setStatus(c, model.ClassStatusApproved)
}

// Deny godoc
// PATCH /class/deny/:id
// Moves a pending class to denied. Admin only.
func (h *ClassHandler) Deny(c *gin.Context) {
	h.setStatus(c, model.ClassStatusDenied)
}

func (h *ClassHandler) setStatus(c *gin.Context, status model.ClassStatus) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if status == model.ClassStatusApproved {
		err = h.classService.Approve(c.Request.Context(), id)
	} else {
		err = h.classService.Deny(c.Request.Context(), id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": status})
}

// Feedback godoc
// PATCH /classes/feedback/:id
// Attaches admin feedback to a class. Admin only.
func (h *ClassHandler) Feedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.FeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.classService.Feedback(c.Request.Context(), id, req.Feedback); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "feedback": req.Feedback})
}
