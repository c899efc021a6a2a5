package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/repository"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

// EnrollmentHandler handles the selection workflow and the enrollment
// transition.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// ListSelections godoc
// GET /selectedclasses/:email
// Lists a student's pending selections.
func (h *EnrollmentHandler) ListSelections(c *gin.Context) {
	selections, err := h.enrollmentService.SelectionsFor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"selected_classes": selections})
}

// Select godoc
// POST /selectedclasses
// Records a student's intent to enroll in a class.
func (h *EnrollmentHandler) Select(c *gin.Context) {
	var req model.SelectClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	selection, err := h.enrollmentService.Select(c.Request.Context(), req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown class
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"selected_class": selection})
}

// DeleteSelection godoc
// DELETE /selectedclass/:id
// Removes a selection explicitly.
func (h *EnrollmentHandler) DeleteSelection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.enrollmentService.RemoveSelection(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if deleted == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

// ListEnrollments godoc
// GET /enrolledclasses/:email
// Lists a student's completed enrollments.
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.EnrollmentsFor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrolled_classes": enrollments})
}

// PayHistory godoc
// GET /payhistory/:email
// Lists a student's enrollments by payment date, most recent first.
func (h *EnrollmentHandler) PayHistory(c *gin.Context) {
	enrollments, err := h.enrollmentService.PayHistoryFor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": enrollments})
}

// Enroll godoc
// POST /enrolledclasses
// Converts a selection into a paid, seat-counted enrollment: one record,
// one seat taken, the selection consumed, all in one transaction.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClassNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrNoSeats):
			response.Fail(c, http.StatusConflict, response.ErrNoSeats)
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"enrolled_class": enrollment})
}
