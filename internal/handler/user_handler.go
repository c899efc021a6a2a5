package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chayachobi/summercamp-backend/internal/middleware"
	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/repository"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

// UserHandler handles registration, the user directory, and role management.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register godoc
// POST /users
// Stores account info after client-side registration/login. Idempotent: a
// repeat registration is a soft no-op that reports the account exists.
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !created {
		response.Success(c, http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// ListUsers godoc
// GET /allusers
// Lists every account. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListInstructors godoc
// GET /allinstructors
// Public instructor directory.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.userService.Instructors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// PopularInstructors godoc
// GET /popularinstructors
// Short public list of instructors for the landing page.
func (h *UserHandler) PopularInstructors(c *gin.Context) {
	instructors, err := h.userService.PopularInstructors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// CheckRole godoc
// GET /users/:role/:email
// Reports whether the caller's account holds the named role. The email must
// match the token: a mismatch returns the negative result immediately and
// never runs the lookup with the path email.
func (h *UserHandler) CheckRole(c *gin.Context) {
	role := model.Role(c.Param("role"))
	if !role.Valid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidRole)
		return
	}

	email := c.Param("email")
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	if claims.Email != email {
		// Hard stop on identity mismatch.
		response.Success(c, http.StatusOK, gin.H{string(role): false})
		return
	}

	ok, err := h.userService.HasRole(c.Request.Context(), email, role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{string(role): ok})
}

// Promote godoc
// PATCH /user/:role/:email
// Raises an account to admin or instructor. Admin only.
func (h *UserHandler) Promote(c *gin.Context) {
	role := model.Role(c.Param("role"))
	if role != model.RoleAdmin && role != model.RoleInstructor {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidRole)
		return
	}

	email := c.Param("email")
	if err := h.userService.Promote(c.Request.Context(), email, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"email": email, "role": role})
}
