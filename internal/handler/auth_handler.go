package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// IssueToken godoc
// POST /jwt
// Signs a bearer token for the posted identity claims. Authentication of the
// identity itself happens upstream; this endpoint only mints the credential.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.TokenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.authService.IssueToken(req.Email, req.Name)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.TokenResponse{Token: token})
}
