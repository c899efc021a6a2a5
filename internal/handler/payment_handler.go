package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

// PaymentHandler creates payment intents.
type PaymentHandler struct {
	paymentService *service.PaymentService
	log            zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, log: log}
}

// CreatePaymentIntent godoc
// POST /create-payment-intent
// Converts a decimal USD price into minor units and returns the provider's
// client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.log.Error().Err(err).Float64("price", req.Price).Msg("Payment intent creation failed")
		response.Fail(c, http.StatusBadGateway, response.ErrPaymentFailed)
		return
	}

	response.Success(c, http.StatusOK, model.PaymentIntentResponse{ClientSecret: clientSecret})
}
