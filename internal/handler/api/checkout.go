package api

import (
	"errors"
	"net/http"

	"dozzze-checkout/internal/domain/guest"
	reqdto "dozzze-checkout/internal/handler/dto/request"
	resdto "dozzze-checkout/internal/handler/dto/response"
	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Submit checkout
// @Description Validate guest details, stamp them onto every cart item and submit the reservation upstream
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitCheckoutRequest true "Guest details"
// @Success 200 {object} resdto.PaymentRedirectResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	authToken, ok := middleware.GetAuthToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), sessionID, authToken, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubmissionInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Submission already in progress", nil)
		case errors.Is(err, commands.ErrCartEmpty):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, commands.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Guest details invalid", fieldErrorDetail(err))
		case errors.Is(err, commands.ErrPaymentArgsMissing):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking server returned no payment arguments", nil)
		case errors.Is(err, commands.ErrSubmissionFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation submission failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentArgsView(&result.RedsysArgs))
}

// @Summary Get payment redirect arguments
// @Description Return the stored payment gateway arguments from the last successful submission
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentRedirectResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/payment [get]
func (h *CheckoutHandler) PaymentArgs(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.cmds.PaymentArgs(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, commands.ErrPaymentArgsNotReady) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No payment pending", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentArgsView(view))
}

// @Summary Confirm payment return
// @Description Relay the payment gateway return; a confirmed payment clears the cart
// @Tags checkout
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PaymentReturnRequest true "Payment outcome"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout/payment/return [post]
func (h *CheckoutHandler) PaymentReturn(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.PaymentReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ConfirmPaymentReturn(c.Request.Context(), sessionID, req.Success); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process payment return", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func fieldErrorDetail(err error) any {
	var fieldErrs guest.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}
