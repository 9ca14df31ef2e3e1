package api

import (
	"errors"
	"net/http"

	reqdto "dozzze-checkout/internal/handler/dto/request"
	resdto "dozzze-checkout/internal/handler/dto/response"
	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	cmds commands.DiscountCommands
}

func NewDiscountHandler(cmds commands.DiscountCommands) *DiscountHandler {
	return &DiscountHandler{cmds: cmds}
}

// @Summary Apply discount code
// @Description Validate a coupon or voucher code upstream and activate it; any previously active code is replaced
// @Tags discount
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyDiscountRequest true "Discount code"
// @Success 200 {object} resdto.ApplyDiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/discount [post]
func (h *DiscountHandler) Apply(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Apply(c.Request.Context(), sessionID, req.GetCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid discount code", nil)
		case errors.Is(err, commands.ErrDiscountNotApplicable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount code not applicable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to apply discount", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyDiscountResult(result))
}

// @Summary Remove discount
// @Description Deactivate the currently active discount code
// @Tags discount
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /cart/discount [delete]
func (h *DiscountHandler) Remove(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Remove(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove discount", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
