package api

import (
	"net/http"

	reqdto "dozzze-checkout/internal/handler/dto/request"
	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.BookingQueries
}

func NewAvailabilityHandler(q queries.BookingQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Search availability
// @Description Search room availability and rates for a stay window
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilitySearchRequest true "Search criteria"
// @Success 200 {array} queries.AvailabilityDayView
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /availability [post]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var req reqdto.AvailabilitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	days, err := h.q.SearchAvailability(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Availability lookup failed", nil)
		return
	}
	c.JSON(http.StatusOK, days)
}
