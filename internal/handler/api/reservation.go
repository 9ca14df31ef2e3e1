package api

import (
	"net/http"

	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	q queries.BookingQueries
}

func NewReservationHandler(q queries.BookingQueries) *ReservationHandler {
	return &ReservationHandler{q: q}
}

// @Summary List my reservations
// @Description List the confirmed reservations of the current session's user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/my [get]
func (h *ReservationHandler) My(c *gin.Context) {
	authToken, ok := middleware.GetAuthToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	reservations, err := h.q.MyReservations(c.Request.Context(), authToken)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation lookup failed", nil)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
