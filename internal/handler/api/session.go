package api

import (
	"net/http"

	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.CartCommands
}

func NewSessionHandler(cmds commands.CartCommands) *SessionHandler {
	return &SessionHandler{cmds: cmds}
}

// @Summary Logout
// @Description End the session; the cart never outlives the session that owns it
// @Tags session
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.ClearSession(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to end session", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
