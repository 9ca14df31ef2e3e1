package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "dozzze-checkout/internal/handler/dto/request"
	resdto "dozzze-checkout/internal/handler/dto/response"
	"dozzze-checkout/internal/handler/httperr"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/usecase/commands"
	"dozzze-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the session cart with derived pricing totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Append a room selection to the session cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Room selection"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	if err := h.cmds.AddItem(c.Request.Context(), sessionID, in); err != nil {
		if errors.Is(err, commands.ErrInvalidLineItem) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid line item", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}

	h.respondWithCart(c, sessionID)
}

// @Summary Update cart item
// @Description Merge a partial update into the item at the given index
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Item index"
// @Param request body reqdto.UpdateCartItemRequest true "Partial item update"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/items/{index} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	index, err := parseIndex(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item index", nil)
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateItem(c.Request.Context(), sessionID, index, req.ToInput()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update item", nil)
		return
	}

	h.respondWithCart(c, sessionID)
}

// @Summary Remove cart item
// @Description Remove the item at the given index; later items shift down
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param index path int true "Item index"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	index, err := parseIndex(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item index", nil)
		return
	}

	if err := h.cmds.RemoveItem(c.Request.Context(), sessionID, index); err != nil {
		if errors.Is(err, commands.ErrItemOutOfRange) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}

	h.respondWithCart(c, sessionID)
}

// @Summary Clear cart
// @Description Wipe the session cart, discount and stored payment state
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.ClearSession(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondWithCart(c *gin.Context, sessionID uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func parseIndex(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}
