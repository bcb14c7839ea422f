package api

import (
	"net/http"

	"ticketqueen/internal/domain/cart"
	reqdto "ticketqueen/internal/handler/dto/request"
	resdto "ticketqueen/internal/handler/dto/response"
	"ticketqueen/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// CartHandler is stateless; the cart itself lives in the client.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// @Summary Reconcile cart
// @Description Clamp cart lines to the availability reported by a rejected purchase
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ReconcileCartRequest true "Cart and rejected lines"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/reconcile [post]
func (h *CartHandler) Reconcile(c *gin.Context) {
	var req reqdto.ReconcileCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err, "Invalid request")
		return
	}
	items, rejected := req.ToDomain()
	c.JSON(http.StatusOK, resdto.FromCart(cart.Reconcile(items, rejected)))
}
