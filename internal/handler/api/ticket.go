package api

import (
	"net/http"
	"strconv"

	reqdto "ticketqueen/internal/handler/dto/request"
	resdto "ticketqueen/internal/handler/dto/response"
	"ticketqueen/internal/handler/httperr"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary List buyer tickets
// @Description Tickets owned by a buyer, newest first, with keyset pagination
// @Tags tickets
// @Produce json
// @Param buyerId path string true "Buyer ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.TicketListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/users/{buyerId}/tickets [get]
func (h *TicketHandler) ListByBuyer(c *gin.Context) {
	buyerID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid buyer id", nil)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByBuyer(c.Request.Context(), buyerID, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	res, err := resdto.FromTicketList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Use ticket
// @Description Mark a ticket as used by its owner. A ticket can be used once.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body reqdto.UseTicketRequest true "Use ticket request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/tickets/{id}/use [post]
func (h *TicketHandler) Use(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}
	var req reqdto.UseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.MarkUsed(c.Request.Context(), ticketID, req.BuyerID); err != nil {
		switch {
		case errs.Is(err, commands.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errs.Is(err, commands.ErrTicketForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Ticket belongs to another buyer", nil)
		case errs.Is(err, commands.ErrTicketAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Ticket already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "used"})
}
