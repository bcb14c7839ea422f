package api

import (
	"log/slog"
	"net/http"
	"time"

	reqdto "ticketqueen/internal/handler/dto/request"
	resdto "ticketqueen/internal/handler/dto/response"
	"ticketqueen/internal/handler/httperr"
	"ticketqueen/internal/handler/middleware"
	"ticketqueen/internal/pkg/config"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	cmds       commands.PurchaseCommands
	retryAfter time.Duration
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, cfg config.Config) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, retryAfter: cfg.Purchase.RetryAfter}
}

// @Summary Submit purchase
// @Description Reserve every line of a cart atomically and issue tickets. Retrying with the same requestId returns the original tickets.
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 200 {object} resdto.PurchaseCommittedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.PurchaseRejectedResponse
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/purchase [post]
func (h *PurchaseHandler) Submit(c *gin.Context) {
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err, "Invalid request")
		return
	}

	outcome, err := h.cmds.SubmitPurchase(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abort(c, err)
		return
	}

	if !outcome.IsCommitted() {
		c.JSON(http.StatusConflict, resdto.FromRejectedOutcome(outcome))
		return
	}
	if outcome.Replayed {
		slog.Info("purchase replayed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("purchase_request_id", outcome.RequestID.String()),
		)
	}
	c.JSON(http.StatusOK, resdto.FromCommittedOutcome(outcome))
}

func (h *PurchaseHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrMalformedRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed purchase request", err.Error())
	case errs.Is(err, commands.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errs.Is(err, commands.ErrRequestIDConflict):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Request id already used for a different purchase", nil)
	case errs.Is(err, commands.ErrLockTimeout):
		httperr.AbortUnavailable(c, err, "Events are busy, retry shortly", nil, h.retryAfter)
	case errs.Is(err, commands.ErrEventQuarantined):
		var detail any
		var q *commands.QuarantinedError
		if errs.As(err, &q) {
			detail = gin.H{"eventIds": q.EventIDs}
		}
		httperr.AbortUnavailable(c, err, "Event temporarily unavailable", detail, h.retryAfter)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Purchase failed", nil)
	}
}
