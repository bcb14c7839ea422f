package api

import (
	"net/http"

	reqdto "ticketqueen/internal/handler/dto/request"
	resdto "ticketqueen/internal/handler/dto/response"
	"ticketqueen/internal/handler/httperr"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	cmds commands.EventCommands
	q    queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary List events
// @Description Availability snapshot of every event
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Failure 500 {object} httperr.Response
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	res, err := resdto.FromEventList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get event
// @Description Availability snapshot of one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	res, err := resdto.FromEventView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create event
// @Description Create an event with a fixed capacity
// @Tags events
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", err.Error())
		return
	}
	snap, err := h.cmds.CreateEvent(c.Request.Context(), in)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidEvent) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event", err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create event failed", nil)
		return
	}
	res, err := resdto.FromEventSnapshot(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}
