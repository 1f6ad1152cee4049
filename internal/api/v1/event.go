package v1

import (
	"net/http"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
	logger       *logger.Logger
}

func NewEventHandler(eventService service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// @Summary Create a sale event
// @Description Adds a sale event coupons can be associated with
// @Tags Events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event request"
// @Success 201 {object} dto.ListEventsResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /admin/events [post]
// @Security BearerAuth
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary List sale events
// @Description Lists all sale events
// @Tags Events
// @Produce json
// @Success 200 {object} dto.ListEventsResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	response, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
