package handlers

import (
	"net/http"

	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/middleware"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService    services.EventService
	checkoutService services.CheckoutService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService, checkoutService services.CheckoutService) *EventHandler {
	return &EventHandler{
		BaseHandler:     base,
		eventService:    eventService,
		checkoutService: checkoutService,
	}
}

func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
	}

	member := rg.Group("/events")
	member.Use(middleware.AuthMiddleware(), middleware.RequireCapability("payments:initiate"))
	{
		member.POST("/:id/register", h.Register)
	}

	protected := rg.Group("/events")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireCapability("events:create"))
	{
		protected.POST("", h.Create)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	response, err := h.eventService.List(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Register starts an event registration. Free events are granted directly;
// paid events return the hosted checkout URL.
func (h *EventHandler) Register(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	response, err := h.checkoutService.Initiate(c.Request.Context(), models.PaymentPurposeEvent, c.Param("id"), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) Create(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(&req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}
