package handlers

import (
	"net/http"

	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/middleware"
	"clubsphere_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	*BaseHandler
	clubService  services.ClubService
	eventService services.EventService
}

func NewClubHandler(base *BaseHandler, clubService services.ClubService, eventService services.EventService) *ClubHandler {
	return &ClubHandler{
		BaseHandler:  base,
		clubService:  clubService,
		eventService: eventService,
	}
}

func (h *ClubHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clubs := rg.Group("/clubs")
	{
		clubs.GET("", h.List)
		clubs.GET("/featured", h.Featured)
		clubs.GET("/:id", h.Get)
		clubs.GET("/:id/events", h.ListEvents)
	}

	protected := rg.Group("/clubs")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireCapability("clubs:create"))
	{
		protected.POST("", h.Create)
	}

	admin := rg.Group("/admin/clubs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireCapability("clubs:approve"))
	{
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *ClubHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	response, err := h.clubService.ListApproved(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ClubHandler) Featured(c *gin.Context) {
	clubs, err := h.clubService.Featured()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.clubService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListByClub(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *ClubHandler) Create(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateClubRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	club, err := h.clubService.Create(&req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateClubStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.clubService.UpdateStatus(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Club status updated"})
}
