package handlers

import (
	"net/http"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/middleware"
	"clubsphere_backend/internal/services"
	"clubsphere_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:email", h.GetByEmail)
	}

	members := rg.Group("/members")
	members.Use(middleware.AuthMiddleware(), middleware.RequireCapability("members:read:self"))
	{
		members.GET("/overview", h.MemberOverview)
	}
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	email := c.Param("email")
	if email != identity.Email && !auth.IsAdmin(identity) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Cannot read another user's profile"))
		return
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) MemberOverview(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	overview, err := h.userService.MemberOverview(identity.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
