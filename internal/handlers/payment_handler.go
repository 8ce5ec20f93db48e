package handlers

import (
	"net/http"

	"clubsphere_backend/internal/dto"
	"clubsphere_backend/internal/middleware"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	checkoutService services.CheckoutService
	paymentService  services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, checkoutService services.CheckoutService, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:     base,
		checkoutService: checkoutService,
		paymentService:  paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/checkout", middleware.RequireCapability("payments:initiate"), h.Checkout)
		payments.POST("/confirm", middleware.RequireCapability("payments:confirm"), h.Confirm)
		payments.GET("", h.History)
	}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.checkoutService.Initiate(c.Request.Context(), models.PaymentPurpose(req.Kind), req.TargetID, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	sessionID := c.Query("session_id")

	response, err := h.paymentService.Confirm(c.Request.Context(), sessionID, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) History(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	userEmail := c.Query("user_email")

	payments, total, err := h.paymentService.History(userEmail, identity, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}
