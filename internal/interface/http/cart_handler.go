package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	cartapp "github.com/shoppy/storefront/internal/application"
	"github.com/shoppy/storefront/internal/interface/middleware"
	"github.com/shoppy/storefront/pkg/response"
)

type CartHandler struct {
	Svc    *cartapp.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *cartapp.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type cartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// AddToCart handles POST /addtocart.
func (h *CartHandler) AddToCart(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "itemId is required")
		return
	}
	if err := h.Svc.AddItem(c.Request.Context(), uid, req.ItemID); err != nil {
		if errors.Is(err, cartapp.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("add to cart failed")
		response.Err(c, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	response.Message(c, "Added to cart")
}

// RemoveFromCart handles POST /removefromcart.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "itemId is required")
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), uid, req.ItemID); err != nil {
		if errors.Is(err, cartapp.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("remove from cart failed")
		response.Err(c, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}
	response.Message(c, "Removed")
}

// GetCart handles POST /getcart and returns the raw cart map.
func (h *CartHandler) GetCart(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	cart, err := h.Svc.GetCart(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, cartapp.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("get cart failed")
		response.Err(c, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}
