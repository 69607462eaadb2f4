package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	prodapp "github.com/shoppy/storefront/internal/application"
	"github.com/shoppy/storefront/pkg/response"
	"github.com/shoppy/storefront/pkg/validation"
)

type ProductHandler struct {
	Svc    *prodapp.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *prodapp.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type addProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Category string  `json:"category" binding:"required"`
	NewPrice float64 `json:"new_price" binding:"required,gte=0"`
	OldPrice float64 `json:"old_price" binding:"required,gte=0"`
}

type removeProductRequest struct {
	ID int `json:"id" binding:"required"`
}

// AddProduct handles POST /addproduct.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validation.ToDetails(err)})
		return
	}
	p, err := h.Svc.Add(c.Request.Context(), prodapp.AddProductInput{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		h.Logger.WithError(err).Error("add product failed")
		response.Fail(c, http.StatusInternalServerError, "Error saving product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": p.Name})
}

// RemoveProduct handles POST /removeproduct.
func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	var req removeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validation.ToDetails(err)})
		return
	}
	p, err := h.Svc.Remove(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, prodapp.ErrProductNotFound) {
			response.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		h.Logger.WithError(err).Error("remove product failed")
		response.Fail(c, http.StatusInternalServerError, "Error removing product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": p.Name})
}

// AllProducts handles GET /allproducts.
func (h *ProductHandler) AllProducts(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list products failed")
		response.Err(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// NewCollections handles GET /newcollections.
func (h *ProductHandler) NewCollections(c *gin.Context) {
	products, err := h.Svc.NewCollections(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("new collections failed")
		response.Err(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// PopularInWomen handles GET /popularinwomen.
func (h *ProductHandler) PopularInWomen(c *gin.Context) {
	products, err := h.Svc.PopularInWomen(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("popular in women failed")
		response.Err(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /searchproducts?q=&size=.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Err(c, http.StatusBadRequest, "q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("product search failed")
		response.Err(c, http.StatusInternalServerError, "Search failed")
		return
	}
	c.JSON(http.StatusOK, hits)
}
