package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/internal/container"
	handlers "github.com/shoppy/storefront/internal/interface/http"
	"github.com/shoppy/storefront/internal/interface/middleware"
)

// ProductModule wires the catalog endpoints. Writes are rate-limited per IP;
// reads are public.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/addproduct", writeLimiter, m.Handler.AddProduct)
	rg.POST("/removeproduct", writeLimiter, m.Handler.RemoveProduct)
	rg.GET("/allproducts", m.Handler.AllProducts)
	rg.GET("/newcollections", m.Handler.NewCollections)
	rg.GET("/popularinwomen", m.Handler.PopularInWomen)
	rg.GET("/searchproducts", m.Handler.SearchProducts)
}
