package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/internal/container"
	handlers "github.com/shoppy/storefront/internal/interface/http"
	"github.com/shoppy/storefront/internal/interface/middleware"
	"github.com/shoppy/storefront/pkg/helpers"
)

// CartModule wires the cart endpoints behind the auth gate.
// POST /addtocart, POST /removefromcart, POST /getcart
type CartModule struct {
	Handler *handlers.CartHandler
	Tokens  *helpers.TokenManager
}

func NewCartModule(h *handlers.CartHandler, tm *helpers.TokenManager) *CartModule {
	return &CartModule{Handler: h, Tokens: tm}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.FetchUser(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/addtocart", m.Handler.AddToCart)
		auth.POST("/removefromcart", m.Handler.RemoveFromCart)
		auth.POST("/getcart", m.Handler.GetCart)
	}
}
