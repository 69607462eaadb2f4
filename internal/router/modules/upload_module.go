package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/internal/container"
	handlers "github.com/shoppy/storefront/internal/interface/http"
	"github.com/shoppy/storefront/internal/interface/middleware"
)

// UploadModule wires the product image upload endpoint.
type UploadModule struct {
	Handler *handlers.UploadHandler
}

func NewUploadModule(h *handlers.UploadHandler) *UploadModule {
	return &UploadModule{Handler: h}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.POST("/upload", limiter, m.Handler.Upload)
}
