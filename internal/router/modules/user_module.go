package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/internal/container"
	handlers "github.com/shoppy/storefront/internal/interface/http"
	"github.com/shoppy/storefront/internal/interface/middleware"
)

// UserModule wires the public identity endpoints.
// POST /signup, POST /login
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
