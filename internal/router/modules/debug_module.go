package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/internal/container"
	"github.com/shoppy/storefront/internal/interface/middleware"
)

// DebugModule exposes expvar runtime stats. Off in production unless
// explicitly enabled; the endpoint is rate-limited and meant for operators,
// not the storefront frontends.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	if expvar.Get("app") == nil {
		expvar.NewString("app").Set(container.GetConfig().AppName)
	}
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
