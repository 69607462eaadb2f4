package router

import "github.com/gin-gonic/gin"

// Module is a storefront feature (identity, cart, catalog, upload) that
// installs its own routes and route-level middleware on a group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
