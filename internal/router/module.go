package router

import "github.com/gin-gonic/gin"

// Module is one registrable slice of the API surface: the session
// lifecycle routes, the journal routes, or the healthcheck. Register
// receives the shared /api group and attaches routes plus any
// route-scoped middleware (rate limits, the auth gate).
type Module interface {
	Register(rg *gin.RouterGroup)
}
