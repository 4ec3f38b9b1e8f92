package server

import (
	"github.com/gin-gonic/gin"

	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

// meHandler echoes the identity analyses are recorded under.
func meHandler(c *gin.Context) {
	respond.OK(c, gin.H{
		"userId":  middleware.UserIDFromContext(c),
		"isGuest": middleware.IsGuest(c),
	})
}
