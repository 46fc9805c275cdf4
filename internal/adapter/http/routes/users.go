package routes

import (
	"elo_drinks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers = "/users"
	PathAuth  = "/auth"
)

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, authed, admin gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/token", userHandler.Token)
	}

	users := rg.Group(PathUsers)
	{
		// Self registration is public; admin role requests are downgraded
		// unless the caller is itself an admin.
		users.POST("/create", userHandler.Register)

		users.GET("", authed, admin, userHandler.ListUsers)
		users.GET("/:id", authed, admin, userHandler.GetUser)
		users.PATCH("/:id/active", authed, admin, userHandler.SetUserActive)
	}
}
