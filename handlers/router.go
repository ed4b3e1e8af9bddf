package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router. Band CRUD is public,
// matching the original surface; the user resource sits behind bearer auth.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/users/new/", h.Register)
		authRoutes.POST("/token/", h.Login)
		authRoutes.GET("/users/me/", h.RequireAuth(), h.Me)
	}

	band := v1.Group("/band")
	{
		band.POST("/create", h.CreateBand)
		band.GET("/", h.GetBands)
		band.GET("/:id", h.GetBandByID)
		band.PATCH("/update", h.UpdateBand)
		band.DELETE("/delete", h.DeleteBand)
	}

	user := v1.Group("/user", h.RequireAuth())
	{
		user.POST("/create", h.CreateUser)
		user.GET("/", h.GetUsers)
		user.GET("/:id", h.GetUserByID)
		user.PATCH("/update", h.UpdateUser)
		user.DELETE("/delete", h.DeleteUser)
	}
}
