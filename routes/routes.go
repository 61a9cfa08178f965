package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/controllers"
)

// Controllers groups everything RegisterRoutes wires up.
type Controllers struct {
	Status     *controllers.StatusController
	Devotional *controllers.DevotionalController
	Progress   *controllers.ProgressController
	Product    *controllers.ProductController
	Order      *controllers.OrderController
	User       *controllers.UserController
}

// RegisterRoutes registers all service routes.
func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.Status.Root)
	r.GET("/status", ctrl.Status.Status)
	r.GET("/schema", ctrl.Status.Schema)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	{
		devotionals := api.Group("/devotionals")
		{
			devotionals.GET("/today", ctrl.Devotional.Today)
			devotionals.GET("", ctrl.Devotional.ByDay)
			devotionals.POST("", ctrl.Devotional.Create)
		}

		progress := api.Group("/progress")
		{
			progress.POST("/complete", ctrl.Progress.Complete)
			progress.GET("/stats", ctrl.Progress.Stats)
		}
		api.GET("/rewards", ctrl.Progress.Rewards)

		products := api.Group("/products")
		{
			products.GET("", ctrl.Product.List)
			products.POST("", ctrl.Product.Create)
		}

		api.POST("/orders", ctrl.Order.Create)

		users := api.Group("/users")
		{
			users.POST("", ctrl.User.Create)
			users.GET("/:id", ctrl.User.Get)
		}
	}
}
