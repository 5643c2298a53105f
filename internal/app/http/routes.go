package routes

import (
	"net/http"

	"art-portfolio-back/internal/api/artworks"
	"art-portfolio-back/internal/api/dashboard"
	"art-portfolio-back/internal/api/favorites"
	"art-portfolio-back/internal/app/http/middleware"
	"art-portfolio-back/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st store.Store) {
	artworks.RegisterValidators()

	aw := artworks.NewHandler(st)
	fv := favorites.NewHandler(st)
	dash := dashboard.NewHandler(st)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Art portfolio server is running")
	})

	// Write routes get their JSON bodies sanitized before binding.
	api := r.Group("/")
	api.Use(middleware.SanitizeInputMiddleware())

	api.POST("/artworks", aw.Create)
	api.GET("/artworks", aw.List)
	api.GET("/artworks/featured", aw.Featured)
	api.GET("/artworks/:id", aw.GetByID)
	api.PATCH("/artworks/:id", aw.Update)
	api.PATCH("/artworks/:id/like", aw.ToggleLike)
	api.DELETE("/artworks/:id", aw.Delete)

	api.POST("/favorites", fv.Add)
	api.GET("/favorites", fv.List)
	api.DELETE("/favorites/:id", fv.Delete)

	api.GET("/dashboard/stats", dash.Stats)
	api.GET("/dashboard/recent-artworks", dash.RecentArtworks)
	api.GET("/dashboard/category-stats", dash.CategoryStats)
}
