package main

import (
	"art-portfolio-back/config"
	"art-portfolio-back/database"
	routes "art-portfolio-back/internal/app/http"
	"art-portfolio-back/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	db := database.Init()
	st := store.NewGormStore(db)

	// Request models are strict: unknown JSON fields are rejected.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORS_ORIGINS,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	routes.RegisterRoutes(r, st)

	r.Run(":" + config.PORT)
}
