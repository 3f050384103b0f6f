package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"refuge-connect/internal/web"
)

// registerRoutes sets up all pages and API endpoints
func (app *App) registerRoutes() error {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Pages
	app.router.GET("/", app.handleLandingPage)
	app.router.GET("/locations", app.handleLocationsPage)
	app.router.GET("/locations/grid", app.handleLocationGrid)
	app.router.GET("/assistance", app.handleAssistancePage)
	app.router.POST("/assistance/translate", app.handleTranslateForm)

	static, err := web.Static()
	if err != nil {
		return err
	}
	app.router.StaticFS("/static", static)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/locations", app.handleListLocations)
	api.GET("/helpers", app.handleListHelpers)
	api.GET("/languages", app.handleListLanguages)
	api.GET("/translations", app.handleGetTranslation)
	api.POST("/translations", app.handleStartTranslation)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	return nil
}
