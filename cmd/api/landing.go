package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"refuge-connect/internal/web"
)

func (app *App) handleLandingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", web.NewLandingPage())
}
