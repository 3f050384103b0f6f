package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"refuge-connect/internal/types"
	"refuge-connect/internal/web"
)

// ListLocationsInput defines the query parameters for listing locations
type ListLocationsInput struct {
	Filter string `form:"filter"` // Case-insensitive substring of the location name
}

// LocationResponse is the JSON form of a location
type LocationResponse struct {
	ID               int      `json:"id" example:"2"`
	Name             string   `json:"name" example:"Paris, France"`
	Distance         int      `json:"distance" example:"878"`
	IsWelcoming      bool     `json:"isWelcoming" example:"true"`
	Image            string   `json:"image"`
	Languages        []string `json:"languages"`
	HealthcareAccess string   `json:"healthcareAccess" example:"Good"`
	JobOpportunities string   `json:"jobOpportunities" example:"Medium"`
	Timezone         string   `json:"timezone,omitempty" example:"Europe/Paris"`
}

func newLocationResponse(l types.Location) LocationResponse {
	return LocationResponse{
		ID:               l.ID,
		Name:             l.Name,
		Distance:         l.Distance,
		IsWelcoming:      l.IsWelcoming,
		Image:            l.Image,
		Languages:        l.Languages,
		HealthcareAccess: l.HealthcareAccess.String(),
		JobOpportunities: l.JobOpportunities.String(),
		Timezone:         l.Timezone,
	}
}

func (app *App) handleLocationsPage(c *gin.Context) {
	var input ListLocationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.HTML(http.StatusOK, "locations.html", web.NewLocationsPage(input.Filter, app.locationService.List(input.Filter)))
}

// handleLocationGrid renders only the result grid, for in-page filtering
func (app *App) handleLocationGrid(c *gin.Context) {
	var input ListLocationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.HTML(http.StatusOK, "location_grid", web.NewLocationsPage(input.Filter, app.locationService.List(input.Filter)))
}

// handleListLocations godoc
// @Summary List locations
// @Description List safe locations whose name contains the filter, case-insensitively, in catalog order
// @Tags locations
// @Produce json
// @Param filter query string false "Substring of the location name" example(berlin)
// @Success 200 {array} LocationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/locations [get]
func (app *App) handleListLocations(c *gin.Context) {
	var input ListLocationsInput

	// Bind query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	locations := app.locationService.List(input.Filter)

	resp := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, newLocationResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}
