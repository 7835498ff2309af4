package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints and pages
func (app *App) registerRoutes() {
	app.registerOperations(app.api)

	// Dashboard page
	app.router.GET("/", app.handleIndex)
	app.router.POST("/search", app.handleSearch)
	app.router.POST("/unit", app.handleSetUnit)

	// Swagger documentation, backed by the huma OpenAPI document
	registerSwaggerDoc(app.api)
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

// registerOperations registers the JSON operations on api
func (app *App) registerOperations(api huma.API) {
	// Health check endpoint
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Dashboard for a city",
		Description: "Geocode a city, fetch its forecast and return the formatted dashboard slots",
		Tags:        []string{"dashboard"},
	}, app.handleGetDashboard)

	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-point",
		Method:      http.MethodGet,
		Path:        "/dashboard/point",
		Summary:     "Dashboard for coordinates",
		Description: "Reverse geocode a coordinate pair, fetch its forecast and return the formatted dashboard slots",
		Tags:        []string{"dashboard"},
	}, app.handleGetDashboardPoint)

	huma.Register(api, huma.Operation{
		OperationID: "list-conditions",
		Method:      http.MethodGet,
		Path:        "/conditions",
		Summary:     "List weather conditions",
		Description: "List every known WMO weather code with its description and icon",
		Tags:        []string{"conditions"},
	}, app.handleListConditions)

	huma.Register(api, huma.Operation{
		OperationID: "get-condition",
		Method:      http.MethodGet,
		Path:        "/conditions/{code}",
		Summary:     "Classify a weather code",
		Description: "Classify any integer weather code. Unknown codes return the fallback condition.",
		Tags:        []string{"conditions"},
	}, app.handleGetCondition)

	huma.Register(api, huma.Operation{
		OperationID: "convert-temperature",
		Method:      http.MethodGet,
		Path:        "/convert",
		Summary:     "Convert a temperature",
		Description: "Convert a value into the target unit. The source unit is the other one.",
		Tags:        []string{"conditions"},
	}, app.handleConvert)

	huma.Register(api, huma.Operation{
		OperationID: "get-unit-preference",
		Method:      http.MethodGet,
		Path:        "/preferences/unit",
		Summary:     "Get the display unit",
		Tags:        []string{"preferences"},
	}, app.handleGetUnit)

	huma.Register(api, huma.Operation{
		OperationID: "set-unit-preference",
		Method:      http.MethodPut,
		Path:        "/preferences/unit",
		Summary:     "Set the display unit",
		Tags:        []string{"preferences"},
	}, app.handlePutUnit)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-unit-preference",
		Method:      http.MethodPost,
		Path:        "/preferences/unit/toggle",
		Summary:     "Toggle the display unit",
		Tags:        []string{"preferences"},
	}, app.handleToggleUnit)

	huma.Register(api, huma.Operation{
		OperationID: "get-about",
		Method:      http.MethodGet,
		Path:        "/about",
		Summary:     "About this dashboard",
		Tags:        []string{"about"},
	}, app.handleGetAbout)
}
