package main

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"weather-dash/internal/dashboard"
	"weather-dash/internal/types"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	notFoundMessage = "City not found. Please try another name."
	failureMessage  = "Something went wrong. Please try again later."
)

func loadTemplates(router *gin.Engine) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)
	return nil
}

// pageData is the template context for index.html
type pageData struct {
	City  string
	Unit  types.Unit
	View  *dashboard.View
	Error string
	About string
}

// handleIndex renders the dashboard for ?city=, or the configured default city
func (app *App) handleIndex(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		city = app.cfg.App.DefaultCity
	}

	data := pageData{
		City:  city,
		Unit:  app.dashboard.Preference().Get(),
		About: app.dashboard.About(),
	}

	view, err := app.dashboard.ByCity(c.Request.Context(), city, "")
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case dashboard.IsNotFound(err):
			status = http.StatusNotFound
			data.Error = notFoundMessage
		case dashboard.IsBadInput(err):
			status = http.StatusBadRequest
			data.Error = err.Error()
		default:
			app.logger.Error("failed to render dashboard page", "city", city, "error", err)
			data.Error = failureMessage
		}
		c.HTML(status, "index.html", data)
		return
	}

	// The toggle reflects the unit the view was rendered in, even if the
	// preference changed in between
	data.View = view
	data.Unit = view.Unit
	c.HTML(http.StatusOK, "index.html", data)
}

// handleSearch redirects to the page for the submitted city. An empty search
// leaves the current page as it is.
func (app *App) handleSearch(c *gin.Context) {
	city := strings.TrimSpace(c.PostForm("city"))
	if city == "" {
		c.Redirect(http.StatusSeeOther, pageURL(c.PostForm("current")))
		return
	}
	c.Redirect(http.StatusSeeOther, pageURL(city))
}

// handleSetUnit stores the submitted unit and returns to the city being viewed
func (app *App) handleSetUnit(c *gin.Context) {
	unit, err := types.ParseUnit(c.PostForm("unit"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if app.dashboard.Preference().Set(unit) {
		app.logger.Info("unit preference changed", "unit", unit)
	}
	c.Redirect(http.StatusSeeOther, pageURL(c.PostForm("city")))
}

func pageURL(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return "/"
	}
	return "/?city=" + url.QueryEscape(city)
}
