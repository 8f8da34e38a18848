package controllers

import (
	"net/http"

	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// SearchController handles the search form and its result pages
type SearchController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSearchController creates a new search controller
func NewSearchController(ctx *gin.Context, container *container.ServiceContainer) *SearchController {
	return &SearchController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSearchFunc returns a Gin handler dispatching to a search method
func HandleSearchFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSearchController(ctx, container)

		switch method {
		case "show":
			controller.Show()
		case "search":
			controller.Search()
		default:
			ctx.String(http.StatusBadRequest, "invalid method")
		}
	}
}

// SearchRequest is the search form
type SearchRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// Show renders the search form
func (c *SearchController) Show() {
	views.Render(c.Ctx, http.StatusOK, "search.html", gin.H{"Title": "Search"})
}

// Search dispatches the query and renders the matching list view, or
// bounces back to the form with a notice when nothing matched.
func (c *SearchController) Search() {
	var req SearchRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		views.Render(c.Ctx, http.StatusBadRequest, "search.html", gin.H{"Title": "Search"})
		return
	}

	searchService := c.Container.GetService("search").(*services.SearchService)
	result, err := searchService.Search(req.Search, req.Category)
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	if result.Empty() {
		flash(c.Ctx, c.Container, "No results found.")
		c.Ctx.Redirect(http.StatusFound, "/search")
		return
	}

	switch result.Kind {
	case services.KindEvent:
		views.Render(c.Ctx, http.StatusOK, "events.html", gin.H{
			"Title":  "Search",
			"Events": result.Events,
		})
	default:
		views.Render(c.Ctx, http.StatusOK, "speakers.html", gin.H{
			"Title":    "Search",
			"Speakers": result.Speakers,
		})
	}
}
