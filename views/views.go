package views

import (
	"embed"
	"html/template"
	"net/http"

	"event-feedback-service/middleware"
	"event-feedback-service/services"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var sessions *services.SessionService

// Init wires the renderer to the session service for flash notices
func Init(s *services.SessionService) {
	sessions = s
}

// Templates parses the embedded template set
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Render draws a page template with the current user and any pending
// flash notices merged into its data. Flashes are only consumed here,
// so a redirect chain delivers them to the page that finally renders.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user := middleware.CurrentUser(c); user != nil {
		data["CurrentUser"] = user
	}
	if sid := middleware.SessionID(c); sid != "" && sessions != nil {
		if flashes, err := sessions.PopFlashes(sid); err == nil && len(flashes) > 0 {
			data["Flashes"] = flashes
		}
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page
func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}
