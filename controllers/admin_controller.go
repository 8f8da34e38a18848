package controllers

import (
	"errors"
	"net/http"

	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// AdminController handles the user dashboard and the role toggles
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAdminFunc returns a Gin handler dispatching to an admin method
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "listUsers":
			controller.ListUsers()
		case "toggleAdmin":
			controller.ToggleAdmin()
		case "toggleEditor":
			controller.ToggleEditor()
		case "toggleVerified":
			controller.ToggleVerified()
		default:
			ctx.String(http.StatusBadRequest, "invalid method")
		}
	}
}

// ListUsers renders the dashboard with every account and its roles
func (c *AdminController) ListUsers() {
	userService := c.Container.GetService("user").(*services.UserService)
	users, err := userService.ListAll()
	if err != nil {
		serverError(c.Ctx, err)
		return
	}
	views.Render(c.Ctx, http.StatusOK, "admin.html", gin.H{
		"Title": "Admin Dashboard",
		"Users": users,
	})
}

// ToggleAdmin flips the admin role of the named account
func (c *AdminController) ToggleAdmin() {
	c.toggle(func(s *services.UserService, username string) error {
		_, err := s.ToggleAdmin(username)
		return err
	})
}

// ToggleEditor flips the editor role of the named account
func (c *AdminController) ToggleEditor() {
	c.toggle(func(s *services.UserService, username string) error {
		_, err := s.ToggleEditor(username)
		return err
	})
}

// ToggleVerified flips the verified role of the named account
func (c *AdminController) ToggleVerified() {
	c.toggle(func(s *services.UserService, username string) error {
		_, err := s.ToggleVerified(username)
		return err
	})
}

func (c *AdminController) toggle(do func(*services.UserService, string) error) {
	userService := c.Container.GetService("user").(*services.UserService)
	username := c.Ctx.Param("username")

	err := do(userService, username)
	if errors.Is(err, services.ErrNotFound) {
		views.NotFound(c.Ctx)
		return
	}
	if err != nil {
		serverError(c.Ctx, err)
		return
	}
	c.Ctx.Redirect(http.StatusFound, "/admin")
}
