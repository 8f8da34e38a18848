package controllers

import (
	"errors"
	"net/http"

	"event-feedback-service/config"
	"event-feedback-service/middleware"
	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login, logout and the home redirect
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc returns a Gin handler dispatching to an auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "index":
			controller.Index()
		case "showLogin":
			controller.ShowLogin()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "showRegister":
			controller.ShowRegister()
		case "register":
			controller.Register()
		default:
			ctx.String(http.StatusBadRequest, "invalid method")
		}
	}
}

// LoginRequest is the login form
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

// RegisterRequest is the registration form
type RegisterRequest struct {
	Username  string `form:"username" binding:"required,max=64"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=6"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

// Index routes authenticated admins to the dashboard and everyone else
// to search; anonymous visitors land on the login page.
func (c *AuthController) Index() {
	user := middleware.CurrentUser(c.Ctx)
	if user == nil {
		c.Ctx.Redirect(http.StatusFound, "/login")
		return
	}
	if user.IsAdmin {
		c.Ctx.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Ctx.Redirect(http.StatusFound, "/search")
}

// ShowLogin renders the login form
func (c *AuthController) ShowLogin() {
	if middleware.CurrentUser(c.Ctx) != nil {
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}
	views.Render(c.Ctx, http.StatusOK, "login.html", gin.H{
		"Title":      "Sign In",
		"Next":       c.Ctx.Query("next"),
		"Registered": c.Ctx.Query("registered") != "",
	})
}

// Login authenticates the form credentials and opens a session
func (c *AuthController) Login() {
	if middleware.CurrentUser(c.Ctx) != nil {
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}

	var req LoginRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		views.Render(c.Ctx, http.StatusBadRequest, "login.html", gin.H{
			"Title": "Sign In",
			"Error": "Username and password are required",
			"Next":  req.Next,
		})
		return
	}

	userService := c.Container.GetService("user").(*services.UserService)
	user, err := userService.Authenticate(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		views.Render(c.Ctx, http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Sign In",
			"Error": "Invalid username or password",
			"Next":  req.Next,
		})
		return
	}
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	sessionService := c.Container.GetService("session").(*services.SessionService)
	token, err := sessionService.Create(user.ID)
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	c.Ctx.SetCookie(middleware.SessionCookieName, token, int(cfg.SessionTTL().Seconds()), "/", "", false, true)
	c.Ctx.Redirect(http.StatusFound, middleware.SafeNextPath(req.Next))
}

// Logout revokes the session and clears the cookie
func (c *AuthController) Logout() {
	if cookie, err := c.Ctx.Cookie(middleware.SessionCookieName); err == nil && cookie != "" {
		sessionService := c.Container.GetService("session").(*services.SessionService)
		if err := sessionService.Destroy(cookie); err != nil {
			config.Warning("failed to revoke session: %v", err)
		}
	}
	c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Ctx.Redirect(http.StatusFound, "/")
}

// ShowRegister renders the registration form
func (c *AuthController) ShowRegister() {
	if middleware.CurrentUser(c.Ctx) != nil {
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}
	views.Render(c.Ctx, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

// Register creates a new account and sends the visitor to the login page
func (c *AuthController) Register() {
	if middleware.CurrentUser(c.Ctx) != nil {
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}

	var req RegisterRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		views.Render(c.Ctx, http.StatusBadRequest, "register.html", gin.H{
			"Title":    "Register",
			"Error":    "Please fill in all fields; passwords must match and be at least 6 characters",
			"Username": c.Ctx.PostForm("username"),
			"Email":    c.Ctx.PostForm("email"),
		})
		return
	}

	userService := c.Container.GetService("user").(*services.UserService)
	_, err := userService.Register(req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
		views.Render(c.Ctx, http.StatusBadRequest, "register.html", gin.H{
			"Title":    "Register",
			"Error":    err.Error(),
			"Username": req.Username,
			"Email":    req.Email,
		})
		return
	}
	if err != nil {
		// Uniqueness races surface at commit time; show a generic notice
		views.Render(c.Ctx, http.StatusBadRequest, "register.html", gin.H{
			"Title":    "Register",
			"Error":    "Registration failed",
			"Username": req.Username,
			"Email":    req.Email,
		})
		return
	}

	// The visitor has no session record yet, so the notice rides a query
	// parameter instead of the flash channel
	c.Ctx.Redirect(http.StatusFound, "/login?registered=1")
}
