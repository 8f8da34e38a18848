package routes

import (
	"event-feedback-service/config"
	"event-feedback-service/controllers"
	"event-feedback-service/middleware"
	"event-feedback-service/models"
	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(views.Templates())

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(serviceContainer)
	views.Init(serviceContainer.GetService("session").(*services.SessionService))

	r.Use(middleware.Identity())

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all routes
func registerRoutes(r *gin.Engine, sc *container.ServiceContainer) {
	// Public
	r.GET("/", controllers.HandleAuthFunc(sc, "index"))
	r.GET("/index", controllers.HandleAuthFunc(sc, "index"))
	r.GET("/login", controllers.HandleAuthFunc(sc, "showLogin"))
	r.POST("/login", controllers.HandleAuthFunc(sc, "login"))
	r.GET("/logout", controllers.HandleAuthFunc(sc, "logout"))
	r.GET("/register", controllers.HandleAuthFunc(sc, "showRegister"))
	r.POST("/register", controllers.HandleAuthFunc(sc, "register"))

	// Admin only
	admin := r.Group("/", middleware.LoginRequired(), middleware.RequireRole(models.RoleAdmin))
	admin.GET("/admin", controllers.HandleAdminFunc(sc, "listUsers"))
	admin.GET("/update/admin/:username", controllers.HandleAdminFunc(sc, "toggleAdmin"))
	admin.GET("/update/editor/:username", controllers.HandleAdminFunc(sc, "toggleEditor"))
	admin.GET("/update/verified/:username", controllers.HandleAdminFunc(sc, "toggleVerified"))

	// Verified users browse and comment
	verified := r.Group("/", middleware.LoginRequired(), middleware.RequireRole(models.RoleVerified))
	verified.GET("/show/speakers", controllers.HandleSpeakerFunc(sc, "list"))
	verified.POST("/show/speakers", controllers.HandleSpeakerFunc(sc, "list"))
	verified.GET("/show/speakers/:id", controllers.HandleSpeakerFunc(sc, "show"))
	verified.POST("/show/speakers/:id", controllers.HandleSpeakerFunc(sc, "show"))
	verified.GET("/show/events", controllers.HandleEventFunc(sc, "list"))
	verified.POST("/show/events", controllers.HandleEventFunc(sc, "list"))
	verified.GET("/show/events/:id", controllers.HandleEventFunc(sc, "show"))
	verified.POST("/show/events/:id", controllers.HandleEventFunc(sc, "show"))
	verified.GET("/show/surveys", controllers.HandleSurveyFunc(sc, "list"))
	verified.POST("/show/surveys", controllers.HandleSurveyFunc(sc, "list"))
	verified.GET("/search", controllers.HandleSearchFunc(sc, "show"))
	verified.POST("/search", controllers.HandleSearchFunc(sc, "search"))

	// Editors create records
	editor := r.Group("/", middleware.LoginRequired(), middleware.RequireRole(models.RoleEditor))
	editor.GET("/add/speaker", controllers.HandleSpeakerFunc(sc, "add"))
	editor.POST("/add/speaker", controllers.HandleSpeakerFunc(sc, "add"))
	editor.GET("/add/event", controllers.HandleEventFunc(sc, "add"))
	editor.POST("/add/event", controllers.HandleEventFunc(sc, "add"))
	editor.GET("/add/survey", controllers.HandleSurveyFunc(sc, "add"))
	editor.POST("/add/survey", controllers.HandleSurveyFunc(sc, "add"))
}
