package controllers

import (
	"net/http"
	"strconv"

	"event-feedback-service/config"
	"event-feedback-service/middleware"
	"event-feedback-service/services"
	"event-feedback-service/services/container"

	"github.com/gin-gonic/gin"
)

// parsePage reads the ?page query parameter, defaulting to the first page
func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// flash stores a one-shot notice in the current session
func flash(c *gin.Context, sc *container.ServiceContainer, message string) {
	sid := middleware.SessionID(c)
	if sid == "" {
		return
	}
	sessions := sc.GetService("session").(*services.SessionService)
	if err := sessions.AddFlash(sid, message); err != nil {
		config.Warning("failed to store flash notice: %v", err)
	}
}

func serverError(c *gin.Context, err error) {
	config.Error("request failed: %v", err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}
