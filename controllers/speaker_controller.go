package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"event-feedback-service/config"
	"event-feedback-service/middleware"
	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// SpeakerController handles the speaker listing, detail and add pages
type SpeakerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSpeakerController creates a new speaker controller
func NewSpeakerController(ctx *gin.Context, container *container.ServiceContainer) *SpeakerController {
	return &SpeakerController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSpeakerFunc returns a Gin handler dispatching to a speaker method
func HandleSpeakerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSpeakerController(ctx, container)

		switch method {
		case "list":
			controller.List()
		case "show":
			controller.Show()
		case "add":
			controller.Add()
		default:
			ctx.String(http.StatusBadRequest, "invalid method")
		}
	}
}

// SpeakerRequest is the add-speaker form
type SpeakerRequest struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Phone     string `form:"phone" binding:"required"`
	Street    string `form:"street" binding:"required"`
	City      string `form:"city" binding:"required"`
	State     string `form:"state" binding:"required"`
	Zip       string `form:"zip" binding:"required"`
}

// List renders one page of speakers, newest first
func (c *SpeakerController) List() {
	page := parsePage(c.Ctx)

	speakerService := c.Container.GetService("speaker").(*services.SpeakerService)
	speakers, pagination, err := speakerService.List(page)
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	if cfg.RecomputeOnRead {
		// Legacy parity mode: refresh each displayed speaker's averages
		// at render time.
		ratingService := c.Container.GetService("rating").(*services.RatingService)
		for i := range speakers {
			if err := ratingService.RecomputeSpeaker(&speakers[i]); err != nil {
				config.Warning("recompute on read failed for speaker %d: %v", speakers[i].ID, err)
			}
		}
	}

	views.Render(c.Ctx, http.StatusOK, "speakers.html", gin.H{
		"Title":    "Speaker List",
		"Speakers": speakers,
		"NextURL":  pagination.NextURL("/show/speakers"),
		"PrevURL":  pagination.PrevURL("/show/speakers"),
	})
}

// Show renders one speaker; a POST attaches the visitor's comment first
func (c *SpeakerController) Show() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		views.NotFound(c.Ctx)
		return
	}

	speakerService := c.Container.GetService("speaker").(*services.SpeakerService)
	speaker, err := speakerService.GetByID(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		views.NotFound(c.Ctx)
		return
	}
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	if c.Ctx.Request.Method == http.MethodPost {
		var req CommentRequest
		if err := c.Ctx.ShouldBind(&req); err != nil {
			views.Render(c.Ctx, http.StatusBadRequest, "speaker.html", gin.H{
				"Title":   speaker.Name(),
				"Speaker": speaker,
				"Error":   "Comment must not be empty",
			})
			return
		}

		user := middleware.CurrentUser(c.Ctx)
		if err := speakerService.AddComment(speaker.ID, user.ID, req.Comment); err != nil {
			serverError(c.Ctx, err)
			return
		}
		c.Ctx.Redirect(http.StatusFound, "/show/speakers/"+c.Ctx.Param("id"))
		return
	}

	views.Render(c.Ctx, http.StatusOK, "speaker.html", gin.H{
		"Title":   speaker.Name(),
		"Speaker": speaker,
	})
}

// Add renders the add-speaker form and creates the speaker on POST
func (c *SpeakerController) Add() {
	if c.Ctx.Request.Method != http.MethodPost {
		views.Render(c.Ctx, http.StatusOK, "add_speaker.html", gin.H{"Title": "Add Speaker"})
		return
	}

	var req SpeakerRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		views.Render(c.Ctx, http.StatusBadRequest, "add_speaker.html", gin.H{
			"Title": "Add Speaker",
			"Error": "All fields are required; email must be valid",
		})
		return
	}

	speakerService := c.Container.GetService("speaker").(*services.SpeakerService)
	_, err := speakerService.Create(services.SpeakerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
	})
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	flash(c.Ctx, c.Container, "Speaker Saved.")
	c.Ctx.Redirect(http.StatusFound, "/")
}

// CommentRequest is the comment form on speaker and event pages
type CommentRequest struct {
	Comment string `form:"comment" binding:"required"`
}
