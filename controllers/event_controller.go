package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"event-feedback-service/middleware"
	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// EventController handles the event listing, detail and add pages
type EventController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEventController creates a new event controller
func NewEventController(ctx *gin.Context, container *container.ServiceContainer) *EventController {
	return &EventController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleEventFunc returns a Gin handler dispatching to an event method
func HandleEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEventController(ctx, container)

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

// EventRequest is the add-event form
type EventRequest struct {
	Topic    string `form:"topic" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Street   string `form:"street" binding:"required"`
	City     string `form:"city" binding:"required"`
	State    string `form:"state" binding:"required"`
	Zip      string `form:"zip" binding:"required"`
	Speakers []uint `form:"speakers"`
}

// List renders one page of events, most recent date first
func (c *EventController) List() {
	page := parsePage(c.Ctx)

	eventService := c.Container.GetService("event").(*services.EventService)
	events, pagination, err := eventService.List(page)
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	views.Render(c.Ctx, http.StatusOK, "events.html", gin.H{
		"Title":   "Event List",
		"Events":  events,
		"NextURL": pagination.NextURL("/show/events"),
		"PrevURL": pagination.PrevURL("/show/events"),
	})
}

// Show renders one event; a POST attaches the visitor's comment first
func (c *EventController) Show() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		views.NotFound(c.Ctx)
		return
	}

	eventService := c.Container.GetService("event").(*services.EventService)
	event, err := eventService.GetByID(uint(id))
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
			views.Render(c.Ctx, http.StatusBadRequest, "event.html", gin.H{
				"Title": event.Topic,
				"Event": event,
				"Error": "Comment must not be empty",
			})
			return
		}

		user := middleware.CurrentUser(c.Ctx)
		if err := eventService.AddComment(event.ID, user.ID, req.Comment); err != nil {
			serverError(c.Ctx, err)
			return
		}
		c.Ctx.Redirect(http.StatusFound, "/show/events/"+c.Ctx.Param("id"))
		return
	}

	views.Render(c.Ctx, http.StatusOK, "event.html", gin.H{
		"Title": event.Topic,
		"Event": event,
	})
}

// Add renders the add-event form and creates the event on POST
func (c *EventController) Add() {
	speakerService := c.Container.GetService("speaker").(*services.SpeakerService)

	if c.Ctx.Request.Method != http.MethodPost {
		speakers, err := speakerService.ListForSelect()
		if err != nil {
			serverError(c.Ctx, err)
			return
		}
		views.Render(c.Ctx, http.StatusOK, "add_event.html", gin.H{
			"Title":    "Add Event",
			"Speakers": speakers,
		})
		return
	}

	var req EventRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		c.renderFormError("All fields are required")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.renderFormError("Date must be in YYYY-MM-DD format")
		return
	}

	eventService := c.Container.GetService("event").(*services.EventService)
	_, err = eventService.Create(services.EventInput{
		Topic:      req.Topic,
		Date:       date,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		Zip:        req.Zip,
		SpeakerIDs: req.Speakers,
	})
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	flash(c.Ctx, c.Container, "Event Saved.")
	c.Ctx.Redirect(http.StatusFound, "/")
}

func (c *EventController) renderFormError(message string) {
	speakerService := c.Container.GetService("speaker").(*services.SpeakerService)
	speakers, _ := speakerService.ListForSelect()
	views.Render(c.Ctx, http.StatusBadRequest, "add_event.html", gin.H{
		"Title":    "Add Event",
		"Speakers": speakers,
		"Error":    message,
	})
}
