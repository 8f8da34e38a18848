package controllers

import (
	"errors"
	"net/http"

	"event-feedback-service/models"
	"event-feedback-service/services"
	"event-feedback-service/services/container"
	"event-feedback-service/views"

	"github.com/gin-gonic/gin"
)

// SurveyController handles the survey listing and submission pages
type SurveyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSurveyController creates a new survey controller
func NewSurveyController(ctx *gin.Context, container *container.ServiceContainer) *SurveyController {
	return &SurveyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSurveyFunc returns a Gin handler dispatching to a survey method
func HandleSurveyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSurveyController(ctx, container)

		switch method {
		case "list":
			controller.List()
		case "add":
			controller.Add()
		default:
			ctx.String(http.StatusBadRequest, "invalid method")
		}
	}
}

// SurveyRequest is the add-survey form; ratings are 1-5
type SurveyRequest struct {
	EventID uint `form:"event_id" binding:"required"`

	Value1 int `form:"value_1" binding:"required,min=1,max=5"`
	Value2 int `form:"value_2" binding:"required,min=1,max=5"`
	Value3 int `form:"value_3" binding:"required,min=1,max=5"`
	Value4 int `form:"value_4" binding:"required,min=1,max=5"`
	Value5 int `form:"value_5" binding:"required,min=1,max=5"`

	Speaker1 int `form:"speaker_1" binding:"required,min=1,max=5"`
	Speaker2 int `form:"speaker_2" binding:"required,min=1,max=5"`
	Speaker3 int `form:"speaker_3" binding:"required,min=1,max=5"`

	Content1 int `form:"content_1" binding:"required,min=1,max=5"`
	Content2 int `form:"content_2" binding:"required,min=1,max=5"`

	Facility1 int `form:"facility_1" binding:"required,min=1,max=5"`
	Facility2 int `form:"facility_2" binding:"required,min=1,max=5"`

	Response1 string `form:"response_1"`
	Response2 string `form:"response_2"`
	Response3 string `form:"response_3"`
	Response4 string `form:"response_4"`

	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}

// List renders one page of surveys, newest first
func (c *SurveyController) List() {
	page := parsePage(c.Ctx)

	surveyService := c.Container.GetService("survey").(*services.SurveyService)
	surveys, pagination, err := surveyService.List(page)
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	views.Render(c.Ctx, http.StatusOK, "surveys.html", gin.H{
		"Title":   "Survey List",
		"Surveys": surveys,
		"NextURL": pagination.NextURL("/show/surveys"),
		"PrevURL": pagination.PrevURL("/show/surveys"),
	})
}

// Add renders the survey form and on POST persists the submission,
// which also recomputes the linked event's and its speakers' averages.
func (c *SurveyController) Add() {
	eventService := c.Container.GetService("event").(*services.EventService)

	if c.Ctx.Request.Method != http.MethodPost {
		events, err := eventService.ListForSelect()
		if err != nil {
			serverError(c.Ctx, err)
			return
		}
		views.Render(c.Ctx, http.StatusOK, "add_survey.html", gin.H{
			"Title":  "Add Survey",
			"Events": events,
		})
		return
	}

	var req SurveyRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		events, _ := eventService.ListForSelect()
		views.Render(c.Ctx, http.StatusBadRequest, "add_survey.html", gin.H{
			"Title":  "Add Survey",
			"Events": events,
			"Error":  "All ratings must be between 1 and 5; name and a valid email are required",
		})
		return
	}

	survey := &models.Survey{
		Value1: req.Value1, Value2: req.Value2, Value3: req.Value3,
		Value4: req.Value4, Value5: req.Value5,
		Speaker1: req.Speaker1, Speaker2: req.Speaker2, Speaker3: req.Speaker3,
		Content1: req.Content1, Content2: req.Content2,
		Facility1: req.Facility1, Facility2: req.Facility2,
		Response1: req.Response1, Response2: req.Response2,
		Response3: req.Response3, Response4: req.Response4,
		Name:    req.Name,
		Email:   req.Email,
		EventID: req.EventID,
	}

	surveyService := c.Container.GetService("survey").(*services.SurveyService)
	err := surveyService.Create(survey)
	if errors.Is(err, services.ErrNotFound) {
		events, _ := eventService.ListForSelect()
		views.Render(c.Ctx, http.StatusBadRequest, "add_survey.html", gin.H{
			"Title":  "Add Survey",
			"Events": events,
			"Error":  "Selected event does not exist",
		})
		return
	}
	if err != nil {
		serverError(c.Ctx, err)
		return
	}

	flash(c.Ctx, c.Container, "Survey Saved.")
	c.Ctx.Redirect(http.StatusFound, "/")
}
