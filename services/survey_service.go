package services

import (
	"errors"

	"event-feedback-service/config"
	"event-feedback-service/models"

	"gorm.io/gorm"
)

// SurveyService persists survey submissions and drives the aggregate
// recomputation that follows each one.
type SurveyService struct {
	DB      *gorm.DB
	Config  *config.Config
	Ratings *RatingService
}

// NewSurveyService creates a new survey service
func NewSurveyService(db *gorm.DB, cfg *config.Config, ratings *RatingService) *SurveyService {
	return &SurveyService{
		DB:      db,
		Config:  cfg,
		Ratings: ratings,
	}
}

// Create computes the survey's category averages, persists it linked to
// its event, then recomputes the event's and its speakers' aggregates.
// Returns ErrNotFound when the target event does not exist.
func (s *SurveyService) Create(survey *models.Survey) error {
	var event models.Event
	if err := s.DB.Preload("Speakers").First(&event, survey.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	survey.ValueAverage = float64(survey.Value1+survey.Value2+survey.Value3+survey.Value4+survey.Value5) / 5
	survey.SpeakerAverage = float64(survey.Speaker1+survey.Speaker2+survey.Speaker3) / 3
	survey.ContentAverage = float64(survey.Content1+survey.Content2) / 2
	survey.FacilityAverage = float64(survey.Facility1+survey.Facility2) / 2
	survey.OverallAverage = (survey.ValueAverage + survey.SpeakerAverage + survey.ContentAverage + survey.FacilityAverage) / 4

	if err := s.DB.Create(survey).Error; err != nil {
		return err
	}

	for i := range event.Speakers {
		if err := s.Ratings.RecomputeSpeaker(&event.Speakers[i]); err != nil {
			return err
		}
	}
	return s.Ratings.RecomputeEvent(&event)
}

// List returns one page of surveys, newest first
func (s *SurveyService) List(page int) ([]models.Survey, models.Pagination, error) {
	pageSize := s.Config.ItemsPerPage

	var total int64
	if err := s.DB.Model(&models.Survey{}).Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	var surveys []models.Survey
	err := s.DB.
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&surveys).Error
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return surveys, models.NewPagination(page, pageSize, total), nil
}
