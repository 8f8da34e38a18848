package services

import (
	"errors"
	"time"

	"event-feedback-service/config"
	"event-feedback-service/models"

	"gorm.io/gorm"
)

// EventService provides event CRUD, speaker linking and comment attachment
type EventService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEventService creates a new event service
func NewEventService(db *gorm.DB, cfg *config.Config) *EventService {
	return &EventService{
		DB:     db,
		Config: cfg,
	}
}

// EventInput carries the fields of the add-event form
type EventInput struct {
	Topic      string
	Date       time.Time
	Street     string
	City       string
	State      string
	Zip        string
	SpeakerIDs []uint
}

// Create persists an event, its owned address and its speaker links in
// a single transaction.
func (s *EventService) Create(in EventInput) (*models.Event, error) {
	event := &models.Event{
		Topic: in.Topic,
		Date:  in.Date,
		Address: models.Address{
			Street: in.Street,
			City:   in.City,
			State:  in.State,
			Zip:    in.Zip,
		},
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if len(in.SpeakerIDs) == 0 {
			return nil
		}

		var speakers []models.Speaker
		if err := tx.Where("id IN ?", in.SpeakerIDs).Find(&speakers).Error; err != nil {
			return err
		}
		return tx.Model(event).Association("Speakers").Append(&speakers)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns an event with address, speakers, surveys and comments
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := s.DB.
		Preload("Address").
		Preload("Speakers").
		Preload("Surveys").
		Preload("Comments.Author").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// List returns one page of events, most recent date first
func (s *EventService) List(page int) ([]models.Event, models.Pagination, error) {
	pageSize := s.Config.ItemsPerPage

	var total int64
	if err := s.DB.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	var events []models.Event
	err := s.DB.
		Preload("Address").
		Preload("Speakers").
		Order("date DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&events).Error
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return events, models.NewPagination(page, pageSize, total), nil
}

// ListForSelect returns all events newest first, for the survey form's
// event picker.
func (s *EventService) ListForSelect() ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.Order("id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// AddComment attaches a user comment to an event
func (s *EventService) AddComment(eventID, userID uint, body string) error {
	comment := models.Comment{
		Body:    body,
		UserID:  userID,
		EventID: &eventID,
	}
	return s.DB.Create(&comment).Error
}
