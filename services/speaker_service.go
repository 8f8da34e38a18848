package services

import (
	"errors"

	"event-feedback-service/config"
	"event-feedback-service/models"

	"gorm.io/gorm"
)

// SpeakerService provides speaker CRUD and comment attachment
type SpeakerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSpeakerService creates a new speaker service
func NewSpeakerService(db *gorm.DB, cfg *config.Config) *SpeakerService {
	return &SpeakerService{
		DB:     db,
		Config: cfg,
	}
}

// SpeakerInput carries the fields of the add-speaker form
type SpeakerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	State     string
	Zip       string
}

// Create persists a speaker together with its owned address in a single
// transaction.
func (s *SpeakerService) Create(in SpeakerInput) (*models.Speaker, error) {
	speaker := &models.Speaker{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address: models.Address{
			Street: in.Street,
			City:   in.City,
			State:  in.State,
			Zip:    in.Zip,
		},
	}
	if err := s.DB.Create(speaker).Error; err != nil {
		return nil, err
	}
	return speaker, nil
}

// GetByID returns a speaker with address, events and comments loaded
func (s *SpeakerService) GetByID(id uint) (*models.Speaker, error) {
	var speaker models.Speaker
	err := s.DB.
		Preload("Address").
		Preload("Events").
		Preload("Comments.Author").
		First(&speaker, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &speaker, nil
}

// List returns one page of speakers, newest first
func (s *SpeakerService) List(page int) ([]models.Speaker, models.Pagination, error) {
	pageSize := s.Config.ItemsPerPage

	var total int64
	if err := s.DB.Model(&models.Speaker{}).Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	var speakers []models.Speaker
	err := s.DB.
		Preload("Address").
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&speakers).Error
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return speakers, models.NewPagination(page, pageSize, total), nil
}

// ListForSelect returns all speakers ordered by last name, for the
// event form's speaker picker.
func (s *SpeakerService) ListForSelect() ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := s.DB.Order("last_name ASC").Find(&speakers).Error; err != nil {
		return nil, err
	}
	return speakers, nil
}

// AddComment attaches a user comment to a speaker
func (s *SpeakerService) AddComment(speakerID, userID uint, body string) error {
	comment := models.Comment{
		Body:      body,
		UserID:    userID,
		SpeakerID: &speakerID,
	}
	return s.DB.Create(&comment).Error
}
