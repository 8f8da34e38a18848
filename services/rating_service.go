package services

import (
	"event-feedback-service/models"

	"gorm.io/gorm"
)

// RatingService recomputes the stored satisfaction averages on speakers
// and events. Both recomputes rescan every related survey; with zero
// related surveys they leave the stored values untouched, so a fresh
// entity keeps its creation-time zeros until it is first rated.
type RatingService struct {
	DB *gorm.DB
}

// NewRatingService creates a new rating service
func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// RecomputeSpeaker rebuilds a speaker's averages from every survey of
// every event the speaker is linked to.
func (s *RatingService) RecomputeSpeaker(speaker *models.Speaker) error {
	var surveys []models.Survey
	err := s.DB.
		Joins("JOIN event_speakers ON event_speakers.event_id = surveys.event_id").
		Where("event_speakers.speaker_id = ?", speaker.ID).
		Find(&surveys).Error
	if err != nil {
		return err
	}
	if len(surveys) == 0 {
		return nil
	}

	var knowledge, concise, responsive float64
	for _, survey := range surveys {
		knowledge += float64(survey.Speaker1)
		concise += float64(survey.Speaker2)
		responsive += float64(survey.Speaker3)
	}
	n := float64(len(surveys))
	knowledge /= n
	concise /= n
	responsive /= n
	overall := (knowledge + concise + responsive) / 3

	speaker.KnowledgeAverage = knowledge
	speaker.ConciseAverage = concise
	speaker.ResponsiveAverage = responsive
	speaker.OverallAverage = overall

	return s.DB.Model(speaker).UpdateColumns(map[string]interface{}{
		"knowledge_average":  knowledge,
		"concise_average":    concise,
		"responsive_average": responsive,
		"overall_average":    overall,
	}).Error
}

// RecomputeEvent rebuilds an event's averages from its directly linked
// surveys only; surveys reached through shared speakers do not count.
func (s *RatingService) RecomputeEvent(event *models.Event) error {
	var surveys []models.Survey
	if err := s.DB.Where("event_id = ?", event.ID).Find(&surveys).Error; err != nil {
		return err
	}
	if len(surveys) == 0 {
		return nil
	}

	var value, speaker, content, facility float64
	for _, survey := range surveys {
		value += survey.ValueAverage
		speaker += survey.SpeakerAverage
		content += survey.ContentAverage
		facility += survey.FacilityAverage
	}
	n := float64(len(surveys))
	value /= n
	speaker /= n
	content /= n
	facility /= n
	overall := (value + speaker + content + facility) / 4

	event.ValueAverage = value
	event.SpeakersAverage = speaker
	event.ContentAverage = content
	event.FacilityAverage = facility
	event.OverallAverage = overall

	return s.DB.Model(event).UpdateColumns(map[string]interface{}{
		"value_average":    value,
		"speakers_average": speaker,
		"content_average":  content,
		"facility_average": facility,
		"overall_average":  overall,
	}).Error
}
