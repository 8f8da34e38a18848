package services

import (
	"gorm.io/gorm"

	"event-feedback-service/models"
)

// Search categories, matching the values of the search form's selector
const (
	CategorySpeakerName    = "1"
	CategoryEventTopic     = "2"
	CategorySpeakerAverage = "3"
	CategorySpeakerComment = "4"
)

// SearchKind tells the caller which list view renders the results
type SearchKind string

const (
	KindSpeaker SearchKind = "speaker"
	KindEvent   SearchKind = "event"
	KindNone    SearchKind = ""
)

// SearchResult holds the outcome of one search dispatch
type SearchResult struct {
	Kind     SearchKind
	Speakers []models.Speaker
	Events   []models.Event
}

// Empty reports whether the search produced no results
func (r *SearchResult) Empty() bool {
	return len(r.Speakers) == 0 && len(r.Events) == 0
}

// SearchService dispatches a free-text query against one of four fixed
// record/category combinations.
type SearchService struct {
	DB *gorm.DB
}

// NewSearchService creates a new search service
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// speakerNameExpr is the speaker's display name ("First Last") as a SQL
// expression, so a name query can span the first/last boundary. MySQL
// only treats || as concatenation in PIPES_AS_CONCAT mode.
func speakerNameExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "CONCAT(first_name, ' ', last_name)"
	}
	return "first_name || ' ' || last_name"
}

// Search runs the query for the given category. An empty query or an
// unrecognized category yields an empty result.
func (s *SearchService) Search(query, category string) (*SearchResult, error) {
	result := &SearchResult{Kind: KindNone}
	if query == "" {
		return result, nil
	}

	contains := "%" + query + "%"

	switch category {
	case CategorySpeakerName:
		result.Kind = KindSpeaker
		err := s.DB.
			Where(speakerNameExpr(s.DB)+" LIKE ?", contains).
			Find(&result.Speakers).Error
		if err != nil {
			return nil, err
		}

	case CategoryEventTopic:
		result.Kind = KindEvent
		err := s.DB.
			Where("topic LIKE ?", contains).
			Find(&result.Events).Error
		if err != nil {
			return nil, err
		}

	case CategorySpeakerAverage:
		// The numeric average is compared as its database text
		// rendering, so "4.5" matches any speaker whose stringified
		// overall average starts with "4.5".
		result.Kind = KindSpeaker
		err := s.DB.
			Where("CAST(overall_average AS CHAR) LIKE ?", query+"%").
			Find(&result.Speakers).Error
		if err != nil {
			return nil, err
		}

	case CategorySpeakerComment:
		result.Kind = KindSpeaker
		commented := s.DB.Model(&models.Comment{}).
			Select("speaker_id").
			Where("speaker_id IS NOT NULL AND body LIKE ?", contains)
		err := s.DB.
			Where("id IN (?)", commented).
			Find(&result.Speakers).Error
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
