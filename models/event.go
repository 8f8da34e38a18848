package models

import "time"

type Event struct {
	BaseModel
	Topic string    `gorm:"type:varchar(140);not null" json:"topic"`
	Date  time.Time `gorm:"index" json:"date"`

	ValueAverage    float64 `gorm:"default:0" json:"value_average"`
	SpeakersAverage float64 `gorm:"default:0" json:"speakers_average"`
	ContentAverage  float64 `gorm:"default:0" json:"content_average"`
	FacilityAverage float64 `gorm:"default:0" json:"facility_average"`
	OverallAverage  float64 `gorm:"default:0" json:"overall_average"`

	Address  Address   `gorm:"foreignKey:EventID" json:"address"`
	Speakers []Speaker `gorm:"many2many:event_speakers" json:"speakers,omitempty"`
	Surveys  []Survey  `gorm:"foreignKey:EventID" json:"surveys,omitempty"`
	Comments []Comment `gorm:"foreignKey:EventID" json:"comments,omitempty"`
}
