package models

// Survey holds one post-event response. Raw ratings are 1-5; the five
// average columns are computed once at creation and never change.
type Survey struct {
	BaseModel
	Value1 int `gorm:"not null" json:"value_1"`
	Value2 int `gorm:"not null" json:"value_2"`
	Value3 int `gorm:"not null" json:"value_3"`
	Value4 int `gorm:"not null" json:"value_4"`
	Value5 int `gorm:"not null" json:"value_5"`

	Speaker1 int `gorm:"not null" json:"speaker_1"`
	Speaker2 int `gorm:"not null" json:"speaker_2"`
	Speaker3 int `gorm:"not null" json:"speaker_3"`

	Content1 int `gorm:"not null" json:"content_1"`
	Content2 int `gorm:"not null" json:"content_2"`

	Facility1 int `gorm:"not null" json:"facility_1"`
	Facility2 int `gorm:"not null" json:"facility_2"`

	Response1 string `gorm:"type:text" json:"response_1"`
	Response2 string `gorm:"type:text" json:"response_2"`
	Response3 string `gorm:"type:text" json:"response_3"`
	Response4 string `gorm:"type:text" json:"response_4"`

	ValueAverage    float64 `json:"value_average"`
	SpeakerAverage  float64 `json:"speaker_average"`
	ContentAverage  float64 `json:"content_average"`
	FacilityAverage float64 `json:"facility_average"`
	OverallAverage  float64 `json:"overall_average"`

	Name  string `gorm:"type:varchar(120)" json:"name"`
	Email string `gorm:"type:varchar(120)" json:"email"`

	EventID uint `gorm:"index;not null" json:"event_id"`
}
