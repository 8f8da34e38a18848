package models

// Address is owned by exactly one Speaker or one Event, never shared.
type Address struct {
	BaseModel
	Street string `gorm:"type:varchar(120)" json:"street"`
	City   string `gorm:"type:varchar(64)" json:"city"`
	State  string `gorm:"type:varchar(32)" json:"state"`
	Zip    string `gorm:"type:varchar(16)" json:"zip"`

	SpeakerID *uint `gorm:"index" json:"speaker_id,omitempty"`
	EventID   *uint `gorm:"index" json:"event_id,omitempty"`
}
