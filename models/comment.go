package models

// Comment is attached to exactly one of Speaker or Event. Comments are
// never edited or deleted.
type Comment struct {
	BaseModel
	Body string `gorm:"type:text;not null" json:"comment"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	Author User `gorm:"foreignKey:UserID" json:"author"`

	SpeakerID *uint `gorm:"index" json:"speaker_id,omitempty"`
	EventID   *uint `gorm:"index" json:"event_id,omitempty"`
}
