package models

// Speaker aggregate columns default to 0 and stay 0 until the first
// recompute; a recompute over zero surveys leaves them untouched.
type Speaker struct {
	BaseModel
	FirstName string `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(64);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(120)" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`

	KnowledgeAverage  float64 `gorm:"default:0" json:"knowledge_average"`
	ConciseAverage    float64 `gorm:"default:0" json:"concise_average"`
	ResponsiveAverage float64 `gorm:"default:0" json:"responsive_average"`
	OverallAverage    float64 `gorm:"default:0" json:"overall_average"`

	Address  Address   `gorm:"foreignKey:SpeakerID" json:"address"`
	Events   []Event   `gorm:"many2many:event_speakers" json:"events,omitempty"`
	Comments []Comment `gorm:"foreignKey:SpeakerID" json:"comments,omitempty"`
}

// Name returns the speaker's display name
func (s Speaker) Name() string {
	return s.FirstName + " " + s.LastName
}
