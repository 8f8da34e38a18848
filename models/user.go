package models

// User represents an application account. Role flags are toggled by
// administrators only; accounts are never deleted.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(64);unique;not null" json:"username"`
	Email        string `gorm:"type:varchar(120);unique;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	IsEditor     bool   `gorm:"default:false" json:"is_editor"`
	IsVerified   bool   `gorm:"default:false" json:"is_verified"`
}

// HasRole reports whether the user carries the named role
func (u *User) HasRole(role string) bool {
	switch role {
	case RoleAdmin:
		return u.IsAdmin
	case RoleEditor:
		return u.IsEditor
	case RoleVerified:
		return u.IsVerified
	}
	return false
}

// Role names used by route declarations
const (
	RoleAdmin    = "admin"
	RoleEditor   = "editor"
	RoleVerified = "verified"
)
