package services

import (
	"errors"

	"event-feedback-service/config"
	"event-feedback-service/models"
	"event-feedback-service/utils"

	"gorm.io/gorm"
)

// UserService provides account registration, authentication and the
// admin-only role toggles.
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// Register creates a new account with no roles granted
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username/password pair and returns the account.
// The username match is exact; a miss and a bad password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID returns the account with the given id
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the account with the given username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListAll returns every account, for the admin dashboard
func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ToggleAdmin flips the admin role of the named account
func (s *UserService) ToggleAdmin(username string) (*models.User, error) {
	return s.toggle(username, "is_admin", func(u *models.User) bool {
		u.IsAdmin = !u.IsAdmin
		return u.IsAdmin
	})
}

// ToggleEditor flips the editor role of the named account
func (s *UserService) ToggleEditor(username string) (*models.User, error) {
	return s.toggle(username, "is_editor", func(u *models.User) bool {
		u.IsEditor = !u.IsEditor
		return u.IsEditor
	})
}

// ToggleVerified flips the verified role of the named account
func (s *UserService) ToggleVerified(username string) (*models.User, error) {
	return s.toggle(username, "is_verified", func(u *models.User) bool {
		u.IsVerified = !u.IsVerified
		return u.IsVerified
	})
}

func (s *UserService) toggle(username, column string, flip func(*models.User) bool) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	value := flip(user)
	if err := s.DB.Model(user).Update(column, value).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin seeds a default admin account when none exists yet
func (s *UserService) EnsureAdmin() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.Config.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		IsAdmin:      true,
		IsEditor:     true,
		IsVerified:   true,
	}
	return s.DB.Create(&admin).Error
}
