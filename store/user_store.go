package store

import (
	"errors"

	"gorm.io/gorm"

	"photovault/models"
)

// UserStore owns the physical representation of users. Lookups report absence
// as a nil record, not an error.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Insert(email, name, passwordHash string) (*models.User, error) {
	user := models.User{
		Email:    email,
		Name:     name,
		Password: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Update(user *models.User) error {
	return s.db.Save(user).Error
}
