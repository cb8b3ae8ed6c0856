package store

import (
	"errors"

	"gorm.io/gorm"

	"photovault/models"
)

type AlbumStore struct {
	db *gorm.DB
}

func NewAlbumStore(db *gorm.DB) *AlbumStore {
	return &AlbumStore{db: db}
}

func (s *AlbumStore) Insert(userID uint, title, description string) (*models.Album, error) {
	album := models.Album{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := s.db.Create(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *AlbumStore) ListByUser(userID uint) ([]models.Album, error) {
	albums := []models.Album{}
	if err := s.db.Where("user_id = ?", userID).Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

func (s *AlbumStore) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	if err := s.db.First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &album, nil
}

func (s *AlbumStore) Update(id uint, title, description string) error {
	return s.db.Model(&models.Album{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description}).Error
}

func (s *AlbumStore) Delete(id uint) error {
	return s.db.Delete(&models.Album{}, id).Error
}
