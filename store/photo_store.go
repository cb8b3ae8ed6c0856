package store

import (
	"errors"

	"gorm.io/gorm"

	"photovault/models"
)

// photoColumns is the projection used for listings, which skip the payload
// bytes. Full rows are only loaded for single-photo streaming.
var photoColumns = []string{"id", "album_id", "user_id", "content_type", "caption", "created_at"}

type PhotoStore struct {
	db *gorm.DB
}

func NewPhotoStore(db *gorm.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

func (s *PhotoStore) Insert(albumID, userID uint, data []byte, contentType, caption string) (uint, error) {
	photo := models.Photo{
		AlbumID:     albumID,
		UserID:      userID,
		Data:        data,
		ContentType: contentType,
		Caption:     caption,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		return 0, err
	}
	return photo.ID, nil
}

func (s *PhotoStore) ListByAlbum(albumID uint) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := s.db.Select(photoColumns).Where("album_id = ?", albumID).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoStore) ListByUser(userID uint) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := s.db.Select(photoColumns).Where("user_id = ?", userID).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoStore) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := s.db.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (s *PhotoStore) Delete(id uint) error {
	return s.db.Delete(&models.Photo{}, id).Error
}

func (s *PhotoStore) DeleteByAlbum(albumID uint) error {
	return s.db.Where("album_id = ?", albumID).Delete(&models.Photo{}).Error
}
