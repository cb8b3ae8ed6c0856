package services

import (
	"errors"

	"gorm.io/gorm"

	"photovault/models"
	"photovault/store"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoService struct {
	photos *store.PhotoStore
	opts   Options
}

func NewPhotoService(db *gorm.DB, opts Options) *PhotoService {
	return &PhotoService{photos: store.NewPhotoStore(db), opts: opts}
}

// Create persists an already-validated upload and returns the new photo id.
// Callers run the payload through upload.Validate first.
func (s *PhotoService) Create(albumID, userID uint, data []byte, contentType, caption string) (uint, error) {
	return s.photos.Insert(albumID, userID, data, contentType, caption)
}

// List returns an album's photos without their payload bytes.
func (s *PhotoService) List(albumID uint) ([]models.Photo, error) {
	return s.photos.ListByAlbum(albumID)
}

// ListByUser returns every photo a user has uploaded, across albums.
func (s *PhotoService) ListByUser(userID uint) ([]models.Photo, error) {
	return s.photos.ListByUser(userID)
}

// Get loads a single photo including its payload, for streaming.
func (s *PhotoService) Get(photoID uint) (*models.Photo, error) {
	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

func (s *PhotoService) Delete(actorID, photoID uint) error {
	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}
	if s.opts.EnforceOwnership && photo.UserID != actorID {
		return ErrNotOwner
	}

	return s.photos.Delete(photoID)
}
