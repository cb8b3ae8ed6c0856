package services

import (
	"errors"

	"gorm.io/gorm"

	"photovault/models"
	"photovault/store"
)

var (
	ErrTitleRequired = errors.New("album title is required")
	ErrAlbumNotFound = errors.New("album not found")
	ErrNotOwner      = errors.New("not the owner of this resource")
)

type AlbumService struct {
	db     *gorm.DB
	albums *store.AlbumStore
	photos *store.PhotoStore
	opts   Options
}

func NewAlbumService(db *gorm.DB, opts Options) *AlbumService {
	return &AlbumService{
		db:     db,
		albums: store.NewAlbumStore(db),
		photos: store.NewPhotoStore(db),
		opts:   opts,
	}
}

func (s *AlbumService) Create(userID uint, title, description string) (*models.Album, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	return s.albums.Insert(userID, title, description)
}

// List returns the owner's albums in storage order.
func (s *AlbumService) List(userID uint) ([]models.Album, error) {
	return s.albums.ListByUser(userID)
}

func (s *AlbumService) Get(albumID uint) (*models.Album, error) {
	return s.albums.GetByID(albumID)
}

func (s *AlbumService) Update(actorID, albumID uint, title, description string) error {
	if title == "" {
		return ErrTitleRequired
	}

	album, err := s.albums.GetByID(albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return ErrAlbumNotFound
	}
	if s.opts.EnforceOwnership && album.UserID != actorID {
		return ErrNotOwner
	}

	return s.albums.Update(albumID, title, description)
}

// Delete removes the album row. Photos survive unless cascade is enabled, in
// which case both deletes run in one transaction.
func (s *AlbumService) Delete(actorID, albumID uint) error {
	album, err := s.albums.GetByID(albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return ErrAlbumNotFound
	}
	if s.opts.EnforceOwnership && album.UserID != actorID {
		return ErrNotOwner
	}

	if !s.opts.CascadePhotoDelete {
		return s.albums.Delete(albumID)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := store.NewPhotoStore(tx).DeleteByAlbum(albumID); err != nil {
			return err
		}
		return store.NewAlbumStore(tx).Delete(albumID)
	})
}
