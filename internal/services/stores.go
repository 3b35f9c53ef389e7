package services

import (
	"heirloom-gallery-backend/internal/models"

	"github.com/google/uuid"
)

// GalleryStore is the repository contract for gallery and photo records.
// Implemented by supabase.DatabaseClient; faked in tests.
type GalleryStore interface {
	CreateGallery(g *models.Gallery) (*models.Gallery, error)
	ListGalleries() ([]models.Gallery, error)
	ListActiveGalleries() ([]models.GallerySummary, error)
	GetGalleryBySlug(slug string) (*models.Gallery, error)
	GetGalleryByID(id uuid.UUID) (*models.Gallery, error)
	UpdateGallery(id uuid.UUID, updates models.GalleryUpdate) (*models.Gallery, error)
	DeleteGallery(id uuid.UUID) error
	IncrementPhotoCount(id uuid.UUID, coverURL string) error
	DecrementPhotoCount(id uuid.UUID) error

	ListPhotosByGallery(galleryID uuid.UUID) ([]models.Photo, error)
	ListPhotoStorageRefs(galleryID uuid.UUID) ([]models.PhotoStorageRef, error)
	InsertPhoto(p *models.Photo) (*models.Photo, error)
	GetPhoto(id uuid.UUID) (*models.Photo, error)
	DeletePhoto(id uuid.UUID) error
	UpdatePhoto(id uuid.UUID, updates models.PhotoUpdate) (*models.Photo, error)
}

// ObjectStore is the object storage contract. Implemented by
// supabase.StorageClient.
type ObjectStore interface {
	Upload(storagePath string, data []byte, contentType string) (publicURL string, err error)
	Remove(storagePaths []string) error
	Bucket() string
}

// EventPublisher broadcasts gallery lifecycle events. Implemented by
// supabase.RealtimeClient; may be nil when realtime is not configured.
type EventPublisher interface {
	PublishGalleryEvent(galleryID uuid.UUID, event string, payload map[string]interface{}) error
}
