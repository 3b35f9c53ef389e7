package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"heirloom-gallery-backend/internal/models"

	"github.com/google/uuid"
)

// GalleryService owns the multi-step gallery flows: creation with generated
// slug and password, and deletion with storage cleanup ahead of the record
// cascade.
type GalleryService struct {
	store   GalleryStore
	objects ObjectStore
}

func NewGalleryService(store GalleryStore, objects ObjectStore) *GalleryService {
	return &GalleryService{
		store:   store,
		objects: objects,
	}
}

func (s *GalleryService) CreateGallery(req models.CreateGalleryRequest) (*models.Gallery, error) {
	password := req.Password
	if password == "" {
		password = GeneratePassword(DefaultPasswordLength)
	}

	galleryType := req.Type
	if galleryType == "" {
		galleryType = "Wedding"
	}
	if !models.IsValidGalleryType(galleryType) {
		return nil, fmt.Errorf("invalid gallery type: %s", galleryType)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("January 2006")
	}

	gallery := &models.Gallery{
		Name:     req.Name,
		Slug:     GenerateSlug(req.Name),
		Password: password,
		Type:     galleryType,
		Date:     date,
	}
	if req.ClientEmail != "" {
		gallery.ClientEmail = sql.NullString{String: req.ClientEmail, Valid: true}
	}

	return s.store.CreateGallery(gallery)
}

// RegeneratePassword replaces the gallery's password with a freshly
// generated one.
func (s *GalleryService) RegeneratePassword(id uuid.UUID) (*models.Gallery, error) {
	password := GeneratePassword(DefaultPasswordLength)
	return s.store.UpdateGallery(id, models.GalleryUpdate{Password: &password})
}

// DeleteGallery removes a gallery's storage objects and then its record.
// Photo records go with the record via the database cascade. Storage
// removal failures are logged and do not block the delete.
func (s *GalleryService) DeleteGallery(id uuid.UUID) error {
	refs, err := s.store.ListPhotoStorageRefs(id)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		if path := s.storagePathFor(ref); path != "" {
			paths = append(paths, path)
		}
	}
	if len(paths) > 0 {
		if err := s.objects.Remove(paths); err != nil {
			log.Printf("Failed to remove gallery %s objects from storage: %v", id, err)
		}
	}

	return s.store.DeleteGallery(id)
}

// storagePathFor prefers the path recorded at upload time; rows from before
// the column existed fall back to reverse-parsing the public URL. Empty when
// neither yields a path, in which case the object is left behind.
func (s *GalleryService) storagePathFor(ref models.PhotoStorageRef) string {
	if ref.StoragePath != "" {
		return ref.StoragePath
	}
	path, err := ResolveStoragePath(ref.URL, s.objects.Bucket())
	if err != nil {
		log.Printf("Failed to resolve storage path for %s: %v", ref.URL, err)
		return ""
	}
	return path
}

// DeletePhoto removes a photo's storage object (best-effort) and its record,
// then decrements the gallery's photo count, floored at zero. The record
// delete is authoritative even when the storage delete fails.
func (s *GalleryService) DeletePhoto(photoID uuid.UUID) error {
	photo, err := s.store.GetPhoto(photoID)
	if err != nil {
		return err
	}

	path := s.storagePathFor(models.PhotoStorageRef{URL: photo.URL, StoragePath: photo.StoragePath})
	if path == "" {
		log.Printf("No storage path for photo %s, skipping object removal", photoID)
	} else if err := s.objects.Remove([]string{path}); err != nil {
		log.Printf("Failed to remove photo %s from storage: %v", photoID, err)
	}

	if err := s.store.DeletePhoto(photoID); err != nil {
		return err
	}

	return s.store.DecrementPhotoCount(photo.GalleryID)
}
