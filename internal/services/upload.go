package services

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"log"
	"math"
	"math/big"
	"strings"
	"time"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/google/uuid"
)

// UploadFile is one file of an upload batch, already read into memory.
type UploadFile struct {
	Filename string
	Data     []byte
}

// BatchResult partitions a batch into successfully inserted photos and
// failed files. The batch as a whole always succeeds at the API level.
type BatchResult struct {
	Photos []models.Photo
	Errors []models.UploadErrorInfo
}

// UploadService ingests photo batches: storage write, record insert with
// compensating delete, and gallery counter maintenance, one file at a time.
type UploadService struct {
	store   GalleryStore
	objects ObjectStore
	events  EventPublisher
}

func NewUploadService(store GalleryStore, objects ObjectStore, events EventPublisher) *UploadService {
	return &UploadService{
		store:   store,
		objects: objects,
		events:  events,
	}
}

// UploadBatch attempts every file in order, never aborting early. Files are
// processed strictly sequentially so counter updates for the gallery never
// overlap within a batch and progress is deterministic: onProgress receives
// round(100*completed/total) after each file settles, reaching 100 exactly
// when the last file has been attempted.
func (s *UploadService) UploadBatch(galleryID uuid.UUID, files []UploadFile, onProgress func(int)) *BatchResult {
	result := &BatchResult{
		Photos: make([]models.Photo, 0, len(files)),
		Errors: make([]models.UploadErrorInfo, 0),
	}

	if s.events != nil {
		s.events.PublishGalleryEvent(galleryID, "upload_started",
			supabase.UploadStartedPayload(galleryID, len(files)))
	}

	total := len(files)
	completed := 0
	report := func() {
		completed++
		progress := int(math.Round(float64(completed) / float64(total) * 100))
		if onProgress != nil {
			onProgress(progress)
		}
		if s.events != nil {
			s.events.PublishGalleryEvent(galleryID, "upload_progress",
				supabase.UploadProgressPayload(galleryID, progress))
		}
	}

	for _, file := range files {
		if photo, uploadErr := s.uploadOne(galleryID, file); uploadErr != nil {
			result.Errors = append(result.Errors, *uploadErr)
		} else {
			result.Photos = append(result.Photos, *photo)
		}
		report()
	}

	if s.events != nil {
		s.events.PublishGalleryEvent(galleryID, "upload_completed",
			supabase.UploadCompletedPayload(galleryID, len(result.Photos), len(result.Errors)))
	}

	return result
}

func (s *UploadService) uploadOne(galleryID uuid.UUID, file UploadFile) (*models.Photo, *models.UploadErrorInfo) {
	storagePath := buildStoragePath(galleryID, file.Filename)

	publicURL, err := s.objects.Upload(storagePath, file.Data, contentTypeFor(file.Filename))
	if err != nil {
		return nil, &models.UploadErrorInfo{
			Filename: file.Filename,
			Error:    fmt.Sprintf("upload failed: %v", err),
			Stage:    "storage_upload",
		}
	}

	photo, err := s.store.InsertPhoto(&models.Photo{
		GalleryID:   galleryID,
		URL:         publicURL,
		StoragePath: storagePath,
		Filename:    file.Filename,
		Caption:     sql.NullString{},
	})
	if err != nil {
		// The object exists but has no record; try to take it back out.
		if removeErr := s.objects.Remove([]string{storagePath}); removeErr != nil {
			log.Printf("Failed to clean up orphaned object %s: %v", storagePath, removeErr)
		}
		return nil, &models.UploadErrorInfo{
			Filename: file.Filename,
			Error:    fmt.Sprintf("failed to save photo record: %v", err),
			Stage:    "record_insert",
		}
	}

	// Single-statement increment; also makes the first photo ever uploaded
	// the cover, unless one is already set.
	if err := s.store.IncrementPhotoCount(galleryID, publicURL); err != nil {
		log.Printf("Failed to update counters for gallery %s: %v", galleryID, err)
	}

	return photo, nil
}

// buildStoragePath derives a collision-free object path from the gallery id,
// the current time, and a random disambiguator.
func buildStoragePath(galleryID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%d-%s.%s",
		galleryID.String(), time.Now().UnixMilli(), randomToken(9), fileExtension(filename))
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomToken(length int) string {
	token := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token)
}

// fileExtension returns the lowercased extension of filename, "jpg" when
// there is none.
func fileExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		return strings.ToLower(filename[i+1:])
	}
	return "jpg"
}

func contentTypeFor(filename string) string {
	switch fileExtension(filename) {
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "heic":
		return "image/heic"
	default:
		return "image/jpeg"
	}
}
