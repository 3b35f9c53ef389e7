package services_test

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/google/uuid"
)

func sqlString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// fakeStore is an in-memory GalleryStore for exercising the services
// without a database.
type fakeStore struct {
	mu        sync.Mutex
	galleries map[uuid.UUID]*models.Gallery
	photos    map[uuid.UUID]*models.Photo

	failInsertFor  string // filename whose InsertPhoto call should fail
	insertedOrder  []uuid.UUID
	countersWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		galleries: make(map[uuid.UUID]*models.Gallery),
		photos:    make(map[uuid.UUID]*models.Photo),
	}
}

func (f *fakeStore) addGallery(g *models.Gallery) *models.Gallery {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	f.galleries[g.ID] = g
	return g
}

func (f *fakeStore) CreateGallery(g *models.Gallery) (*models.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g.ID = uuid.New()
	f.galleries[g.ID] = g
	return g, nil
}

func (f *fakeStore) ListGalleries() ([]models.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Gallery, 0, len(f.galleries))
	for _, g := range f.galleries {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeStore) ListActiveGalleries() ([]models.GallerySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.GallerySummary, 0)
	for _, g := range f.galleries {
		if g.IsActive {
			out = append(out, models.GallerySummary{
				ID: g.ID, Name: g.Name, Slug: g.Slug, Date: g.Date,
				Type: g.Type, CoverPhoto: g.CoverPhoto, PhotoCount: g.PhotoCount,
			})
		}
	}
	return out, nil
}

func (f *fakeStore) GetGalleryBySlug(slug string) (*models.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.galleries {
		if g.Slug == slug {
			copy := *g
			return &copy, nil
		}
	}
	return nil, supabase.ErrNotFound
}

func (f *fakeStore) GetGalleryByID(id uuid.UUID) (*models.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.galleries[id]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copy := *g
	return &copy, nil
}

func (f *fakeStore) UpdateGallery(id uuid.UUID, updates models.GalleryUpdate) (*models.Gallery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.galleries[id]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	if updates.Name != nil {
		g.Name = *updates.Name
	}
	if updates.Password != nil {
		g.Password = *updates.Password
	}
	if updates.Type != nil {
		g.Type = *updates.Type
	}
	if updates.Date != nil {
		g.Date = *updates.Date
	}
	if updates.IsActive != nil {
		g.IsActive = *updates.IsActive
	}
	copy := *g
	return &copy, nil
}

func (f *fakeStore) DeleteGallery(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.galleries[id]; !ok {
		return supabase.ErrNotFound
	}
	delete(f.galleries, id)
	for pid, p := range f.photos {
		if p.GalleryID == id {
			delete(f.photos, pid)
		}
	}
	return nil
}

func (f *fakeStore) IncrementPhotoCount(id uuid.UUID, coverURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.galleries[id]
	if !ok {
		return supabase.ErrNotFound
	}
	g.PhotoCount++
	if !g.CoverPhoto.Valid {
		g.CoverPhoto = sqlString(coverURL)
	}
	f.countersWrites++
	return nil
}

func (f *fakeStore) DecrementPhotoCount(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.galleries[id]
	if !ok {
		return supabase.ErrNotFound
	}
	if g.PhotoCount > 0 {
		g.PhotoCount--
	}
	f.countersWrites++
	return nil
}

func (f *fakeStore) ListPhotosByGallery(galleryID uuid.UUID) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Photo, 0)
	for _, id := range f.insertedOrder {
		if p, ok := f.photos[id]; ok && p.GalleryID == galleryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPhotoStorageRefs(galleryID uuid.UUID) ([]models.PhotoStorageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.PhotoStorageRef, 0)
	for _, id := range f.insertedOrder {
		if p, ok := f.photos[id]; ok && p.GalleryID == galleryID {
			out = append(out, models.PhotoStorageRef{URL: p.URL, StoragePath: p.StoragePath})
		}
	}
	return out, nil
}

func (f *fakeStore) InsertPhoto(p *models.Photo) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsertFor != "" && p.Filename == f.failInsertFor {
		return nil, fmt.Errorf("insert rejected")
	}
	p.ID = uuid.New()
	f.photos[p.ID] = p
	f.insertedOrder = append(f.insertedOrder, p.ID)
	copy := *p
	return &copy, nil
}

func (f *fakeStore) GetPhoto(id uuid.UUID) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (f *fakeStore) DeletePhoto(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.photos[id]; !ok {
		return supabase.ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f *fakeStore) UpdatePhoto(id uuid.UUID, updates models.PhotoUpdate) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	if updates.Caption != nil {
		p.Caption.String = *updates.Caption
		p.Caption.Valid = true
	}
	if updates.SortOrder != nil {
		p.SortOrder = *updates.SortOrder
	}
	copy := *p
	return &copy, nil
}

// fakeObjects records uploads and removals instead of talking to storage.
type fakeObjects struct {
	mu         sync.Mutex
	bucket     string
	uploaded   []string // storage paths in upload order
	removed    []string // storage paths passed to Remove, flattened
	failSuffix string   // uploads whose path ends with this suffix fail
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{bucket: "photos"}
}

func (f *fakeObjects) Upload(storagePath string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSuffix != "" && strings.HasSuffix(storagePath, f.failSuffix) {
		return "", fmt.Errorf("storage rejected upload")
	}
	f.uploaded = append(f.uploaded, storagePath)
	return "https://project.supabase.co/storage/v1/object/public/" + f.bucket + "/" + storagePath, nil
}

func (f *fakeObjects) Remove(storagePaths []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, storagePaths...)
	return nil
}

func (f *fakeObjects) Bucket() string {
	return f.bucket
}

// fakeEvents collects published event names per gallery channel.
type fakeEvents struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeEvents) PublishGalleryEvent(galleryID uuid.UUID, event string, payload map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}
