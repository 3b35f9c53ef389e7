package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/services"
)

func TestCreateGallery_Defaults(t *testing.T) {
	store := newFakeStore()
	svc := services.NewGalleryService(store, newFakeObjects())

	gallery, err := svc.CreateGallery(models.CreateGalleryRequest{Name: "Kathy & Scotty"})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(gallery.Slug, "kathy-scotty-"))
	assert.Len(t, gallery.Password, services.DefaultPasswordLength)
	assert.Equal(t, "Wedding", gallery.Type)
	assert.Equal(t, time.Now().Format("January 2006"), gallery.Date)
}

func TestCreateGallery_ExplicitFields(t *testing.T) {
	store := newFakeStore()
	svc := services.NewGalleryService(store, newFakeObjects())

	gallery, err := svc.CreateGallery(models.CreateGalleryRequest{
		Name:        "Baby James",
		Password:    "chosen-by-admin",
		Type:        "Newborn",
		Date:        "March 2026",
		ClientEmail: "james@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "chosen-by-admin", gallery.Password)
	assert.Equal(t, "Newborn", gallery.Type)
	assert.Equal(t, "March 2026", gallery.Date)
	assert.Equal(t, "james@example.com", gallery.ClientEmail.String)
}

func TestCreateGallery_InvalidType(t *testing.T) {
	store := newFakeStore()
	svc := services.NewGalleryService(store, newFakeObjects())

	_, err := svc.CreateGallery(models.CreateGalleryRequest{Name: "X", Type: "Birthday"})
	assert.Error(t, err)
}

func TestRegeneratePassword(t *testing.T) {
	store := newFakeStore()
	svc := services.NewGalleryService(store, newFakeObjects())
	gallery := store.addGallery(&models.Gallery{Name: "Smith Family", Password: "old-password"})

	updated, err := svc.RegeneratePassword(gallery.ID)

	assert.NoError(t, err)
	assert.NotEqual(t, "old-password", updated.Password)
	assert.Len(t, updated.Password, services.DefaultPasswordLength)
}

func TestDeleteGallery_RemovesObjectsThenRecord(t *testing.T) {
	store := newFakeStore()
	objects := newFakeObjects()
	svc := services.NewGalleryService(store, objects)

	gallery := store.addGallery(&models.Gallery{Name: "Smith Family"})
	uploads := services.NewUploadService(store, objects, nil)
	uploads.UploadBatch(gallery.ID, testFiles("a.jpg", "b.jpg", "c.jpg"), nil)

	err := svc.DeleteGallery(gallery.ID)
	assert.NoError(t, err)

	// Every uploaded object is removed, one storage path per photo.
	assert.ElementsMatch(t, objects.uploaded, objects.removed)

	_, err = store.GetGalleryByID(gallery.ID)
	assert.Error(t, err)

	photos, _ := store.ListPhotosByGallery(gallery.ID)
	assert.Empty(t, photos)
}

func TestDeletePhoto_DecrementsCount(t *testing.T) {
	store := newFakeStore()
	objects := newFakeObjects()
	svc := services.NewGalleryService(store, objects)

	gallery := store.addGallery(&models.Gallery{Name: "Smith Family"})
	uploads := services.NewUploadService(store, objects, nil)
	result := uploads.UploadBatch(gallery.ID, testFiles("a.jpg", "b.jpg"), nil)

	err := svc.DeletePhoto(result.Photos[0].ID)
	assert.NoError(t, err)

	updated, _ := store.GetGalleryByID(gallery.ID)
	assert.Equal(t, 1, updated.PhotoCount)
	assert.Equal(t, []string{objects.uploaded[0]}, objects.removed)

	_, err = store.GetPhoto(result.Photos[0].ID)
	assert.Error(t, err)
}

func TestDeletePhoto_CountFlooredAtZero(t *testing.T) {
	store := newFakeStore()
	objects := newFakeObjects()
	svc := services.NewGalleryService(store, objects)

	// A miscounted gallery with a photo record but photo_count already 0.
	gallery := store.addGallery(&models.Gallery{Name: "Smith Family", PhotoCount: 0})
	photo, err := store.InsertPhoto(&models.Photo{
		GalleryID: gallery.ID,
		URL:       "https://project.supabase.co/storage/v1/object/public/photos/" + gallery.ID.String() + "/a.jpg",
		Filename:  "a.jpg",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeletePhoto(photo.ID))

	updated, _ := store.GetGalleryByID(gallery.ID)
	assert.Equal(t, 0, updated.PhotoCount)
}
