package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"heirloom-gallery-backend/internal/services"
)

func TestResolveStoragePath_BucketSegment(t *testing.T) {
	url := "https://project.supabase.co/storage/v1/object/public/photos/1b2c3d/1724800000000-abc123def.jpg"

	path, err := services.ResolveStoragePath(url, "photos")

	assert.NoError(t, err)
	assert.Equal(t, "1b2c3d/1724800000000-abc123def.jpg", path)
}

func TestResolveStoragePath_FallbackToLastTwoSegments(t *testing.T) {
	url := "https://cdn.example.com/some/mirror/1b2c3d/photo.jpg"

	path, err := services.ResolveStoragePath(url, "photos")

	assert.NoError(t, err)
	assert.Equal(t, "1b2c3d/photo.jpg", path)
}

func TestResolveStoragePath_UnparseableURL(t *testing.T) {
	_, err := services.ResolveStoragePath("https://exa mple.com/a/b", "photos")
	assert.Error(t, err)
}

func TestResolveStoragePath_NothingAfterBucket(t *testing.T) {
	path, err := services.ResolveStoragePath("https://project.supabase.co/storage/v1/object/public/photos", "photos")

	assert.NoError(t, err)
	assert.Empty(t, path)
}
