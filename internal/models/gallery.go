package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// GalleryTypes is the set of session types a gallery can be tagged with.
var GalleryTypes = []string{
	"Wedding",
	"Engagement",
	"Family",
	"Maternity",
	"Newborn",
	"Portrait",
	"Other",
}

func IsValidGalleryType(t string) bool {
	for _, gt := range GalleryTypes {
		if gt == t {
			return true
		}
	}
	return false
}

type Gallery struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Password    string
	ClientEmail sql.NullString
	Type        string
	Date        string
	CoverPhoto  sql.NullString
	PhotoCount  int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Photo struct {
	ID        uuid.UUID
	GalleryID uuid.UUID
	URL       string
	// StoragePath is the object's path in the storage bucket, recorded at
	// upload time so deletes never have to reverse-parse the public URL.
	// Empty on rows imported from before the column existed.
	StoragePath string
	Filename    string
	Caption     sql.NullString
	SortOrder   int
	CreatedAt   time.Time
}

// PhotoStorageRef is the minimal handle needed to remove a photo's object
// from storage.
type PhotoStorageRef struct {
	URL         string
	StoragePath string
}

// GallerySummary is the reduced field set exposed on the public listing.
type GallerySummary struct {
	ID         uuid.UUID
	Name       string
	Slug       string
	Date       string
	Type       string
	CoverPhoto sql.NullString
	PhotoCount int
}

// GalleryUpdate carries a partial gallery update. Nil fields are left
// untouched; updated_at is stamped on every write.
type GalleryUpdate struct {
	Name        *string
	Password    *string
	ClientEmail *string
	Type        *string
	Date        *string
	CoverPhoto  *string
	IsActive    *bool
}

// PhotoUpdate carries a partial photo update (caption and sort order are
// the only mutable photo fields).
type PhotoUpdate struct {
	Caption   *string
	SortOrder *int
}
