package models

import "time"

type GalleryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Password    string    `json:"password,omitempty"`
	ClientEmail string    `json:"client_email,omitempty"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	CoverPhoto  string    `json:"cover_photo,omitempty"`
	PhotoCount  int       `json:"photo_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryListResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
}

type GallerySummaryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	CoverPhoto string `json:"cover_photo,omitempty"`
	PhotoCount int    `json:"photo_count"`
}

type GallerySummaryListResponse struct {
	Galleries []GallerySummaryResponse `json:"galleries"`
}

type PhotoResponse struct {
	ID        string    `json:"id"`
	GalleryID string    `json:"gallery_id"`
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoListResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

type UnlockResponse struct {
	Unlocked bool            `json:"unlocked"`
	Photos   []PhotoResponse `json:"photos"`
}

type UploadResponse struct {
	GalleryID string            `json:"gallery_id"`
	Photos    []PhotoResponse   `json:"photos"`
	Errors    []UploadErrorInfo `json:"errors,omitempty"`
}

// UploadErrorInfo describes a single failed file within an upload batch.
// The batch itself still succeeds at the API level.
type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

type StatsResponse struct {
	TotalGalleries  int            `json:"total_galleries"`
	ActiveGalleries int            `json:"active_galleries"`
	TotalPhotos     int            `json:"total_photos"`
	TypeCounts      map[string]int `json:"type_counts"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id,omitempty"`
	Email        string `json:"email,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
