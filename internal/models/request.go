package models

type CreateGalleryRequest struct {
	Name        string `json:"name" binding:"required" example:"Kathy & Scotty"`
	// Password for the gallery. Auto-generated when omitted.
	Password    string `json:"password,omitempty"`
	ClientEmail string `json:"client_email,omitempty" example:"kathy@example.com"`
	// Session type. One of: Wedding, Engagement, Family, Maternity, Newborn, Portrait, Other. Defaults to Wedding.
	Type string `json:"type,omitempty" example:"Wedding"`
	// Free-text date label. Defaults to the current month, e.g. "August 2026".
	Date string `json:"date,omitempty" example:"August 2026"`
}

type UpdateGalleryRequest struct {
	Name        *string `json:"name,omitempty"`
	Password    *string `json:"password,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
	Type        *string `json:"type,omitempty"`
	Date        *string `json:"date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdatePhotoRequest struct {
	Caption   *string `json:"caption,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

type SetCoverRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
}

type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
