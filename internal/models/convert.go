package models

// NewGalleryResponse maps a Gallery row to its API shape. The password is
// only included on the admin surface.
func NewGalleryResponse(g *Gallery, includePassword bool) GalleryResponse {
	resp := GalleryResponse{
		ID:         g.ID.String(),
		Name:       g.Name,
		Slug:       g.Slug,
		Type:       g.Type,
		Date:       g.Date,
		PhotoCount: g.PhotoCount,
		IsActive:   g.IsActive,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
	if includePassword {
		resp.Password = g.Password
	}
	if g.ClientEmail.Valid {
		resp.ClientEmail = g.ClientEmail.String
	}
	if g.CoverPhoto.Valid {
		resp.CoverPhoto = g.CoverPhoto.String
	}
	return resp
}

func NewGallerySummaryResponse(s GallerySummary) GallerySummaryResponse {
	resp := GallerySummaryResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		Slug:       s.Slug,
		Date:       s.Date,
		Type:       s.Type,
		PhotoCount: s.PhotoCount,
	}
	if s.CoverPhoto.Valid {
		resp.CoverPhoto = s.CoverPhoto.String
	}
	return resp
}

func NewPhotoResponse(p Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:        p.ID.String(),
		GalleryID: p.GalleryID.String(),
		URL:       p.URL,
		Filename:  p.Filename,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
	if p.Caption.Valid {
		resp.Caption = p.Caption.String
	}
	return resp
}

func NewPhotoResponses(photos []Photo) []PhotoResponse {
	resps := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		resps[i] = NewPhotoResponse(p)
	}
	return resps
}
