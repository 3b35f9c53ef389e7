package handlers

import (
	"errors"
	"net/http"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/services"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GalleriesHandler is the authoring surface for galleries: CRUD, password
// regeneration, cover selection, and the dashboard stats.
type GalleriesHandler struct {
	store   services.GalleryStore
	service *services.GalleryService
}

func NewGalleriesHandler(store services.GalleryStore, service *services.GalleryService) *GalleriesHandler {
	return &GalleriesHandler{
		store:   store,
		service: service,
	}
}

// CreateGallery godoc
// @Summary     Create a gallery
// @Description Creates a gallery with a generated slug and, when no password is supplied, a generated password.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateGalleryRequest true "Gallery fields"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/galleries [post]
func (h *GalleriesHandler) CreateGallery(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}
	if req.Type != "" && !models.IsValidGalleryType(req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery type"})
		return
	}

	gallery, err := h.service.CreateGallery(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create gallery",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, true))
}

// ListGalleries godoc
// @Summary     List all galleries
// @Description Returns every gallery, active or hidden, newest first.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.GalleryListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/galleries [get]
func (h *GalleriesHandler) ListGalleries(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleries, err := h.store.ListGalleries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list galleries",
			Message: err.Error(),
		})
		return
	}

	resp := make([]models.GalleryResponse, len(galleries))
	for i := range galleries {
		resp[i] = models.NewGalleryResponse(&galleries[i], true)
	}

	c.JSON(http.StatusOK, models.GalleryListResponse{Galleries: resp})
}

// GetGallery godoc
// @Summary     Get a gallery
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id} [get]
func (h *GalleriesHandler) GetGallery(c *gin.Context) {
	gallery, ok := h.galleryByIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, true))
}

// UpdateGallery godoc
// @Summary     Update gallery fields
// @Description Applies a partial update. Omitted fields are untouched; updated_at is stamped.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Param       request body models.UpdateGalleryRequest true "Fields to update"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id} [patch]
func (h *GalleriesHandler) UpdateGallery(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return
	}

	var req models.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Type != nil && !models.IsValidGalleryType(*req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery type"})
		return
	}

	gallery, err := h.store.UpdateGallery(galleryID, models.GalleryUpdate{
		Name:        req.Name,
		Password:    req.Password,
		ClientEmail: req.ClientEmail,
		Type:        req.Type,
		Date:        req.Date,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update gallery",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, true))
}

// RegeneratePassword godoc
// @Summary     Regenerate the gallery password
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id}/password [post]
func (h *GalleriesHandler) RegeneratePassword(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return
	}

	gallery, err := h.service.RegeneratePassword(galleryID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to regenerate password",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, true))
}

// SetCover godoc
// @Summary     Set the cover photo
// @Description Direct field update; the URL is not validated against current gallery membership.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Param       request body models.SetCoverRequest true "Photo URL"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id}/cover [put]
func (h *GalleriesHandler) SetCover(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return
	}

	var req models.SetCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "photo_url is required"})
		return
	}

	gallery, err := h.store.UpdateGallery(galleryID, models.GalleryUpdate{CoverPhoto: &req.PhotoURL})
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to set cover photo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, true))
}

// DeleteGallery godoc
// @Summary     Delete a gallery
// @Description Removes the gallery's storage objects (best-effort), then the record; photo records cascade.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id} [delete]
func (h *GalleriesHandler) DeleteGallery(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return
	}

	if err := h.service.DeleteGallery(galleryID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete gallery",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gallery deleted successfully"})
}

// GetStats godoc
// @Summary     Dashboard stats
// @Description Gallery totals for the admin dashboard tiles.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StatsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/stats [get]
func (h *GalleriesHandler) GetStats(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleries, err := h.store.ListGalleries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list galleries",
			Message: err.Error(),
		})
		return
	}

	stats := models.StatsResponse{
		TotalGalleries: len(galleries),
		TypeCounts:     make(map[string]int),
	}
	for _, g := range galleries {
		if g.IsActive {
			stats.ActiveGalleries++
		}
		stats.TotalPhotos += g.PhotoCount
		stats.TypeCounts[g.Type]++
	}

	c.JSON(http.StatusOK, stats)
}

func (h *GalleriesHandler) galleryByIDParam(c *gin.Context) (*models.Gallery, bool) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return nil, false
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return nil, false
	}

	gallery, err := h.store.GetGalleryByID(galleryID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: err.Error(),
		})
		return nil, false
	}

	return gallery, true
}
