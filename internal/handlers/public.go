package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/services"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the client-facing flow: browse active galleries,
// load one by slug, unlock it with the shared password, and download photos
// individually or as a single archive. Photo access is gated on a verified
// password; the repository itself does no gating.
type PublicHandler struct {
	store   services.GalleryStore
	archive *services.ArchiveService
}

func NewPublicHandler(store services.GalleryStore, archive *services.ArchiveService) *PublicHandler {
	return &PublicHandler{
		store:   store,
		archive: archive,
	}
}

// ListActiveGalleries godoc
// @Summary     List active galleries
// @Description Returns the reduced field set for every active gallery, newest first.
// @Tags        public
// @Produce     json
// @Success     200 {object} models.GallerySummaryListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries [get]
func (h *PublicHandler) ListActiveGalleries(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	summaries, err := h.store.ListActiveGalleries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list galleries",
			Message: err.Error(),
		})
		return
	}

	resp := make([]models.GallerySummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = models.NewGallerySummaryResponse(s)
	}

	c.JSON(http.StatusOK, models.GallerySummaryListResponse{Galleries: resp})
}

// GetGallery godoc
// @Summary     Load a gallery by slug
// @Description Returns the gallery's public metadata. The password is never included.
// @Tags        public
// @Produce     json
// @Param       slug path string true "Gallery slug"
// @Success     200 {object} models.GalleryResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries/{slug} [get]
func (h *PublicHandler) GetGallery(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	gallery, err := h.store.GetGalleryBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGalleryResponse(gallery, false))
}

// Unlock godoc
// @Summary     Unlock a gallery
// @Description Verifies the submitted password. On success returns the gallery's photos; a wrong password returns 401 and the gallery stays locked.
// @Tags        public
// @Accept      json
// @Produce     json
// @Param       slug path string true "Gallery slug"
// @Param       request body models.UnlockRequest true "Password"
// @Success     200 {object} models.UnlockResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /galleries/{slug}/unlock [post]
func (h *PublicHandler) Unlock(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "password is required"})
		return
	}

	gallery, err := h.store.GetGalleryBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: err.Error(),
		})
		return
	}

	if !services.VerifyPassword(gallery, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "incorrect password",
		})
		return
	}

	// A failed photo fetch after a successful unlock yields an empty
	// gallery, not a locked one.
	photos, err := h.store.ListPhotosByGallery(gallery.ID)
	if err != nil {
		log.Printf("Failed to list photos for gallery %s: %v", gallery.ID, err)
		photos = nil
	}

	c.JSON(http.StatusOK, models.UnlockResponse{
		Unlocked: true,
		Photos:   models.NewPhotoResponses(photos),
	})
}

// DownloadPhoto godoc
// @Summary     Download a single photo
// @Description Fetches the photo's bytes and returns them with a download filename. Requires the gallery password.
// @Tags        public
// @Produce     octet-stream
// @Param       slug path string true "Gallery slug"
// @Param       photo_id path string true "Photo ID (UUID)"
// @Param       password query string true "Gallery password"
// @Success     200 {file} binary
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /galleries/{slug}/photos/{photo_id}/download [get]
func (h *PublicHandler) DownloadPhoto(c *gin.Context) {
	gallery, ok := h.unlockedGallery(c)
	if !ok {
		return
	}

	photoID, err := uuid.Parse(c.Param("photo_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	photo, err := h.store.GetPhoto(photoID)
	if err != nil || photo.GalleryID != gallery.ID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
		return
	}

	data, err := h.archive.DownloadSingle(photo.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "fetch failure",
			Message: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("%s-%s.jpg", services.SanitizeName(gallery.Name), photo.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/jpeg", data)
}

// DownloadArchive godoc
// @Summary     Download all photos as a ZIP
// @Description Fetches every photo concurrently and streams back one compressed archive. Photos that fail to fetch are omitted; their count is reported in the X-Archive-Skipped header.
// @Tags        public
// @Produce     application/zip
// @Param       slug path string true "Gallery slug"
// @Param       password query string true "Gallery password"
// @Success     200 {file} binary
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries/{slug}/archive [get]
func (h *PublicHandler) DownloadArchive(c *gin.Context) {
	gallery, ok := h.unlockedGallery(c)
	if !ok {
		return
	}

	photos, err := h.store.ListPhotosByGallery(gallery.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list photos",
			Message: err.Error(),
		})
		return
	}
	if len(photos) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "gallery has no photos"})
		return
	}

	result, err := h.archive.BuildArchive(photos, gallery.Name, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to build archive",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("X-Archive-Skipped", strconv.Itoa(len(result.Skipped)))
	c.Data(http.StatusOK, "application/zip", result.Data)
}

// unlockedGallery loads the gallery for the slug route param and verifies
// the password query param. Writes the error response itself when the
// gallery is missing or the password is wrong.
func (h *PublicHandler) unlockedGallery(c *gin.Context) (*models.Gallery, bool) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return nil, false
	}

	gallery, err := h.store.GetGalleryBySlug(c.Param("slug"))
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

	if !services.VerifyPassword(gallery, c.Query("password")) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "incorrect password"})
		return nil, false
	}

	return gallery, true
}
