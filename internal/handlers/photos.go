package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/services"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PhotosHandler is the authoring surface for photos: batch upload into a
// gallery, caption/order edits, and deletion.
type PhotosHandler struct {
	store   services.GalleryStore
	uploads *services.UploadService
	gallery *services.GalleryService
}

func NewPhotosHandler(store services.GalleryStore, uploads *services.UploadService, gallery *services.GalleryService) *PhotosHandler {
	return &PhotosHandler{
		store:   store,
		uploads: uploads,
		gallery: gallery,
	}
}

// Upload godoc
// @Summary     Upload photos to a gallery
// @Description Uploads a batch of files. Every file is attempted; per-file failures are collected and reported alongside the successes, and the batch itself never fails as a whole.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       gallery_id path string true "Gallery ID (UUID)"
// @Param       photos formData file true "Image files (multiple allowed)"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/galleries/{gallery_id}/photos [post]
func (h *PhotosHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid gallery id"})
		return
	}

	// Verify the gallery exists before touching storage
	if _, err := h.store.GetGalleryByID(galleryID); err != nil {
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

	// 32MB in-memory cap for the multipart form
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: "multipart form is nil",
		})
		return
	}

	// Try multiple common field names
	var fileHeaders []*multipart.FileHeader
	fieldNames := []string{"photos", "photo", "files", "file", "images", "image"}
	for _, fieldName := range fieldNames {
		if f := form.File[fieldName]; len(f) > 0 {
			fileHeaders = f
			break
		}
	}

	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no files uploaded",
			Message: fmt.Sprintf("please provide files with one of these field names: %v", fieldNames),
		})
		return
	}

	files := make([]services.UploadFile, 0, len(fileHeaders))
	readErrors := make([]models.UploadErrorInfo, 0)
	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			readErrors = append(readErrors, models.UploadErrorInfo{
				Filename: header.Filename,
				Error:    fmt.Sprintf("failed to open file: %v", err),
				Stage:    "file_read",
			})
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			readErrors = append(readErrors, models.UploadErrorInfo{
				Filename: header.Filename,
				Error:    fmt.Sprintf("failed to read file data: %v", err),
				Stage:    "file_read",
			})
			continue
		}
		files = append(files, services.UploadFile{Filename: header.Filename, Data: data})
	}

	result := h.uploads.UploadBatch(galleryID, files, nil)

	response := models.UploadResponse{
		GalleryID: galleryID.String(),
		Photos:    models.NewPhotoResponses(result.Photos),
		Errors:    append(readErrors, result.Errors...),
	}
	if len(response.Errors) == 0 {
		response.Errors = nil
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePhoto godoc
// @Summary     Update a photo's caption or sort order
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       photo_id path string true "Photo ID (UUID)"
// @Param       request body models.UpdatePhotoRequest true "Fields to update"
// @Success     200 {object} models.PhotoResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/photos/{photo_id} [patch]
func (h *PhotosHandler) UpdatePhoto(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	photoID, err := uuid.Parse(c.Param("photo_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	var req models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	photo, err := h.store.UpdatePhoto(photoID, models.PhotoUpdate{
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update photo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewPhotoResponse(*photo))
}

// DeletePhoto godoc
// @Summary     Delete a photo
// @Description Removes the storage object (best-effort) and the record, then decrements the gallery's photo count.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       photo_id path string true "Photo ID (UUID)"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/photos/{photo_id} [delete]
func (h *PhotosHandler) DeletePhoto(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	photoID, err := uuid.Parse(c.Param("photo_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	if err := h.gallery.DeletePhoto(photoID); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete photo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
}
