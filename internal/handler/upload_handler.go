package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"closet/internal/errors"
	"closet/internal/storage"
)

const (
	itemUploadLimit    = 10 << 20 // 10MB
	profileUploadLimit = 15 << 20 // 15MB
)

// allowedImageTypes maps accepted MIME types to stored extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler stores clothing and profile images and returns public URLs.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(storage storage.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Upload an image (multipart field "file")
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param kind query string false "item (default) or profile; profile allows up to 15MB"
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	limit := int64(itemUploadLimit)
	if c.QueryParam("kind") == "profile" {
		limit = profileUploadLimit
	}

	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file field is required",
			Code:  "VALIDATION_ERROR",
		})
	}
	if header.Size > limit {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file too large",
			Code:  "VALIDATION_ERROR",
		})
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		// Fall back to the filename extension when the part has no type.
		ext = strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "only jpeg, png and webp images are accepted",
				Code:  "VALIDATION_ERROR",
			})
		}
	}

	file, err := header.Open()
	if err != nil {
		return mapError(c, err)
	}
	defer file.Close()

	url, err := h.storage.Save(c.Request().Context(), ext, file)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}
