package api

import (
	"context"
	"io"
	"net/http"

	"ramillete/internal/handler/httperr"
	"ramillete/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore hosts uploaded images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

type ImageHandler struct {
	store ImageStore
}

// NewImageHandler accepts a nil store; uploads then answer 503.
func NewImageHandler(store ImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

// @Summary Upload image
// @Description Upload an image and receive its public URL
// @Tags images
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.New("image storage not configured"), "Image uploads are not available")
		return
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image upload")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("image exceeds size limit"), "Image too large")
		return
	}
	contentType := header.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unsupported image content type"), "Unsupported image type")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read image")
		return
	}
	if len(data) > maxImageSize {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("image exceeds size limit"), "Image too large")
		return
	}

	objectName := uuid.New().String() + ext
	url, err := h.store.Upload(c.Request.Context(), objectName, data, contentType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
