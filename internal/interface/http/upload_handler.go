package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shoppy/storefront/pkg/helpers"
	"github.com/shoppy/storefront/pkg/response"
)

// UploadHandler stores product images in GCS and returns their public URL.
// The multipart field name "product" matches the admin frontend.
type UploadHandler struct {
	GCS    *storage.Client
	Bucket string
	Logger *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, bucket string, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Bucket: bucket, Logger: logger}
}

// Upload handles POST /upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("product")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "product file is required")
		return
	}
	if h.GCS == nil || h.Bucket == "" {
		response.Err(c, http.StatusInternalServerError, "image storage not configured")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Err(c, http.StatusBadRequest, "could not read upload")
		return
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectPath := filepath.ToSlash(filepath.Join("products", uuid.NewString()+ext))
	contentType := fh.Header.Get("Content-Type")

	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, objectPath, contentType, f)
	if err != nil {
		h.Logger.WithError(err).Error("image upload failed")
		response.Err(c, http.StatusInternalServerError, "upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": 1, "image_url": url})
}
