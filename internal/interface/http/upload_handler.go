package handlers

import (
	"context"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/pkg/response"
)

// ObjectUploader writes one object to the image store and returns its
// public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// UploadHandler stores listing images in the external object store and
// returns their public URL. The subsequent listing write is a separate
// call: an image uploaded but never referenced stays orphaned.
type UploadHandler struct {
	Uploader ObjectUploader
	Logger   *logrus.Logger
}

func NewUploadHandler(uploader ObjectUploader, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Uploader: uploader, Logger: logger}
}

// Upload POST /api/upload (auth required, multipart field "image")
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.Uploader == nil {
		response.Error(c, http.StatusInternalServerError, "uploads not configured", nil)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(c, http.StatusBadRequest, "only image uploads are accepted", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectPath := path.Join("listings", uuid.NewString()+ext)

	url, err := h.Uploader.Upload(c.Request.Context(), objectPath, contentType, file)
	if err != nil {
		h.Logger.WithError(err).WithField("object", objectPath).Error("image upload failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, gin.H{"url": url})
}
