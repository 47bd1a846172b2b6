package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
)

const maxUploadBytes = 100 << 20 // 100 MiB

type UploadHandler struct {
	storage contract.IFileStorage
}

func NewUploadHandler(storage contract.IFileStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload accepts a multipart file and stores it in object storage. Unlike
// lesson creation, this endpoint has no local fallback: a storage failure
// fails the request.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		ErrorHandler(c, http.StatusServiceUnavailable, "file storage not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "missing file field")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		ErrorHandler(c, http.StatusBadRequest, "file too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "unreadable file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "unreadable file")
		return
	}

	stored, err := h.storage.Upload(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		ErrorHandler(c, http.StatusBadGateway, "upload to object storage failed")
		return
	}

	SuccessHandler(c, http.StatusCreated, stored)
}
