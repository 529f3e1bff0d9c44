package handler

import (
	"io"
	"net/http"

	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// UploadHandler handles image uploads to blob storage.
type UploadHandler struct {
	service        service.ProductService
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(service service.ProductService, maxUploadBytes int64, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/upload requests. The image is read from the
// multipart form field "image" and written to blob storage; the product
// store is not touched.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded", err, h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded", err, h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error uploading image", err, h.logger)
		return
	}

	result, err := h.service.UploadImage(r.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, err, "Error uploading image", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
