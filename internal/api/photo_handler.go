package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/service"
)

type PhotoHandler struct {
	photoSvc     service.PhotoService
	maxUploadMiB int64
}

func NewPhotoHandler(photoSvc service.PhotoService, maxUploadMiB int64) *PhotoHandler {
	if maxUploadMiB <= 0 {
		maxUploadMiB = 10
	}
	return &PhotoHandler{photoSvc: photoSvc, maxUploadMiB: maxUploadMiB}
}

// Upload accepts a multipart form with a single "photo" part and attaches it
// to the rental as damage documentation.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := EmployeeIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	rentalID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	maxBytes := h.maxUploadMiB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("upload too large or malformed (limit %d MiB)", h.maxUploadMiB)})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "photo file part is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	photo, err := h.photoSvc.AttachDamagePhoto(r.Context(), rentalID, employeeID, header.Filename, contentType, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	photos, err := h.photoSvc.ListDamagePhotos(r.Context(), rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

// Content streams the photo bytes back with the stored content type.
func (h *PhotoHandler) Content(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.ParseInt(mux.Vars(r)["photoID"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid photo id"})
		return
	}

	photo, reader, err := h.photoSvc.OpenDamagePhoto(r.Context(), photoID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", photo.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(photo.FileSize, 10))
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}
