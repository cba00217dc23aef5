package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"weddingsite/internal/models"
)

// multipart overhead allowed on top of MaxUploadSize
const multipartOverhead = 1 << 20

type ReorderRequest struct {
	SourceID int64 `json:"sourceId" validate:"required,gt=0"`
	TargetID int64 `json:"targetId" validate:"required,gt=0"`
}

func (h *Handlers) GetGallery(w http.ResponseWriter, r *http.Request) {
	listing, err := h.GalleryService.ListPublic(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

func (h *Handlers) AdminGetGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.GalleryService.ListAdmin(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	tooLarge := fmt.Sprintf("file too large: limit is %s", humanize.IBytes(uint64(h.Cfg.MaxUploadSize)))

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, tooLarge, http.StatusRequestEntityTooLarge)
		} else {
			WriteError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		WriteError(w, tooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	itemType := r.FormValue("type")
	if itemType == "" {
		itemType = models.GalleryTypeGallery
	}

	item, err := h.GalleryService.Upload(r.Context(), itemType, file)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.GalleryService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) ReorderGallery(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "sourceId and targetId are required", http.StatusBadRequest)
		return
	}

	items, err := h.GalleryService.Reorder(r.Context(), req.SourceID, req.TargetID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}
