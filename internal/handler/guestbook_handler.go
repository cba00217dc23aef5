package handlers

import (
	"net/http"

	"weddingsite/internal/service"
)

type DeleteEntryRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) GetGuestbook(w http.ResponseWriter, r *http.Request) {
	page, err := h.GuestbookService.List(r.Context(),
		queryInt(r, "page", 1),
		queryInt(r, "limit", service.DefaultPageSize),
	)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, page, http.StatusOK)
}

func (h *Handlers) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req service.GuestbookInput
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.GuestbookService.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, entry, http.StatusCreated)
}

func (h *Handlers) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.GuestbookUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.GuestbookService.Update(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, entry, http.StatusOK)
}

func (h *Handlers) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req DeleteEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "password is required", http.StatusBadRequest)
		return
	}

	if err := h.GuestbookService.Delete(r.Context(), id, req.Password); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) AdminGetGuestbook(w http.ResponseWriter, r *http.Request) {
	page, err := h.GuestbookService.AdminList(r.Context(),
		queryInt(r, "page", 1),
		queryInt(r, "limit", service.DefaultPageSize),
		queryBool(r, "includeDeleted", true),
	)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, page, http.StatusOK)
}

func (h *Handlers) AdminDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.GuestbookService.AdminDelete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) AdminRestoreEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.GuestbookService.AdminRestore(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}
