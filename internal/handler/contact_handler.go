package handlers

import (
	"net/http"

	"weddingsite/internal/service"
)

func (h *Handlers) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ContactService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, contacts, http.StatusOK)
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactInput
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.ContactService.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, contact, http.StatusCreated)
}

func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.ContactInput
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.ContactService.Update(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, contact, http.StatusOK)
}

func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ContactService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}
