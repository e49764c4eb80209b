package httpapi

import (
	"net/http"

	"inkbeat/internal/store"
)

// handleCreateMessage accepts a contact-form submission from the public site.
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var in store.ContactMessageInput
	if !decodeBody(w, r, &in) {
		return
	}
	msg, err := s.messages.Create(r.Context(), in)
	respondCreated(w, msg, err)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	msgs, err := s.messages.List(r.Context(), r.URL.Query().Get("status"))
	respondOK(w, msgs, err)
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	msg, err := s.messages.Get(r.Context(), r.PathValue("id"))
	respondOK(w, msg, err)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateMessage(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	msg, err := s.messages.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	respondOK(w, msg, err)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.messages.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}
