package httpapi

import (
	"net/http"

	"inkbeat/internal/store"
)

// handleCreateContribution records a supporter contribution from the public
// site.
func (s *Server) handleCreateContribution(w http.ResponseWriter, r *http.Request) {
	var in store.ContributionInput
	if !decodeBody(w, r, &in) {
		return
	}
	c, err := s.contributions.Create(r.Context(), in)
	respondCreated(w, c, err)
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	cs, err := s.contributions.List(r.Context(), r.URL.Query().Get("status"))
	respondOK(w, cs, err)
}

func (s *Server) handleContributionStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	stats, err := s.contributions.Stats(r.Context())
	respondOK(w, stats, err)
}

func (s *Server) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	c, err := s.contributions.Get(r.Context(), r.PathValue("id"))
	respondOK(w, c, err)
}

func (s *Server) handleUpdateContribution(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.contributions.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	respondOK(w, c, err)
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.contributions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}
