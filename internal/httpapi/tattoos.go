package httpapi

import (
	"net/http"

	"inkbeat/internal/app/tattoos"
	"inkbeat/internal/content"
)

func (s *Server) handleListTattoos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var (
		items []content.Tattoo
		err   error
	)
	switch {
	case q.Get("search") != "":
		items, err = s.tattoos.Search(ctx, q.Get("search"))
	case q.Get("featuredSection") != "":
		items, err = s.tattoos.InSection(ctx, q.Get("featuredSection"))
	default:
		items, err = s.tattoos.List(ctx, tattoos.Query{
			Style:    q.Get("style"),
			Featured: q.Get("featured") == "true",
			Tags:     splitTags(q.Get("tags")),
		})
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateTattoo(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var in content.TattooInput
	if !decodeBody(w, r, &in) {
		return
	}
	item, err := s.tattoos.Create(r.Context(), in)
	respondCreated(w, item, err)
}

func (s *Server) handleGetTattoo(w http.ResponseWriter, r *http.Request) {
	item, err := s.tattoos.Get(r.Context(), r.PathValue("id"))
	respondOK(w, item, err)
}

func (s *Server) handleUpdateTattoo(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var p content.TattooPatch
	if !decodeBody(w, r, &p) {
		return
	}
	item, err := s.tattoos.Update(r.Context(), r.PathValue("id"), p)
	respondOK(w, item, err)
}

func (s *Server) handleDeleteTattoo(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.tattoos.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}

func (s *Server) handleViewTattoo(w http.ResponseWriter, r *http.Request) {
	if err := s.tattoos.View(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (s *Server) handleLikeTattoo(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.tattoos.Like(r.Context(), r.PathValue("id"), req.Increment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}
