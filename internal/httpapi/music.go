package httpapi

import (
	"net/http"

	"inkbeat/internal/app/music"
	"inkbeat/internal/content"
)

func (s *Server) handleListMusic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var (
		items []content.Music
		err   error
	)
	switch {
	case q.Get("search") != "":
		items, err = s.music.Search(ctx, q.Get("search"))
	case q.Get("featuredSection") != "":
		items, err = s.music.InSection(ctx, q.Get("featuredSection"))
	default:
		items, err = s.music.List(ctx, music.Query{
			Genre:    q.Get("genre"),
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

func (s *Server) handleCreateMusic(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var in content.MusicInput
	if !decodeBody(w, r, &in) {
		return
	}
	item, err := s.music.Create(r.Context(), in)
	respondCreated(w, item, err)
}

func (s *Server) handleGetMusic(w http.ResponseWriter, r *http.Request) {
	item, err := s.music.Get(r.Context(), r.PathValue("id"))
	respondOK(w, item, err)
}

func (s *Server) handleUpdateMusic(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var p content.MusicPatch
	if !decodeBody(w, r, &p) {
		return
	}
	item, err := s.music.Update(r.Context(), r.PathValue("id"), p)
	respondOK(w, item, err)
}

func (s *Server) handleDeleteMusic(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.music.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}

func (s *Server) handlePlayMusic(w http.ResponseWriter, r *http.Request) {
	if err := s.music.Play(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (s *Server) handleLikeMusic(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.music.Like(r.Context(), r.PathValue("id"), req.Increment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}
