package httpapi

import (
	"net/http"

	"inkbeat/internal/app/news"
	"inkbeat/internal/content"
)

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var (
		items []content.News
		err   error
	)
	switch {
	case q.Get("search") != "":
		items, err = s.news.Search(ctx, q.Get("search"))
	case q.Get("featuredSection") != "":
		items, err = s.news.InSection(ctx, q.Get("featuredSection"))
	default:
		items, err = s.news.List(ctx, news.Query{
			Category: q.Get("category"),
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

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var in content.NewsInput
	if !decodeBody(w, r, &in) {
		return
	}
	item, err := s.news.Create(r.Context(), in)
	respondCreated(w, item, err)
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	item, err := s.news.Get(r.Context(), r.PathValue("id"))
	respondOK(w, item, err)
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var p content.NewsPatch
	if !decodeBody(w, r, &p) {
		return
	}
	item, err := s.news.Update(r.Context(), r.PathValue("id"), p)
	respondOK(w, item, err)
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.news.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}
