package httpapi

import (
	"encoding/json"
	"net/http"

	"inkbeat/internal/app/music"
	"inkbeat/internal/app/news"
	"inkbeat/internal/app/tattoos"
	"inkbeat/internal/content"
)

type tagsResponse struct {
	Tags []string `json:"tags"`
}

// handleContent is the single public query endpoint. The query string picks
// the operation: getTags for the tag index, featured without a type for the
// homepage slots, tags without a type for a cross-kind lookup, and otherwise
// a per-kind listing, search, or featured query.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawKind := q.Get("type")

	if q.Get("getTags") == "true" {
		s.handleContentTags(w, r, rawKind)
		return
	}

	if rawKind == "" {
		switch {
		case q.Get("featured") == "true":
			fc, err := s.showcase.FeaturedForHomepage(r.Context())
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, fc)
		case q.Get("tags") != "":
			tc, err := s.showcase.ByTags(r.Context(), splitTags(q.Get("tags")))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, tc)
		default:
			writeError(w, content.ErrInvalidKind)
		}
		return
	}

	kind, err := content.ParseKind(rawKind)
	if err != nil {
		writeError(w, err)
		return
	}

	switch kind {
	case content.KindMusic:
		s.queryMusic(w, r)
	case content.KindTattoo:
		s.queryTattoos(w, r)
	case content.KindNews:
		s.queryNews(w, r)
	}
}

func (s *Server) handleContentTags(w http.ResponseWriter, r *http.Request, rawKind string) {
	if rawKind == "" {
		tags, err := s.showcase.AllTags(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{Tags: tags})
		return
	}

	kind, err := content.ParseKind(rawKind)
	if err != nil {
		writeError(w, err)
		return
	}

	var tags []string
	switch kind {
	case content.KindMusic:
		tags, err = s.music.Tags(r.Context())
	case content.KindTattoo:
		tags, err = s.tattoos.Tags(r.Context())
	case content.KindNews:
		tags, err = s.news.Tags(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tagsResponse{Tags: tags})
}

func (s *Server) queryMusic(w http.ResponseWriter, r *http.Request) {
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

func (s *Server) queryTattoos(w http.ResponseWriter, r *http.Request) {
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

func (s *Server) queryNews(w http.ResponseWriter, r *http.Request) {
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

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	kind, err := content.ParseKind(r.PathValue("type"))
	if err != nil {
		writeError(w, err)
		return
	}

	switch kind {
	case content.KindMusic:
		var in content.MusicInput
		if !decodeBody(w, r, &in) {
			return
		}
		item, err := s.music.Create(r.Context(), in)
		respondCreated(w, item, err)
	case content.KindTattoo:
		var in content.TattooInput
		if !decodeBody(w, r, &in) {
			return
		}
		item, err := s.tattoos.Create(r.Context(), in)
		respondCreated(w, item, err)
	case content.KindNews:
		var in content.NewsInput
		if !decodeBody(w, r, &in) {
			return
		}
		item, err := s.news.Create(r.Context(), in)
		respondCreated(w, item, err)
	}
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	kind, err := content.ParseKind(r.PathValue("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	id := r.PathValue("id")

	switch kind {
	case content.KindMusic:
		item, err := s.music.Get(r.Context(), id)
		respondOK(w, item, err)
	case content.KindTattoo:
		item, err := s.tattoos.Get(r.Context(), id)
		respondOK(w, item, err)
	case content.KindNews:
		item, err := s.news.Get(r.Context(), id)
		respondOK(w, item, err)
	}
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	kind, err := content.ParseKind(r.PathValue("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	id := r.PathValue("id")

	switch kind {
	case content.KindMusic:
		var p content.MusicPatch
		if !decodeBody(w, r, &p) {
			return
		}
		item, err := s.music.Update(r.Context(), id, p)
		respondOK(w, item, err)
	case content.KindTattoo:
		var p content.TattooPatch
		if !decodeBody(w, r, &p) {
			return
		}
		item, err := s.tattoos.Update(r.Context(), id, p)
		respondOK(w, item, err)
	case content.KindNews:
		var p content.NewsPatch
		if !decodeBody(w, r, &p) {
			return
		}
		item, err := s.news.Update(r.Context(), id, p)
		respondOK(w, item, err)
	}
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	kind, err := content.ParseKind(r.PathValue("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	id := r.PathValue("id")

	switch kind {
	case content.KindMusic:
		err = s.music.Delete(r.Context(), id)
	case content.KindTattoo:
		err = s.tattoos.Delete(r.Context(), id)
	case content.KindNews:
		err = s.news.Delete(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
}

type likeRequest struct {
	Increment bool `json:"increment"`
}

// handleContentAction applies an engagement action to a record. Plays count
// only for music and views only for tattoos; likes toggle on all counted
// kinds with the direction carried in the body.
func (s *Server) handleContentAction(w http.ResponseWriter, r *http.Request) {
	kind, err := content.ParseKind(r.PathValue("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	id := r.PathValue("id")
	action := r.URL.Query().Get("action")

	switch {
	case kind == content.KindMusic && action == "play":
		err = s.music.Play(r.Context(), id)
	case kind == content.KindTattoo && action == "view":
		err = s.tattoos.View(r.Context(), id)
	case kind == content.KindMusic && action == "like":
		var req likeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		err = s.music.Like(r.Context(), id, req.Increment)
	case kind == content.KindTattoo && action == "like":
		var req likeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		err = s.tattoos.Like(r.Context(), id, req.Increment)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported action for content type"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

type adminContentResponse struct {
	Music   []content.Music  `json:"music"`
	Tattoos []content.Tattoo `json:"tattoos"`
	News    []content.News   `json:"news"`
}

// handleAdminContent lists records regardless of status for the dashboard.
// An optional type narrows the result to one collection, an optional status
// pins one lifecycle state.
func (s *Server) handleAdminContent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	q := r.URL.Query()
	status := q.Get("status")
	ctx := r.Context()

	wantKind := func(k content.Kind) bool {
		return q.Get("type") == "" || q.Get("type") == string(k)
	}
	if q.Get("type") != "" {
		if _, err := content.ParseKind(q.Get("type")); err != nil {
			writeError(w, err)
			return
		}
	}

	resp := adminContentResponse{
		Music:   []content.Music{},
		Tattoos: []content.Tattoo{},
		News:    []content.News{},
	}
	var err error
	if wantKind(content.KindMusic) {
		if resp.Music, err = s.music.ListAdmin(ctx, status); err != nil {
			writeError(w, err)
			return
		}
	}
	if wantKind(content.KindTattoo) {
		if resp.Tattoos, err = s.tattoos.ListAdmin(ctx, status); err != nil {
			writeError(w, err)
			return
		}
	}
	if wantKind(content.KindNews) {
		if resp.News, err = s.news.ListAdmin(ctx, status); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return false
	}
	return true
}

func respondOK(w http.ResponseWriter, item any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func respondCreated(w http.ResponseWriter, item any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}
