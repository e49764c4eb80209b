package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"inkbeat/internal/app/music"
	"inkbeat/internal/app/news"
	"inkbeat/internal/app/showcase"
	"inkbeat/internal/app/tattoos"
	"inkbeat/internal/content"
	"inkbeat/internal/store"
)

// MusicService captures the music operations needed by the HTTP handlers.
type MusicService interface {
	List(ctx context.Context, q music.Query) ([]content.Music, error)
	ListAdmin(ctx context.Context, status string) ([]content.Music, error)
	Get(ctx context.Context, id string) (content.Music, error)
	Create(ctx context.Context, in content.MusicInput) (content.Music, error)
	Update(ctx context.Context, id string, p content.MusicPatch) (content.Music, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Music, error)
	InSection(ctx context.Context, section string) ([]content.Music, error)
	Tags(ctx context.Context) ([]string, error)
	Play(ctx context.Context, id string) error
	Like(ctx context.Context, id string, increment bool) error
}

// TattooService captures the tattoo operations needed by the HTTP handlers.
type TattooService interface {
	List(ctx context.Context, q tattoos.Query) ([]content.Tattoo, error)
	ListAdmin(ctx context.Context, status string) ([]content.Tattoo, error)
	Get(ctx context.Context, id string) (content.Tattoo, error)
	Create(ctx context.Context, in content.TattooInput) (content.Tattoo, error)
	Update(ctx context.Context, id string, p content.TattooPatch) (content.Tattoo, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.Tattoo, error)
	InSection(ctx context.Context, section string) ([]content.Tattoo, error)
	Tags(ctx context.Context) ([]string, error)
	View(ctx context.Context, id string) error
	Like(ctx context.Context, id string, increment bool) error
}

// NewsService captures the news operations needed by the HTTP handlers.
type NewsService interface {
	List(ctx context.Context, q news.Query) ([]content.News, error)
	ListAdmin(ctx context.Context, status string) ([]content.News, error)
	Get(ctx context.Context, id string) (content.News, error)
	Create(ctx context.Context, in content.NewsInput) (content.News, error)
	Update(ctx context.Context, id string, p content.NewsPatch) (content.News, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]content.News, error)
	InSection(ctx context.Context, section string) ([]content.News, error)
	Tags(ctx context.Context) ([]string, error)
}

// ShowcaseService answers queries that span all three content kinds.
type ShowcaseService interface {
	FeaturedForHomepage(ctx context.Context) (showcase.FeaturedContent, error)
	ByTags(ctx context.Context, tags []string) (showcase.TaggedContent, error)
	AllTags(ctx context.Context) ([]string, error)
}

// MessageService coordinates contact-message workflows.
type MessageService interface {
	Create(ctx context.Context, in store.ContactMessageInput) (store.ContactMessage, error)
	List(ctx context.Context, status string) ([]store.ContactMessage, error)
	Get(ctx context.Context, id string) (store.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) (store.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// ContributionService coordinates contribution workflows.
type ContributionService interface {
	Create(ctx context.Context, in store.ContributionInput) (store.Contribution, error)
	List(ctx context.Context, status string) ([]store.Contribution, error)
	Get(ctx context.Context, id string) (store.Contribution, error)
	UpdateStatus(ctx context.Context, id, status string) (store.Contribution, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (store.ContributionStats, error)
}

// AdminService exposes admin login and session checks.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Validate(ctx context.Context, token string) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	music         MusicService
	tattoos       TattooService
	news          NewsService
	showcase      ShowcaseService
	messages      MessageService
	contributions ContributionService
	admins        AdminService
}

// New configures a Server with the given services.
func New(
	music MusicService,
	tattoos TattooService,
	news NewsService,
	showcase ShowcaseService,
	messages MessageService,
	contributions ContributionService,
	admins AdminService,
) *Server {
	return &Server{
		music:         music,
		tattoos:       tattoos,
		news:          news,
		showcase:      showcase,
		messages:      messages,
		contributions: contributions,
		admins:        admins,
	}
}

// Routes exposes the HTTP handlers for the public site and the admin
// dashboard.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	// Generic content surface
	mux.HandleFunc("GET /api/v1/content", s.handleContent)
	mux.HandleFunc("POST /api/v1/content/{type}", s.handleCreateContent)
	mux.HandleFunc("GET /api/v1/content/{type}/{id}", s.handleGetContent)
	mux.HandleFunc("PUT /api/v1/content/{type}/{id}", s.handleUpdateContent)
	mux.HandleFunc("DELETE /api/v1/content/{type}/{id}", s.handleDeleteContent)
	mux.HandleFunc("POST /api/v1/content/{type}/{id}/action", s.handleContentAction)
	mux.HandleFunc("GET /api/v1/admin/content", s.handleAdminContent)

	// Per-kind convenience routes
	mux.HandleFunc("GET /api/v1/music", s.handleListMusic)
	mux.HandleFunc("POST /api/v1/music", s.handleCreateMusic)
	mux.HandleFunc("GET /api/v1/music/{id}", s.handleGetMusic)
	mux.HandleFunc("PUT /api/v1/music/{id}", s.handleUpdateMusic)
	mux.HandleFunc("DELETE /api/v1/music/{id}", s.handleDeleteMusic)
	mux.HandleFunc("POST /api/v1/music/{id}/play", s.handlePlayMusic)
	mux.HandleFunc("POST /api/v1/music/{id}/like", s.handleLikeMusic)

	mux.HandleFunc("GET /api/v1/tattoos", s.handleListTattoos)
	mux.HandleFunc("POST /api/v1/tattoos", s.handleCreateTattoo)
	mux.HandleFunc("GET /api/v1/tattoos/{id}", s.handleGetTattoo)
	mux.HandleFunc("PUT /api/v1/tattoos/{id}", s.handleUpdateTattoo)
	mux.HandleFunc("DELETE /api/v1/tattoos/{id}", s.handleDeleteTattoo)
	mux.HandleFunc("POST /api/v1/tattoos/{id}/view", s.handleViewTattoo)
	mux.HandleFunc("POST /api/v1/tattoos/{id}/like", s.handleLikeTattoo)

	mux.HandleFunc("GET /api/v1/news", s.handleListNews)
	mux.HandleFunc("POST /api/v1/news", s.handleCreateNews)
	mux.HandleFunc("GET /api/v1/news/{id}", s.handleGetNews)
	mux.HandleFunc("PUT /api/v1/news/{id}", s.handleUpdateNews)
	mux.HandleFunc("DELETE /api/v1/news/{id}", s.handleDeleteNews)

	// Contact messages
	mux.HandleFunc("POST /api/v1/contact-messages", s.handleCreateMessage)
	mux.HandleFunc("GET /api/v1/contact-messages", s.handleListMessages)
	mux.HandleFunc("GET /api/v1/contact-messages/{id}", s.handleGetMessage)
	mux.HandleFunc("PUT /api/v1/contact-messages/{id}", s.handleUpdateMessage)
	mux.HandleFunc("DELETE /api/v1/contact-messages/{id}", s.handleDeleteMessage)

	// Contributions
	mux.HandleFunc("POST /api/v1/contributions", s.handleCreateContribution)
	mux.HandleFunc("GET /api/v1/contributions", s.handleListContributions)
	mux.HandleFunc("GET /api/v1/contributions/stats", s.handleContributionStats)
	mux.HandleFunc("GET /api/v1/contributions/{id}", s.handleGetContribution)
	mux.HandleFunc("PUT /api/v1/contributions/{id}", s.handleUpdateContribution)
	mux.HandleFunc("DELETE /api/v1/contributions/{id}", s.handleDeleteContribution)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	token, err := s.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// requireAdmin validates the bearer token before an admin-only handler runs.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return false
	}
	if err := s.admins.Validate(r.Context(), token); err != nil {
		writeError(w, err)
		return false
	}
	return true
}

// writeError maps the store/domain error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var verr *content.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr), errors.Is(err, content.ErrInvalidKind):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidCredentials), errors.Is(err, store.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// splitTags turns a comma-separated query value into a tag set.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var tags []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
