// Package editor is the HTTP backend for the admin content tool: JSON CRUD
// over the content tables, SVG asset storage, sign-in, and the live
// composition preview the editor shows while a person type is being edited.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/auth"
	"github.com/slopworks/cultivator/internal/db"
	"github.com/slopworks/cultivator/internal/model"
	"github.com/slopworks/cultivator/internal/store"
)

// SpeciesRepo is the species persistence surface the server writes through.
type SpeciesRepo interface {
	Get(ctx context.Context, id uuid.UUID) (model.Species, error)
	List(ctx context.Context) ([]model.Species, error)
	Save(ctx context.Context, s model.Species) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DaoRepo is the dao persistence surface.
type DaoRepo interface {
	Get(ctx context.Context, id uuid.UUID) (model.Dao, error)
	List(ctx context.Context) ([]model.Dao, error)
	Save(ctx context.Context, d model.Dao) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TitleRepo is the title persistence surface.
type TitleRepo interface {
	Get(ctx context.Context, id uuid.UUID) (model.Title, error)
	List(ctx context.Context) ([]model.Title, error)
	Save(ctx context.Context, t model.Title) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonTypeRepo is the person type persistence surface.
type PersonTypeRepo interface {
	Get(ctx context.Context, id uuid.UUID) (model.PersonType, error)
	List(ctx context.Context) ([]model.PersonType, error)
	Save(ctx context.Context, p model.PersonType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetRepo is the asset persistence surface.
type AssetRepo interface {
	Get(ctx context.Context, key string) (model.Asset, error)
	ListManifest(ctx context.Context) ([]model.Asset, error)
	Save(ctx context.Context, a model.Asset) error
	Delete(ctx context.Context, key string) error
}

// Server holds the handler dependencies.
type Server struct {
	auth        *auth.Authenticator
	species     SpeciesRepo
	daos        DaoRepo
	titles      TitleRepo
	personTypes PersonTypeRepo
	assets      AssetRepo
	content     *store.Store
}

// NewServer creates the editor backend.
func NewServer(a *auth.Authenticator, species SpeciesRepo, daos DaoRepo, titles TitleRepo, personTypes PersonTypeRepo, assets AssetRepo, content *store.Store) *Server {
	return &Server{
		auth:        a,
		species:     species,
		daos:        daos,
		titles:      titles,
		personTypes: personTypes,
		assets:      assets,
		content:     content,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("POST /v1/auth/login", s.handleLogin)
	mux.HandleFunc("POST /v1/auth/refresh", s.handleRefresh)
	mux.HandleFunc("POST /v1/auth/logout", s.handleLogout)

	view := func(h http.HandlerFunc) http.HandlerFunc { return s.requireAccess(model.AccessViewer, h) }
	edit := func(h http.HandlerFunc) http.HandlerFunc { return s.requireAccess(model.AccessEditor, h) }

	mux.HandleFunc("GET /v1/species", view(s.handleListSpecies))
	mux.HandleFunc("GET /v1/species/{id}", view(s.handleGetSpecies))
	mux.HandleFunc("POST /v1/species", edit(s.handleCreateSpecies))
	mux.HandleFunc("PUT /v1/species/{id}", edit(s.handleUpdateSpecies))
	mux.HandleFunc("DELETE /v1/species/{id}", edit(s.handleDeleteSpecies))

	mux.HandleFunc("GET /v1/daos", view(s.handleListDaos))
	mux.HandleFunc("GET /v1/daos/{id}", view(s.handleGetDao))
	mux.HandleFunc("POST /v1/daos", edit(s.handleCreateDao))
	mux.HandleFunc("PUT /v1/daos/{id}", edit(s.handleUpdateDao))
	mux.HandleFunc("DELETE /v1/daos/{id}", edit(s.handleDeleteDao))

	mux.HandleFunc("GET /v1/titles", view(s.handleListTitles))
	mux.HandleFunc("GET /v1/titles/{id}", view(s.handleGetTitle))
	mux.HandleFunc("POST /v1/titles", edit(s.handleCreateTitle))
	mux.HandleFunc("PUT /v1/titles/{id}", edit(s.handleUpdateTitle))
	mux.HandleFunc("DELETE /v1/titles/{id}", edit(s.handleDeleteTitle))

	mux.HandleFunc("GET /v1/person-types", view(s.handleListPersonTypes))
	mux.HandleFunc("GET /v1/person-types/{id}", view(s.handleGetPersonType))
	mux.HandleFunc("GET /v1/person-types/{id}/preview", view(s.handlePersonTypePreview))
	mux.HandleFunc("POST /v1/person-types", edit(s.handleCreatePersonType))
	mux.HandleFunc("PUT /v1/person-types/{id}", edit(s.handleUpdatePersonType))
	mux.HandleFunc("DELETE /v1/person-types/{id}", edit(s.handleDeletePersonType))

	mux.HandleFunc("GET /v1/assets", view(s.handleAssetManifest))
	mux.HandleFunc("GET /v1/assets/{key}", view(s.handleGetAsset))
	mux.HandleFunc("PUT /v1/assets/{key}", edit(s.handlePutAsset))
	mux.HandleFunc("DELETE /v1/assets/{key}", edit(s.handleDeleteAsset))

	mux.HandleFunc("POST /v1/preview/compose", view(s.handleComposePreview))

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeLookupError maps db.ErrNotFound to 404 and everything else to 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	slog.Error("content lookup failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// requireAccess wraps a handler with bearer-token auth at the given level.
// An expired token gets a distinct code so the editor client knows to
// refresh and retry instead of bouncing the user to the login form.
func (s *Server) requireAccess(level int, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.auth.VerifyAccess(header[len(prefix):])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "access token expired", Code: "token_expired"})
				return
			}
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.AccessLevel < level {
			writeError(w, http.StatusForbidden, "insufficient access level")
			return
		}
		next(w, r)
	}
}
