package editor

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/model"
)

// Species

func (s *Server) handleListSpecies(w http.ResponseWriter, r *http.Request) {
	list, err := s.species.List(r.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	rec, err := s.species.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateSpecies(w http.ResponseWriter, r *http.Request) {
	var rec model.Species
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = uuid.New()
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.species.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	var rec model.Species
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = id
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.species.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateSpecies(id)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	if err := s.species.Delete(r.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateSpecies(id)
	w.WriteHeader(http.StatusNoContent)
}

// Daos

func (s *Server) handleListDaos(w http.ResponseWriter, r *http.Request) {
	list, err := s.daos.List(r.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDao(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	rec, err := s.daos.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateDao(w http.ResponseWriter, r *http.Request) {
	var rec model.Dao
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = uuid.New()
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.daos.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateDao(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	var rec model.Dao
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = id
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.daos.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateDao(id)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteDao(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	if err := s.daos.Delete(r.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateDao(id)
	w.WriteHeader(http.StatusNoContent)
}

// Titles

func (s *Server) handleListTitles(w http.ResponseWriter, r *http.Request) {
	list, err := s.titles.List(r.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	rec, err := s.titles.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateTitle(w http.ResponseWriter, r *http.Request) {
	var rec model.Title
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = uuid.New()
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.titles.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	var rec model.Title
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = id
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.titles.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateTitle(id)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	if err := s.titles.Delete(r.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidateTitle(id)
	w.WriteHeader(http.StatusNoContent)
}

// Person types

func (s *Server) handleListPersonTypes(w http.ResponseWriter, r *http.Request) {
	list, err := s.personTypes.List(r.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPersonType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	rec, err := s.personTypes.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreatePersonType(w http.ResponseWriter, r *http.Request) {
	var rec model.PersonType
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = uuid.New()
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.personTypes.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdatePersonType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	var rec model.PersonType
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	rec.ID = id
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.personTypes.Save(r.Context(), rec); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidatePersonType(id)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeletePersonType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}
	if err := s.personTypes.Delete(r.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	s.content.InvalidatePersonType(id)
	w.WriteHeader(http.StatusNoContent)
}
