package editor

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/slopworks/cultivator/internal/model"
)

type composePreviewRequest struct {
	SpeciesID uuid.UUID `json:"speciesId"`
	DaoID     uuid.UUID `json:"daoId"`
	TitleID   uuid.UUID `json:"titleId"`
}

// handleComposePreview resolves an arbitrary triple and returns the
// composed block. The editor calls this on every form change while a
// person type is being authored, so reads go through the cached store.
func (s *Server) handleComposePreview(w http.ResponseWriter, r *http.Request) {
	var req composePreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.SpeciesID == uuid.Nil || req.DaoID == uuid.Nil || req.TitleID == uuid.Nil {
		// A half-filled form never reaches composition.
		writeError(w, http.StatusBadRequest, "speciesId, daoId and titleId required")
		return
	}

	species, dao, title, err := s.content.ResolveTriple(r.Context(), req.SpeciesID, req.DaoID, req.TitleID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ComposeCultivatorStats(species, dao, title))
}

type personTypePreview struct {
	PersonType model.PersonType    `json:"personType"`
	Composed   model.ComposedStats `json:"composed"`
	Final      model.ComposedStats `json:"final"`
}

// handlePersonTypePreview previews a saved person type, showing both the
// raw composed block and the block after authored overrides.
func (s *Server) handlePersonTypePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed id")
		return
	}

	pt, err := s.content.PersonType(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	species, dao, title, err := s.content.ResolveTriple(r.Context(), pt.SpeciesID, pt.DaoID, pt.TitleID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	composed := model.ComposeCultivatorStats(species, dao, title)
	writeJSON(w, http.StatusOK, personTypePreview{
		PersonType: pt,
		Composed:   composed,
		Final:      pt.ApplyOverrides(composed),
	})
}
