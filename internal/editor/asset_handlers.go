package editor

import (
	"net/http"

	"github.com/slopworks/cultivator/internal/model"
)

type assetUploadRequest struct {
	Kind model.AssetKind `json:"kind"`
	SVG  string          `json:"svg"`
}

// handleAssetManifest returns keys, kinds and checksums without bodies;
// the game client diffs checksums to decide which assets to re-fetch.
func (s *Server) handleAssetManifest(w http.ResponseWriter, r *http.Request) {
	manifest, err := s.assets.ListManifest(r.Context())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, manifest)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := s.assets.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handlePutAsset(w http.ResponseWriter, r *http.Request) {
	var req assetUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	asset := model.Asset{
		Key:  r.PathValue("key"),
		Kind: req.Kind,
		SVG:  req.SVG,
	}
	if err := asset.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.assets.Save(r.Context(), asset); err != nil {
		writeLookupError(w, err)
		return
	}

	saved, err := s.assets.Get(r.Context(), asset.Key)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.assets.Delete(r.Context(), r.PathValue("key")); err != nil {
		writeLookupError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
