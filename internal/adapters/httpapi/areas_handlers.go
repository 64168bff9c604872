package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

func (s *Server) handleCreateArea(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}

	var req areaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON", nil)
		return
	}

	created, err := s.Areas.Create(r.Context(), identity.ID, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, areaResponseFrom(created))
}

// handleAreaLayer serves the public map layer: every active adoption,
// owner excluded, no auth required.
func (s *Server) handleAreaLayer(w http.ResponseWriter, r *http.Request) {
	pas, err := s.Areas.ListActivePublic(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, featureCollectionFrom(pas))
}

func (s *Server) handleListMyAreas(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}

	mine, err := s.Areas.ListMine(r.Context(), identity.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]areaResponse, 0, len(mine))
	for _, a := range mine {
		out = append(out, areaResponseFrom(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateArea(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	areaID := domain.AreaID(chi.URLParam(r, "areaID"))

	var req updateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON", nil)
		return
	}

	updated, err := s.Areas.Update(r.Context(), identity.ID, areaID, req.toUpdateInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, areaResponseFrom(updated))
}

func (s *Server) handleDeleteArea(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	areaID := domain.AreaID(chi.URLParam(r, "areaID"))

	if err := s.Areas.Delete(r.Context(), identity.ID, areaID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
