package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON", nil)
		return
	}

	created, err := s.Teams.CreateTeam(r.Context(), identity.ID, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamResponseFrom(created))
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Teams.ListTeams(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]teamResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, teamResponseFrom(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	t, err := s.Teams.GetTeam(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponseFrom(t))
}

func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON", nil)
		return
	}

	updated, err := s.Teams.UpdateTeam(r.Context(), identity.ID, teamID, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponseFrom(updated))
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	if err := s.Teams.DeleteTeam(r.Context(), identity.ID, teamID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleJoinTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	t, err := s.Teams.JoinTeam(r.Context(), identity.ID, teamID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponseFrom(t))
}

func (s *Server) handleLeaveTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	t, err := s.Teams.LeaveTeam(r.Context(), identity.ID, teamID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponseFrom(t))
}

func (s *Server) handleAddLeader(w http.ResponseWriter, r *http.Request) {
	s.handleLeaderChange(w, r, s.Teams.AddLeader)
}

func (s *Server) handleRemoveLeader(w http.ResponseWriter, r *http.Request) {
	s.handleLeaderChange(w, r, s.Teams.RemoveLeader)
}

func (s *Server) handleLeaderChange(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, requester domain.PrincipalID, id domain.TeamID, target domain.PrincipalID) (domain.Team, error),
) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
		return
	}
	teamID := domain.TeamID(chi.URLParam(r, "teamID"))

	var req leaderChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON", nil)
		return
	}
	target := domain.PrincipalID(strings.TrimSpace(req.PrincipalID))
	if target == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid principal_id", map[string]any{"principal_id": "must be provided"})
		return
	}

	t, err := op(r.Context(), identity.ID, teamID, target)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponseFrom(t))
}
