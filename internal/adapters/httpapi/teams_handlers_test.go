package httpapi

import (
	"net/http"
	"testing"
)

func createTeam(t *testing.T, h http.Handler, principal string) teamResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/teams/", principal, validTeamBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: %d %s", rec.Code, rec.Body.String())
	}
	return decodeBody[teamResponse](t, rec)
}

func TestCreateTeam_CreatorIsMemberAndLeader(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")
	if len(team.Members) != 1 || team.Members[0] != "founder" {
		t.Fatalf("members = %v", team.Members)
	}
	if len(team.Leaders) != 1 || team.Leaders[0] != "founder" {
		t.Fatalf("leaders = %v", team.Leaders)
	}
}

func TestTeamReads_ArePublic(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")

	list := doJSON(t, h, http.MethodGet, "/api/teams/", "", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list status = %d", list.Code)
	}
	if teams := decodeBody[[]teamResponse](t, list); len(teams) != 1 {
		t.Fatalf("list = %+v", teams)
	}

	get := doJSON(t, h, http.MethodGet, "/api/teams/"+team.ID+"/", "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}
}

func TestGetTeam_Unknown404(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/teams/nope/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateTeam_NonLeaderForbidden(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")
	rec := doJSON(t, h, http.MethodPut, "/api/teams/"+team.ID+"/", "outsider", validTeamBody())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rec); resp.Error.Code != "FORBIDDEN" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
}

func TestJoinAndLeaveTeam(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")

	join := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/join/", "joiner", nil)
	if join.Code != http.StatusOK {
		t.Fatalf("join status = %d %s", join.Code, join.Body.String())
	}
	if resp := decodeBody[teamResponse](t, join); len(resp.Members) != 2 {
		t.Fatalf("members after join = %v", resp.Members)
	}

	leave := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leave/", "joiner", nil)
	if leave.Code != http.StatusOK {
		t.Fatalf("leave status = %d", leave.Code)
	}
	if resp := decodeBody[teamResponse](t, leave); len(resp.Members) != 1 {
		t.Fatalf("members after leave = %v", resp.Members)
	}
}

func TestLeaveTeam_SoleLeaderBlocked(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")
	rec := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leave/", "founder", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rec); resp.Error.Code != "LAST_LEADER" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
}

func TestLeaderLifecycleOverHTTP(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")

	// Promoting a non-member fails.
	add := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leaders/add/", "founder",
		map[string]any{"principal_id": "joiner"})
	if add.Code != http.StatusBadRequest {
		t.Fatalf("promote non-member status = %d", add.Code)
	}
	if resp := decodeBody[ErrorResponse](t, add); resp.Error.Code != "NOT_A_MEMBER" {
		t.Fatalf("code = %q", resp.Error.Code)
	}

	// Member first, then promote.
	if rec := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/join/", "joiner", nil); rec.Code != http.StatusOK {
		t.Fatalf("join: %d", rec.Code)
	}
	add = doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leaders/add/", "founder",
		map[string]any{"principal_id": "joiner"})
	if add.Code != http.StatusOK {
		t.Fatalf("promote status = %d %s", add.Code, add.Body.String())
	}
	if resp := decodeBody[teamResponse](t, add); len(resp.Leaders) != 2 {
		t.Fatalf("leaders = %v", resp.Leaders)
	}

	// Non-leader cannot demote.
	rm := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leaders/remove/", "outsider",
		map[string]any{"principal_id": "founder"})
	if rm.Code != http.StatusForbidden {
		t.Fatalf("outsider demote status = %d", rm.Code)
	}

	// Founder steps down; joiner remains the leader, founder stays a member.
	rm = doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leaders/remove/", "founder",
		map[string]any{"principal_id": "founder"})
	if rm.Code != http.StatusOK {
		t.Fatalf("step down status = %d %s", rm.Code, rm.Body.String())
	}
	resp := decodeBody[teamResponse](t, rm)
	if len(resp.Leaders) != 1 || resp.Leaders[0] != "joiner" {
		t.Fatalf("leaders = %v", resp.Leaders)
	}
	if len(resp.Members) != 2 {
		t.Fatalf("members = %v", resp.Members)
	}
}

func TestAddLeader_MissingPrincipal422(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")
	rec := doJSON(t, h, http.MethodPost, "/api/teams/"+team.ID+"/leaders/add/", "founder",
		map[string]any{"principal_id": "  "})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestDeleteTeam_LeaderOnly(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	team := createTeam(t, h, "founder")

	if rec := doJSON(t, h, http.MethodDelete, "/api/teams/"+team.ID+"/", "outsider", nil); rec.Code != http.StatusForbidden {
		t.Fatalf("outsider delete status = %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodDelete, "/api/teams/"+team.ID+"/", "founder", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("leader delete status = %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, "/api/teams/"+team.ID+"/", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rec.Code)
	}
}
