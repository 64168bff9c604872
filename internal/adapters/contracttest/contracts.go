// Package contracttest holds repository contract suites shared by the memory
// and postgres adapters. Each adapter's contract_test.go supplies a factory;
// the suite exercises the behavior the ports promise.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	arearepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/arearepo"
	identityrepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
	sessionstoreport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/sessionstore"
	teamrepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/teamrepo"
)

type CleanupFunc = func()

// SeedSessionFunc seeds a session the suite can then look up. A zero
// expiresAt means the session never expires.
type SeedSessionFunc = func(token string, principal domain.PrincipalID, expiresAt time.Time)

type AreaRepoFactory func(t *testing.T) (arearepoport.Repository, CleanupFunc)
type TeamRepoFactory func(t *testing.T) (teamrepoport.Repository, CleanupFunc)
type IdentityRepoFactory func(t *testing.T) (identityrepoport.Repository, CleanupFunc)
type SessionStoreFactory func(t *testing.T) (sessionstoreport.Store, SeedSessionFunc, CleanupFunc)

func RunAreaRepo(t *testing.T, newRepo AreaRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	owner := domain.PrincipalID(uuid.NewString())
	other := domain.PrincipalID(uuid.NewString())

	aID := domain.AreaID(uuid.NewString())
	if err := repo.Create(ctx, arearepoport.Area{
		ID:           aID,
		Owner:        owner,
		AreaName:     "Good Harbor Beach",
		AdopteeName:  "Gloucester Rotary",
		Email:        "rotary@example.com",
		AdoptionType: domain.AdoptionIndefinite,
		IsActive:     true,
		Lng:          -70.6215,
		Lat:          42.5876,
		City:         "Gloucester",
		State:        "MA",
		Country:      "USA",
		CreatedAt:    now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Duplicate ID is rejected.
	if err := repo.Create(ctx, arearepoport.Area{ID: aID, Owner: owner, IsActive: true, CreatedAt: now}); !errors.Is(err, arearepoport.ErrAlreadyExists) {
		t.Fatalf("duplicate Create err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, aID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.AreaName != "Good Harbor Beach" || got.Owner != owner || !got.IsActive {
		t.Fatalf("GetByID got %+v", got)
	}

	if _, err := repo.GetByID(ctx, domain.AreaID(uuid.NewString())); !errors.Is(err, arearepoport.ErrNotFound) {
		t.Fatalf("GetByID missing err=%v, want ErrNotFound", err)
	}

	// A second record: temporary, already expired, owned by someone else.
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	bID := domain.AreaID(uuid.NewString())
	if err := repo.Create(ctx, arearepoport.Area{
		ID:           bID,
		Owner:        other,
		AreaName:     "Wingaersheek Beach",
		AdopteeName:  "Cape Ann Scouts",
		Email:        "scouts@example.com",
		AdoptionType: domain.AdoptionTemporary,
		EndDate:      &end,
		IsActive:     true,
		Lng:          -70.7174,
		Lat:          42.6391,
		City:         "Gloucester",
		State:        "MA",
		Country:      "USA",
		CreatedAt:    now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	// ListActive sees both, newest first.
	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 || active[0].ID != bID || active[1].ID != aID {
		t.Fatalf("ListActive got %d records, order %v", len(active), ids(active))
	}

	// ListByOwner scopes to the owner and includes inactive records.
	mine, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != aID {
		t.Fatalf("ListByOwner got %v", ids(mine))
	}

	// Bulk expiry: only the stale temporary record flips.
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	n, err := repo.DeactivateExpired(ctx, today)
	if err != nil {
		t.Fatalf("DeactivateExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("DeactivateExpired n=%d, want 1", n)
	}
	swept, err := repo.GetByID(ctx, bID)
	if err != nil {
		t.Fatalf("GetByID after sweep: %v", err)
	}
	if swept.IsActive {
		t.Fatalf("expected record deactivated")
	}
	if swept.AdoptionType != domain.AdoptionTemporary || swept.EndDate == nil || !swept.EndDate.Equal(end) {
		t.Fatalf("sweep must not touch other fields: %+v", swept)
	}

	// Idempotent: second run affects nothing.
	n, err = repo.DeactivateExpired(ctx, today)
	if err != nil || n != 0 {
		t.Fatalf("second DeactivateExpired n=%d err=%v, want 0", n, err)
	}

	// Full-record update.
	got.Note = "Monthly cleanups, meet at the footbridge."
	got.IsActive = false
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := repo.GetByID(ctx, aID)
	if err != nil || updated.Note != got.Note || updated.IsActive {
		t.Fatalf("Update round-trip: %+v err=%v", updated, err)
	}
	if err := repo.Update(ctx, arearepoport.Area{ID: domain.AreaID(uuid.NewString())}); !errors.Is(err, arearepoport.ErrNotFound) {
		t.Fatalf("Update missing err=%v, want ErrNotFound", err)
	}

	// Hard delete.
	if err := repo.Delete(ctx, aID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, aID); !errors.Is(err, arearepoport.ErrNotFound) {
		t.Fatalf("GetByID after delete err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, aID); !errors.Is(err, arearepoport.ErrNotFound) {
		t.Fatalf("second Delete err=%v, want ErrNotFound", err)
	}
}

func RunTeamRepo(t *testing.T, newRepo TeamRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	founder := domain.PrincipalID(uuid.NewString())
	joiner := domain.PrincipalID(uuid.NewString())

	aID := domain.TeamID(uuid.NewString())
	if err := repo.Create(ctx, teamrepoport.Team{
		ID:          aID,
		Name:        "Cape Ann Coastsweep",
		Description: "Volunteer shoreline cleanups north of Boston.",
		Lng:         -70.6620,
		Lat:         42.6159,
		City:        "Gloucester",
		State:       "MA",
		Country:     "USA",
		Members:     []domain.PrincipalID{founder},
		Leaders:     []domain.PrincipalID{founder},
		CreatedAt:   now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, teamrepoport.Team{ID: aID, CreatedAt: now}); !errors.Is(err, teamrepoport.ErrAlreadyExists) {
		t.Fatalf("duplicate Create err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, aID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Members) != 1 || got.Members[0] != founder || len(got.Leaders) != 1 {
		t.Fatalf("GetByID got %+v", got)
	}
	if _, err := repo.GetByID(ctx, domain.TeamID(uuid.NewString())); !errors.Is(err, teamrepoport.ErrNotFound) {
		t.Fatalf("GetByID missing err=%v, want ErrNotFound", err)
	}

	// Aggregate update replaces member/leader sets wholesale.
	got.Members = append(got.Members, joiner)
	got.Description = "Volunteer shoreline cleanups across Cape Ann."
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := repo.GetByID(ctx, aID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if len(updated.Members) != 2 || len(updated.Leaders) != 1 {
		t.Fatalf("set replacement: %+v", updated)
	}
	if err := repo.Update(ctx, teamrepoport.Team{ID: domain.TeamID(uuid.NewString())}); !errors.Is(err, teamrepoport.ErrNotFound) {
		t.Fatalf("Update missing err=%v, want ErrNotFound", err)
	}

	// Deterministic list ordering by name (case-insensitive).
	bID := domain.TeamID(uuid.NewString())
	if err := repo.Create(ctx, teamrepoport.Team{
		ID:        bID,
		Name:      "beverly harbor crew",
		Members:   []domain.PrincipalID{joiner},
		Leaders:   []domain.PrincipalID{joiner},
		CreatedAt: now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != bID || all[1].ID != aID {
		t.Fatalf("List order: %v", teamIDs(all))
	}

	if err := repo.Delete(ctx, bID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, bID); !errors.Is(err, teamrepoport.ErrNotFound) {
		t.Fatalf("GetByID after delete err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, bID); !errors.Is(err, teamrepoport.ErrNotFound) {
		t.Fatalf("second Delete err=%v, want ErrNotFound", err)
	}
}

func RunIdentityRepo(t *testing.T, newRepo IdentityRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aID := domain.PrincipalID(uuid.NewString())
	if err := repo.Create(ctx, identityrepoport.Identity{
		ID:        aID,
		Email:     "steward@example.com",
		Username:  "steward",
		CreatedAt: now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, aID)
	if err != nil || got.Email != "steward@example.com" {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	if _, err := repo.GetByID(ctx, domain.PrincipalID(uuid.NewString())); !errors.Is(err, identityrepoport.ErrNotFound) {
		t.Fatalf("GetByID missing err=%v, want ErrNotFound", err)
	}

	// Email lookup is case-insensitive.
	byEmail, err := repo.GetByEmail(ctx, "Steward@Example.COM")
	if err != nil || byEmail.ID != aID {
		t.Fatalf("GetByEmail: %+v err=%v", byEmail, err)
	}

	// Email uniqueness is case-insensitive too.
	if err := repo.Create(ctx, identityrepoport.Identity{
		ID:        domain.PrincipalID(uuid.NewString()),
		Email:     "STEWARD@example.com",
		Username:  "steward2",
		CreatedAt: now,
	}); !errors.Is(err, identityrepoport.ErrEmailAlreadyInUse) {
		t.Fatalf("duplicate email err=%v, want ErrEmailAlreadyInUse", err)
	}
}

func RunSessionStore(t *testing.T, newStore SessionStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, seed, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	principal := domain.PrincipalID(uuid.NewString())
	seed("tok-live", principal, time.Now().UTC().Add(time.Hour))
	seed("tok-stale", principal, time.Now().UTC().Add(-time.Hour))

	got, err := store.Lookup(ctx, "tok-live")
	if err != nil || got != principal {
		t.Fatalf("Lookup live: %v err=%v", got, err)
	}

	// Expired and unknown tokens are indistinguishable.
	if _, err := store.Lookup(ctx, "tok-stale"); !errors.Is(err, sessionstoreport.ErrNotFound) {
		t.Fatalf("Lookup stale err=%v, want ErrNotFound", err)
	}
	if _, err := store.Lookup(ctx, "tok-unknown"); !errors.Is(err, sessionstoreport.ErrNotFound) {
		t.Fatalf("Lookup unknown err=%v, want ErrNotFound", err)
	}
}

func ids(as []arearepoport.Area) []domain.AreaID {
	out := make([]domain.AreaID, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func teamIDs(ts []teamrepoport.Team) []domain.TeamID {
	out := make([]domain.TeamID, 0, len(ts))
	for _, tm := range ts {
		out = append(out, tm.ID)
	}
	return out
}
