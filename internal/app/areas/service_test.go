package areas

import (
	"context"
	"errors"
	"testing"
	"time"

	memarearepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/arearepo"
	memclock "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/clock"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memarearepo.Repo, *memclock.ManualClock) {
	t.Helper()
	repo := memarearepo.NewRepo()
	clk := memclock.NewManualClock(testNow)
	return NewService(repo, clk), repo, clk
}

func validInput() AreaInput {
	lng, lat := -70.6620, 42.6159
	return AreaInput{
		AreaName:     "Half Moon Beach",
		AdopteeName:  "Stage Fort Crew",
		Email:        "crew@example.com",
		AdoptionType: "indefinite",
		Note:         "",
		Lng:          &lng,
		Lat:          &lat,
		City:         "Gloucester",
		State:        "MA",
		Country:      "USA",
	}
}

func wantAppError(t *testing.T, err error, status int, code string) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s %d", code, status)
	}
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != status || ae.Code != code {
		t.Fatalf("err=%v (type=%T), want %s %d", err, err, code, status)
	}
	return ae
}

func TestService_Create_Indefinite(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created, err := svc.Create(context.Background(), domain.PrincipalID("p-1"), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.ID == "" || created.Owner != "p-1" {
		t.Fatalf("created=%+v", created)
	}
	if !created.IsActive {
		t.Fatalf("new areas start active")
	}
	if created.EndDate != nil {
		t.Fatalf("indefinite adoption must have no end date")
	}
	if !created.CreatedAt.Equal(testNow) {
		t.Fatalf("createdAt=%v", created.CreatedAt)
	}
}

func TestService_Create_TemporaryRequiresFutureEndDate(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)

	// Missing end date.
	in := validInput()
	in.AdoptionType = "temporary"
	_, err := svc.Create(context.Background(), domain.PrincipalID("p-1"), in)
	wantAppError(t, err, 422, "VALIDATION_ERROR")

	// End date today (not strictly in the future).
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in.EndDate = &today
	_, err = svc.Create(context.Background(), domain.PrincipalID("p-1"), in)
	wantAppError(t, err, 422, "VALIDATION_ERROR")

	// No record was written by the failed attempts.
	if recs, _ := repo.ListByOwner(context.Background(), domain.PrincipalID("p-1")); len(recs) != 0 {
		t.Fatalf("failed create must not persist, got %d records", len(recs))
	}

	// Tomorrow is fine.
	tomorrow := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	in.EndDate = &tomorrow
	created, err := svc.Create(context.Background(), domain.PrincipalID("p-1"), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.EndDate == nil || !created.EndDate.Equal(tomorrow) {
		t.Fatalf("endDate=%v", created.EndDate)
	}
}

func TestService_Create_IndefiniteRejectsEndDate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	in := validInput()
	d := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	in.EndDate = &d
	_, err := svc.Create(context.Background(), domain.PrincipalID("p-1"), in)
	wantAppError(t, err, 422, "VALIDATION_ERROR")
}

func TestService_Create_FieldConstraints(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	actor := domain.PrincipalID("p-1")

	long := func(n int) string {
		out := make([]rune, n)
		for i := range out {
			out[i] = 'x'
		}
		return string(out)
	}

	cases := []struct {
		name   string
		mutate func(*AreaInput)
	}{
		{"empty area_name", func(in *AreaInput) { in.AreaName = "  " }},
		{"area_name too long", func(in *AreaInput) { in.AreaName = long(101) }},
		{"adoptee_name too long", func(in *AreaInput) { in.AdopteeName = long(101) }},
		{"bad email", func(in *AreaInput) { in.Email = "not-an-email" }},
		{"display-name email", func(in *AreaInput) { in.Email = "Crew <crew@example.com>" }},
		{"unknown adoption_type", func(in *AreaInput) { in.AdoptionType = "seasonal" }},
		{"note too long", func(in *AreaInput) { in.Note = long(501) }},
		{"missing lng", func(in *AreaInput) { in.Lng = nil }},
		{"missing lat", func(in *AreaInput) { in.Lat = nil }},
		{"lng out of range", func(in *AreaInput) { v := 181.0; in.Lng = &v }},
		{"lat out of range", func(in *AreaInput) { v := -90.5; in.Lat = &v }},
		{"empty city", func(in *AreaInput) { in.City = "" }},
		{"empty country", func(in *AreaInput) { in.Country = " " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, actor, in)
			wantAppError(t, err, 422, "VALIDATION_ERROR")
		})
	}
}

func TestService_ListActivePublic_ExcludesOwnerAndInactive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PrincipalID("p-1"), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	second := validInput()
	second.AreaName = "Pavilion Beach"
	deactivated, err := svc.Create(ctx, domain.PrincipalID("p-2"), second)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	upd := UpdateAreaInput{AreaInput: second, IsActive: false}
	if _, err := svc.Update(ctx, domain.PrincipalID("p-2"), deactivated.ID, upd); err != nil {
		t.Fatalf("Update err=%v", err)
	}

	layer, err := svc.ListActivePublic(ctx)
	if err != nil {
		t.Fatalf("ListActivePublic err=%v", err)
	}
	if len(layer) != 1 || layer[0].ID != string(created.ID) {
		t.Fatalf("layer=%+v", layer)
	}
	// PublicArea has no owner field by construction; spot-check the payload.
	if layer[0].AreaName != "Half Moon Beach" || layer[0].Lat != 42.6159 {
		t.Fatalf("projection=%+v", layer[0])
	}
}

func TestService_Update_FullReplaceAndReactivate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	actor := domain.PrincipalID("p-1")

	created, err := svc.Create(ctx, actor, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	in := validInput()
	in.AreaName = "Niles Beach"
	in.Note = "Switching sites for the season."
	upd, err := svc.Update(ctx, actor, created.ID, UpdateAreaInput{AreaInput: in, IsActive: false})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if upd.AreaName != "Niles Beach" || upd.IsActive {
		t.Fatalf("updated=%+v", upd)
	}
	if upd.Owner != actor || !upd.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("owner/createdAt must survive update: %+v", upd)
	}

	// inactive -> active happens only through owner update.
	re, err := svc.Update(ctx, actor, created.ID, UpdateAreaInput{AreaInput: in, IsActive: true})
	if err != nil {
		t.Fatalf("reactivate err=%v", err)
	}
	if !re.IsActive {
		t.Fatalf("expected reactivated")
	}
}

func TestService_Update_NonOwnerLooksLikeMissing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PrincipalID("p-1"), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	_, errOther := svc.Update(ctx, domain.PrincipalID("p-2"), created.ID, UpdateAreaInput{AreaInput: validInput(), IsActive: true})
	aeOther := wantAppError(t, errOther, 404, "NOT_FOUND")

	_, errMissing := svc.Update(ctx, domain.PrincipalID("p-2"), domain.AreaID("does-not-exist"), UpdateAreaInput{AreaInput: validInput(), IsActive: true})
	aeMissing := wantAppError(t, errMissing, 404, "NOT_FOUND")

	if aeOther.Message != aeMissing.Message || aeOther.Code != aeMissing.Code {
		t.Fatalf("ownership mismatch must be indistinguishable from missing id: %+v vs %+v", aeOther, aeMissing)
	}
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	actor := domain.PrincipalID("p-1")

	created, err := svc.Create(ctx, actor, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(ctx, domain.PrincipalID("p-2"), created.ID); err == nil {
		t.Fatalf("non-owner delete must fail")
	} else {
		wantAppError(t, err, 404, "NOT_FOUND")
	}

	if err := svc.Delete(ctx, actor, created.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	// Gone outright, not deactivated.
	mine, err := svc.ListMine(ctx, actor)
	if err != nil || len(mine) != 0 {
		t.Fatalf("mine=%v err=%v", mine, err)
	}
	if err := svc.Delete(ctx, actor, created.ID); err == nil {
		t.Fatalf("second delete must report NOT_FOUND")
	}
}

func TestService_ListMine_IncludesInactive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	actor := domain.PrincipalID("p-1")

	created, err := svc.Create(ctx, actor, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if _, err := svc.Update(ctx, actor, created.ID, UpdateAreaInput{AreaInput: validInput(), IsActive: false}); err != nil {
		t.Fatalf("Update err=%v", err)
	}

	mine, err := svc.ListMine(ctx, actor)
	if err != nil {
		t.Fatalf("ListMine err=%v", err)
	}
	if len(mine) != 1 || mine[0].IsActive {
		t.Fatalf("mine=%+v", mine)
	}
}
