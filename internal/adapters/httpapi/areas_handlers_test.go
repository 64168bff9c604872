package httpapi

import (
	"net/http"
	"testing"
)

func TestCreateArea_Succeeds(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[areaResponse](t, rec)
	if resp.ID == "" || resp.AreaName != "Niles Beach" || !resp.IsActive {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateArea_RequiresAuth(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "", validAreaBody())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Error.Code != "UNAUTHENTICATED" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
}

func TestCreateArea_ValidationFailure(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	body := validAreaBody()
	body["lng"] = 190.0
	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
}

func TestAreaLayer_IsPublicAndOmitsOwner(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	if rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody()); rec.Code != http.StatusCreated {
		t.Fatalf("seed: %d %s", rec.Code, rec.Body.String())
	}

	rec := doJSON(t, h, http.MethodGet, "/api/adopted-area-layer/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	fc := decodeBody[featureCollection](t, rec)
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("unexpected collection: %+v", fc)
	}
	f := fc.Features[0]
	if f.Geometry.Type != "Point" || f.Geometry.Coordinates[0] != -70.6460 || f.Geometry.Coordinates[1] != 42.5990 {
		t.Fatalf("geometry: %+v", f.Geometry)
	}
	if f.Properties.AreaName != "Niles Beach" {
		t.Fatalf("properties: %+v", f.Properties)
	}
}

func TestUpdateArea_OtherOwnerGets404(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody())
	created := decodeBody[areaResponse](t, rec)

	body := validAreaBody()
	body["is_active"] = true
	update := doJSON(t, h, http.MethodPut, "/api/adopt-area/"+created.ID+"/", "u2", body)
	if update.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", update.Code)
	}
	resp := decodeBody[ErrorResponse](t, update)
	if resp.Error.Code != "NOT_FOUND" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
}

func TestUpdateArea_OwnerDeactivates(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody())
	created := decodeBody[areaResponse](t, rec)

	body := validAreaBody()
	body["is_active"] = false
	update := doJSON(t, h, http.MethodPut, "/api/adopt-area/"+created.ID+"/", "u1", body)
	if update.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", update.Code, update.Body.String())
	}
	if resp := decodeBody[areaResponse](t, update); resp.IsActive {
		t.Fatal("area still active after deactivating update")
	}

	// Gone from the public layer.
	layer := doJSON(t, h, http.MethodGet, "/api/adopted-area-layer/", "", nil)
	if fc := decodeBody[featureCollection](t, layer); len(fc.Features) != 0 {
		t.Fatalf("layer still has %d features", len(fc.Features))
	}
}

func TestListMyAreas_IncludesInactive(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody())
	created := decodeBody[areaResponse](t, rec)

	body := validAreaBody()
	body["is_active"] = false
	if rec := doJSON(t, h, http.MethodPut, "/api/adopt-area/"+created.ID+"/", "u1", body); rec.Code != http.StatusOK {
		t.Fatalf("deactivate: %d", rec.Code)
	}

	mine := doJSON(t, h, http.MethodGet, "/api/adopted-areas/mine/", "u1", nil)
	if mine.Code != http.StatusOK {
		t.Fatalf("status = %d", mine.Code)
	}
	list := decodeBody[[]areaResponse](t, mine)
	if len(list) != 1 || list[0].IsActive {
		t.Fatalf("mine = %+v", list)
	}

	// A different principal sees nothing.
	other := doJSON(t, h, http.MethodGet, "/api/adopted-areas/mine/", "u2", nil)
	if list := decodeBody[[]areaResponse](t, other); len(list) != 0 {
		t.Fatalf("u2 sees %d areas", len(list))
	}
}

func TestDeleteArea_OwnerOnly(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", validAreaBody())
	created := decodeBody[areaResponse](t, rec)

	if rec := doJSON(t, h, http.MethodDelete, "/api/adopt-area/"+created.ID+"/", "u2", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodDelete, "/api/adopt-area/"+created.ID+"/", "u1", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete status = %d, want 204", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodDelete, "/api/adopt-area/"+created.ID+"/", "u1", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestCreateArea_MalformedBody(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/adopt-area/", "u1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
