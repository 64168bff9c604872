package httpapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/areas"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/teams"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// areaRequest is the write payload for adopted areas. Email stays a plain
// string here so format problems surface as the service's validation error
// rather than a JSON decode failure.
type areaRequest struct {
	AreaName     string              `json:"area_name"`
	AdopteeName  string              `json:"adoptee_name"`
	Email        string              `json:"email"`
	AdoptionType string              `json:"adoption_type"`
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	Note         string              `json:"note,omitempty"`
	Lng          *float64            `json:"lng"`
	Lat          *float64            `json:"lat"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	Country      string              `json:"country"`
}

// updateAreaRequest adds the activity flag; updates replace the whole record.
type updateAreaRequest struct {
	areaRequest
	IsActive bool `json:"is_active"`
}

func (req areaRequest) toInput() areas.AreaInput {
	in := areas.AreaInput{
		AreaName:     req.AreaName,
		AdopteeName:  req.AdopteeName,
		Email:        req.Email,
		AdoptionType: req.AdoptionType,
		Note:         req.Note,
		Lng:          req.Lng,
		Lat:          req.Lat,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
	}
	if req.EndDate != nil {
		d := req.EndDate.Time
		in.EndDate = &d
	}
	return in
}

type areaResponse struct {
	ID           string              `json:"id"`
	AreaName     string              `json:"area_name"`
	AdopteeName  string              `json:"adoptee_name"`
	Email        openapi_types.Email `json:"email"`
	AdoptionType string              `json:"adoption_type"`
	EndDate      *openapi_types.Date `json:"end_date"`
	IsActive     bool                `json:"is_active"`
	Note         string              `json:"note"`
	Lng          float64             `json:"lng"`
	Lat          float64             `json:"lat"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	Country      string              `json:"country"`
	CreatedAt    time.Time           `json:"created_at"`
}

func areaResponseFrom(a domain.AdoptedArea) areaResponse {
	resp := areaResponse{
		ID:           string(a.ID),
		AreaName:     a.AreaName,
		AdopteeName:  a.AdopteeName,
		Email:        openapi_types.Email(a.Email),
		AdoptionType: string(a.AdoptionType),
		IsActive:     a.IsActive,
		Note:         a.Note,
		Lng:          a.Location.Lng,
		Lat:          a.Location.Lat,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		CreatedAt:    a.CreatedAt,
	}
	if a.EndDate != nil {
		resp.EndDate = &openapi_types.Date{Time: *a.EndDate}
	}
	return resp
}

// The public layer is served as a GeoJSON FeatureCollection so map clients
// can render it directly. Coordinates follow GeoJSON order: lng, lat.
type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type publicAreaProperties struct {
	ID          string `json:"id"`
	AreaName    string `json:"area_name"`
	AdopteeName string `json:"adoptee_name"`
	Email       string `json:"email"`
	Note        string `json:"note"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

type publicAreaFeature struct {
	Type       string               `json:"type"`
	Geometry   geoJSONPoint         `json:"geometry"`
	Properties publicAreaProperties `json:"properties"`
}

type featureCollection struct {
	Type     string              `json:"type"`
	Features []publicAreaFeature `json:"features"`
}

func featureCollectionFrom(pas []areas.PublicArea) featureCollection {
	features := make([]publicAreaFeature, 0, len(pas))
	for _, pa := range pas {
		features = append(features, publicAreaFeature{
			Type: "Feature",
			Geometry: geoJSONPoint{
				Type:        "Point",
				Coordinates: [2]float64{pa.Lng, pa.Lat},
			},
			Properties: publicAreaProperties{
				ID:          pa.ID,
				AreaName:    pa.AreaName,
				AdopteeName: pa.AdopteeName,
				Email:       pa.Email,
				Note:        pa.Note,
				City:        pa.City,
				State:       pa.State,
				Country:     pa.Country,
			},
		})
	}
	return featureCollection{Type: "FeatureCollection", Features: features}
}

func (req updateAreaRequest) toUpdateInput() areas.UpdateAreaInput {
	return areas.UpdateAreaInput{
		AreaInput: req.areaRequest.toInput(),
		IsActive:  req.IsActive,
	}
}

type teamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Lng         *float64 `json:"lng"`
	Lat         *float64 `json:"lat"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
}

func (req teamRequest) toInput() teams.TeamInput {
	return teams.TeamInput{
		Name:        req.Name,
		Description: req.Description,
		Lng:         req.Lng,
		Lat:         req.Lat,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
	}
}

type teamResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Lng         float64   `json:"lng"`
	Lat         float64   `json:"lat"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Members     []string  `json:"members"`
	Leaders     []string  `json:"leaders"`
	CreatedAt   time.Time `json:"created_at"`
}

func teamResponseFrom(t domain.Team) teamResponse {
	return teamResponse{
		ID:          string(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Lng:         t.Headquarters.Lng,
		Lat:         t.Headquarters.Lat,
		City:        t.City,
		State:       t.State,
		Country:     t.Country,
		Members:     principalStrings(t.Members),
		Leaders:     principalStrings(t.Leaders),
		CreatedAt:   t.CreatedAt,
	}
}

func principalStrings(ps []domain.PrincipalID) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, string(p))
	}
	return out
}

// leaderChangeRequest names the principal whose leadership is granted or
// revoked.
type leaderChangeRequest struct {
	PrincipalID string `json:"principal_id"`
}
