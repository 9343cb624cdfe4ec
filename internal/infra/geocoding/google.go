package geocoding

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
)

const defaultGoogleURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Google API statuses carried in 200 responses.
const (
	googleOK             = "OK"
	googleZeroResults    = "ZERO_RESULTS"
	googleOverQueryLimit = "OVER_QUERY_LIMIT"
)

type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress  string            `json:"formatted_address"`
	AddressComponents []googleComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type googleComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type google struct {
	client  *client
	baseURL string
	apiKey  string
}

func newGoogle(c *client, cfg *config.GeocodingConfig) *google {
	c.provider = ProviderGoogle

	return &google{
		client:  c,
		baseURL: orDefault(cfg.BaseURL, defaultGoogleURL),
		apiKey:  cfg.APIKey,
	}
}

// ForwardGeocode resolves the free-text rendering of the query.
func (g *google) ForwardGeocode(ctx context.Context, query entity.GeocodeQuery) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", query.Text())
	params.Set("key", g.apiKey)

	return g.first(ctx, opForward, params)
}

// ReverseGeocode resolves the street address closest to a position.
func (g *google) ReverseGeocode(ctx context.Context, at entity.Coordinates) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("latlng", strconv.FormatFloat(at.Lat, 'f', -1, 64)+","+strconv.FormatFloat(at.Lon, 'f', -1, 64))
	params.Set("result_type", "street_address")
	params.Set("key", g.apiKey)

	return g.first(ctx, opReverse, params)
}

func (g *google) first(ctx context.Context, op string, params url.Values) (*entity.GeocodeResult, error) {
	var resp googleResponse
	check := func() error {
		switch resp.Status {
		case googleOK:
			return nil
		case googleZeroResults:
			return domainerrors.ErrGeocodeNoResult
		case googleOverQueryLimit:
			return errThrottled
		default:
			return domainerrors.ErrGeocodeFailed.WithDetails(strings.TrimSpace(resp.Status + " " + resp.ErrorMessage))
		}
	}

	if err := g.client.getJSON(ctx, op, g.baseURL+"?"+params.Encode(), &resp, check); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, domainerrors.ErrGeocodeNoResult
	}

	return toGoogleResult(resp.Results[0]), nil
}

// toGoogleResult flattens the typed component list.
func toGoogleResult(r googleResult) *entity.GeocodeResult {
	var c entity.AddressComponents
	for _, comp := range r.AddressComponents {
		switch {
		case has(comp, "street_number"):
			c.AddressNumber = comp.LongName
		case has(comp, "route"):
			c.StreetName = comp.LongName
		case has(comp, "locality"), has(comp, "postal_town"):
			c.City = comp.LongName
		case has(comp, "sublocality") && c.City == "":
			c.City = comp.LongName
		case has(comp, "administrative_area_level_1"):
			c.ProvinceState = comp.ShortName
		case has(comp, "country"):
			c.Country = comp.ShortName
		case has(comp, "postal_code"):
			c.PostalCode = comp.LongName
		}
	}

	return &entity.GeocodeResult{
		FormattedAddress: r.FormattedAddress,
		Coordinates:      &entity.Coordinates{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng},
		Components:       c,
	}
}

func has(c googleComponent, typ string) bool {
	return slices.Contains(c.Types, typ)
}
