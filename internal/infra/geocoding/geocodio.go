package geocoding

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
)

const defaultGeocodioURL = "https://api.geocod.io/v1.7"

// geocodioResponse is the shape shared by the geocode and reverse endpoints.
type geocodioResponse struct {
	Results []geocodioResult `json:"results"`
	Error   string           `json:"error"`
}

type geocodioResult struct {
	FormattedAddress  string `json:"formatted_address"`
	AddressComponents struct {
		Number          string `json:"number"`
		Street          string `json:"street"`
		Suffix          string `json:"suffix"`
		FormattedStreet string `json:"formatted_street"`
		City            string `json:"city"`
		State           string `json:"state"`
		Zip             string `json:"zip"`
		Country         string `json:"country"`
	} `json:"address_components"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

type geocodio struct {
	client  *client
	baseURL string
	apiKey  string
}

func newGeocodio(c *client, cfg *config.GeocodingConfig) *geocodio {
	c.provider = ProviderGeocodio

	return &geocodio{
		client:  c,
		baseURL: strings.TrimRight(orDefault(cfg.BaseURL, defaultGeocodioURL), "/"),
		apiKey:  cfg.APIKey,
	}
}

// ForwardGeocode resolves a structured address with the geocode endpoint.
func (g *geocodio) ForwardGeocode(ctx context.Context, query entity.GeocodeQuery) (*entity.GeocodeResult, error) {
	params := url.Values{}
	street := query.StreetAddress
	if query.AddressNumber != "" && !strings.HasPrefix(strings.TrimSpace(street), query.AddressNumber) {
		street = strings.TrimSpace(query.AddressNumber + " " + street)
	}
	setParam(params, "street", street)
	setParam(params, "city", query.City)
	setParam(params, "state", query.ProvinceState)
	setParam(params, "postal_code", query.PostalCode)
	setParam(params, "country", query.Country)
	params.Set("api_key", g.apiKey)

	return g.first(ctx, opForward, g.baseURL+"/geocode?"+params.Encode())
}

// ReverseGeocode resolves the address closest to a position.
func (g *geocodio) ReverseGeocode(ctx context.Context, at entity.Coordinates) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", strconv.FormatFloat(at.Lat, 'f', -1, 64)+","+strconv.FormatFloat(at.Lon, 'f', -1, 64))
	params.Set("limit", "1")
	params.Set("api_key", g.apiKey)

	return g.first(ctx, opReverse, g.baseURL+"/reverse?"+params.Encode())
}

func (g *geocodio) first(ctx context.Context, op, endpoint string) (*entity.GeocodeResult, error) {
	var resp geocodioResponse
	if err := g.client.getJSON(ctx, op, endpoint, &resp, nil); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, domainerrors.ErrGeocodeNoResult
	}

	return toGeocodioResult(resp.Results[0]), nil
}

func toGeocodioResult(r geocodioResult) *entity.GeocodeResult {
	street := r.AddressComponents.FormattedStreet
	if street == "" {
		street = strings.TrimSpace(r.AddressComponents.Street + " " + r.AddressComponents.Suffix)
	}

	return &entity.GeocodeResult{
		FormattedAddress: r.FormattedAddress,
		Coordinates:      &entity.Coordinates{Lat: r.Location.Lat, Lon: r.Location.Lng},
		Components: entity.AddressComponents{
			AddressNumber: r.AddressComponents.Number,
			StreetName:    street,
			City:          r.AddressComponents.City,
			ProvinceState: r.AddressComponents.State,
			Country:       r.AddressComponents.Country,
			PostalCode:    r.AddressComponents.Zip,
		},
	}
}

func setParam(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}
