package lookup

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultBaseURL = "http://localhost:3000/landmarks"
	DefaultLat     = 48.8584
	DefaultLng     = 2.2945

	maxRadius = 10000 // meters
)

type LookupConfig struct {
	BaseURL string
	Lat     float64
	Lng     float64
	Radius  float64 // meters, 0 leaves it to the service
	Client  *http.Client
	Trace   bool
}

func DefaultConfig() LookupConfig {
	return LookupConfig{
		BaseURL: DefaultBaseURL,
		Lat:     DefaultLat,
		Lng:     DefaultLng,
		Client:  &http.Client{},
	}
}

func (cfg LookupConfig) Validate() error {
	parsed, err := url.ParseRequestURI(cfg.BaseURL)

	if err != nil {
		return fmt.Errorf("parsing error - %v", err)
	}

	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("invalid connection protocol in %s - %s", cfg.BaseURL, parsed.Scheme)
	}

	if math.IsNaN(cfg.Lat) || cfg.Lat < -90 || cfg.Lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}

	if math.IsNaN(cfg.Lng) || cfg.Lng < -180 || cfg.Lng > 180 {
		return errors.New("longitude must be between -180 and 180")
	}

	if math.IsNaN(cfg.Radius) || cfg.Radius < 0 || cfg.Radius > maxRadius {
		return fmt.Errorf("radius must be between 0 and %d meters", maxRadius)
	}

	return nil
}

// URL returns the lookup target, e.g. http://localhost:3000/landmarks?lat=48.8584&lng=2.2945
func (cfg LookupConfig) URL() (string, error) {
	target, err := url.Parse(cfg.BaseURL)

	if err != nil {
		return "", err
	}

	query := target.Query()
	query.Set("lat", formatCoord(cfg.Lat))
	query.Set("lng", formatCoord(cfg.Lng))

	if cfg.Radius > 0 {
		query.Set("radius", formatCoord(cfg.Radius))
	}

	target.RawQuery = query.Encode()

	return target.String(), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
