package lookup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupConfig_DefaultURL(t *testing.T) {
	t.Parallel()

	target, err := DefaultConfig().URL()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000/landmarks?lat=48.8584&lng=2.2945", target)
}

func TestLookupConfig_URL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  LookupConfig
		want string
	}{
		{
			name: "negative coordinates",
			cfg:  LookupConfig{BaseURL: "https://example.com/landmarks", Lat: -33.8568, Lng: 151.2153},
			want: "https://example.com/landmarks?lat=-33.8568&lng=151.2153",
		},
		{
			name: "integral values",
			cfg:  LookupConfig{BaseURL: "http://localhost:3000/landmarks", Lat: 0, Lng: 90},
			want: "http://localhost:3000/landmarks?lat=0&lng=90",
		},
		{
			name: "radius",
			cfg:  LookupConfig{BaseURL: "http://localhost:3000/landmarks", Lat: 48.8584, Lng: 2.2945, Radius: 500},
			want: "http://localhost:3000/landmarks?lat=48.8584&lng=2.2945&radius=500",
		},
		{
			name: "existing query is kept",
			cfg:  LookupConfig{BaseURL: "http://localhost:3000/landmarks?lang=fr", Lat: 1.5, Lng: 2.5},
			want: "http://localhost:3000/landmarks?lang=fr&lat=1.5&lng=2.5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.URL()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLookupConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	invalid := map[string]func(cfg *LookupConfig){
		"empty url":       func(cfg *LookupConfig) { cfg.BaseURL = "" },
		"relative url":    func(cfg *LookupConfig) { cfg.BaseURL = "landmarks" },
		"ftp scheme":      func(cfg *LookupConfig) { cfg.BaseURL = "ftp://localhost/landmarks" },
		"lat too low":     func(cfg *LookupConfig) { cfg.Lat = -90.1 },
		"lat too high":    func(cfg *LookupConfig) { cfg.Lat = 91 },
		"lat NaN":         func(cfg *LookupConfig) { cfg.Lat = math.NaN() },
		"lng too low":     func(cfg *LookupConfig) { cfg.Lng = -180.5 },
		"lng too high":    func(cfg *LookupConfig) { cfg.Lng = 181 },
		"negative radius": func(cfg *LookupConfig) { cfg.Radius = -1 },
		"radius too big":  func(cfg *LookupConfig) { cfg.Radius = 10001 },
	}

	for name, mutate := range invalid {
		cfg := DefaultConfig()
		mutate(&cfg)

		require.Error(t, cfg.Validate(), name)
	}

	tooBig := DefaultConfig()
	tooBig.Radius = 10001
	require.EqualError(t, tooBig.Validate(), "radius must be between 0 and 10000 meters")

	edges := DefaultConfig()
	edges.Lat = -90
	edges.Lng = 180
	edges.Radius = 10000
	require.NoError(t, edges.Validate())

	omitted := DefaultConfig()
	omitted.Radius = 0
	require.NoError(t, omitted.Validate())
}
