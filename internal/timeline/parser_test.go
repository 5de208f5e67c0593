package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{
			name:    "E7 scaled integers",
			raw:     "latE7:525000000,lngE7:134000000",
			wantLat: 52.5, wantLon: 13.4, wantOK: true,
		},
		{
			name:    "E7 with long labels and spaces",
			raw:     `latitudeE7: 523660644, longitudeE7: 134110777`,
			wantLat: 52.3660644, wantLon: 13.4110777, wantOK: true,
		},
		{
			name:    "E7 negative values",
			raw:     "latE7:-338688000,lngE7:1512093000",
			wantLat: -33.8688, wantLon: 151.2093, wantOK: true,
		},
		{
			name:    "degree-suffixed decimals",
			raw:     "52.5000°, 13.4000°",
			wantLat: 52.5, wantLon: 13.4, wantOK: true,
		},
		{
			name:    "degree-suffixed without space",
			raw:     "-33.8688°,151.2093°",
			wantLat: -33.8688, wantLon: 151.2093, wantOK: true,
		},
		{name: "empty string", raw: "", wantOK: false},
		{name: "plain decimals without degree mark", raw: "52.5, 13.4", wantOK: false},
		{name: "single value", raw: "52.5°", wantOK: false},
		{name: "three values", raw: "52.5°, 13.4°, 1.0°", wantOK: false},
		{name: "garbage", raw: "not a coordinate", wantOK: false},
		{name: "degree mark without number", raw: "°, °", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLatLng(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, got.Lat, 1e-9)
				assert.InDelta(t, tt.wantLon, got.Lon, 1e-9)
			}
		})
	}
}

func TestParseLatLngEncodingPriority(t *testing.T) {
	// A string carrying E7 labels resolves through the E7 branch even
	// if a later part might look like a degree value.
	got, ok := ParseLatLng("latE7:525000000,lngE7:134000000")
	require.True(t, ok)
	assert.InDelta(t, 52.5, got.Lat, 1e-9)
	assert.InDelta(t, 13.4, got.Lon, 1e-9)
}
