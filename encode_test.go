package geohash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEncode_KnownVectors verifies bit-for-bit agreement with the
// published geohash test vectors
func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		precision int
		want      string
	}{
		{"leon_5", 42.6, -5.6, 5, "ezs42"},
		{"leon_1", 42.6, -5.6, 1, "e"},
		{"leon_12", 42.6, -5.6, 12, "ezs42e44yx96"},
		{"equator_5", 0.0, -5.6, 5, "ebh00"},
		{"jutland_11", 57.64911, 10.40744, 11, "u4pruydqqvj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(tt.lat, tt.lon, tt.precision))
		})
	}
}

// TestEncodeStrictly_MatchesEncode verifies the two entry points share
// one behavior
func TestEncodeStrictly_MatchesEncode(t *testing.T) {
	points := []struct {
		lat, lon float64
	}{
		{42.6, -5.6},
		{0.0, 0.0},
		{-33.8688, 151.2093},
		{89.9999, -179.9999},
	}

	for _, p := range points {
		for precision := 0; precision <= 12; precision++ {
			require.Equal(t,
				Encode(p.lat, p.lon, precision),
				EncodeStrictly(p.lat, p.lon, precision))
		}
	}
}

// TestEncode_MidpointTieBreak pins the upper-half branch for coordinates
// exactly on an interval midpoint
func TestEncode_MidpointTieBreak(t *testing.T) {
	// (0, 0) sits on the first longitude and latitude midpoints; both
	// bits must be set, which lands in cell "s".
	require.Equal(t, "s", Encode(0, 0, 1))

	// Deeper characters bisect [0, 45] and [0, 11.25]; zero stays on the
	// lower bound and every remaining bit is clear.
	require.Equal(t, "s00000000000", Encode(0, 0, 12))
}

// TestEncode_ClampsLatitude verifies out-of-range latitudes clamp to the
// poles instead of failing
func TestEncode_ClampsLatitude(t *testing.T) {
	require.Equal(t, Encode(90, 0, 5), Encode(95, 0, 5))
	require.Equal(t, Encode(-90, 0, 5), Encode(-123.4, 0, 5))
}

// TestEncode_WrapsLongitude verifies longitudes wrap by whole turns
func TestEncode_WrapsLongitude(t *testing.T) {
	require.Equal(t, Encode(0, -175, 5), Encode(0, 185, 5))
	require.Equal(t, Encode(0, -175, 5), Encode(0, 185+360, 5))
	require.Equal(t, Encode(0, 10, 8), Encode(0, 10-720, 8))
}

// TestEncode_PrecisionClamping pins the documented handling of
// out-of-range precision
func TestEncode_PrecisionClamping(t *testing.T) {
	require.Equal(t, "", Encode(42.6, -5.6, 0))
	require.Equal(t, "", Encode(42.6, -5.6, -3))
	require.Equal(t, Encode(42.6, -5.6, MaxPrecision), Encode(42.6, -5.6, 100))
}

// TestEncode_NaN pins NaN behavior: NaN fails every interval comparison,
// so no bit is ever set
func TestEncode_NaN(t *testing.T) {
	nan := math.NaN()
	require.Equal(t, "00000", Encode(nan, nan, 5))
}

// TestEncode_Infinity verifies infinite coordinates clamp to the nearest
// edge and the call returns; wrapping cannot move an infinite longitude
func TestEncode_Infinity(t *testing.T) {
	posInf, negInf := math.Inf(1), math.Inf(-1)

	require.Equal(t, Encode(0, 180, 5), Encode(0, posInf, 5))
	require.Equal(t, Encode(0, -180, 5), Encode(0, negInf, 5))
	require.Equal(t, Encode(90, 0, 5), Encode(posInf, 0, 5))
	require.Equal(t, Encode(-90, 0, 5), Encode(negInf, 0, 5))
}

// TestEncodeDefault verifies the default-precision entry point matches
// Encode at DefaultPrecision
func TestEncodeDefault(t *testing.T) {
	require.Equal(t, "ezs42e44yx96", EncodeDefault(42.6, -5.6))
	require.Equal(t, Encode(57.64911, 10.40744, DefaultPrecision),
		EncodeDefault(57.64911, 10.40744))
}
