// Package geohash encodes and decodes geohashes: short base32 strings that
// name rectangular cells on Earth's surface via interleaved binary
// subdivision of longitude and latitude.
//
// A geohash is built by alternately bisecting the longitude range
// [-180, 180] and the latitude range [-90, 90], emitting one bit per
// bisection and packing the bits into base32 characters, five per
// character. Hashes that share a prefix name nested cells, so string
// prefix relationships encode spatial proximity.
//
// # Basic Usage
//
// Encoding a coordinate:
//
//	hash := geohash.Encode(42.6, -5.6, 5) // "ezs42"
//
// Decoding a hash back to the center of its cell:
//
//	coord, err := geohash.Decode("ezs42")
//	// coord.Latitude ≈ 42.605, coord.Longitude ≈ -5.603
//
// Decoding with the cell's error margins:
//
//	exact, err := geohash.DecodeExactly("ezs42")
//	// exact.LatitudeError and exact.LongitudeError bound how far the
//	// decoded center can be from the originally encoded point.
//
// # Package Structure
//
// This package holds the core codec. Companion packages build on it:
//
//   - bbox: bounding boxes of cells and box coverage queries
//   - neighbor: adjacent cells in the four cardinal directions
//   - stats: positional aggregates over groups of geohashes
//
// All operations are pure functions over value types and are safe for
// unlimited concurrent use.
package geohash

import "github.com/arloliu/geohash/internal/base32"

// Base32 returns the 32-character alphabet used for geohash encoding,
// "0123456789bcdefghjkmnpqrstuvwxyz". The alphabet is fixed; the function
// exists for introspection and testing.
func Base32() string {
	return base32.Alphabet
}

// Valid reports whether every byte of hash is a geohash base32 symbol.
// The empty string is valid: it decodes to the full coordinate domain.
func Valid(hash string) bool {
	for i := 0; i < len(hash); i++ {
		if _, ok := base32.Decode(hash[i]); !ok {
			return false
		}
	}

	return true
}

// ValidLatitude reports whether lat is within [-90, 90].
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is within [-180, 180].
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
