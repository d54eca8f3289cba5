package geohash

import (
	"math"

	"github.com/arloliu/geohash/internal/base32"
)

const (
	// DefaultPrecision is the encoded length used when callers have no
	// specific accuracy requirement. Twelve characters resolve a cell of
	// roughly 37mm × 19mm at the equator, the practical limit of a
	// float64 coordinate.
	DefaultPrecision = 12

	// MaxPrecision is the longest hash Encode produces. Beyond 12
	// characters the extra bits no longer carry usable resolution, so
	// larger precisions are clamped rather than grow the output.
	MaxPrecision = 12
)

// bitMasks selects the 5 bits of one base32 character, most significant
// bit first.
var bitMasks = [5]byte{16, 8, 4, 2, 1}

// Encode converts a coordinate into a geohash of length precision.
//
// Out-of-range coordinates are never an error: latitude is clamped to
// [-90, 90] and longitude is wrapped into [-180, 180] by whole 360°
// turns before encoding. Precision is clamped to [0, MaxPrecision]; a
// precision of 0 yields the empty string. NaN coordinates fail every
// interval comparison and encode as all-zero bits.
//
// Example:
//
//	geohash.Encode(42.6, -5.6, 5) // "ezs42"
func Encode(latitude, longitude float64, precision int) string {
	return encode(latitude, longitude, precision)
}

// EncodeDefault converts a coordinate into a geohash of DefaultPrecision
// characters, for callers with no specific accuracy requirement.
func EncodeDefault(latitude, longitude float64) string {
	return encode(latitude, longitude, DefaultPrecision)
}

// EncodeStrictly is a distinct named entry point with the same contract
// as Encode, kept for compatibility with callers that distinguish the
// two. Both currently share one implementation; no strict-midpoint
// variant exists today.
func EncodeStrictly(latitude, longitude float64, precision int) string {
	return encode(latitude, longitude, precision)
}

func encode(latitude, longitude float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	if precision == 0 {
		return ""
	}

	if latitude < -90 {
		latitude = -90
	}
	if latitude > 90 {
		latitude = 90
	}

	// Infinite longitudes clamp to the nearest edge; subtracting whole
	// turns cannot move them and would spin the wrap loop forever.
	if math.IsInf(longitude, 1) {
		longitude = 180
	}
	if math.IsInf(longitude, -1) {
		longitude = -180
	}

	// Wrap by whole turns. The loop form keeps bit-exact behavior for
	// values far outside the range.
	for longitude < -180 {
		longitude += 360
	}
	for longitude > 180 {
		longitude -= 360
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	buf := make([]byte, 0, precision)
	var ch byte
	bit := 0
	even := true

	for len(buf) < precision {
		if even {
			mid := (lonMin + lonMax) / 2
			// A coordinate exactly on a midpoint takes the upper half.
			// Changing this branch changes every hash on a cell boundary.
			if longitude >= mid {
				ch |= bitMasks[bit]
				lonMin = mid
			} else {
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if latitude >= mid {
				ch |= bitMasks[bit]
				latMin = mid
			} else {
				latMax = mid
			}
		}

		even = !even

		if bit < 4 {
			bit++
		} else {
			buf = append(buf, base32.Encode(ch))
			bit = 0
			ch = 0
		}
	}

	return string(buf)
}
