package geohash

import (
	"fmt"

	"github.com/arloliu/geohash/errs"
	"github.com/arloliu/geohash/internal/base32"
)

// DecodeExactly decodes a geohash into the center of its cell together
// with the half-widths of the cell along each axis.
//
// Each character narrows the cell by five bisections, alternating
// longitude and latitude starting with longitude, so margins shrink
// monotonically as characters are consumed. Inputs longer than
// MaxPrecision are accepted; resolution saturates rather than erroring.
//
// Returns:
//   - ExactCoordinate: the cell center and per-axis error margins.
//   - error: wraps errs.ErrInvalidCharacter, with the offending byte and
//     its position, if hash contains anything outside the base32 alphabet.
//     No partial result is returned.
//
// The empty string decodes to the full coordinate domain: center (0, 0)
// with margins (90, 180).
func DecodeExactly(hash string) (ExactCoordinate, error) {
	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	latErr, lonErr := 90.0, 180.0
	even := true

	for i := 0; i < len(hash); i++ {
		cd, ok := base32.Decode(hash[i])
		if !ok {
			return ExactCoordinate{}, fmt.Errorf("%w: %q at position %d",
				errs.ErrInvalidCharacter, hash[i], i)
		}

		for mask := byte(16); mask > 0; mask >>= 1 {
			if even {
				lonErr /= 2
				if cd&mask != 0 {
					lonMin = (lonMin + lonMax) / 2
				} else {
					lonMax = (lonMin + lonMax) / 2
				}
			} else {
				latErr /= 2
				if cd&mask != 0 {
					latMin = (latMin + latMax) / 2
				} else {
					latMax = (latMin + latMax) / 2
				}
			}

			even = !even
		}
	}

	return ExactCoordinate{
		Latitude:       (latMin + latMax) / 2,
		Longitude:      (lonMin + lonMax) / 2,
		LatitudeError:  latErr,
		LongitudeError: lonErr,
	}, nil
}

// Decode decodes a geohash into the center of its cell.
//
// It is a pure projection of DecodeExactly for callers that do not need
// the error margins, and fails with the same wrapped
// errs.ErrInvalidCharacter on invalid input.
func Decode(hash string) (Coordinate, error) {
	exact, err := DecodeExactly(hash)
	if err != nil {
		return Coordinate{}, err
	}

	return exact.Coordinate(), nil
}
