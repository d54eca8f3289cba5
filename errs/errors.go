// Package errs defines the exported error sentinels for the geohash library.
//
// It is the single source of truth for error values: the root package and
// every subpackage wrap these sentinels with fmt.Errorf("%w: ..."), so
// errors.Is checks work across package boundaries.
package errs

import "errors"

var (
	// ErrInvalidCharacter indicates a byte outside the geohash base32
	// alphabet. Decoding fails as a whole; no partial prefix is honored.
	ErrInvalidCharacter = errors.New("invalid character in geohash")

	// ErrEmptyGeohash indicates an operation that needs at least one
	// character, such as computing an adjacent cell.
	ErrEmptyGeohash = errors.New("geohash cannot be empty")

	// ErrInvalidDirection indicates a direction value outside the four
	// cardinal directions.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidPrecision indicates a precision outside the supported
	// range for operations that cannot clamp it silently.
	ErrInvalidPrecision = errors.New("precision out of range")

	// ErrNoGeohashes indicates an aggregate operation over an empty set.
	ErrNoGeohashes = errors.New("no geohashes provided")
)
