// Package stats computes positional aggregates over groups of geohashes.
//
// Every aggregate decodes its inputs to cell centers, reduces over the
// coordinates, and re-encodes the result at geohash.DefaultPrecision, so
// results are themselves geohashes and compose with the rest of the
// library.
package stats

import (
	"fmt"

	"github.com/arloliu/geohash"
	"github.com/arloliu/geohash/errs"
)

// Mean returns the geohash of the arithmetic mean position of the group.
//
// Returns errs.ErrNoGeohashes for an empty group, or a wrapped
// errs.ErrInvalidCharacter naming the offending element.
func Mean(geohashes []string) (string, error) {
	coords, err := decodeAll(geohashes)
	if err != nil {
		return "", err
	}

	var sumLat, sumLon float64
	for _, c := range coords {
		sumLat += c.Latitude
		sumLon += c.Longitude
	}

	n := float64(len(coords))

	return geohash.EncodeDefault(sumLat/n, sumLon/n), nil
}

// Northern returns the geohash of the northernmost position of the group.
func Northern(geohashes []string) (string, error) {
	return extreme(geohashes, func(c, best geohash.Coordinate) bool {
		return c.Latitude > best.Latitude
	})
}

// Southern returns the geohash of the southernmost position of the group.
func Southern(geohashes []string) (string, error) {
	return extreme(geohashes, func(c, best geohash.Coordinate) bool {
		return c.Latitude < best.Latitude
	})
}

// Eastern returns the geohash of the easternmost position of the group.
func Eastern(geohashes []string) (string, error) {
	return extreme(geohashes, func(c, best geohash.Coordinate) bool {
		return c.Longitude > best.Longitude
	})
}

// Western returns the geohash of the westernmost position of the group.
func Western(geohashes []string) (string, error) {
	return extreme(geohashes, func(c, best geohash.Coordinate) bool {
		return c.Longitude < best.Longitude
	})
}

// extreme keeps the first of equally extreme positions.
func extreme(geohashes []string, better func(c, best geohash.Coordinate) bool) (string, error) {
	coords, err := decodeAll(geohashes)
	if err != nil {
		return "", err
	}

	best := coords[0]
	for _, c := range coords[1:] {
		if better(c, best) {
			best = c
		}
	}

	return geohash.EncodeDefault(best.Latitude, best.Longitude), nil
}

func decodeAll(geohashes []string) ([]geohash.Coordinate, error) {
	if len(geohashes) == 0 {
		return nil, errs.ErrNoGeohashes
	}

	coords := make([]geohash.Coordinate, len(geohashes))
	for i, h := range geohashes {
		c, err := geohash.Decode(h)
		if err != nil {
			return nil, fmt.Errorf("geohash %q at index %d: %w", h, i, err)
		}
		coords[i] = c
	}

	return coords, nil
}
