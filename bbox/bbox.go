// Package bbox maps geohash cells to bounding boxes and answers
// containment, intersection and coverage queries over them.
//
// Boxes are represented as orb.Bound values so results plug directly into
// the github.com/paulmach/orb geometry ecosystem. Note that orb points
// are ordered (longitude, latitude).
package bbox

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/arloliu/geohash"
	"github.com/arloliu/geohash/errs"
)

// Bound returns the rectangle covered by the cell named by hash.
//
// The box is derived from the exact decode result: the cell center plus
// and minus the per-axis error margins. The empty string yields the full
// coordinate domain.
//
// Returns a wrapped errs.ErrInvalidCharacter if hash contains a byte
// outside the base32 alphabet.
func Bound(hash string) (orb.Bound, error) {
	exact, err := geohash.DecodeExactly(hash)
	if err != nil {
		return orb.Bound{}, err
	}

	return orb.Bound{
		Min: orb.Point{
			exact.Longitude - exact.LongitudeError,
			exact.Latitude - exact.LatitudeError,
		},
		Max: orb.Point{
			exact.Longitude + exact.LongitudeError,
			exact.Latitude + exact.LatitudeError,
		},
	}, nil
}

// ContainsPoint reports whether the given coordinate lies within the cell
// named by hash. Points exactly on the cell boundary count as contained.
func ContainsPoint(hash string, lat, lon float64) (bool, error) {
	b, err := Bound(hash)
	if err != nil {
		return false, err
	}

	return b.Contains(orb.Point{lon, lat}), nil
}

// Intersects reports whether the cells named by the two hashes overlap.
// A cell always intersects itself and any of its prefixes.
func Intersects(hash1, hash2 string) (bool, error) {
	b1, err := Bound(hash1)
	if err != nil {
		return false, err
	}

	b2, err := Bound(hash2)
	if err != nil {
		return false, err
	}

	return b1.Intersects(b2), nil
}

// Cover returns the geohashes at the given precision whose cells
// intersect bound, in lexicographic order.
//
// The box is sampled rather than enumerated: points along the four edges
// catch cells the boundary passes through, and an interior grid at half
// the cell size catches cells fully inside the box. The sample step is
// derived from the cell dimensions at the requested precision, so the
// cost grows with both the box size and the precision.
//
// Returns:
//   - []string: the covering geohashes, sorted.
//   - error: wraps errs.ErrInvalidPrecision when precision is outside
//     [1, geohash.MaxPrecision].
func Cover(bound orb.Bound, precision int) ([]string, error) {
	if precision < 1 || precision > geohash.MaxPrecision {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPrecision, precision)
	}

	// Each character splits the axes by 5 bits combined, 2.5 on average.
	cells := math.Exp2(5 * float64(precision) / 2)
	latStep := 180.0 / cells
	lonStep := 360.0 / cells

	minLat, maxLat := bound.Min.Lat(), bound.Max.Lat()
	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()

	seen := make(map[string]struct{})
	add := func(lat, lon float64) {
		seen[geohash.Encode(lat, lon, precision)] = struct{}{}
	}

	// Top and bottom edges.
	for lon := minLon; lon <= maxLon; lon += lonStep {
		add(minLat, lon)
		add(maxLat, lon)
	}

	// Left and right edges.
	for lat := minLat; lat <= maxLat; lat += latStep {
		add(lat, minLon)
		add(lat, maxLon)
	}

	// Interior grid at half the edge step, skipped for boxes too small to
	// contain a cell that no edge sample would hit.
	inLatStep := latStep / 2
	inLonStep := lonStep / 2
	if maxLat-minLat > inLatStep*3 && maxLon-minLon > inLonStep*3 {
		for lat := minLat + inLatStep; lat <= maxLat-inLatStep; lat += inLatStep {
			for lon := minLon + inLonStep; lon <= maxLon-inLonStep; lon += inLonStep {
				add(lat, lon)
			}
		}
	}

	hashes := make([]string, 0, len(seen))
	for h := range seen {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	return hashes, nil
}
