// Package neighbor computes cells adjacent to a geohash.
//
// Adjacency works directly on the base32 text using the classic even/odd
// lookup strings, without decoding to coordinates, so neighbors of a
// 12-character hash cost the same as neighbors of a 1-character hash.
package neighbor

import (
	"fmt"
	"strings"

	"github.com/arloliu/geohash/errs"
	"github.com/arloliu/geohash/internal/base32"
)

// Direction identifies one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}

	return "unknown"
}

// The lookup strings come from the reference geohash adjacency tables
// (davetroy/geohash-js). A character's position in the neighbor string is
// its value in the adjacent cell; the border string lists characters on
// the edge of their parent cell, where the parent itself must move first.
// Index 0 holds the table for even-length hashes, index 1 for odd.
var (
	neighborTables = map[Direction][2]string{
		North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
		South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
		East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
		West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
	}

	borderTables = map[Direction][2]string{
		North: {"prxz", "bcfguvyz"},
		South: {"028b", "0145hjnp"},
		East:  {"bcfguvyz", "prxz"},
		West:  {"0145hjnp", "028b"},
	}
)

// Adjacent returns the geohash of the cell bordering hash in the given
// direction, at the same precision.
//
// Uppercase input is lowercased before lookup. Crossing the edge of a
// parent cell recursively moves the parent as well; a hash whose parent
// chain is exhausted (a top-level cell at the poles) fails with
// errs.ErrEmptyGeohash, as does an empty input.
//
// Returns:
//   - string: the adjacent geohash, same length as hash.
//   - error: errs.ErrEmptyGeohash, errs.ErrInvalidDirection, or a wrapped
//     errs.ErrInvalidCharacter.
func Adjacent(hash string, dir Direction) (string, error) {
	if dir < North || dir > West {
		return "", fmt.Errorf("%w: %d", errs.ErrInvalidDirection, int(dir))
	}

	hash = strings.ToLower(hash)
	for i := 0; i < len(hash); i++ {
		if _, ok := base32.Decode(hash[i]); !ok {
			return "", fmt.Errorf("%w: %q at position %d",
				errs.ErrInvalidCharacter, hash[i], i)
		}
	}

	return adjacent(hash, dir)
}

// adjacent assumes hash is lowercase and alphabet-clean.
func adjacent(hash string, dir Direction) (string, error) {
	if hash == "" {
		return "", errs.ErrEmptyGeohash
	}

	last := hash[len(hash)-1]
	base := hash[:len(hash)-1]
	parity := len(hash) % 2

	if strings.IndexByte(borderTables[dir][parity], last) >= 0 {
		moved, err := adjacent(base, dir)
		if err != nil {
			return "", err
		}
		base = moved
	}

	idx := strings.IndexByte(neighborTables[dir][parity], last)

	return base + string(base32.Alphabet[idx]), nil
}

// Neighbors returns the eight cells surrounding hash, clockwise from
// north: N, NE, E, SE, S, SW, W, NW.
//
// Diagonal cells are reached by composing two cardinal moves. Any move
// that runs off the top or bottom of the map fails the whole call with
// errs.ErrEmptyGeohash.
func Neighbors(hash string) ([]string, error) {
	north, err := Adjacent(hash, North)
	if err != nil {
		return nil, err
	}

	south, err := Adjacent(hash, South)
	if err != nil {
		return nil, err
	}

	east, err := Adjacent(hash, East)
	if err != nil {
		return nil, err
	}

	west, err := Adjacent(hash, West)
	if err != nil {
		return nil, err
	}

	northEast, err := Adjacent(north, East)
	if err != nil {
		return nil, err
	}

	southEast, err := Adjacent(south, East)
	if err != nil {
		return nil, err
	}

	southWest, err := Adjacent(south, West)
	if err != nil {
		return nil, err
	}

	northWest, err := Adjacent(north, West)
	if err != nil {
		return nil, err
	}

	return []string{north, northEast, east, southEast, south, southWest, west, northWest}, nil
}
