package geohash

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ExactCoordinate is a latitude/longitude pair together with the error
// margins of a decode.
//
// The errors are the half-widths of the final bisected intervals: the
// originally encoded point lies within LatitudeError degrees of Latitude
// and LongitudeError degrees of Longitude. Margins shrink by half per bit
// as more characters are decoded.
type ExactCoordinate struct {
	Latitude       float64
	Longitude      float64
	LatitudeError  float64
	LongitudeError float64
}

// Coordinate projects the exact result down to its center point.
func (e ExactCoordinate) Coordinate() Coordinate {
	return Coordinate{Latitude: e.Latitude, Longitude: e.Longitude}
}
