package geohash_test

import (
	"fmt"

	"github.com/arloliu/geohash"
)

func ExampleEncode() {
	fmt.Println(geohash.Encode(42.6, -5.6, 5))
	// Output: ezs42
}

func ExampleDecode() {
	coord, err := geohash.Decode("ezs42")
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.3f %.3f\n", coord.Latitude, coord.Longitude)
	// Output: 42.605 -5.603
}

func ExampleDecodeExactly() {
	exact, err := geohash.DecodeExactly("ezs42")
	if err != nil {
		panic(err)
	}

	fmt.Printf("center (%.3f, %.3f) ± (%.5f, %.5f)\n",
		exact.Latitude, exact.Longitude,
		exact.LatitudeError, exact.LongitudeError)
	// Output: center (42.605, -5.603) ± (0.02197, 0.02197)
}
