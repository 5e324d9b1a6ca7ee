// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package regions_test

import (
	"testing"

	"cloudeng.io/wtime/regions"
)

func TestBoundingBoxes(t *testing.T) {
	var b regions.BoundingBoxes
	for _, tc := range []struct {
		name     string
		lat, lon float64
		region   regions.Region
		inside   bool
	}{
		{"calgary", 51.05, -114.07, regions.Canada, true},
		{"winnipeg", 49.9, -97.14, regions.Canada, true},
		{"toronto", 43.65, -79.38, regions.Canada, true},
		{"seattle", 47.6, -122.33, regions.Canada, false},
		{"minneapolis", 44.98, -93.27, regions.Canada, false},
		{"halifax", 44.65, -63.57, regions.Canada, true},
		{"london", 51.5, -0.12, regions.Canada, false},
		{"auckland", -36.85, 174.76, regions.NewZealand, true},
		{"auckland-north", -36.85, 174.76, regions.NewZealandNorthIsland, true},
		{"christchurch", -43.53, 172.63, regions.NewZealandSouthIsland, true},
		{"christchurch-nz", -43.53, 172.63, regions.NewZealand, true},
		{"sydney-nz", -33.87, 151.21, regions.NewZealand, false},
		{"hobart", -42.88, 147.33, regions.Tasmania, true},
		{"melbourne-tas", -37.81, 144.96, regions.Tasmania, false},
		{"alice springs", -23.7, 133.88, regions.AustraliaMainland, true},
		{"hobart-mainland", -42.88, 147.33, regions.AustraliaMainland, false},
	} {
		if got, want := b.PointInRegion(tc.lat, tc.lon, tc.region), tc.inside; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.name, tc.region, got, want)
		}
	}
}
