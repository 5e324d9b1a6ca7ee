// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package regions provides coarse geographic membership tests used when
// guessing timezones. The BoundingBoxes implementation approximates each
// region by one or more rectangles in latitude and longitude.
package regions

import "fmt"

// Region identifies a geographic region.
type Region int

const (
	Canada Region = iota
	NewZealand
	NewZealandNorthIsland
	NewZealandSouthIsland
	Tasmania
	AustraliaMainland
)

func (r Region) String() string {
	switch r {
	case Canada:
		return "Canada"
	case NewZealand:
		return "New Zealand"
	case NewZealandNorthIsland:
		return "New Zealand (North Island)"
	case NewZealandSouthIsland:
		return "New Zealand (South Island)"
	case Tasmania:
		return "Tasmania"
	case AustraliaMainland:
		return "Australia (mainland)"
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// Borders determines if a point, in degrees, lies within a region.
type Borders interface {
	PointInRegion(lat, lon float64, region Region) bool
}

// Box is a rectangle in degrees, bounds are exclusive.
type Box struct {
	MinLat, MaxLat, MinLon, MaxLon float64
}

// Contains returns true if the point lies strictly within the box.
func (b Box) Contains(lat, lon float64) bool {
	return lat > b.MinLat && lat < b.MaxLat && lon > b.MinLon && lon < b.MaxLon
}

var (
	northIsland = Box{MinLat: -41.75, MaxLat: -34.3, MinLon: 172.5, MaxLon: 178.6}
	southIsland = Box{MinLat: -47.35, MaxLat: -40.4, MinLon: 166.3, MaxLon: 174.5}
	tasmania    = Box{MinLat: -44.0, MaxLat: -39.5, MinLon: 143.5, MaxLon: 149.0}
	australia   = Box{MinLat: -39.133333, MaxLat: -10.683333, MinLon: 113.15, MaxLon: 153.633333}
)

// canadaSouthernBorder approximates the southern border of Canada as a
// series of steps; each entry applies to longitudes west of lon.
var canadaSouthernBorder = []struct {
	lon, minLat float64
}{
	{-122.8, 48.3},
	{-95.153, 49.0},
	{-88.0, 48.0},
	{-83.5, 45.5},
	{-78.7, 41.66},
	{-74.75, 43.65},
	{-67.31, 45},
	{180, 43.25},
}

func insideCanada(lat, lon float64) bool {
	if lat < 41.0 || lat > 83.0 || lon < -141.0 || lon > -52.0 {
		return false
	}
	for _, step := range canadaSouthernBorder {
		if lon < step.lon {
			return lat >= step.minLat
		}
	}
	return false
}

// BoundingBoxes implements Borders using fixed bounding boxes.
type BoundingBoxes struct{}

// PointInRegion implements Borders.
func (BoundingBoxes) PointInRegion(lat, lon float64, region Region) bool {
	switch region {
	case Canada:
		return insideCanada(lat, lon)
	case NewZealand:
		return northIsland.Contains(lat, lon) || southIsland.Contains(lat, lon)
	case NewZealandNorthIsland:
		return northIsland.Contains(lat, lon)
	case NewZealandSouthIsland:
		return southIsland.Contains(lat, lon)
	case Tasmania:
		return tasmania.Contains(lat, lon)
	case AustraliaMainland:
		return australia.Contains(lat, lon)
	}
	return false
}
