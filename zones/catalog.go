// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

import (
	"math"
	"strings"

	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/regions"
)

// Database represents an external source of timezone information that is
// consulted when the static tables cannot resolve a coordinate, name or id.
// Coordinates are in degrees. Implementations must be safe for concurrent
// use and must return records with ids allocated in the DynamicID range.
type Database interface {
	ByCoordinate(lat, lon float64, set Set) (Record, bool)
	ByName(name string, set Set) (Record, bool)
	ByID(id uint32) (Record, bool)
}

// Origin records which table a record was found in.
type Origin int

const (
	Primary Origin = iota
	Extra
	External
)

// Hidden returns true for records that are not in the primary tables.
func (o Origin) Hidden() bool {
	return o != Primary
}

func (o Origin) String() string {
	switch o {
	case Primary:
		return "primary"
	case Extra:
		return "extra"
	}
	return "external"
}

// Catalog resolves zones using the static tables, a set of region
// borders for special cases and an optional Database.
type Catalog struct {
	db      Database
	borders regions.Borders
}

// NewCatalog returns a new Catalog. A nil db restricts resolution to the
// static tables and a nil borders uses regions.BoundingBoxes.
func NewCatalog(db Database, borders regions.Borders) *Catalog {
	if borders == nil {
		borders = regions.BoundingBoxes{}
	}
	return &Catalog{db: db, borders: borders}
}

var static = NewCatalog(nil, nil)

// Static returns a Catalog that uses only the static tables.
func Static() *Catalog {
	return static
}

// Database returns the database used by the catalog, if any.
func (c *Catalog) Database() Database {
	return c.db
}

// Borders returns the borders used by the catalog.
func (c *Catalog) Borders() regions.Borders {
	return c.borders
}

func setsFor(set Set) []Set {
	if set == Any {
		return []Set{Standard, Daylight}
	}
	return []Set{set}
}

// ByName returns the record whose code or name matches the supplied
// name, ignoring case. The primary tables are searched first, followed
// by the extra tables and finally the database.
func (c *Catalog) ByName(name string, set Set) (Record, Origin, bool) {
	match := func(r Record) bool {
		return strings.EqualFold(r.Code, name) || strings.EqualFold(r.Name, name)
	}
	for _, s := range setsFor(set) {
		for _, r := range primary(s) {
			if match(r) {
				return r, Primary, true
			}
		}
	}
	for _, s := range setsFor(set) {
		for _, r := range extra(s) {
			if match(r) {
				return r, Extra, true
			}
		}
	}
	if c.db != nil {
		if r, ok := c.db.ByName(name, set); ok {
			return r, External, true
		}
	}
	return Record{}, Primary, false
}

// ByID returns the record with the specified id. Ids in the dynamic range
// are only looked up in the database.
func (c *Catalog) ByID(id uint32) (Record, Origin, bool) {
	if id&DynamicID != 0 {
		if c.db == nil {
			return Record{}, External, false
		}
		r, ok := c.db.ByID(id)
		return r, External, ok
	}
	var set Set
	switch Kind(id) {
	case StandardID:
		set = Standard
	case DaylightID:
		set = Daylight
	case MilitaryID:
		set = Military
	default:
		return Record{}, Primary, false
	}
	idx := Index(id)
	p := primary(set)
	if idx < len(p) {
		return p[idx], Primary, true
	}
	e := extra(set)
	if idx -= len(p); idx < len(e) {
		return e[idx], Extra, true
	}
	return Record{}, Primary, false
}

// Reverse returns the first record in set whose standard offset is
// offset and, if dst is non-zero, whose daylight amount is dst.
func (c *Catalog) Reverse(offset, dst duration.Duration, set Set) (Record, Origin, bool) {
	match := func(r Record) bool {
		return r.Offset == offset && (dst == 0 || r.DST == dst)
	}
	for _, s := range setsFor(set) {
		for _, r := range primary(s) {
			if match(r) {
				return r, Primary, true
			}
		}
	}
	for _, s := range setsFor(set) {
		for _, r := range extra(s) {
			if match(r) {
				return r, Extra, true
			}
		}
	}
	return Record{}, Primary, false
}

// Guess returns the zone most likely in effect at the specified
// coordinate, in degrees. The database is consulted first, then the
// New Zealand and Tasmania special cases are applied before falling back
// to choosing the zone whose offset is closest to the one implied by the
// longitude.
func (c *Catalog) Guess(lat, lon float64, set Set) (Record, bool) {
	if c.db != nil {
		if r, ok := c.db.ByCoordinate(lat, lon, set); ok {
			return r, true
		}
	}
	switch set {
	case Standard, Daylight:
	case Military:
		return nearest(military, lon), true
	default:
		return Record{}, false
	}
	if c.borders.PointInRegion(lat, lon, regions.NewZealand) {
		if set == Standard {
			return standard[15], true
		}
		return daylight[15], true
	}
	if c.borders.PointInRegion(lat, lon, regions.Tasmania) {
		if set == Standard {
			return standard[1], true
		}
		return daylight[2], true
	}
	return nearest(primary(set), lon), true
}

// IdealLongitude returns the longitude, in degrees, at which the mean
// solar time matches the zone's standard offset.
func IdealLongitude(r Record) float64 {
	return float64(r.Offset.TotalSeconds()) / 43200 * 180
}

func wrapLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon < -180 {
		lon += 360
	}
	return lon
}

func nearest(table []Record, lon float64) Record {
	lon = wrapLongitude(lon)
	best, bestDiff := 0, math.Inf(1)
	for i, r := range table {
		if diff := math.Abs(lon - IdealLongitude(r)); diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return table[best]
}

// All returns all of the static records in set, primary tables first.
func (c *Catalog) All(set Set) []Record {
	var out []Record
	for _, s := range setsFor(set) {
		out = append(out, primary(s)...)
	}
	for _, s := range setsFor(set) {
		out = append(out, extra(s)...)
	}
	return out
}
