// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zones provides a catalog of named timezones, each with a
// stable numeric id, and the algorithms used to resolve a zone from a
// coordinate, a name or an id. Static tables cover standard, daylight and
// military zones; zones that are not in the static tables may be obtained
// from an external Database and are allocated ids from a reserved range.
package zones

import (
	"fmt"

	"cloudeng.io/wtime/duration"
)

// Set selects one of the families of zones.
type Set int

const (
	Military Set = -1
	Standard Set = 0
	Daylight Set = 1
	// Any may be used with ByID and with Database lookups to indicate that
	// either a standard or a daylight zone is acceptable.
	Any Set = -2
)

func (s Set) String() string {
	switch s {
	case Military:
		return "military"
	case Standard:
		return "standard"
	case Daylight:
		return "daylight"
	case Any:
		return "any"
	}
	return fmt.Sprintf("set(%d)", int(s))
}

// Ids are partitioned by table using the high bits so that an id alone
// identifies the table to be searched.
const (
	StandardID uint32 = 0x10000
	DaylightID uint32 = 0x20000
	MilitaryID uint32 = 0x40000
	DynamicID  uint32 = 0x80000

	kindMask  uint32 = 0xf0000
	indexMask uint32 = 0x0ffff
)

// Record is an immutable, named timezone.
type Record struct {
	Offset duration.Duration // offset from UTC of standard time
	DST    duration.Duration // amount of daylight savings, zero for none
	Code   string
	Name   string
	ID     uint32
}

// IsZero returns true for the zero value Record.
func (r Record) IsZero() bool {
	return r.ID == 0 && len(r.Code) == 0
}

// Effective returns the offset from UTC when daylight savings is in effect.
func (r Record) Effective() duration.Duration {
	return r.Offset + r.DST
}

// Dynamic returns true if the record was allocated by a Database.
func (r Record) Dynamic() bool {
	return r.ID&DynamicID != 0
}

// Set returns the family that the record belongs to.
func (r Record) Set() Set {
	switch {
	case r.ID&MilitaryID != 0:
		return Military
	case r.ID&DaylightID != 0:
		return Daylight
	case r.ID&StandardID != 0:
		return Standard
	case r.DST != 0:
		return Daylight
	}
	return Standard
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s) UTC%s dst %s id %#x", r.Code, r.Name,
		r.Offset.Format(duration.ExcludeSeconds), r.DST.Format(duration.ExcludeSeconds), r.ID)
}

// Index returns the table index encoded in an id.
func Index(id uint32) int {
	return int(id & indexMask)
}

// Kind returns the table bits encoded in an id.
func Kind(id uint32) uint32 {
	return id & kindMask
}

// Matches returns true if the record belongs to set, where Any matches
// both standard and daylight zones.
func (r Record) Matches(set Set) bool {
	rs := r.Set()
	if set == Any {
		return rs != Military
	}
	return rs == set
}

const dstHour = duration.Hour

func hm(h, m int64) duration.Duration {
	return duration.New(0, h, m, 0)
}
