// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

import "strings"

// pairing maps a standard zone index to its daylight counterpart in the
// primary tables.
var pairing = []struct {
	std, dst int
}{
	{0, 0},   // ACST/ACDT
	{1, 2},   // AEST/AEDT
	{2, 3},   // AKST/AKDT
	{3, 1},   // AST/ADT
	{4, 4},   // AWST/AWDT
	{5, 7},   // CET/CEDT
	{6, 6},   // CST/CDT
	{8, 9},   // EET/EEDT
	{9, 8},   // EST/EDT
	{10, 10}, // HAST/HADT
	{11, 13}, // MSK/MSD
	{12, 12}, // MST/MDT
	{14, 14}, // NST/NDT
	{15, 15}, // NZST/NZDT
	{16, 16}, // PST/PDT
	{17, 17}, // UTC/WEDT
}

// standardOnlyDaylight lists daylight zones whose standard counterpart is
// UTC but which are not the preferred daylight variant of UTC.
var standardOnlyDaylight = map[int]int{
	5:  17, // BST
	11: 17, // IST (Irish)
}

// DaylightOf returns the daylight variant of the zone with the given id.
// A daylight id is returned unchanged.
func DaylightOf(id uint32) (uint32, bool) {
	switch Kind(id) {
	case DaylightID:
		return id, Index(id) < len(daylight)
	case StandardID:
		idx := Index(id)
		for _, p := range pairing {
			if p.std == idx {
				return DaylightID | uint32(p.dst), true
			}
		}
	}
	return 0, false
}

// StandardOf returns the standard variant of the zone with the given id.
// A standard id is returned unchanged.
func StandardOf(id uint32) (uint32, bool) {
	switch Kind(id) {
	case StandardID:
		return id, Index(id) < len(standard)
	case DaylightID:
		idx := Index(id)
		if std, ok := standardOnlyDaylight[idx]; ok {
			return StandardID | uint32(std), true
		}
		for _, p := range pairing {
			if p.dst == idx {
				return StandardID | uint32(p.std), true
			}
		}
	}
	return 0, false
}

type ianaEntry struct {
	id       uint32
	iana     string
	daylight bool
}

// ianaTable is the static mapping between catalog ids and IANA names,
// used when upgrading the v1 wire format (a catalog id) to the v2 format
// (an IANA name and a daylight flag) and when downgrading in reverse.
// Each IANA name appears at most once per daylight value.
var ianaTable = []ianaEntry{
	{StandardID | 0, "Australia/Adelaide", false},
	{DaylightID | 0, "Australia/Adelaide", true},
	{StandardID | 1, "Australia/Sydney", false},
	{DaylightID | 2, "Australia/Sydney", true},
	{StandardID | 2, "America/Anchorage", false},
	{DaylightID | 3, "America/Anchorage", true},
	{StandardID | 3, "America/Halifax", false},
	{DaylightID | 1, "America/Halifax", true},
	{StandardID | 4, "Australia/Perth", false},
	{DaylightID | 4, "Australia/Perth", true},
	{StandardID | 5, "Europe/Paris", false},
	{DaylightID | 7, "Europe/Paris", true},
	{StandardID | 6, "America/Winnipeg", false},
	{DaylightID | 6, "America/Winnipeg", true},
	{StandardID | 7, "Indian/Christmas", false},
	{StandardID | 8, "Europe/Athens", false},
	{DaylightID | 9, "Europe/Athens", true},
	{StandardID | 9, "America/Toronto", false},
	{DaylightID | 8, "America/Toronto", true},
	{StandardID | 10, "America/Adak", false},
	{DaylightID | 10, "America/Adak", true},
	{StandardID | 11, "Europe/Moscow", false},
	{DaylightID | 13, "Europe/Moscow", true},
	{StandardID | 12, "America/Edmonton", false},
	{DaylightID | 12, "America/Edmonton", true},
	{StandardID | 13, "Pacific/Norfolk", false},
	{StandardID | 14, "America/St_Johns", false},
	{DaylightID | 14, "America/St_Johns", true},
	{StandardID | 15, "Pacific/Auckland", false},
	{DaylightID | 15, "Pacific/Auckland", true},
	{StandardID | 16, "America/Vancouver", false},
	{DaylightID | 16, "America/Vancouver", true},
	{StandardID | 17, "Etc/UTC", false},
	{DaylightID | 5, "Europe/London", true},
	{DaylightID | 11, "Europe/Dublin", true},
	{DaylightID | 17, "Europe/Lisbon", true},
	{StandardID | 24, "Asia/Kolkata", false},
	{StandardID | 25, "Asia/Shanghai", false},
	{StandardID | 26, "Asia/Tokyo", false},
	{StandardID | 27, "Pacific/Guam", false},
}

// Upgrade returns the IANA name and daylight flag for a catalog id.
func Upgrade(id uint32) (iana string, daylight bool, ok bool) {
	for _, e := range ianaTable {
		if e.id == id {
			return e.iana, e.daylight, true
		}
	}
	return "", false, false
}

// Downgrade returns the catalog id for an IANA name and daylight flag.
// The name comparison is case-insensitive.
func Downgrade(iana string, daylight bool) (uint32, bool) {
	for _, e := range ianaTable {
		if e.daylight == daylight && strings.EqualFold(e.iana, iana) {
			return e.id, true
		}
	}
	return 0, false
}
