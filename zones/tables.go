// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

// The primary tables. The position of each entry is its table index and
// must not change since ids are persisted.

var standard = []Record{
	{Offset: hm(9, 30), Code: "ACST", Name: "Australian Central Standard Time", ID: StandardID | 0},
	{Offset: hm(10, 0), Code: "AEST", Name: "Australian Eastern Standard Time", ID: StandardID | 1},
	{Offset: hm(-9, 0), Code: "AKST", Name: "Alaska Standard Time", ID: StandardID | 2},
	{Offset: hm(-4, 0), Code: "AST", Name: "Atlantic Standard Time", ID: StandardID | 3},
	{Offset: hm(8, 0), Code: "AWST", Name: "Australian Western Standard Time", ID: StandardID | 4},
	{Offset: hm(1, 0), Code: "CET", Name: "Central European Time", ID: StandardID | 5},
	{Offset: hm(-6, 0), Code: "CST", Name: "Central Standard Time", ID: StandardID | 6},
	{Offset: hm(7, 0), Code: "CXT", Name: "Christmas Island Time", ID: StandardID | 7},
	{Offset: hm(2, 0), Code: "EET", Name: "Eastern European Time", ID: StandardID | 8},
	{Offset: hm(-5, 0), Code: "EST", Name: "Eastern Standard Time", ID: StandardID | 9},
	{Offset: hm(-10, 0), Code: "HAST", Name: "Hawaii-Aleutian Standard Time", ID: StandardID | 10},
	{Offset: hm(3, 0), Code: "MSK", Name: "Moscow Standard Time", ID: StandardID | 11},
	{Offset: hm(-7, 0), Code: "MST", Name: "Mountain Standard Time", ID: StandardID | 12},
	{Offset: hm(11, 30), Code: "NFT", Name: "Norfolk (Island) Time", ID: StandardID | 13},
	{Offset: hm(-3, -30), Code: "NST", Name: "Newfoundland Standard Time", ID: StandardID | 14},
	{Offset: hm(12, 0), Code: "NZST", Name: "New Zealand Standard Time", ID: StandardID | 15},
	{Offset: hm(-8, 0), Code: "PST", Name: "Pacific Standard Time", ID: StandardID | 16},
	{Offset: hm(0, 0), Code: "UTC", Name: "Universal Coordinated Time", ID: StandardID | 17},
	{Offset: hm(2, 0), Code: "RZ1", Name: "Russian Zone 1", ID: StandardID | 18},
	{Offset: hm(3, 0), Code: "RZ2", Name: "Russian Zone 2", ID: StandardID | 19},
	{Offset: hm(4, 0), Code: "RZ3", Name: "Russian Zone 3", ID: StandardID | 20},
	{Offset: hm(-1, 0), Code: "WAT", Name: "West African Time", ID: StandardID | 21},
	{Offset: hm(-2, 0), Code: "AT", Name: "Azores Time", ID: StandardID | 22},
	{Offset: hm(-11, 0), Code: "NT", Name: "Nome Time", ID: StandardID | 23},
	{Offset: hm(5, 30), Code: "IST", Name: "Indian Standard Time", ID: StandardID | 24},
	{Offset: hm(8, 0), Code: "CCT", Name: "China Coast Time", ID: StandardID | 25},
	{Offset: hm(9, 0), Code: "JST", Name: "Japan Standard Time", ID: StandardID | 26},
	{Offset: hm(10, 0), Code: "GST", Name: "Guam Standard Time", ID: StandardID | 27},
}

var daylight = []Record{
	{Offset: hm(9, 30), DST: dstHour, Code: "ACDT", Name: "Australian Central Daylight Time", ID: DaylightID | 0},
	{Offset: hm(-4, 0), DST: dstHour, Code: "ADT", Name: "Atlantic Daylight Time", ID: DaylightID | 1},
	{Offset: hm(10, 0), DST: dstHour, Code: "AEDT", Name: "Australian Eastern Daylight Time", ID: DaylightID | 2},
	{Offset: hm(-9, 0), DST: dstHour, Code: "AKDT", Name: "Alaska Daylight Time", ID: DaylightID | 3},
	{Offset: hm(8, 0), DST: dstHour, Code: "AWDT", Name: "Australian Western Daylight Time", ID: DaylightID | 4},
	{Offset: hm(0, 0), DST: dstHour, Code: "BST", Name: "British Summer Time", ID: DaylightID | 5},
	{Offset: hm(-6, 0), DST: dstHour, Code: "CDT", Name: "Central Daylight Time", ID: DaylightID | 6},
	{Offset: hm(1, 0), DST: dstHour, Code: "CEDT", Name: "Central European Daylight Time", ID: DaylightID | 7},
	{Offset: hm(-5, 0), DST: dstHour, Code: "EDT", Name: "Eastern Daylight Time", ID: DaylightID | 8},
	{Offset: hm(2, 0), DST: dstHour, Code: "EEDT", Name: "Eastern European Daylight Time", ID: DaylightID | 9},
	{Offset: hm(-10, 0), DST: dstHour, Code: "HADT", Name: "Hawaii-Aleutian Daylight Time", ID: DaylightID | 10},
	{Offset: hm(0, 0), DST: dstHour, Code: "IST", Name: "Irish Summer Time", ID: DaylightID | 11},
	{Offset: hm(-7, 0), DST: dstHour, Code: "MDT", Name: "Mountain Daylight Time", ID: DaylightID | 12},
	{Offset: hm(3, 0), DST: dstHour, Code: "MSD", Name: "Moscow Daylight Time", ID: DaylightID | 13},
	{Offset: hm(-3, -30), DST: dstHour, Code: "NDT", Name: "Newfoundland Daylight Time", ID: DaylightID | 14},
	{Offset: hm(12, 0), DST: dstHour, Code: "NZDT", Name: "New Zealand Daylight Time", ID: DaylightID | 15},
	{Offset: hm(-8, 0), DST: dstHour, Code: "PDT", Name: "Pacific Daylight Time", ID: DaylightID | 16},
	{Offset: hm(0, 0), DST: dstHour, Code: "WEDT", Name: "Western European Daylight Time", ID: DaylightID | 17},
}

var military = []Record{
	{Offset: hm(0, 0), Code: "Z", Name: "Zulu Time Zone", ID: MilitaryID | 0},
	{Offset: hm(1, 0), Code: "A", Name: "Alpha Time Zone", ID: MilitaryID | 1},
	{Offset: hm(2, 0), Code: "B", Name: "Bravo Time Zone", ID: MilitaryID | 2},
	{Offset: hm(3, 0), Code: "C", Name: "Charlie Time Zone", ID: MilitaryID | 3},
	{Offset: hm(4, 0), Code: "D", Name: "Delta Time Zone", ID: MilitaryID | 4},
	{Offset: hm(5, 0), Code: "E", Name: "Echo Time Zone", ID: MilitaryID | 5},
	{Offset: hm(6, 0), Code: "F", Name: "Foxtrot Time Zone", ID: MilitaryID | 6},
	{Offset: hm(7, 0), Code: "G", Name: "Golf Time Zone", ID: MilitaryID | 7},
	{Offset: hm(8, 0), Code: "H", Name: "Hotel Time Zone", ID: MilitaryID | 8},
	{Offset: hm(9, 0), Code: "I", Name: "India Time Zone", ID: MilitaryID | 9},
	{Offset: hm(10, 0), Code: "K", Name: "Kilo Time Zone", ID: MilitaryID | 10},
	{Offset: hm(11, 0), Code: "L", Name: "Lima Time Zone", ID: MilitaryID | 11},
	{Offset: hm(12, 0), Code: "M", Name: "Mike Time Zone", ID: MilitaryID | 12},
	{Offset: hm(-1, 0), Code: "N", Name: "November Time Zone", ID: MilitaryID | 13},
	{Offset: hm(-2, 0), Code: "O", Name: "Oscar Time Zone", ID: MilitaryID | 14},
	{Offset: hm(-3, 0), Code: "P", Name: "Papa Time Zone", ID: MilitaryID | 15},
	{Offset: hm(-4, 0), Code: "Q", Name: "Quebec Time Zone", ID: MilitaryID | 16},
	{Offset: hm(-5, 0), Code: "R", Name: "Romeo Time Zone", ID: MilitaryID | 17},
	{Offset: hm(-6, 0), Code: "S", Name: "Sierra Time Zone", ID: MilitaryID | 18},
	{Offset: hm(-7, 0), Code: "T", Name: "Tango Time Zone", ID: MilitaryID | 19},
	{Offset: hm(-8, 0), Code: "U", Name: "Uniform Time Zone", ID: MilitaryID | 20},
	{Offset: hm(-9, 0), Code: "V", Name: "Vector Time Zone", ID: MilitaryID | 21},
	{Offset: hm(-10, 0), Code: "W", Name: "Whiskey Time Zone", ID: MilitaryID | 22},
	{Offset: hm(-11, 0), Code: "X", Name: "X-ray Time Zone", ID: MilitaryID | 23},
	{Offset: hm(-12, 0), Code: "Y", Name: "Yankee Time Zone", ID: MilitaryID | 24},
}

func primary(set Set) []Record {
	switch set {
	case Military:
		return military
	case Daylight:
		return daylight
	case Standard:
		return standard
	}
	return nil
}

func extra(set Set) []Record {
	switch set {
	case Daylight:
		return extraDaylight
	case Standard:
		return extraStandard
	}
	return nil
}
