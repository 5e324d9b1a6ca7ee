// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime

import (
	"strings"

	"cloudeng.io/datetime"
	"cloudeng.io/wtime/duration"
)

// epochJDN is the Julian Day Number of 1600-01-01, the epoch for Instant.
const epochJDN = 2305448

const microsPerDay = int64(duration.Day)

// IsLeapYear returns true if year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in month (1..12) of year.
func DaysInMonth(year, month int) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// JulianCount returns the number of days in year.
func JulianCount(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// JulianDay returns the Julian Day Number for the specified Gregorian
// date. January and February are treated as months 13 and 14 of the
// preceding year.
func JulianDay(year, month, day int) int64 {
	a := (14 - month) / 12
	y := int64(year + 4800 - a)
	m := int64(month + 12*a - 3)
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// CalendarDay is the inverse of JulianDay.
func CalendarDay(jdn int64) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = int(e - (153*m+2)/5 + 1)
	month = int(m + 3 - 12*(m/10))
	year = int(100*b + d - 4800 + m/10)
	return
}

func normalizeYear(year int) int {
	switch {
	case year < 70:
		year += 2000
	case year < 100:
		year += 1900
	}
	for year < 1600 {
		year += 100
	}
	return year
}

// normalizeDay moves day into [0, JulianCount(year)) adjusting year
// accordingly.
func normalizeDay(year, day int) (int, int) {
	for day >= JulianCount(year) {
		day -= JulianCount(year)
		year++
	}
	for day < 0 {
		year--
		day += JulianCount(year)
	}
	return year, day
}

// ToJulian returns the zero based day of the year for the specified
// date. Two digit years below 70 are taken to be in the 2000s, other two
// digit years in the 1900s and any year before 1600 is moved forward by
// centuries. Months and days outside of their natural ranges carry into
// the following or preceding years.
func ToJulian(year, month, day int) (int, int) {
	year = normalizeYear(year)
	for month > 12 {
		year++
		month -= 12
	}
	for month < 1 {
		year--
		month += 12
	}
	year, jd := normalizeDay(year, day-1)
	for m := 1; m < month; m++ {
		jd += DaysInMonth(year, m)
	}
	return normalizeDay(year, jd)
}

// FromJulian is the inverse of ToJulian.
func FromJulian(year, julian int) (y, month, day int) {
	y, julian = normalizeDay(normalizeYear(year), julian)
	month = 1
	for julian >= DaysInMonth(y, month) {
		julian -= DaysInMonth(y, month)
		month++
	}
	return y, month, julian + 1
}

// Iteration intervals used for stepping through simulations.
const (
	Iteration1Sec = iota
	Iteration1Min
	Iteration5Min
	Iteration15Min
	Iteration30Min
	Iteration1Hour
	Iteration2Hour
	Iteration1Day
	Iteration1Week
)

var iterationLadder = [...]duration.Duration{
	duration.Second,
	duration.Minute,
	5 * duration.Minute,
	15 * duration.Minute,
	30 * duration.Minute,
	duration.Hour,
	2 * duration.Hour,
	duration.Day,
	7 * duration.Day,
}

// TimeForIndex returns the interval for one of the Iteration constants,
// anything out of range is treated as Iteration1Week.
func TimeForIndex(index int) duration.Duration {
	if index < 0 || index >= len(iterationLadder) {
		return iterationLadder[Iteration1Week]
	}
	return iterationLadder[index]
}

// IterationIndex returns the index of the smallest interval that is at
// least d.
func IterationIndex(d duration.Duration) int {
	for i, v := range iterationLadder[:Iteration1Week] {
		if v >= d {
			return i
		}
	}
	return Iteration1Week
}

var (
	monthNames = [...]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday"}
)

// MonthName returns the English name of month, 1..12, optionally
// abbreviated to three letters.
func MonthName(month int, abbrev bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	if abbrev {
		return monthNames[month-1][:3]
	}
	return monthNames[month-1]
}

// DayName returns the English name of day, 1..7 with Sunday as 1,
// optionally abbreviated to three letters.
func DayName(day int, abbrev bool) string {
	if day < 1 || day > 7 {
		return ""
	}
	if abbrev {
		return dayNames[day-1][:3]
	}
	return dayNames[day-1]
}

// lookupMonth returns the month number for a full or abbreviated,
// case-insensitive, English month name.
func lookupMonth(name string) (int, bool) {
	if len(name) < 3 {
		return 0, false
	}
	for i, m := range monthNames {
		if strings.EqualFold(name, m) || strings.EqualFold(name, m[:3]) {
			return i + 1, true
		}
	}
	return 0, false
}
