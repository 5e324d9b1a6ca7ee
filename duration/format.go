// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// daysPerYearBucket is the number of days removed from the day count for
// each whole year when splitting a duration into years and days for the
// ISO8601 form, where a year is always read back as 365 days.
const daysPerYearBucket = 365

// legacyYearDays returns the number of days accounted for by the given
// number of 365.25 day years in the legacy form, rounded away from zero.
func legacyYearDays(years int64) int64 {
	if years < 0 {
		return -legacyYearDays(-years)
	}
	return (years*1461 + 3) / 4
}

func abs32(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Format returns a string representation of d. If StringTimezone is set
// the ISO8601 form "[-]PnYnDTnHnMn.fS" is used, otherwise the legacy
// "[N years] [N days] HH:MM[:SS[.ffffff]]" form controlled by
// FormatYear, FormatDay, ExcludeSeconds, IncludeUsecs and ConditionalTime.
func (d Duration) Format(flags Flags) string {
	if flags&StringTimezone != 0 {
		return d.formatISO()
	}
	return d.formatLegacy(flags)
}

func (d Duration) formatISO() string {
	if d == 0 {
		return "PT0M"
	}
	year := d.Years()
	day := abs64(d.Days() - year*daysPerYearBucket)
	year = abs64(year)
	hour, minute, second := abs32(d.Hours()), abs32(d.Minutes()), abs32(d.Seconds())
	usecs := abs32(d.MicroSeconds())

	var out strings.Builder
	if d < 0 {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	if year > 0 {
		out.WriteString(strconv.FormatInt(year, 10))
		out.WriteByte('Y')
	}
	if day > 0 {
		out.WriteString(strconv.FormatInt(day, 10))
		out.WriteByte('D')
	}
	if hour == 0 && minute == 0 && second == 0 && usecs == 0 {
		return out.String()
	}
	out.WriteByte('T')
	if hour > 0 {
		out.WriteString(strconv.Itoa(hour))
		out.WriteByte('H')
	}
	if minute > 0 {
		out.WriteString(strconv.Itoa(minute))
		out.WriteByte('M')
	}
	if second > 0 || usecs > 0 {
		out.WriteString(strconv.Itoa(second))
		if usecs > 0 {
			out.WriteByte('.')
			out.WriteString(strings.TrimRight(fmt.Sprintf("%06d", usecs), "0"))
		}
		out.WriteByte('S')
	}
	return out.String()
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (d Duration) formatLegacy(flags Flags) string {
	year := d.Years()
	day := d.Days()
	if flags&FormatYear != 0 {
		for year != 0 && abs64(legacyYearDays(year)) > abs64(day) {
			if year > 0 {
				year--
			} else {
				year++
			}
		}
		day -= legacyYearDays(year)
	}
	hour := d.TotalHours()
	if flags&FormatDay != 0 {
		hour = int64(d.Hours())
	}
	minute, second, usecs := d.Minutes(), d.Seconds(), d.MicroSeconds()
	excludeSeconds := flags&ExcludeSeconds != 0
	negativeZeroHour := false

	if d < 0 {
		if excludeSeconds {
			if second <= -30 {
				minute--
			}
			if minute == -60 {
				hour--
				minute = 0
			}
			if hour == -24 && flags&FormatDay != 0 {
				day--
				hour = 0
			}
		}
		if day != 0 && flags&FormatDay != 0 {
			hour = -hour
		}
		if hour == 0 {
			negativeZeroHour = true
		}
		minute, second, usecs = -minute, -second, -usecs
	} else if excludeSeconds {
		if second >= 30 {
			minute++
		}
		if minute == 60 {
			hour++
			minute = 0
		}
		if hour == 24 && flags&FormatDay != 0 {
			day++
			hour = 0
		}
	}

	clock := func() string {
		switch {
		case excludeSeconds && negativeZeroHour:
			return fmt.Sprintf("-0:%02d", minute)
		case excludeSeconds:
			return fmt.Sprintf("%02d:%02d", hour, minute)
		case negativeZeroHour && flags&IncludeUsecs != 0:
			return fmt.Sprintf("-0:%02d:%02d.%06d", minute, second, usecs)
		case negativeZeroHour:
			return fmt.Sprintf("-0:%02d:%02d", minute, second)
		case flags&IncludeUsecs != 0:
			return fmt.Sprintf("%02d:%02d:%02d.%06d", hour, minute, second, usecs)
		default:
			return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
		}
	}
	noClock := hour == 0 && minute == 0 && second == 0 && usecs == 0 && flags&ConditionalTime != 0

	if year == 0 || flags&FormatYear == 0 {
		if day == 0 || flags&FormatDay == 0 {
			return clock()
		}
		// The sign of the hour has been moved to the day.
		negativeZeroHour = false
		switch {
		case noClock && day == 1:
			return "1 day"
		case noClock:
			return fmt.Sprintf("%d days", day)
		case day == 1:
			return "1 day " + clock()
		}
		return fmt.Sprintf("%d days %s", day, clock())
	}
	negativeZeroHour = false
	switch {
	case noClock && day == 0 && year == 1:
		return "1 year"
	case noClock && day == 0:
		return fmt.Sprintf("%d years", year)
	case year == 1:
		return fmt.Sprintf("1 year %d days %s", day, clock())
	}
	return fmt.Sprintf("%d years %d days %s", year, day, clock())
}
