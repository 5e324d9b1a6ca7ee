// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime

import (
	"fmt"
	"strings"

	"cloudeng.io/wtime/duration"
)

// NotSet is the formatted value of an unset Instant.
const NotSet = "[Time Not Set]"

// String returns t formatted as ISO8601.
func (t Instant) String() string {
	return t.Format(duration.ISO8601)
}

// Format formats t according to flags. The low byte of flags selects
// the layout of the date, with FormatMonth, FormatDay and FormatYear
// selecting a written form when no layout is specified. DayOfWeek
// prepends the name of the day, Abbrev abbreviates names. The time of day
// is included with FormatTime, or with ConditionalTime when it is not
// midnight. ExcludeSeconds rounds to the nearest minute and IncludeUsecs
// adds microseconds. StringTimezone appends the offset from UTC applied
// by AsLocal, WithDST or AsSolar, as Z or +HH:MM, so that the result names
// the same instant whichever adjustment is used.
func (t Instant) Format(flags duration.Flags) string {
	if !t.IsSet() {
		return NotSet
	}
	v := t.adjusted(flags)
	if flags&duration.ExcludeSeconds != 0 {
		v += int64(30 * duration.Second)
	}
	c := civilFrom(v)
	dow := int(c.days % 7)
	if dow == 0 {
		dow = 7
	}
	abbrev := flags&duration.Abbrev != 0

	var out strings.Builder
	if flags&duration.DayOfWeek != 0 {
		out.WriteString(DayName(dow, abbrev))
	}
	hasDate := flags&duration.FormatDate != 0
	if hasDate {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		formatDate(&out, c, flags, abbrev)
	}
	timeOfDay := c.hour != 0 || c.minute != 0 || c.second != 0 || c.us != 0
	if flags&duration.FormatTime != 0 || (flags&duration.ConditionalTime != 0 && timeOfDay) {
		switch l := flags.Layout(); {
		case hasDate && (l == duration.YYYYhMMhDDT || l == duration.CompactT):
			out.WriteByte('T')
		case out.Len() > 0:
			out.WriteByte(' ')
		}
		switch {
		case flags&duration.ExcludeSeconds != 0:
			fmt.Fprintf(&out, "%02d:%02d", c.hour, c.minute)
		case flags&duration.IncludeUsecs != 0:
			fmt.Fprintf(&out, "%02d:%02d:%02d.%06d", c.hour, c.minute, c.second, c.us)
		default:
			fmt.Fprintf(&out, "%02d:%02d:%02d", c.hour, c.minute, c.second)
		}
	}
	if flags&duration.StringTimezone != 0 {
		out.WriteString(formatOffset(t.adjustment(flags)))
	}
	return out.String()
}

func formatDate(out *strings.Builder, c civil, flags duration.Flags, abbrev bool) {
	switch flags.Layout() {
	case duration.DDMMYYYY:
		fmt.Fprintf(out, "%02d/%02d/%04d", c.day, c.month, c.year)
	case duration.YYYYMMDD:
		fmt.Fprintf(out, "%04d/%02d/%02d", c.year, c.month, c.day)
	case duration.MMDDYYYY:
		fmt.Fprintf(out, "%02d/%02d/%04d", c.month, c.day, c.year)
	case duration.DDhMMhYYYY:
		fmt.Fprintf(out, "%02d-%02d-%04d", c.day, c.month, c.year)
	case duration.YYYYhMMhDD, duration.YYYYhMMhDDT:
		fmt.Fprintf(out, "%04d-%02d-%02d", c.year, c.month, c.day)
	case duration.MMhDDhYYYY:
		fmt.Fprintf(out, "%02d-%02d-%04d", c.month, c.day, c.year)
	case duration.Compact, duration.CompactT:
		fmt.Fprintf(out, "%04d%02d%02d", c.year, c.month, c.day)
	case duration.CompactHour:
		fmt.Fprintf(out, "%04d%02d%02d%02d", c.year, c.month, c.day, c.hour)
	default:
		switch {
		case flags&duration.FormatMonth != 0:
			out.WriteString(MonthName(c.month, abbrev))
			if flags&duration.FormatDay != 0 {
				fmt.Fprintf(out, " %2d", c.day)
			}
			if flags&duration.FormatYear != 0 {
				fmt.Fprintf(out, ", %d", c.year)
			}
		case flags&duration.FormatDay != 0:
			fmt.Fprintf(out, "%2d", c.day)
		}
	}
}

// formatOffset returns Z for a zero offset and +HH:MM or -HH:MM
// otherwise.
func formatOffset(offset duration.Duration) string {
	minutes := offset.TotalMinutes()
	if minutes == 0 {
		return "Z"
	}
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
