// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/wtime/duration"
)

// ErrInvalidInstant is returned, wrapped, for any string that cannot be
// parsed as an Instant.
var ErrInvalidInstant = errors.New("invalid date/time")

const (
	dateDelimiters  = "./\\:;-, \t"
	dateDelimitersT = dateDelimiters + "T"
)

// strtok returns the next token delimited by any of the bytes in delims
// and the remainder of s following the delimiter that ended the token.
func strtok(s, delims string) (tok, rest string, ok bool) {
	s = strings.TrimLeft(s, delims)
	if len(s) == 0 {
		return "", "", false
	}
	if i := strings.IndexAny(s, delims); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", true
}

// leadingInt parses the leading, optionally signed, integer in s.
func leadingInt(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	v, err := strconv.Atoi(s[:i])
	return v, err == nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

type parsedDateTime struct {
	year, month, day int
	tod              duration.Duration
	offset           duration.Duration
	hasOffset        bool
	hasSign          bool
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInstant, fmt.Sprintf(format, args...))
}

func parseCompact(s string, layout duration.Flags) (parsedDateTime, error) {
	var p parsedDateTime
	switch layout {
	case duration.Compact, duration.CompactT:
		if layout == duration.Compact && len(s) != 8 {
			return p, invalid("%q: expected YYYYMMDD", s)
		}
	case duration.CompactHour:
		if len(s) != 10 {
			return p, invalid("%q: expected YYYYMMDDHH", s)
		}
	default:
		return p, invalid("%q: no delimiters found", s)
	}
	if len(s) < 8 {
		return p, invalid("%q: too short", s)
	}
	fields := []*int{&p.year, &p.month, &p.day}
	for i, span := range [][2]int{{0, 4}, {4, 6}, {6, 8}} {
		v, err := strconv.Atoi(s[span[0]:span[1]])
		if err != nil {
			return p, invalid("%q: %v", s, err)
		}
		*fields[i] = v
	}
	if layout == duration.CompactHour {
		h, err := strconv.Atoi(s[8:10])
		if err != nil {
			return p, invalid("%q: %v", s, err)
		}
		p.tod = duration.Duration(h) * duration.Hour
	}
	return p, nil
}

// dateToken parses a numeric token or, where allowed, a month name.
func dateToken(tok string, monthAllowed bool) (v int, isMonth bool, err error) {
	if len(tok) > 0 && !isDigit(tok[0]) {
		if !monthAllowed {
			return 0, false, invalid("%q: unexpected month name", tok)
		}
		m, ok := lookupMonth(tok)
		if !ok {
			return 0, false, invalid("%q: unrecognised month", tok)
		}
		return m, true, nil
	}
	v, ok := leadingInt(tok)
	if !ok {
		return 0, false, invalid("%q: not a number", tok)
	}
	return v, false, nil
}

func guessLayout(v1, v2, v3 int, monthPos int) duration.Flags {
	switch monthPos {
	case 1:
		if v3 >= 32 {
			return duration.MMDDYYYY
		}
	case 2:
		if v3 >= 32 {
			return duration.DDMMYYYY
		}
		if v1 >= 32 {
			return duration.YYYYMMDD
		}
	default:
		if v1 >= 32 {
			return duration.YYYYMMDD
		}
		if v3 >= 32 && v2 > 12 {
			return duration.MMDDYYYY
		}
	}
	return 0
}

// parseTimeAndOffset parses "HH:MM[:SS[.ffffff]]" optionally followed
// by "Z" or a signed "HH:MM" offset.
func parseTimeAndOffset(s string, p *parsedDateTime) {
	if len(s) == 0 {
		return
	}
	var clock, offset string
	switch {
	case strings.ContainsRune(s, 'Z'):
		clock, _, _ = strings.Cut(s, "Z")
		p.hasOffset = true
	case strings.ContainsAny(s, "+-"):
		p.hasSign = true
		i := strings.IndexAny(s, "+-")
		if i == 0 {
			// an offset with no time of day.
			clock, offset = "", s[1:]
		} else {
			clock, offset = s[:i], s[i+1:]
		}
		if len(offset) > 0 {
			if d, _, err := duration.Parse(offset); err == nil {
				if s[i] == '-' {
					d = -d
				}
				p.offset, p.hasOffset = d, true
			}
		}
	default:
		clock = s
	}
	if d, _, err := duration.Parse(strings.TrimSpace(clock)); err == nil {
		p.tod = d
	}
}

func parseDateTime(s string, flags duration.Flags) (parsedDateTime, duration.Flags, error) {
	var p parsedDateTime
	layout := flags.Layout()
	if !strings.ContainsAny(s, dateDelimiters) {
		p, err := parseCompact(s, layout)
		return p, layout, err
	}
	tok, rest, ok := strtok(s, dateDelimiters)
	if !ok {
		return p, layout, invalid("%q: missing first field", s)
	}
	monthFirst := layout == 0 || layout == duration.MMDDYYYY || layout == duration.MMhDDhYYYY
	v1, m1, err := dateToken(tok, monthFirst)
	if err != nil {
		return p, layout, err
	}
	if tok, rest, ok = strtok(rest, dateDelimiters); !ok {
		return p, layout, invalid("%q: missing second field", s)
	}
	monthSecond := false
	switch layout {
	case 0, duration.DDMMYYYY, duration.YYYYMMDD, duration.DDhMMhYYYY,
		duration.YYYYhMMhDD, duration.YYYYhMMhDDT:
		monthSecond = true
	}
	v2, m2, err := dateToken(tok, monthSecond)
	if err != nil {
		return p, layout, err
	}
	delims := dateDelimiters
	if layout == 0 || layout == duration.YYYYhMMhDDT {
		delims = dateDelimitersT
	}
	if tok, rest, ok = strtok(rest, delims); !ok {
		return p, layout, invalid("%q: missing third field", s)
	}
	v3, _, err := dateToken(tok, false)
	if err != nil {
		return p, layout, err
	}
	if layout == 0 {
		monthPos := 0
		switch {
		case m1:
			monthPos = 1
		case m2:
			monthPos = 2
		}
		layout = guessLayout(v1, v2, v3, monthPos)
	}
	switch layout {
	case duration.YYYYMMDD, duration.YYYYhMMhDD, duration.YYYYhMMhDDT:
		p.year, p.month, p.day = v1, v2, v3
	case duration.MMDDYYYY, duration.MMhDDhYYYY:
		p.year, p.month, p.day = v3, v1, v2
	default:
		p.year, p.month, p.day = v3, v2, v1
	}
	if p.day < 1 || p.day >= 32 {
		return p, layout, invalid("%q: day %v out of range", s, p.day)
	}
	if p.month < 1 || p.month > 12 {
		return p, layout, invalid("%q: month %v out of range", s, p.month)
	}
	switch {
	case p.year >= 0 && p.year < 39:
		p.year += 2000
	case p.year > 60 && p.year < 100:
		p.year += 1900
	}
	if flags&duration.FormatTime != 0 {
		parseTimeAndOffset(strings.TrimSpace(rest), &p)
	}
	return p, layout, nil
}

// Parse parses s as a date and, if flags includes FormatTime, a time of
// day with an optional trailing "Z" or "+HH:MM" offset. The layout of the
// date is selected by the low byte of flags or, if zero, is guessed: a
// field of 32 or more is taken to be the year and otherwise the day is
// assumed to precede the month. Month names may be used in place of the
// month number. Two digit years below 39 are in the 2000s, those from 61
// to 99 in the 1900s.
//
// When an offset is present the result is the UTC instant it describes
// and out, if not nil, is set to that offset with daylight saving
// disabled. Otherwise the date and time are taken to be in the time
// selected by the AsLocal, WithDST and AsSolar flags. t is unchanged on
// error.
func (t *Instant) Parse(s string, flags duration.Flags, out *Location) error {
	p, _, err := parseDateTime(strings.TrimSpace(s), flags)
	if err != nil {
		return err
	}
	if p.year < 1600 || p.year >= 2900 {
		return invalid("%q: year %v out of range", s, p.year)
	}
	naive := civilMicros(p.year, p.month, p.day, 0, 0) + int64(p.tod)
	var v int64
	if p.hasOffset {
		v = naive - int64(p.offset)
		if out != nil {
			out.SetTimezoneOffset(p.offset)
			out.startDST, out.endDST, out.amtDST = 0, 0, 0
		}
	} else {
		if p.hasSign && out != nil {
			out.SetTimezoneOffset(0)
			out.startDST, out.endDST, out.amtDST = 0, 0, 0
		}
		guess := fromSigned(naive, t.ctx)
		guess = fromSigned(naive-int64(guess.adjustment(flags)), t.ctx)
		v = naive - int64(guess.adjustment(flags))
	}
	if v < 0 {
		return invalid("%q: before the epoch", s)
	}
	t.t = uint64(v)
	return nil
}

// Parse returns the Instant for s, see Instant.Parse.
func Parse(s string, flags duration.Flags, ctx *TimeContext) (Instant, error) {
	t := Instant{ctx: ctx}
	if err := t.Parse(s, flags, nil); err != nil {
		return Unset(ctx), err
	}
	return t, nil
}
