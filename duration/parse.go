// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

var (
	ErrInvalidISO8601 = errors.New("invalid ISO8601 duration")
	ErrInvalidLegacy  = errors.New("invalid duration")
)

// Parse parses either an ISO8601 duration, recognised by a leading 'P' or
// "-P", or the legacy "[N years] [N days] [-]H:MM:SS[.ffffff]" form. It
// returns the number of fields that were consumed; an error is returned
// if and only if no fields were consumed. The legacy form allows partial
// parses, for example "10:xx" yields 10 hours and a count of 1.
func Parse(s string) (Duration, int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "P") || strings.HasPrefix(s, "-P") {
		return parseISO(s)
	}
	return parseLegacy(s)
}

// Parse is like the package level Parse but leaves d unchanged when no
// fields could be consumed.
func (d *Duration) Parse(s string) (int, error) {
	v, n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	*d = v
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Duration {
	d, _, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// consumeN consumes a number with an optional fraction followed by a
// designator, returning the integer part, the fraction, the designator and
// the number of bytes consumed.
func consumeN(dur string) (int64, float64, bool, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
		default:
			return 0, 0, false, 0, 0, fmt.Errorf("invalid duration designator: %q: %q: %w", c, dur, ErrInvalidISO8601)
		}
		num := strings.Replace(dur[:i], ",", ".", 1)
		whole, frac, hasFrac := num, "", false
		if idx := strings.IndexByte(num, '.'); idx >= 0 {
			whole, frac, hasFrac = num[:idx], num[idx+1:], true
		}
		if len(whole) == 0 && len(frac) == 0 {
			return 0, 0, false, 0, 0, fmt.Errorf("missing number: %q: %w", dur, ErrInvalidISO8601)
		}
		var n int64
		if len(whole) > 0 {
			var err error
			if n, err = strconv.ParseInt(whole, 10, 64); err != nil {
				return 0, 0, false, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601)
			}
		}
		var f float64
		if len(frac) > 0 {
			var err error
			if f, err = strconv.ParseFloat("0."+frac, 64); err != nil {
				return 0, 0, false, 0, 0, fmt.Errorf("invalid fraction: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601)
			}
		}
		return n, f, hasFrac, c, i + 1, nil
	}
	return 0, 0, false, 0, 0, fmt.Errorf("missing duration designator: %q: %w", dur, ErrInvalidISO8601)
}

// parseISO parses [-]P[nY][nM][nW][nD][T[nH][nM][n[.f]S]]. Fields
// accumulate; a year is 365 days and a month 30 days. Only the last field
// may carry a fraction.
func parseISO(dur string) (Duration, int, error) {
	negative := strings.HasPrefix(dur, "-")
	if negative {
		dur = dur[1:]
	}
	dur = dur[1:] // P
	var (
		result   Duration
		fields   int
		inTime   bool
		fraction bool
	)
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if inTime {
				return 0, 0, fmt.Errorf("repeated T: %w", ErrInvalidISO8601)
			}
			inTime = true
			dur = dur[1:]
			continue
		}
		if fraction {
			return 0, 0, fmt.Errorf("only the last field may be fractional: %w", ErrInvalidISO8601)
		}
		n, f, hasFrac, designator, idx, err := consumeN(dur)
		if err != nil {
			return 0, 0, err
		}
		dur = dur[idx:]
		var unit Duration
		switch {
		case !inTime && designator == 'Y':
			unit = 365 * Day
		case !inTime && designator == 'M':
			unit = 30 * Day
		case !inTime && designator == 'W':
			unit = Week
		case !inTime && designator == 'D':
			unit = Day
		case inTime && designator == 'H':
			unit = Hour
		case inTime && designator == 'M':
			unit = Minute
		case inTime && designator == 'S':
			unit = Second
		default:
			return 0, 0, fmt.Errorf("designator %c is not valid here: %w", designator, ErrInvalidISO8601)
		}
		result += Duration(n) * unit
		if hasFrac {
			result += Duration(math.Round(f * float64(unit)))
			fraction = true
		}
		fields++
	}
	if fields == 0 {
		return 0, 0, fmt.Errorf("no fields: %w", ErrInvalidISO8601)
	}
	if negative {
		result = -result
	}
	return result, fields, nil
}

// cutUnit consumes "N unit" or "N units" from the start of s.
func cutUnit(s, unit string) (value string, rest string, ok bool) {
	idx := strings.Index(s, unit)
	if idx < 0 {
		return "", s, false
	}
	value = strings.TrimSpace(s[:idx])
	if len(value) == 0 || strings.ContainsAny(value, ": ") {
		return "", s, false
	}
	rest = s[idx+len(unit):]
	rest = strings.TrimPrefix(rest, "s")
	return value, strings.TrimSpace(rest), true
}

func signedMagnitude(v string) (int64, bool, error) {
	neg := strings.HasPrefix(v, "-")
	n, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(v, "-"), "+"), 10, 64)
	return n, neg, err
}

func parseSecondsField(v string) (Duration, error) {
	whole, frac, _ := strings.Cut(v, ".")
	s, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, err
	}
	var us uint64
	if len(frac) > 0 {
		if len(frac) > 6 {
			frac = frac[:6]
		}
		frac += strings.Repeat("0", 6-len(frac))
		if us, err = strconv.ParseUint(frac, 10, 32); err != nil {
			return 0, err
		}
	}
	return Duration(s)*Second + Duration(us), nil
}

// parseLegacy parses "[N year[s]] [N day[s]] [-]H:MM:SS[.ffffff]". A year
// is 365.25 days rounded up to a whole number of days. The
// sign of the first field applies to the whole duration. Parsing stops at
// the first field that cannot be read and the number of fields read so
// far is returned.
func parseLegacy(s string) (Duration, int, error) {
	var (
		result   Duration
		fields   int
		negative bool
		first    = true
	)
	sign := func(neg bool) {
		if first {
			negative = neg
			first = false
		}
	}
	if v, rest, ok := cutUnit(s, "year"); ok {
		n, neg, err := signedMagnitude(v)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year count %q: %w", v, ErrInvalidLegacy)
		}
		sign(neg)
		result += Duration(legacyYearDays(n)) * Day
		fields++
		s = rest
	}
	if v, rest, ok := cutUnit(s, "day"); ok {
		n, neg, err := signedMagnitude(v)
		if err != nil {
			return resultOrError(result, fields, negative, fmt.Errorf("invalid day count %q: %w", v, ErrInvalidLegacy))
		}
		sign(neg)
		result += Duration(n) * Day
		fields++
		s = rest
	}
	if fields > 0 && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != ':' && r != ' ' && r != '\t' && r != '-' && r != '+' && r != '.'
	}) >= 0 {
		return 0, 0, fmt.Errorf("unexpected characters in %q: %w", s, ErrInvalidLegacy)
	}
	if len(s) == 0 {
		return resultOrError(result, fields, negative, fmt.Errorf("empty duration: %w", ErrInvalidLegacy))
	}
	parts := strings.SplitN(s, ":", 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch i {
		case 0:
			n, neg, err := signedMagnitude(p)
			if err != nil {
				return resultOrError(result, fields, negative, err)
			}
			sign(neg)
			result += Duration(n) * Hour
		case 1:
			n, err := strconv.ParseUint(p, 10, 63)
			if err != nil {
				return resultOrError(result, fields, negative, err)
			}
			result += Duration(n) * Minute
		case 2:
			v, err := parseSecondsField(p)
			if err != nil {
				return resultOrError(result, fields, negative, err)
			}
			result += v
		}
		fields++
	}
	return resultOrError(result, fields, negative, nil)
}

func resultOrError(result Duration, fields int, negative bool, err error) (Duration, int, error) {
	if fields == 0 {
		if err == nil || !errors.Is(err, ErrInvalidLegacy) {
			err = fmt.Errorf("%v: %w", err, ErrInvalidLegacy)
		}
		return 0, 0, err
	}
	if negative {
		result = -result
	}
	return result, fields, nil
}
