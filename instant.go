// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package wtime provides a timezone, daylight saving and solar time
// aware representation of instants at microsecond precision. Instants
// are stored as UTC and interpreted as local or apparent solar time
// through the Location bound to their TimeContext.
package wtime

import (
	"math"
	"time"

	"cloudeng.io/wtime/duration"
)

// Instant is a point in time, stored as microseconds since
// 1600-01-01T00:00:00 UTC, along with the TimeContext used to interpret
// it. The zero Instant is the epoch with no TimeContext. An Instant may
// be unset, in which case every accessor returns -1, false or an unset
// value, and every arithmetic operation returns an unset Instant.
type Instant struct {
	t   uint64
	ctx *TimeContext
}

// UnsetMicros is the reserved value used for an unset Instant.
const UnsetMicros = math.MaxUint64

// MinMicros and MaxMicros are 1900-01-01 and 2100-01-01 respectively.
const (
	MinMicros uint64 = 109573 * uint64(duration.Day)
	MaxMicros uint64 = 182622 * uint64(duration.Day)
)

// Unset returns an unset Instant.
func Unset(ctx *TimeContext) Instant {
	return Instant{t: UnsetMicros, ctx: ctx}
}

// Min returns 1900-01-01T00:00:00 UTC.
func Min(ctx *TimeContext) Instant {
	return Instant{t: MinMicros, ctx: ctx}
}

// Max returns 2100-01-01T00:00:00 UTC.
func Max(ctx *TimeContext) Instant {
	return Instant{t: MaxMicros, ctx: ctx}
}

// FromMicros returns the Instant us microseconds after the epoch.
func FromMicros(us uint64, ctx *TimeContext) Instant {
	return Instant{t: us, ctx: ctx}
}

func fromSigned(us int64, ctx *TimeContext) Instant {
	if us < 0 {
		return Unset(ctx)
	}
	return Instant{t: uint64(us), ctx: ctx}
}

func civilMicros(year, month, day, hour, minute int) int64 {
	days := JulianDay(year, month, day) - epochJDN
	return days*microsPerDay + int64(hour)*int64(duration.Hour) + int64(minute)*int64(duration.Minute)
}

// New returns the Instant for the specified UTC date and time. Fields
// outside of their natural ranges carry into the next larger field.
// Dates before the epoch yield an unset Instant.
func New(year, month, day, hour, minute, second int, ctx *TimeContext) Instant {
	return fromSigned(civilMicros(year, month, day, hour, minute)+int64(second)*int64(duration.Second), ctx)
}

// NewFrac is like New except that seconds may be fractional, they are
// rounded to the nearest microsecond.
func NewFrac(year, month, day, hour, minute int, second float64, ctx *TimeContext) Instant {
	return fromSigned(civilMicros(year, month, day, hour, minute)+int64(math.Round(second*1e6)), ctx)
}

var goEpoch = time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)

// FromTime returns the Instant for t, truncated to the microsecond.
func FromTime(t time.Time, ctx *TimeContext) Instant {
	t = t.UTC()
	days := JulianDay(t.Year(), int(t.Month()), t.Day()) - epochJDN
	tod := int64(t.Hour())*int64(duration.Hour) + int64(t.Minute())*int64(duration.Minute) +
		int64(t.Second())*int64(duration.Second) + int64(t.Nanosecond()/1000)
	return fromSigned(days*microsPerDay+tod, ctx)
}

// Now returns the current time.
func Now(ctx *TimeContext) Instant {
	return FromTime(time.Now(), ctx)
}

// Time returns t as a UTC time.Time. The result is the zero time.Time
// for an unset Instant.
func (t Instant) Time() time.Time {
	if !t.IsSet() {
		return time.Time{}
	}
	days := int64(t.t) / microsPerDay
	rem := int64(t.t) % microsPerDay
	return goEpoch.AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Microsecond)
}

// Context returns the TimeContext of t.
func (t Instant) Context() *TimeContext {
	return t.ctx
}

// WithContext returns t with the specified TimeContext.
func (t Instant) WithContext(ctx *TimeContext) Instant {
	t.ctx = ctx
	return t
}

// Location returns the Location of t's TimeContext, if any.
func (t Instant) Location() *Location {
	return t.ctx.Location()
}

// IsSet returns false for an unset Instant.
func (t Instant) IsSet() bool {
	return t.t != UnsetMicros
}

// adjustment returns the offset to be added to the raw value to obtain
// the requested local or solar time.
func (t Instant) adjustment(flags duration.Flags) duration.Duration {
	solarTime := flags&duration.AsSolar != 0
	if solarTime && flags&(duration.AsLocal|duration.WithDST) != 0 {
		panic("wtime: AsSolar cannot be combined with AsLocal or WithDST")
	}
	if t.t == 0 || !t.IsSet() {
		return 0
	}
	loc := t.Location()
	if loc == nil {
		return 0
	}
	if solarTime {
		return loc.solarOffset(int64(t.t))
	}
	var adj duration.Duration
	if flags&duration.AsLocal != 0 {
		adj = loc.tz
	}
	if flags&duration.WithDST != 0 {
		adj += loc.dstAt(int64(t.t))
	}
	return adj
}

// adjusted returns the raw value adjusted as per flags.
func (t Instant) adjusted(flags duration.Flags) int64 {
	return int64(t.t) + int64(t.adjustment(flags))
}

// Micros returns the microseconds since the epoch, adjusted as per
// flags. Unset instants return UnsetMicros.
func (t Instant) Micros(flags duration.Flags) uint64 {
	if !t.IsSet() {
		return UnsetMicros
	}
	return uint64(t.adjusted(flags))
}

// Convert re-expresses t. With a negative direction t is assumed to hold
// local or solar time, as per flags, and the corresponding UTC instant is
// returned; with a positive direction the reverse. A zero direction
// returns t.
func Convert(t Instant, flags duration.Flags, direction int) Instant {
	if !t.IsSet() || direction == 0 {
		return t
	}
	adj := t.adjustment(flags)
	if direction < 0 {
		return fromSigned(int64(t.t)-int64(adj), t.ctx)
	}
	return fromSigned(int64(t.t)+int64(adj), t.ctx)
}

type civil struct {
	year, month, day         int
	hour, minute, second, us int
	days                     int64 // since the epoch
}

func civilFrom(v int64) civil {
	jdn := dayNumber(v)
	y, m, d := CalendarDay(jdn)
	tod := v - (jdn-epochJDN)*microsPerDay
	return civil{
		year:   y,
		month:  m,
		day:    d,
		hour:   int(tod / int64(duration.Hour)),
		minute: int(tod / int64(duration.Minute) % 60),
		second: int(tod / int64(duration.Second) % 60),
		us:     int(tod % int64(duration.Second)),
		days:   jdn - epochJDN,
	}
}

func (t Instant) civil(flags duration.Flags) (civil, bool) {
	if !t.IsSet() {
		return civil{}, false
	}
	return civilFrom(t.adjusted(flags)), true
}

func (t Instant) field(flags duration.Flags, fn func(c civil) int) int {
	c, ok := t.civil(flags)
	if !ok {
		return -1
	}
	return fn(c)
}

func (t Instant) Year(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.year })
}

func (t Instant) Month(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.month })
}

func (t Instant) Day(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.day })
}

func (t Instant) Hour(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.hour })
}

func (t Instant) Minute(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.minute })
}

func (t Instant) Second(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.second })
}

func (t Instant) MilliSecond(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.us / 1000 })
}

func (t Instant) MicroSecond(flags duration.Flags) int {
	return t.field(flags, func(c civil) int { return c.us })
}

// DayOfWeek returns 1 for Sunday through to 7 for Saturday.
func (t Instant) DayOfWeek(flags duration.Flags) int {
	return t.field(flags, func(c civil) int {
		if dow := int(c.days % 7); dow != 0 {
			return dow
		}
		return 7
	})
}

// DayOfYear returns the zero based day of the year.
func (t Instant) DayOfYear(flags duration.Flags) int {
	return t.field(flags, func(c civil) int {
		return int(c.days - (JulianDay(c.year, 1, 1) - epochJDN))
	})
}

// IsLeapYear returns true if t falls in a leap year.
func (t Instant) IsLeapYear(flags duration.Flags) bool {
	c, ok := t.civil(flags)
	return ok && IsLeapYear(c.year)
}

// DurationIntoYear returns the time since the start of the year.
// Unset instants return -1.
func (t Instant) DurationIntoYear(flags duration.Flags) duration.Duration {
	if !t.IsSet() {
		return -1
	}
	return intoYear(t.adjusted(flags))
}

// SecondsIntoYear returns the whole seconds since the start of the year.
func (t Instant) SecondsIntoYear(flags duration.Flags) int64 {
	if !t.IsSet() {
		return -1
	}
	return t.DurationIntoYear(flags).TotalSeconds()
}

// DayFractionOfYear returns the time since the start of the year in
// days.
func (t Instant) DayFractionOfYear(flags duration.Flags) float64 {
	if !t.IsSet() {
		return -1
	}
	return t.DurationIntoYear(flags).DaysFraction()
}

// TimeOfDay returns the time since midnight.
func (t Instant) TimeOfDay(flags duration.Flags) duration.Duration {
	if !t.IsSet() {
		return -1
	}
	v := t.adjusted(flags)
	return duration.Duration(v - (dayNumber(v)-epochJDN)*microsPerDay)
}

func (t Instant) fraction(flags duration.Flags, unit duration.Duration) float64 {
	if !t.IsSet() {
		return -1
	}
	v := t.adjusted(flags)
	return float64(v%int64(unit)) / float64(unit)
}

func (t Instant) FractionOfSecond(flags duration.Flags) float64 {
	return t.fraction(flags, duration.Second)
}

func (t Instant) FractionOfMinute(flags duration.Flags) float64 {
	return t.fraction(flags, duration.Minute)
}

func (t Instant) FractionOfHour(flags duration.Flags) float64 {
	return t.fraction(flags, duration.Hour)
}

func (t Instant) FractionOfDay(flags duration.Flags) float64 {
	return t.fraction(flags, duration.Day)
}

// Add returns t+d.
func (t Instant) Add(d duration.Duration) Instant {
	if !t.IsSet() {
		return t
	}
	return fromSigned(int64(t.t)+int64(d), t.ctx)
}

// Sub returns t-d.
func (t Instant) Sub(d duration.Duration) Instant {
	return t.Add(-d)
}

// Since returns t-o, or zero if either is unset.
func (t Instant) Since(o Instant) duration.Duration {
	if !t.IsSet() || !o.IsSet() {
		return 0
	}
	return duration.Duration(int64(t.t) - int64(o.t))
}

// AddYears adds n years to t, one at a time. Moving forward adds 366
// days if the current year is a leap year and 365 otherwise; moving
// backward removes 366 days if the preceding year is a leap year and 365
// otherwise.
func (t Instant) AddYears(n int) Instant {
	for ; n > 0 && t.IsSet(); n-- {
		days := JulianCount(t.Year(0))
		t = t.Add(duration.Duration(days) * duration.Day)
	}
	for ; n < 0 && t.IsSet(); n++ {
		days := JulianCount(t.Year(0) - 1)
		t = t.Sub(duration.Duration(days) * duration.Day)
	}
	return t
}

func (t Instant) purge(flags duration.Flags, unit duration.Duration) Instant {
	if !t.IsSet() {
		return t
	}
	v := t.adjusted(flags)
	rem := v % int64(unit)
	return fromSigned(int64(t.t)-rem, t.ctx)
}

// PurgeToSecond truncates t to a whole second in the time selected by
// flags. PurgeToMinute, PurgeToHour and PurgeToDay are similar.
func (t Instant) PurgeToSecond(flags duration.Flags) Instant {
	return t.purge(flags, duration.Second)
}

func (t Instant) PurgeToMinute(flags duration.Flags) Instant {
	return t.purge(flags, duration.Minute)
}

func (t Instant) PurgeToHour(flags duration.Flags) Instant {
	return t.purge(flags, duration.Hour)
}

func (t Instant) PurgeToDay(flags duration.Flags) Instant {
	return t.purge(flags, duration.Day)
}

// PurgeToYear truncates t to the start of the year in the time selected
// by flags.
func (t Instant) PurgeToYear(flags duration.Flags) Instant {
	if !t.IsSet() {
		return t
	}
	return fromSigned(int64(t.t)-int64(t.DurationIntoYear(flags)), t.ctx)
}

// Compare returns -1, 0 or +1. Unset instants compare greater than all
// set instants.
func (t Instant) Compare(o Instant) int {
	switch {
	case t.t < o.t:
		return -1
	case t.t > o.t:
		return 1
	}
	return 0
}

func (t Instant) Before(o Instant) bool { return t.t < o.t }
func (t Instant) After(o Instant) bool  { return t.t > o.t }
func (t Instant) Equal(o Instant) bool  { return t.t == o.t }
