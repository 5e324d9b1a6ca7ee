// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package duration provides a signed span of time with microsecond
// resolution together with its ISO8601 and legacy "D days HH:MM:SS"
// string representations.
package duration

import (
	"time"
)

// Duration is a signed span of time measured in microseconds.
type Duration int64

const (
	Microsecond Duration = 1
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
	Week                 = 7 * Day
)

// New returns the Duration for the specified days, hours, minutes and
// seconds. Each value may exceed its natural range, for example
// New(0, 0, 90, 0) is 1.5 hours.
func New(days, hours, minutes, seconds int64) Duration {
	return Duration((seconds + 60*(minutes+60*(hours+24*days))) * int64(Second))
}

// NewMicros is like New but also accepts a microsecond component.
func NewMicros(days, hours, minutes, seconds, micros int64) Duration {
	return New(days, hours, minutes, seconds) + Duration(micros)
}

// NewFloat is like New but accepts fractional seconds, which are rounded
// to the nearest microsecond.
func NewFloat(days, hours, minutes int64, seconds float64) Duration {
	return New(days, hours, minutes, 0) + fromSeconds(seconds)
}

// Seconds returns the Duration for the specified number of seconds.
func Seconds(s int64) Duration {
	return Duration(s) * Second
}

// Micros returns the Duration for the specified number of microseconds.
func Micros(us int64) Duration {
	return Duration(us)
}

// FromStd converts a time.Duration, truncating to microseconds.
func FromStd(d time.Duration) Duration {
	return Duration(d / time.Microsecond)
}

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Microsecond
}

func fromSeconds(s float64) Duration {
	v := s * float64(Second)
	if v < 0 {
		return Duration(v - 0.5)
	}
	return Duration(v + 0.5)
}

// Years returns the number of whole years, based on a 365.25 day year,
// truncated towards zero.
func (d Duration) Years() int64 {
	return int64(float64(d) / float64(Day) / 365.25)
}

// Weeks returns the number of whole weeks.
func (d Duration) Weeks() int64 {
	return int64(d / Week)
}

// Days returns the number of whole days.
func (d Duration) Days() int64 {
	return int64(d / Day)
}

// TotalHours returns the number of whole hours.
func (d Duration) TotalHours() int64 {
	return int64(d / Hour)
}

// Hours returns the hours component, in the range (-24, 24).
func (d Duration) Hours() int {
	return int(d.TotalHours() - d.Days()*24)
}

// TotalMinutes returns the number of whole minutes.
func (d Duration) TotalMinutes() int64 {
	return int64(d / Minute)
}

// Minutes returns the minutes component, in the range (-60, 60).
func (d Duration) Minutes() int {
	return int(d.TotalMinutes() - d.TotalHours()*60)
}

// TotalSeconds returns the number of whole seconds.
func (d Duration) TotalSeconds() int64 {
	return int64(d / Second)
}

// Seconds returns the seconds component, in the range (-60, 60).
func (d Duration) Seconds() int {
	return int(d.TotalSeconds() - d.TotalMinutes()*60)
}

// TotalMilliSeconds returns the number of whole milliseconds.
func (d Duration) TotalMilliSeconds() int64 {
	return int64(d / Millisecond)
}

// MilliSeconds returns the milliseconds component, in the range (-1000, 1000).
func (d Duration) MilliSeconds() int {
	return int(d.TotalMilliSeconds() - d.TotalSeconds()*1000)
}

// TotalMicroSeconds returns d as an integer number of microseconds.
func (d Duration) TotalMicroSeconds() int64 {
	return int64(d)
}

// MicroSeconds returns the sub-second component in microseconds.
func (d Duration) MicroSeconds() int {
	return int(d % Second)
}

// SecondsOfDay returns the number of whole seconds into the current day.
func (d Duration) SecondsOfDay() int64 {
	return d.TotalSeconds() - d.Days()*86400
}

// DaysFraction returns d as a fractional number of days.
func (d Duration) DaysFraction() float64 {
	return float64(d) / float64(Day)
}

// SecondsFraction returns d as a fractional number of seconds.
func (d Duration) SecondsFraction() float64 {
	return float64(d) / float64(Second)
}

// FractionOfSecond returns the fraction of the current second.
func (d Duration) FractionOfSecond() float64 {
	return float64(d%Second) / float64(Second)
}

// FractionOfMinute returns the fraction of the current minute.
func (d Duration) FractionOfMinute() float64 {
	return float64(d%Minute) / float64(Minute)
}

// FractionOfHour returns the fraction of the current hour.
func (d Duration) FractionOfHour() float64 {
	return float64(d%Hour) / float64(Hour)
}

// FractionOfDay returns the fraction of the current day.
func (d Duration) FractionOfDay() float64 {
	return float64(d%Day) / float64(Day)
}

// PurgeToSecond truncates d to a whole number of seconds.
func (d Duration) PurgeToSecond() Duration {
	return d - d%Second
}

// PurgeToMinute truncates d to a whole number of minutes.
func (d Duration) PurgeToMinute() Duration {
	return d - d%Minute
}

// PurgeToHour truncates d to a whole number of hours.
func (d Duration) PurgeToHour() Duration {
	return d - d%Hour
}

// PurgeToDay truncates d to a whole number of days.
func (d Duration) PurgeToDay() Duration {
	return d - d%Day
}

func (d Duration) Add(o Duration) Duration {
	return d + o
}

func (d Duration) Sub(o Duration) Duration {
	return d - o
}

func (d Duration) Mul(n int64) Duration {
	return d * Duration(n)
}

// MulFloat multiplies d by f, rounding to the nearest microsecond.
func (d Duration) MulFloat(f float64) Duration {
	return fromSeconds(d.SecondsFraction() * f)
}

func (d Duration) Div(n int64) Duration {
	return d / Duration(n)
}

// DivFloat divides d by f, rounding to the nearest microsecond.
func (d Duration) DivFloat(f float64) Duration {
	return fromSeconds(d.SecondsFraction() / f)
}

// Ratio returns the dimensionless ratio d/o.
func (d Duration) Ratio(o Duration) float64 {
	return float64(d) / float64(o)
}

// Compare returns -1, 0 or +1.
func (d Duration) Compare(o Duration) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	}
	return 0
}

func (d Duration) Abs() Duration {
	if d < 0 {
		return -d
	}
	return d
}

func (d Duration) Neg() Duration {
	return -d
}

// String returns the ISO8601 form of d.
func (d Duration) String() string {
	return d.Format(StringTimezone)
}
