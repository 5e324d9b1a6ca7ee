// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"math"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month datetime.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Season identifies one of the equinoxes or solstices.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

func (s Season) String() string {
	switch s {
	case MarchEquinox:
		return "march-equinox"
	case JuneSolstice:
		return "june-solstice"
	case SeptemberEquinox:
		return "september-equinox"
	case DecemberSolstice:
		return "december-solstice"
	}
	return fmt.Sprintf("season(%d)", int(s))
}

// SeasonEvent is the instant of an equinox or solstice expressed as a
// date and the minutes into that day, in dynamical time.
type SeasonEvent struct {
	Season  Season
	Date    Date
	Minutes float64
}

func (e SeasonEvent) String() string {
	m := int(math.Round(e.Minutes))
	return fmt.Sprintf("%v: %vT%02d:%02d", e.Season, e.Date, m/60, m%60)
}

func jdeToEvent(s Season, jde float64) SeasonEvent {
	y, m, d := julian.JDToCalendar(jde)
	day, frac := math.Modf(d)
	return SeasonEvent{
		Season:  s,
		Date:    Date{Year: y, Month: datetime.Month(m), Day: int(day)},
		Minutes: frac * 24 * 60,
	}
}

// Seasons returns the equinoxes and solstices of year in calendar order.
func Seasons(year int) [4]SeasonEvent {
	return [4]SeasonEvent{
		jdeToEvent(MarchEquinox, solstice.March(year)),
		jdeToEvent(JuneSolstice, solstice.June(year)),
		jdeToEvent(SeptemberEquinox, solstice.September(year)),
		jdeToEvent(DecemberSolstice, solstice.December(year)),
	}
}

// December returns the date of the December solstice.
func December(year int) Date {
	return jdeToEvent(DecemberSolstice, solstice.December(year)).Date
}

// March returns the date of the March equinox.
func March(year int) Date {
	return jdeToEvent(MarchEquinox, solstice.March(year)).Date
}

// June returns the date of the June solstice.
func June(year int) Date {
	return jdeToEvent(JuneSolstice, solstice.June(year)).Date
}

// September returns the date of the September equinox.
func September(year int) Date {
	return jdeToEvent(SeptemberEquinox, solstice.September(year)).Date
}
