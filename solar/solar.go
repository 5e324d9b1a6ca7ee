// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar provides sunrise, sunset and solar noon calculations
// based on the NOAA solar position algorithms, as well as the dates of
// the solstices and equinoxes.
package solar

import (
	"math"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// Status records which events could not be computed.
type Status uint16

const (
	NoSunrise Status = 1 << iota
	NoSunset
)

// MaxPolarSearchDays bounds the number of days searched for the nearest
// sunrise or sunset in polar regions.
const MaxPolarSearchDays = 366

var maxPolarSearchDays = MaxPolarSearchDays

// ErrPolarSearch is returned when no sunrise or sunset could be found
// within MaxPolarSearchDays.
var ErrPolarSearch = errors.New("no sunrise or sunset found within the polar search limit")

// polarLatitude is the latitude beyond which a missing sunrise or sunset
// is searched for on neighbouring days.
const polarLatitude = 66.4

// Input specifies the date and place for a calculation.
type Input struct {
	Latitude       float64 // degrees, clamped to +/- 89.8
	Longitude      float64 // degrees, positive west
	Year           int
	Month          int
	Day            int
	Timezone       int // hours west of UTC, values outside +/- 12 are treated as 0
	DaylightSaving bool
}

// Event is a calendar date and time of day.
type Event struct {
	Year   int
	Month  datetime.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Time returns the event as a time.Time in loc.
func (e Event) Time(loc *time.Location) time.Time {
	return time.Date(e.Year, time.Month(e.Month), e.Day, e.Hour, e.Minute, e.Second, 0, loc)
}

// Output contains the results of a calculation. Rise, Set and Noon are
// expressed in the local time specified by the Input's timezone and
// daylight saving. RiseUTC, SetUTC and NoonUTC are in minutes relative to
// midnight UTC at the start of the requested date and may be negative or
// exceed a day when the event falls on a neighbouring day.
type Output struct {
	Rise, Set, Noon          Event
	RiseUTC, SetUTC, NoonUTC float64
	EquationOfTime           float64 // minutes
	Declination              float64 // degrees
}

// DayLength returns the time between sunrise and sunset.
func (o Output) DayLength() time.Duration {
	return time.Duration((o.SetUTC - o.RiseUTC) * float64(time.Minute))
}

func floor2(v float64) float64 {
	return math.Floor(100*v) / 100
}

// eventAt returns the Event for the specified number of minutes from
// midnight on the day given by jd.
func eventAt(jd, minutes float64) Event {
	days := math.Floor(minutes / 1440)
	minutes -= days * 1440
	y, m, d := julian.JDToCalendar(jd + days)
	hour := math.Floor(minutes / 60)
	fm := 60 * (minutes/60 - hour)
	minute := math.Floor(fm)
	second := math.Floor(60 * (fm - minute))
	return Event{
		Year:   y,
		Month:  datetime.Month(m),
		Day:    int(d),
		Hour:   int(hour),
		Minute: int(minute),
		Second: int(second),
	}
}

type eventFunc func(jd, lat, lon float64) (float64, bool)

// search looks for the nearest day, in the given direction, on which
// the event occurs and returns the time of the event relative to jd.
func search(jd, lat, lon, dir float64, fn eventFunc) (float64, error) {
	for i := 1; i <= maxPolarSearchDays; i++ {
		day := jd + dir*float64(i)
		if m, ok := fn(day, lat, lon); ok {
			return m + (day-jd)*1440, nil
		}
	}
	return 0, ErrPolarSearch
}

// Calculate computes sunrise, sunset and solar noon for the specified
// date and place. If the sun does not rise or set on the requested day
// in the polar regions then the nearest earlier or later event is
// reported instead, depending on the season. Outside the polar regions,
// or if the search fails, the corresponding Status bit is set and
// ErrPolarSearch is returned for a failed search.
func Calculate(in Input) (Output, Status, error) {
	var out Output
	var status Status
	lat, lon := in.Latitude, in.Longitude
	lat = math.Max(-89.8, math.Min(89.8, lat))

	jd := julian.CalendarGregorianToJD(in.Year, in.Month, float64(in.Day))
	doy := datetime.NewDate(datetime.Month(in.Month), in.Day).DayOfYear(in.Year)
	t := julianCent(jd)
	out.EquationOfTime = floor2(equationOfTime(t))
	out.Declination = floor2(sunDeclination(t))

	zone := in.Timezone
	if zone > 12 || zone < -12 {
		zone = 0
	}
	offset := -60 * float64(zone)
	if in.DaylightSaving {
		offset += 60
	}

	out.NoonUTC = solarNoonUTC(t, lon)
	out.Noon = eventAt(jd, out.NoonUTC+offset)

	midnightSun := (lat > polarLatitude && doy > 79 && doy < 267) ||
		(lat < -polarLatitude && (doy < 83 || doy > 263))
	polarNight := (lat > polarLatitude && (doy < 83 || doy > 263)) ||
		(lat < -polarLatitude && doy > 79 && doy < 267)

	errs := &errors.M{}
	resolve := func(fn eventFunc, rise bool, missing Status) (float64, bool) {
		if m, ok := fn(jd, lat, lon); ok {
			return m, true
		}
		dir := 0.0
		switch {
		case midnightSun && rise:
			dir = -1
		case midnightSun:
			dir = 1
		case polarNight && rise:
			dir = 1
		case polarNight:
			dir = -1
		}
		if dir == 0 {
			status |= missing
			return 0, false
		}
		m, err := search(jd, lat, lon, dir, fn)
		if err != nil {
			errs.Append(err)
			status |= missing
			return 0, false
		}
		return m, true
	}

	// During the midnight sun the most recent sunrise and the next
	// sunset are reported, during the polar night the reverse.
	if m, ok := resolve(sunriseUTC, true, NoSunrise); ok {
		out.RiseUTC = m
		out.Rise = eventAt(jd, m+offset)
	}
	if m, ok := resolve(sunsetUTC, false, NoSunset); ok {
		out.SetUTC = m
		out.Set = eventAt(jd, m+offset)
	}
	return out, status, errs.Err()
}
