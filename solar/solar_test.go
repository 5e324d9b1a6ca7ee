// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/wtime/solar"
	"github.com/nathan-osman/go-sunrise"
)

type place struct {
	name     string
	lat, lon float64 // degrees, east positive
}

var places = []place{
	{"cupertino", 37.3229978, -122.0321823},
	{"calgary", 51.05, -114.07},
	{"winnipeg", 49.9, -97.14},
	{"london", 51.5, -0.12},
	{"sydney", -33.87, 151.21},
	{"singapore", 1.35, 103.82},
	{"cape town", -33.92, 18.42},
}

var dates = []time.Time{
	time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC),
	time.Date(2023, 12, 21, 0, 0, 0, 0, time.UTC),
}

func minutes(day time.Time, m float64) time.Time {
	return day.Add(time.Duration(m * float64(time.Minute)))
}

func within(a, b time.Time, d time.Duration) bool {
	diff := a.Sub(b)
	return diff < d && diff > -d
}

func input(p place, day time.Time) solar.Input {
	return solar.Input{
		Latitude:  p.lat,
		Longitude: -p.lon,
		Year:      day.Year(),
		Month:     int(day.Month()),
		Day:       day.Day(),
	}
}

func TestAgainstOracle(t *testing.T) {
	for _, p := range places {
		for _, day := range dates {
			out, status, err := solar.Calculate(input(p, day))
			if err != nil || status != 0 {
				t.Errorf("%v: %v: %v %v", p.name, day, status, err)
				continue
			}
			rise, set := sunrise.SunriseSunset(p.lat, p.lon, day.Year(), day.Month(), day.Day())
			if got, want := minutes(day, out.RiseUTC), rise; !within(got, want, 3*time.Minute) {
				t.Errorf("%v: %v: rise: got %v, want %v", p.name, day, got, want)
			}
			if got, want := minutes(day, out.SetUTC), set; !within(got, want, 3*time.Minute) {
				t.Errorf("%v: %v: set: got %v, want %v", p.name, day, got, want)
			}
		}
	}
}

func TestRiseNoonSet(t *testing.T) {
	for _, lat := range []float64{-59.5, -45, -20, 0, 20, 45, 59.5} {
		for _, lon := range []float64{-170, -90, 0, 90, 170} {
			for _, day := range dates {
				p := place{"grid", lat, lon}
				out, status, err := solar.Calculate(input(p, day))
				if err != nil || status != 0 {
					t.Errorf("%v,%v: %v: %v %v", lat, lon, day, status, err)
					continue
				}
				if !(out.RiseUTC < out.NoonUTC && out.NoonUTC < out.SetUTC) {
					t.Errorf("%v,%v: %v: %v %v %v", lat, lon, day, out.RiseUTC, out.NoonUTC, out.SetUTC)
				}
				if out.DayLength() <= 0 || out.DayLength() >= 24*time.Hour {
					t.Errorf("%v,%v: %v: day length %v", lat, lon, day, out.DayLength())
				}
			}
		}
	}
}

func TestLocalEvents(t *testing.T) {
	// Cupertino, 2024-01-01 in PST.
	in := input(places[0], dates[0])
	in.Timezone = 8
	out, _, err := solar.Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	loc := time.FixedZone("PST", -8*3600)
	rise, set := sunrise.SunriseSunset(places[0].lat, places[0].lon, 2024, 1, 1)
	if got, want := out.Rise.Time(loc), rise; !within(got, want, 3*time.Minute) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Set.Time(loc), set; !within(got, want, 3*time.Minute) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Rise.Hour, 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Noon.Hour, 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	in.DaylightSaving = true
	dst, _, _ := solar.Calculate(in)
	if got, want := dst.Rise.Hour, 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dst.RiseUTC, out.RiseUTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEquationOfTime(t *testing.T) {
	for _, tc := range []struct {
		month, day int
		eot        float64
		dec        float64
	}{
		{2, 11, -14.2, -14.3},
		{11, 3, 16.4, -14.9},
		{6, 21, -1.8, 23.4},
	} {
		out, _, _ := solar.Calculate(solar.Input{Latitude: 45, Year: 2024, Month: tc.month, Day: tc.day})
		if d := out.EquationOfTime - tc.eot; d > 0.5 || d < -0.5 {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.day, out.EquationOfTime, tc.eot)
		}
		if d := out.Declination - tc.dec; d > 0.5 || d < -0.5 {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.day, out.Declination, tc.dec)
		}
	}
}

func TestPolar(t *testing.T) {
	tromso := place{"tromso", 69.65, 18.96}

	// Midnight sun: the previous sunrise and next sunset are reported.
	day := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	out, status, err := solar.Calculate(input(tromso, day))
	if err != nil || status != 0 {
		t.Fatalf("%v %v", status, err)
	}
	if got, want := out.Rise.Month, datetime.Month(5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Set.Month, datetime.Month(7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if out.RiseUTC >= 0 || out.SetUTC <= 1440 {
		t.Errorf("got %v %v", out.RiseUTC, out.SetUTC)
	}

	// Polar night: the next sunrise and previous sunset are reported.
	day = time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)
	out, status, err = solar.Calculate(input(tromso, day))
	if err != nil || status != 0 {
		t.Fatalf("%v %v", status, err)
	}
	if got, want := out.Rise.Month, datetime.Month(1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Rise.Year, 2025; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.Set.Month, datetime.Month(11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The southern hemisphere is mirrored.
	day = time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	out, status, err = solar.Calculate(input(place{"antarctica", -75, 0}, day))
	if err != nil || status != 0 {
		t.Fatalf("%v %v", status, err)
	}
	if out.RiseUTC <= 1440 || out.SetUTC >= 0 {
		t.Errorf("got %v %v", out.RiseUTC, out.SetUTC)
	}

	// Latitudes are clamped short of the poles.
	pole, status, err := solar.Calculate(input(place{"pole", 90, 0}, day))
	clamped, cstatus, cerr := solar.Calculate(input(place{"clamped", 89.8, 0}, day))
	if got, want := pole, clamped; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := status, cstatus; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if (err == nil) != (cerr == nil) {
		t.Errorf("got %v, want %v", err, cerr)
	}
}

func TestNoSunriseOutsidePolarRegion(t *testing.T) {
	day := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	_, status, err := solar.Calculate(input(place{"near arctic circle", 66.0, 20}, day))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := status, solar.NoSunrise|solar.NoSunset; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if errors.Is(err, solar.ErrPolarSearch) {
		t.Errorf("unexpected error")
	}
}
