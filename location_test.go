// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime_test

import (
	"math"
	"testing"

	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/solar"
	"cloudeng.io/wtime/zones"
)

func TestDSTWindow(t *testing.T) {
	day := duration.Day
	start := func(year int) wtime.Instant {
		return wtime.New(year, 1, 1, 0, 0, 0, nil)
	}
	for _, tc := range []struct {
		name       string
		start, end duration.Duration
		at         duration.Duration
		inside     bool
	}{
		{"at start", 100 * day, 200 * day, 100 * day, true},
		{"before start", 100 * day, 200 * day, 100*day - 1, false},
		{"before end", 100 * day, 200 * day, 200*day - 1, true},
		{"at end", 100 * day, 200 * day, 200 * day, false},
		{"wrapped at start", 300 * day, 60 * day, 300 * day, true},
		{"wrapped before start", 300 * day, 60 * day, 300*day - 1, false},
		{"wrapped new year", 300 * day, 60 * day, 10 * day, true},
		{"wrapped before end", 300 * day, 60 * day, 60*day - 1, true},
		{"wrapped at end", 300 * day, 60 * day, 60 * day, false},
		{"wrapped middle", 300 * day, 60 * day, 200 * day, false},
		{"disabled", 100 * day, 100 * day, 100 * day, false},
	} {
		loc := wtime.NewLocation(0, 0, wtime.WithDST(tc.start, tc.end, duration.Hour))
		ctx := wtime.NewTimeContext(loc)
		tm := start(2023).Add(tc.at).WithContext(ctx)
		if got, want := loc.InsideDST(tm), tc.inside; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		offset := "Z"
		if tc.inside {
			offset = "+01:00"
		}
		// Formatting and adjustment share the same window.
		iso := tm.Format(duration.ISO8601)
		if got, want := iso[len(iso)-len(offset):], offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		adj := tm.Micros(duration.AsLocal|duration.WithDST) - tm.Micros(0)
		if got, want := adj != 0, tc.inside; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
}

func TestDSTStandardTime(t *testing.T) {
	// The window is measured in local standard time.
	loc := wtime.NewLocation(0, 0,
		wtime.WithTimezone(duration.New(0, -6, 0, 0)),
		wtime.WithDST(100*duration.Day, 200*duration.Day, duration.Hour))
	ctx := wtime.NewTimeContext(loc)
	// 05:59 UTC on day 100 is 23:59 on day 99 in standard time.
	tm := wtime.New(2023, 1, 1, 5, 59, 0, ctx).Add(100 * duration.Day)
	if loc.InsideDST(tm) {
		t.Errorf("%v: should be outside", tm)
	}
	if !loc.InsideDST(tm.Add(duration.Minute)) {
		t.Errorf("%v: should be inside", tm)
	}
	if got, want := loc.EffectiveOffset(tm.Add(duration.Minute)), duration.New(0, -5, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZoneAttachment(t *testing.T) {
	mdt, _, ok := zones.Static().ByName("MDT", zones.Daylight)
	if !ok {
		t.Fatal("MDT not found")
	}
	loc := wtime.NewLocation(51.05, -114.07, wtime.WithZone(mdt))
	if got, want := loc.TimezoneOffset(), duration.New(0, -7, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !loc.DSTEnabled() || loc.DSTAmount() != duration.Hour || loc.EndDST() != 366*duration.Day {
		t.Errorf("unexpected daylight saving: %v", loc)
	}
	r, hidden, ok := loc.CurrentZone(zones.Standard)
	if !ok || hidden || r != mdt {
		t.Errorf("got %v, %v, %v", r, hidden, ok)
	}
	loc.SetDSTAmount(2 * duration.Hour)
	if _, _, ok := loc.Zone(); ok {
		t.Errorf("zone should be detached")
	}
	r, _, ok = loc.CurrentZone(zones.Standard)
	if !ok || r.Code != "MDT" {
		t.Errorf("got %v, %v", r, ok)
	}

	mst, _, _ := zones.Static().ByName("MST", zones.Standard)
	loc.SetZone(mst)
	if loc.DSTEnabled() || loc.DSTAmount() != 0 {
		t.Errorf("unexpected daylight saving: %v", loc)
	}
	loc.SetTimezoneOffset(duration.New(0, -6, 0, 0))
	if _, _, ok := loc.Zone(); ok {
		t.Errorf("zone should be detached")
	}
}

func TestCurrentZone(t *testing.T) {
	for _, tc := range []struct {
		tz     duration.Duration
		dst    bool
		set    zones.Set
		code   string
		hidden bool
	}{
		{duration.New(0, -6, 0, 0), false, zones.Standard, "CST", false},
		{duration.New(0, -6, 0, 0), true, zones.Standard, "CDT", false},
		{duration.New(0, -6, 0, 0), false, zones.Military, "S", false},
		{duration.New(0, 5, 30, 0), false, zones.Standard, "IST", false},
		{duration.New(0, 4, 30, 0), false, zones.Standard, "AFT", true},
	} {
		opts := []wtime.LocationOption{wtime.WithTimezone(tc.tz)}
		if tc.dst {
			opts = append(opts, wtime.WithDST(0, 366*duration.Day, duration.Hour))
		}
		loc := wtime.NewLocation(0, 0, opts...)
		r, hidden, ok := loc.CurrentZone(tc.set)
		if !ok {
			t.Errorf("%v: not found", tc.code)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := hidden, tc.hidden; got != want {
			t.Errorf("%v: got %v, want %v", tc.code, got, want)
		}
	}
	loc := wtime.NewLocation(0, 0, wtime.WithTimezone(duration.New(0, 1, 23, 0)))
	if _, _, ok := loc.CurrentZone(zones.Standard); ok {
		t.Errorf("unexpected match")
	}
}

func TestGuessZone(t *testing.T) {
	for _, tc := range []struct {
		lat, lon float64
		set      zones.Set
		code     string
	}{
		{49.9, -97.1, zones.Standard, "CST"},
		{49.9, -97.1, zones.Daylight, "CDT"},
		{51.0, -110.0, zones.Standard, "MST"},
		{51.5, -0.12, zones.Standard, "UTC"},
		{-36.85, 174.76, zones.Standard, "NZST"},
		{-42.88, 147.33, zones.Daylight, "AEDT"},
		{28.6, 77.2, zones.Military, "E"},
	} {
		loc := wtime.NewLocation(tc.lat, tc.lon)
		r, ok := loc.GuessZone(tc.set)
		if !ok {
			t.Errorf("%v: not found", tc.code)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("%v,%v: got %v, want %v", tc.lat, tc.lon, got, want)
		}
		if got, _, ok := loc.Zone(); !ok || got != r {
			t.Errorf("zone not attached: %v", got)
		}
		if got, want := loc.TimezoneOffset(), r.Offset; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	loc := wtime.NewLocation(0, 0)
	if _, ok := loc.GuessZone(zones.Any); ok {
		t.Errorf("unexpected guess")
	}
}

func TestLookupByNameAndID(t *testing.T) {
	loc := wtime.NewLocation(0, 0)
	r, origin, ok := loc.TimezoneFromName("pacific standard time", zones.Standard)
	if !ok || r.Code != "PST" || origin != zones.Primary {
		t.Errorf("got %v, %v, %v", r, origin, ok)
	}
	if _, _, ok := loc.Zone(); ok {
		t.Errorf("lookup should not attach")
	}
	if !loc.AttachByID(r.ID) {
		t.Fatal("failed to attach")
	}
	if got, want := loc.TimezoneOffset(), duration.New(0, -8, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !loc.AttachByName("AFT", zones.Standard) {
		t.Fatal("failed to attach")
	}
	if _, hidden, _ := loc.CurrentZone(zones.Standard); !hidden {
		t.Errorf("AFT should be hidden")
	}
	if loc.AttachByName("no such zone", zones.Standard) {
		t.Errorf("unexpected match")
	}
	if _, _, ok := loc.TimezoneFromID(zones.DaylightID | 12); !ok {
		t.Errorf("not found")
	}
}

func TestInsideRegions(t *testing.T) {
	for _, tc := range []struct {
		lat, lon                      float64
		canada, nz, tasmania, mainland bool
	}{
		{51.05, -114.07, true, false, false, false},
		{-36.85, 174.76, false, true, false, false},
		{-42.88, 147.33, false, false, true, false},
		{-33.87, 151.21, false, false, false, true},
		{47.6, -122.3, false, false, false, false},
	} {
		loc := wtime.NewLocation(tc.lat, tc.lon)
		if got, want := loc.InsideCanada(), tc.canada; got != want {
			t.Errorf("%v,%v: got %v, want %v", tc.lat, tc.lon, got, want)
		}
		if got, want := loc.InsideNewZealand(), tc.nz; got != want {
			t.Errorf("%v,%v: got %v, want %v", tc.lat, tc.lon, got, want)
		}
		if got, want := loc.InsideTasmania(), tc.tasmania; got != want {
			t.Errorf("%v,%v: got %v, want %v", tc.lat, tc.lon, got, want)
		}
		if got, want := loc.InsideAustraliaMainland(), tc.mainland; got != want {
			t.Errorf("%v,%v: got %v, want %v", tc.lat, tc.lon, got, want)
		}
	}
}

func TestSolarTimezone(t *testing.T) {
	for _, tc := range []struct {
		lon  float64
		want duration.Duration
	}{
		{0, 0},
		{-90, duration.New(0, -6, 0, 0)},
		{135, duration.New(0, 9, 0, 0)},
	} {
		loc := wtime.NewLocation(45, tc.lon)
		ctx := wtime.NewTimeContext(loc)
		for _, month := range []int{2, 5, 7, 11} {
			tm := wtime.New(2023, month, 10, 12, 0, 0, ctx)
			got := loc.SolarTimezone(tm)
			// The equation of time is never more than about 17 minutes.
			if diff := (got - tc.want).Abs(); diff > 17*duration.Minute {
				t.Errorf("%v %v: got %v, want %v", tc.lon, month, got, tc.want)
			}
			if got != loc.SolarTimezone(tm) {
				t.Errorf("cached value differs")
			}
		}
	}
}

func TestSunEvents(t *testing.T) {
	for _, tc := range []struct {
		lat, lon float64
	}{
		{49.9, -97.1},
		{-33.87, 151.21},
		{0, 0},
		{59.5, 10.7},
	} {
		loc := wtime.NewLocation(tc.lat, tc.lon)
		ctx := wtime.NewTimeContext(loc)
		for _, month := range []int{3, 6, 9, 12} {
			tm := wtime.New(2023, month, 21, 12, 0, 0, ctx)
			ev := loc.SunEvents(tm)
			if ev.Flags != 0 {
				t.Errorf("%v: unexpected flags: %v", tc, ev.Flags)
				continue
			}
			if !ev.Rise.Before(ev.Noon) || !ev.Noon.Before(ev.Set) {
				t.Errorf("%v %v: rise %v, noon %v, set %v", tc, month, ev.Rise, ev.Noon, ev.Set)
			}
			if ev.Noon.Context() != ctx {
				t.Errorf("wrong context")
			}
			// Solar noon falls on the requested solar day at close to 12:00.
			h := ev.Noon.Hour(duration.AsSolar)
			if h != 11 && h != 12 {
				t.Errorf("%v %v: noon at %v solar time", tc, month, h)
			}
			if again := loc.SunEvents(tm); again != ev {
				t.Errorf("cached value differs")
			}
		}
	}
}

func TestSunEventsInvalidate(t *testing.T) {
	loc := wtime.NewLocation(10, 0)
	ctx := wtime.NewTimeContext(loc)
	tm := wtime.New(2023, 6, 21, 12, 0, 0, ctx)
	south := loc.SunEvents(tm)
	loc.SetLatitude(50)
	north := loc.SunEvents(tm)
	if !north.Rise.Before(south.Rise) {
		t.Errorf("days are longer further north in june: %v %v", north.Rise, south.Rise)
	}
	clone := loc.Clone()
	if !clone.Equal(loc) {
		t.Errorf("clone differs")
	}
	if got, want := clone.SunEvents(tm), north; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	clone.SetLongitude(20)
	if clone.Equal(loc) {
		t.Errorf("clone should differ")
	}
}

func TestPolarSunEvents(t *testing.T) {
	loc := wtime.NewLocation(69.65, 18.96)
	ctx := wtime.NewTimeContext(loc)
	tm := wtime.New(2024, 6, 21, 12, 0, 0, ctx)
	ev := loc.SunEvents(tm)
	if ev.Flags != 0 {
		t.Fatalf("unexpected flags: %v", ev.Flags)
	}
	if got, want := ev.Rise.Month(0), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ev.Set.Month(0), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	arctic := wtime.NewLocation(66, 0)
	ev = arctic.SunEvents(wtime.New(2024, 6, 21, 12, 0, 0, wtime.NewTimeContext(arctic)))
	if got, want := ev.Flags, solar.NoSunrise|solar.NoSunset; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if ev.Rise.IsSet() || ev.Set.IsSet() || !ev.Noon.IsSet() {
		t.Errorf("got %v", ev)
	}
}

func TestLocationAccessors(t *testing.T) {
	loc := wtime.NewLocation(45.5, -73.6)
	if got, want := loc.Latitude(), 45.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	lat, lon := loc.Radians()
	if math.Abs(lat-45.5*math.Pi/180) > 1e-12 || math.Abs(lon+73.6*math.Pi/180) > 1e-12 {
		t.Errorf("got %v %v", lat, lon)
	}
	if loc.DSTEnabled() || loc.DSTAmount() != duration.Hour {
		t.Errorf("unexpected defaults: %v", loc)
	}
	if loc.Catalog() != zones.Static() {
		t.Errorf("unexpected catalog")
	}
}
