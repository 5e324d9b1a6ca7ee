// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones_test

import (
	"math"
	"strings"
	"testing"

	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
)

func hm(h, m int64) duration.Duration {
	return duration.New(0, h, m, 0)
}

// TestGuessCalgary covers a guess at longitude -114 without a database.
// The nearest ideal longitude wins, so Calgary, at 5.9 degrees from the
// PST meridian (-120) and 9.1 from the MST meridian (-105), is given PST
// rather than the UTC-7 zone it observes.
func TestGuessCalgary(t *testing.T) {
	cat := zones.Static()
	r, ok := cat.Guess(51.05, -114.07, zones.Standard)
	if !ok {
		t.Fatal("failed to guess")
	}
	if got, want := r.Code, "PST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	mst, _, _ := cat.ByName("MST", zones.Standard)
	if got, want := zones.IdealLongitude(mst), -105.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zones.IdealLongitude(r), -120.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuess(t *testing.T) {
	cat := zones.Static()
	for _, tc := range []struct {
		name     string
		lat, lon float64
		set      zones.Set
		code     string
	}{
		{"prairies", 51, -110, zones.Standard, "MST"},
		{"winnipeg", 49.9, -97.1, zones.Standard, "CST"},
		{"greenwich", 51.5, 0, zones.Standard, "UTC"},
		{"greenwich-mil", 51.5, 0, zones.Military, "Z"},
		{"india", 20.6, 82, zones.Standard, "IST"},
		{"first-wins", -30, 120, zones.Standard, "AWST"},
		{"wrapped", 60, 190, zones.Standard, "NT"},
		{"auckland", -36.85, 174.76, zones.Standard, "NZST"},
		{"auckland-dst", -36.85, 174.76, zones.Daylight, "NZDT"},
		{"hobart", -42.88, 147.33, zones.Standard, "AEST"},
		{"hobart-dst", -42.88, 147.33, zones.Daylight, "AEDT"},
		{"denver-dst", 39.7, -105, zones.Daylight, "MDT"},
	} {
		r, ok := cat.Guess(tc.lat, tc.lon, tc.set)
		if !ok {
			t.Errorf("%v: failed to guess", tc.name)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
	if _, ok := cat.Guess(0, 0, zones.Any); ok {
		t.Errorf("expected failure for any")
	}
}

func TestByName(t *testing.T) {
	cat := zones.Static()
	for _, tc := range []struct {
		name   string
		set    zones.Set
		code   string
		origin zones.Origin
	}{
		{"pst", zones.Standard, "PST", zones.Primary},
		{"Pacific Standard Time", zones.Standard, "PST", zones.Primary},
		{"mdt", zones.Daylight, "MDT", zones.Primary},
		{"mdt", zones.Any, "MDT", zones.Primary},
		{"acre time", zones.Standard, "ACT", zones.Extra},
	} {
		r, origin, ok := cat.ByName(tc.name, tc.set)
		if !ok {
			t.Errorf("%v: not found", tc.name)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := origin, tc.origin; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
	if _, _, ok := cat.ByName("mdt", zones.Standard); ok {
		t.Errorf("mdt should not be found in the standard set")
	}
	if _, _, ok := cat.ByName("Europe/Nowhere", zones.Any); ok {
		t.Errorf("unexpected match")
	}
}

func TestByID(t *testing.T) {
	cat := zones.Static()
	for _, tc := range []struct {
		id     uint32
		code   string
		origin zones.Origin
	}{
		{zones.StandardID | 12, "MST", zones.Primary},
		{zones.DaylightID | 5, "BST", zones.Primary},
		{zones.MilitaryID | 24, "Y", zones.Primary},
		{zones.StandardID | 28, "ACT", zones.Extra},
	} {
		r, origin, ok := cat.ByID(tc.id)
		if !ok {
			t.Errorf("%#x: not found", tc.id)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("%#x: got %v, want %v", tc.id, got, want)
		}
		if got, want := origin, tc.origin; got != want {
			t.Errorf("%#x: got %v, want %v", tc.id, got, want)
		}
		if got, want := r.ID, tc.id; got != want {
			t.Errorf("%#x: got %#x, want %#x", tc.id, got, want)
		}
	}
	for _, id := range []uint32{0, zones.StandardID | 0xfff, zones.DynamicID | 1} {
		if _, _, ok := cat.ByID(id); ok {
			t.Errorf("%#x: unexpected match", id)
		}
	}
}

func TestReverse(t *testing.T) {
	cat := zones.Static()
	for _, tc := range []struct {
		offset, dst duration.Duration
		set         zones.Set
		code        string
	}{
		{hm(-7, 0), 0, zones.Standard, "MST"},
		{hm(10, 0), 0, zones.Standard, "AEST"},
		{hm(0, 0), 0, zones.Daylight, "BST"},
		{hm(-3, -30), duration.Hour, zones.Daylight, "NDT"},
		{hm(-5, 0), 0, zones.Military, "R"},
	} {
		r, _, ok := cat.Reverse(tc.offset, tc.dst, tc.set)
		if !ok {
			t.Errorf("%v: not found", tc.offset)
			continue
		}
		if got, want := r.Code, tc.code; got != want {
			t.Errorf("%v: got %v, want %v", tc.offset, got, want)
		}
	}
	if _, _, ok := cat.Reverse(hm(0, 17), 0, zones.Standard); ok {
		t.Errorf("unexpected match")
	}
}

func TestPairing(t *testing.T) {
	cat := zones.Static()
	for _, tc := range []struct {
		std, dst string
	}{
		{"PST", "PDT"}, {"MST", "MDT"}, {"CST", "CDT"}, {"EST", "EDT"},
		{"AST", "ADT"}, {"NST", "NDT"}, {"AEST", "AEDT"}, {"NZST", "NZDT"},
		{"CET", "CEDT"}, {"MSK", "MSD"},
	} {
		std, _, _ := cat.ByName(tc.std, zones.Standard)
		dst, _, _ := cat.ByName(tc.dst, zones.Daylight)
		id, ok := zones.DaylightOf(std.ID)
		if !ok {
			t.Errorf("%v: no daylight variant", tc.std)
		}
		if got, want := id, dst.ID; got != want {
			t.Errorf("%v: got %#x, want %#x", tc.std, got, want)
		}
		id, ok = zones.StandardOf(dst.ID)
		if !ok {
			t.Errorf("%v: no standard variant", tc.dst)
		}
		if got, want := id, std.ID; got != want {
			t.Errorf("%v: got %#x, want %#x", tc.dst, got, want)
		}
		if got, want := dst.Offset, std.Offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.dst, got, want)
		}
	}
	bst, _, _ := cat.ByName("BST", zones.Daylight)
	if id, _ := zones.StandardOf(bst.ID); id != zones.StandardID|17 {
		t.Errorf("BST: got %#x", id)
	}
	if _, ok := zones.DaylightOf(zones.StandardID | 7); ok {
		t.Errorf("CXT should have no daylight variant")
	}
}

func TestUpgradeDowngrade(t *testing.T) {
	cat := zones.Static()
	for _, set := range []zones.Set{zones.Standard, zones.Daylight} {
		for _, r := range cat.All(set) {
			iana, daylight, ok := zones.Upgrade(r.ID)
			if !ok {
				continue
			}
			if got, want := daylight, set == zones.Daylight; got != want {
				t.Errorf("%v: got %v, want %v", r.Code, got, want)
			}
			id, ok := zones.Downgrade(strings.ToLower(iana), daylight)
			if !ok {
				t.Errorf("%v: %v: failed to downgrade", r.Code, iana)
			}
			if got, want := id, r.ID; got != want {
				t.Errorf("%v: %v: got %#x, want %#x", r.Code, iana, got, want)
			}
		}
	}
	if iana, daylight, _ := zones.Upgrade(zones.DaylightID | 12); iana != "America/Edmonton" || !daylight {
		t.Errorf("got %v %v", iana, daylight)
	}
	if _, ok := zones.Downgrade("Europe/London", false); ok {
		t.Errorf("unexpected downgrade")
	}
}

type fakeDB struct {
	records []zones.Record
}

func (f *fakeDB) ByCoordinate(lat, lon float64, set zones.Set) (zones.Record, bool) {
	if lat > 89 {
		return f.records[0], true
	}
	return zones.Record{}, false
}

func (f *fakeDB) ByName(name string, set zones.Set) (zones.Record, bool) {
	for _, r := range f.records {
		if r.Name == name {
			return r, true
		}
	}
	return zones.Record{}, false
}

func (f *fakeDB) ByID(id uint32) (zones.Record, bool) {
	idx := zones.Index(id)
	if idx < len(f.records) {
		return f.records[idx], true
	}
	return zones.Record{}, false
}

func TestDatabase(t *testing.T) {
	db := &fakeDB{records: []zones.Record{
		{Offset: hm(5, 45), Code: "+0545", Name: "Asia/Kathmandu", ID: zones.DynamicID},
	}}
	cat := zones.NewCatalog(db, nil)
	r, ok := cat.Guess(89.5, 85, zones.Standard)
	if !ok || r.Name != "Asia/Kathmandu" {
		t.Errorf("got %v, %v", r, ok)
	}
	r, ok = cat.Guess(28, 85, zones.Standard)
	if !ok || r.Dynamic() {
		t.Errorf("got %v, %v", r, ok)
	}
	r, origin, ok := cat.ByName("Asia/Kathmandu", zones.Standard)
	if !ok || origin != zones.External || !origin.Hidden() {
		t.Errorf("got %v, %v, %v", r, origin, ok)
	}
	r, _, ok = cat.ByID(zones.DynamicID)
	if !ok || r.Offset != hm(5, 45) {
		t.Errorf("got %v, %v", r, ok)
	}
	// static names are preferred.
	if _, origin, _ := cat.ByName("PST", zones.Standard); origin != zones.Primary {
		t.Errorf("got %v", origin)
	}
}
