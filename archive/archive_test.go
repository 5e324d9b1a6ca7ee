// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package archive_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"cloudeng.io/wtime"
	"cloudeng.io/wtime/archive"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
)

func hm(h, m int64) duration.Duration {
	return duration.New(0, h, m, 0)
}

func le(t *testing.T, vals ...any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	for _, v := range vals {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	return buf
}

func TestDuration(t *testing.T) {
	for _, d := range []duration.Duration{0, 1, -duration.Hour, duration.NewMicros(3, 2, 1, 0, 999999)} {
		buf := &bytes.Buffer{}
		if err := archive.WriteDuration(buf, d); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.Len(), 16; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		got, err := archive.ReadDuration(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("got %v, want %v", got, d)
		}
	}
	got, err := archive.ReadDuration(le(t, int64(-90)))
	if err != nil {
		t.Fatal(err)
	}
	if want := -90 * duration.Second; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := archive.ReadDuration(le(t, archive.DurationMagic)); err != io.EOF {
		t.Errorf("got %v, want %v", err, io.EOF)
	}
}

func TestInstant(t *testing.T) {
	ctx := wtime.NewTimeContext(wtime.NewLocation(0, 0))
	for _, tm := range []wtime.Instant{
		wtime.New(2018, 10, 4, 4, 12, 15, ctx),
		wtime.NewFrac(1600, 1, 1, 0, 0, 0.000001, ctx),
		wtime.Unset(ctx),
	} {
		buf := &bytes.Buffer{}
		if err := archive.WriteInstant(buf, tm); err != nil {
			t.Fatal(err)
		}
		got, err := archive.ReadInstant(buf, ctx)
		if err != nil {
			t.Fatal(err)
		}
		if got.Micros(0) != tm.Micros(0) || got.Context() != ctx {
			t.Errorf("got %v, want %v", got, tm)
		}
	}

	// Seconds since 1900.
	secs := int64(wtime.New(2018, 10, 4, 4, 12, 15, nil).Since(wtime.Min(nil)).TotalSeconds())
	got, err := archive.ReadInstant(le(t, secs), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := got.String(), "2018-10-04T04:12:15Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	got, err = archive.ReadInstant(le(t, int64(-1)), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsSet() {
		t.Errorf("got %v, want unset", got)
	}
	if _, err := archive.ReadInstant(le(t, int32(1)), ctx); err == nil {
		t.Errorf("expected an error for a short read")
	}
}

func TestLocationVersions(t *testing.T) {
	mdt, _, _ := zones.Static().ByName("MDT", zones.Daylight)
	quad := wtime.NewLocation(49.9, -97.1,
		wtime.WithTimezone(hm(-6, -14)),
		wtime.WithDST(100*duration.Day, 200*duration.Day, hm(1, 12)))
	zoned := wtime.NewLocation(51.05, -114.07, wtime.WithZone(mdt))

	for _, tc := range []struct {
		version archive.Version
		loc     *wtime.Location
		dst     bool
		zone    bool
	}{
		{archive.Legacy, quad, false, false},
		{archive.V1, quad, false, false},
		{archive.V2, quad, true, false},
		{archive.V3, quad, true, false},
		{archive.V4, quad, true, false},
		{archive.V4, zoned, true, false},
		{archive.V5, quad, true, false},
		{archive.V5, zoned, true, true},
	} {
		buf := &bytes.Buffer{}
		if err := archive.WriteLocationVersion(buf, tc.loc, tc.version); err != nil {
			t.Fatal(err)
		}
		loc, version, err := archive.ReadLocation(buf)
		if err != nil {
			t.Errorf("%v: %v", tc.version, err)
			continue
		}
		if got, want := version, tc.version; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if buf.Len() != 0 {
			t.Errorf("%v: %v bytes left over", tc.version, buf.Len())
		}
		lat, lon := loc.Radians()
		wlat, wlon := tc.loc.Radians()
		if lat != wlat || lon != wlon {
			t.Errorf("%v: got %v %v, want %v %v", tc.version, lat, lon, wlat, wlon)
		}
		if got, want := loc.TimezoneOffset(), tc.loc.TimezoneOffset(); got != want {
			t.Errorf("%v: got %v, want %v", tc.version, got, want)
		}
		if tc.dst && !loc.Equal(tc.loc) {
			t.Errorf("%v: got %v, want %v", tc.version, loc, tc.loc)
		}
		if !tc.dst && loc.DSTEnabled() {
			t.Errorf("%v: unexpected daylight saving: %v", tc.version, loc)
		}
		if zone, _, ok := loc.Zone(); ok != tc.zone || (ok && zone != mdt) {
			t.Errorf("%v: got %v, %v", tc.version, zone, ok)
		}
	}
}

func TestWriteLocationLatest(t *testing.T) {
	mdt, _, _ := zones.Static().ByName("MDT", zones.Daylight)
	for _, tc := range []struct {
		loc     *wtime.Location
		version archive.Version
	}{
		{wtime.NewLocation(0, 0), archive.V4},
		{wtime.NewLocation(0, 0, wtime.WithZone(mdt)), archive.Latest},
	} {
		buf := &bytes.Buffer{}
		if err := archive.WriteLocation(buf, tc.loc); err != nil {
			t.Fatal(err)
		}
		_, version, err := archive.ReadLocation(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := version, tc.version; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestLegacySeconds(t *testing.T) {
	// A V2 record with offsets in seconds.
	lat, lon := 0.8708337756, -1.69538491
	buf := le(t, int16(-1), int16(2), lat, lon, int32(-6*3600), int16(0),
		int32(90*86400), int32(300*86400), int32(3600))
	loc, _, err := archive.ReadLocation(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := loc.TimezoneOffset(), hm(-6, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := loc.EndDST(), 300*duration.Day; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The original layout has no prefix and a timezone in seconds.
	buf = le(t, lat, lon, int64(-5*3600))
	loc, version, err := archive.ReadLocation(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := version, archive.Legacy; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := loc.TimezoneOffset(), hm(-5, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if gotLat, _ := loc.Radians(); gotLat != lat {
		t.Errorf("got %v, want %v", gotLat, lat)
	}
	if math.Abs(loc.Latitude()-49.895) > 0.001 {
		t.Errorf("got %v", loc.Latitude())
	}
}

func TestUnknownVersion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	archive.ReadLocation(le(t, int16(-1), int16(9), 0.0, 0.0))
}

func TestTruncatedLocation(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := archive.WriteLocationVersion(buf, wtime.NewLocation(10, 20), archive.V4); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if _, _, err := archive.ReadLocation(bytes.NewReader(data[:len(data)-4])); err == nil {
		t.Errorf("expected an error")
	}
}
