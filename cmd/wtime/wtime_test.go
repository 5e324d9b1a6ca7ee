// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/wire"
	"gopkg.in/yaml.v3"
)

var winnipeg = LocationConfig{Latitude: 49.9, Longitude: -97.1, Timezone: "CST"}

func newTestEnv(t *testing.T, lc LocationConfig) (*env, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	_, e, err := setup(context.Background(), Config{Location: lc, NoIANA: true}, out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { e.Close() })
	return e, out
}

func decodeOutput(t *testing.T, out *bytes.Buffer, v any) {
	t.Helper()
	if err := yaml.Unmarshal(out.Bytes(), v); err != nil {
		t.Fatalf("%v: %s", err, out.String())
	}
	out.Reset()
}

func TestFlagStructs(t *testing.T) {
	for _, fv := range []any{
		&parseFlags{}, &durationFlags{}, &sunFlags{}, &zoneFlags{},
		&wireFlags{}, &archiveFlags{}, &encodeFlags{},
	} {
		if _, err := subcmd.RegisterFlagStruct(fv, nil, nil); err != nil {
			t.Errorf("%T: %v", fv, err)
		}
	}
}

func TestConfigFile(t *testing.T) {
	ctx := context.Background()
	cfgFile := filepath.Join("testdata", "config.yaml")
	cfg, err := CommonFlags{Config: cfgFile}.config(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Location.Timezone, "MST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Logging.Format, "json"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cfg.NoIANA {
		t.Errorf("expected no_iana to be set")
	}
	cfg, err = CommonFlags{Config: cfgFile, Timezone: "PST", Latitude: 47.6, Longitude: -122.3}.config(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Location.Timezone, "PST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Location.Latitude, 47.6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := (CommonFlags{Config: "nowhere.yaml"}).config(ctx); err == nil {
		t.Errorf("expected an error")
	}
}

func TestParseCommand(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, winnipeg)
	if err := e.parse(ctx, &parseFlags{Layout: "iso8601", As: "utc"}, []string{"2018-10-04T04:12:15Z"}); err != nil {
		t.Fatal(err)
	}
	var res struct {
		Location locationOutput  `yaml:"location"`
		Instants []instantOutput `yaml:"instants"`
	}
	decodeOutput(t, out, &res)
	if got, want := res.Location.Zone, "CST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := res.Location.Offset, "-6:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(res.Instants), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	tm := res.Instants[0]
	if got, want := tm.UTC, "2018-10-04T04:12:15Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tm.Local, "2018-10-03T22:12:15-06:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tm.Micros, uint64(13214722335000000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if tm.InsideDST {
		t.Errorf("unexpected daylight saving")
	}

	// Local time.
	if err := e.parse(ctx, &parseFlags{As: "local"}, []string{"2018-10-03 22:12:15"}); err != nil {
		t.Fatal(err)
	}
	decodeOutput(t, out, &res)
	if got, want := res.Instants[0].UTC, "2018-10-04T04:12:15Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, fv := range []*parseFlags{
		{Layout: "yyyy.mm.dd", As: "utc"},
		{As: "lunar"},
	} {
		if err := e.parse(ctx, fv, []string{"2018-10-04"}); err == nil {
			t.Errorf("%v: expected an error", fv)
		}
	}
	if err := e.parse(ctx, &parseFlags{As: "utc"}, []string{"not a date"}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestDurationCommand(t *testing.T) {
	out := &bytes.Buffer{}
	if err := formatDurations(&durationFlags{}, []string{"3 days 2:45:0", "-6:14"}, out); err != nil {
		t.Fatal(err)
	}
	var res []durationOutput
	decodeOutput(t, out, &res)
	if got, want := len(res), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, want := range []durationOutput{
		{Input: "3 days 2:45:0", ISO8601: "P3DT2H45M", Legacy: "74:45:00", Days: "3 days 02:45:00", Seconds: 269100},
		{Input: "-6:14", ISO8601: "-PT6H14M", Legacy: "-6:14:00", Days: "-6:14:00", Seconds: -22440},
	} {
		if got := res[i]; got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
	if err := formatDurations(&durationFlags{ExcludeSeconds: true}, []string{"1:12:31"}, out); err != nil {
		t.Fatal(err)
	}
	decodeOutput(t, out, &res)
	if got, want := res[0].Legacy, "01:13"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := formatDurations(&durationFlags{}, []string{"six hours"}, out); err == nil {
		t.Errorf("expected an error")
	}
}

func TestSunCommand(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, winnipeg)
	if err := e.sun(ctx, &sunFlags{Days: 3, CrossCheck: true, Seasons: true}, []string{"2018-06-21"}); err != nil {
		t.Fatal(err)
	}
	var res struct {
		Days    []sunOutput `yaml:"days"`
		Seasons []string    `yaml:"seasons"`
	}
	decodeOutput(t, out, &res)
	if got, want := len(res.Days), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, day := range res.Days {
		if got, want := day.Date, []string{"2018-06-21", "2018-06-22", "2018-06-23"}[i]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if !(day.Rise < day.Noon && day.Noon < day.Set) {
			t.Errorf("%v: events out of order: %v %v %v", day.Date, day.Rise, day.Noon, day.Set)
		}
		if len(day.Polar) > 0 || len(day.DayLength) == 0 {
			t.Errorf("%v: %+v", day.Date, day)
		}
		for _, delta := range []string{day.RiseDelta, day.SetDelta} {
			d, _, err := duration.Parse(delta)
			if err != nil {
				t.Errorf("%v: %v: %v", day.Date, delta, err)
				continue
			}
			if d.Abs() > 3*duration.Minute {
				t.Errorf("%v: difference too large: %v", day.Date, d)
			}
		}
	}
	if got, want := len(res.Seasons), 4; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := res.Seasons[1], "june-solstice: 2018-06-21T"; !strings.HasPrefix(got, want) {
		t.Errorf("got %v, want prefix %v", got, want)
	}
	if err := e.sun(ctx, &sunFlags{Days: 0}, nil); err == nil {
		t.Errorf("expected an error")
	}
}

func TestZoneCommand(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, LocationConfig{Latitude: 51, Longitude: -110})

	if err := e.zone(ctx, &zoneFlags{}, []string{"pacific standard time"}); err != nil {
		t.Fatal(err)
	}
	var zo zoneOutput
	decodeOutput(t, out, &zo)
	if got, want := zo.Code, "PST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zo.Offset, "-8:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zo.Origin, "primary"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Daylight zones are found even when standard zones are preferred.
	if err := e.zone(ctx, &zoneFlags{}, []string{"MDT"}); err != nil {
		t.Fatal(err)
	}
	decodeOutput(t, out, &zo)
	if !zo.Daylight {
		t.Errorf("expected a daylight saving zone: %+v", zo)
	}

	if err := e.zone(ctx, &zoneFlags{}, nil); err != nil {
		t.Fatal(err)
	}
	var guessed struct {
		Zone    zoneOutput `yaml:"zone"`
		Solar   string     `yaml:"solar_offset"`
		Regions []string   `yaml:"regions"`
	}
	decodeOutput(t, out, &guessed)
	if got, want := guessed.Zone.Code, "MST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !slices.Contains(guessed.Regions, "canada") {
		t.Errorf("got %v", guessed.Regions)
	}
	if len(guessed.Solar) == 0 {
		t.Errorf("missing solar offset")
	}

	if err := e.zone(ctx, &zoneFlags{All: true, Military: true}, nil); err != nil {
		t.Fatal(err)
	}
	var all []zoneOutput
	decodeOutput(t, out, &all)
	if got, want := len(all), 25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := e.zone(ctx, &zoneFlags{}, []string{"Nowhere/Special"}); err == nil {
		t.Errorf("expected an error")
	}
}

func encodeHex(t *testing.T, e *env, out *bytes.Buffer, fv *encodeFlags, args ...string) []byte {
	t.Helper()
	if err := e.encode(context.Background(), fv, args); err != nil {
		t.Fatal(err)
	}
	data, err := hex.DecodeString(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatal(err)
	}
	out.Reset()
	return data
}

func TestWireRoundTrip(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, winnipeg)

	data := encodeHex(t, e, out, &encodeFlags{Kind: "time", Format: "wire", Version: -1}, "2018-10-03 22:12:15")
	if err := e.inspectWire(ctx, "time", data); err != nil {
		t.Fatal(err)
	}
	var tres struct {
		Decoded     decodedTimeOutput `yaml:"decoded"`
		Diagnostics []entryOutput     `yaml:"diagnostics"`
	}
	decodeOutput(t, out, &tres)
	if got, want := tres.Decoded.UTC, "2018-10-04T04:12:15Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tres.Decoded.Zone, "CST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(tres.Diagnostics), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	data = encodeHex(t, e, out, &encodeFlags{Kind: "duration", Format: "wire", Version: -1}, "1:02:03")
	if err := e.inspectWire(ctx, "duration", data); err != nil {
		t.Fatal(err)
	}
	var dres struct {
		Decoded string `yaml:"decoded"`
	}
	decodeOutput(t, out, &dres)
	if got, want := dres.Decoded, "PT1H2M3S"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, version := range []int{1, 2} {
		data = encodeHex(t, e, out, &encodeFlags{Kind: "location", Format: "wire", Version: version})
		if err := e.inspectWire(ctx, "location", data); err != nil {
			t.Fatal(err)
		}
		var lres struct {
			Decoded locationOutput `yaml:"decoded"`
		}
		decodeOutput(t, out, &lres)
		if got, want := lres.Decoded.Zone, "CST"; got != want {
			t.Errorf("version %v: got %v, want %v", version, got, want)
		}
	}
	if err := e.encode(ctx, &encodeFlags{Kind: "location", Format: "wire", Version: 3}, nil); err == nil {
		t.Errorf("expected an error")
	}
}

func TestWireDiagnostics(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, winnipeg)
	data := wire.TimeRecord{Time: "not a time"}.Marshal()
	if err := e.inspectWire(ctx, "time", data); err != nil {
		t.Fatal(err)
	}
	var res struct {
		Diagnostics []entryOutput `yaml:"diagnostics"`
	}
	decodeOutput(t, out, &res)
	if got, want := len(res.Diagnostics), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := res.Diagnostics[0].Field, "time"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := res.Diagnostics[0].Severity, wire.Error.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := e.inspectWire(ctx, "time", []byte{0x0a, 0x10}); err == nil {
		t.Errorf("expected an error for a truncated record")
	}
	if err := e.inspectWire(ctx, "calendar", data); err == nil {
		t.Errorf("expected an error")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	e, out := newTestEnv(t, winnipeg)
	for _, tc := range []struct {
		version int
		name    string
		zone    string
	}{
		{-1, "v5", "CST"},
		{4, "v4", ""},
		{2, "v2", ""},
		{0, "legacy", ""},
	} {
		data := encodeHex(t, e, out, &encodeFlags{Kind: "location", Format: "archive", Version: tc.version})
		if err := e.inspectArchive(ctx, "location", data); err != nil {
			t.Fatal(err)
		}
		var res struct {
			Version  string         `yaml:"version"`
			Location locationOutput `yaml:"location"`
		}
		decodeOutput(t, out, &res)
		if got, want := res.Version, tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := res.Location.Zone, tc.zone; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := res.Location.Offset, "-6:00"; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	data := encodeHex(t, e, out, &encodeFlags{Kind: "time", Format: "archive"}, "2018-10-03 22:12:15")
	if err := e.inspectArchive(ctx, "instant", data); err != nil {
		t.Fatal(err)
	}
	var instant string
	decodeOutput(t, out, &instant)
	if got, want := instant, "2018-10-04T04:12:15Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	data = encodeHex(t, e, out, &encodeFlags{Kind: "duration", Format: "archive"}, "-1:30")
	if err := e.inspectArchive(ctx, "duration", data); err != nil {
		t.Fatal(err)
	}
	var d string
	decodeOutput(t, out, &d)
	if got, want := d, "-PT1H30M"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	bad := []byte{0xff, 0xff, 0x09, 0x00, 0, 0, 0, 0}
	if err := e.inspectArchive(ctx, "location", bad); err == nil {
		t.Errorf("expected an error for an unsupported version")
	}
	if err := e.encode(ctx, &encodeFlags{Kind: "location", Format: "archive", Version: 6}, nil); err == nil {
		t.Errorf("expected an error")
	}
}
