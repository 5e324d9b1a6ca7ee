// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/sync/errgroup"
	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/solar"
	"cloudeng.io/wtime/zones"
	"github.com/nathan-osman/go-sunrise"
	"gopkg.in/yaml.v3"
)

type parseFlags struct {
	CommonFlags
	Layout string `subcmd:"layout,,'date layout, one of dd/mm/yyyy, yyyy/mm/dd, mm/dd/yyyy, dd-mm-yyyy, yyyy-mm-dd, mm-dd-yyyy, yyyymmdd, yyyymmddhh, yyyymmddThh:mm:ss or iso8601, guessed if not specified'"`
	As     string `subcmd:"as,utc,'interpret times without an offset as utc, local, standard or solar time'"`
}

type durationFlags struct {
	ExcludeSeconds bool `subcmd:"exclude-seconds,false,round legacy formats to the nearest minute"`
}

type sunFlags struct {
	CommonFlags
	Days       int  `subcmd:"days,1,number of consecutive days to display"`
	CrossCheck bool `subcmd:"cross-check,false,compare sunrise and sunset with an independent implementation"`
	Seasons    bool `subcmd:"seasons,false,also display the equinoxes and solstices for the year of the first day"`
}

type zoneFlags struct {
	CommonFlags
	Military bool `subcmd:"military,false,use the military timezones"`
	All      bool `subcmd:"all,false,list all of the built in timezones"`
}

var layouts = map[string]duration.Flags{
	"":                  0,
	"dd/mm/yyyy":        duration.DDMMYYYY,
	"yyyy/mm/dd":        duration.YYYYMMDD,
	"mm/dd/yyyy":        duration.MMDDYYYY,
	"dd-mm-yyyy":        duration.DDhMMhYYYY,
	"yyyy-mm-dd":        duration.YYYYhMMhDD,
	"mm-dd-yyyy":        duration.MMhDDhYYYY,
	"yyyymmdd":          duration.Compact,
	"yyyymmddhh":        duration.CompactHour,
	"yyyymmddThh:mm:ss": duration.CompactT,
	"iso8601":           duration.YYYYhMMhDDT,
}

var interpretations = map[string]duration.Flags{
	"utc":      0,
	"local":    duration.AsLocal | duration.WithDST,
	"standard": duration.AsLocal,
	"solar":    duration.AsSolar,
}

const (
	dateTime    = duration.FormatDate | duration.FormatTime
	utcLayout   = duration.YYYYhMMhDDT | duration.FormatDate | duration.FormatTime
	writtenDate = duration.DayOfWeek | duration.FormatDate | duration.FormatYear | duration.FormatTime |
		duration.AsLocal | duration.WithDST
)

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type instantOutput struct {
	Input     string `yaml:"input"`
	UTC       string `yaml:"utc"`
	Local     string `yaml:"local"`
	Solar     string `yaml:"solar"`
	Written   string `yaml:"written"`
	DayOfYear int    `yaml:"day_of_year"`
	InsideDST bool   `yaml:"inside_dst"`
	Micros    uint64 `yaml:"micros"`
}

type locationOutput struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Zone      string  `yaml:"zone,omitempty"`
	Offset    string  `yaml:"offset"`
	DST       string  `yaml:"dst,omitempty"`
}

func describeLocation(l *wtime.Location) locationOutput {
	lo := locationOutput{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
		Offset:    l.TimezoneOffset().Format(duration.ExcludeSeconds),
	}
	if r, _, ok := l.Zone(); ok {
		lo.Zone = r.Code
		if r.Dynamic() {
			lo.Zone = r.Name
		}
	}
	if l.DSTEnabled() {
		lo.DST = fmt.Sprintf("%s [%s, %s)", l.DSTAmount().Format(duration.ExcludeSeconds), l.StartDST(), l.EndDST())
	}
	return lo
}

func describeInstant(input string, t wtime.Instant) instantOutput {
	return instantOutput{
		Input:     input,
		UTC:       t.Format(utcLayout) + "Z",
		Local:     t.String(),
		Solar:     t.Format(utcLayout | duration.AsSolar),
		Written:   t.Format(writtenDate),
		DayOfYear: t.DayOfYear(duration.AsLocal | duration.WithDST),
		InsideDST: t.Location().InsideDST(t),
		Micros:    t.Micros(0),
	}
}

func parse(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*parseFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.parse(ctx, fv, args)
}

func (e *env) parse(_ context.Context, fv *parseFlags, args []string) error {
	layout, ok := layouts[fv.Layout]
	if !ok {
		return fmt.Errorf("unrecognised layout: %q", fv.Layout)
	}
	if err := flags.OneOf(fv.As).Validate("utc", "local", "standard", "solar"); err != nil {
		return err
	}
	loc, err := e.location()
	if err != nil {
		return err
	}
	tc := wtime.NewTimeContext(loc)
	out := struct {
		Location locationOutput  `yaml:"location"`
		Instants []instantOutput `yaml:"instants"`
	}{Location: describeLocation(loc)}
	for _, arg := range args {
		t, err := wtime.Parse(arg, layout|dateTime|interpretations[fv.As], tc)
		if err != nil {
			return err
		}
		out.Instants = append(out.Instants, describeInstant(arg, t))
	}
	return writeYAML(e.out, out)
}

type durationOutput struct {
	Input   string  `yaml:"input"`
	ISO8601 string  `yaml:"iso8601"`
	Legacy  string  `yaml:"legacy"`
	Days    string  `yaml:"days"`
	Seconds float64 `yaml:"seconds"`
}

func formatDuration(_ context.Context, values interface{}, args []string) error {
	return formatDurations(values.(*durationFlags), args, os.Stdout)
}

func formatDurations(fv *durationFlags, args []string, out io.Writer) error {
	var legacy duration.Flags
	if fv.ExcludeSeconds {
		legacy = duration.ExcludeSeconds
	}
	results := make([]durationOutput, 0, len(args))
	for _, arg := range args {
		d, _, err := duration.Parse(arg)
		if err != nil {
			return err
		}
		results = append(results, durationOutput{
			Input:   arg,
			ISO8601: d.String(),
			Legacy:  d.Format(legacy),
			Days:    d.Format(legacy | duration.FormatYear | duration.FormatDay),
			Seconds: d.SecondsFraction(),
		})
	}
	return writeYAML(out, results)
}

type sunOutput struct {
	Date      string `yaml:"date"`
	Rise      string `yaml:"rise"`
	Noon      string `yaml:"noon"`
	Set       string `yaml:"set"`
	DayLength string `yaml:"day_length,omitempty"`
	Polar     string `yaml:"polar,omitempty"`
	RiseDelta string `yaml:"rise_delta,omitempty"`
	SetDelta  string `yaml:"set_delta,omitempty"`
}

func polarStatus(s solar.Status) string {
	var parts []string
	if s&solar.NoSunrise != 0 {
		parts = append(parts, "no sunrise")
	}
	if s&solar.NoSunset != 0 {
		parts = append(parts, "no sunset")
	}
	return strings.Join(parts, ", ")
}

func sunDelta(ours wtime.Instant, theirs time.Time) string {
	if !ours.IsSet() || theirs.IsZero() {
		return ""
	}
	return ours.Since(wtime.FromTime(theirs, nil)).String()
}

func sun(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sunFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.sun(ctx, fv, args)
}

// sun computes the sun events for each day concurrently using a copy of
// the location per goroutine.
func (e *env) sun(ctx context.Context, fv *sunFlags, args []string) error {
	if fv.Days < 1 {
		return fmt.Errorf("invalid number of days: %v", fv.Days)
	}
	loc, err := e.location()
	if err != nil {
		return err
	}
	tc := wtime.NewTimeContext(loc)
	start := wtime.Now(tc)
	if len(args) == 1 {
		if start, err = wtime.Parse(args[0], dateTime|duration.AsLocal|duration.WithDST, tc); err != nil {
			return err
		}
	}
	// Local noon is always within the intended solar day.
	start = start.PurgeToDay(duration.AsLocal | duration.WithDST).Add(12 * duration.Hour)
	results := make([]sunOutput, fv.Days)
	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dtc := wtime.NewTimeContext(loc.Clone())
			day := start.Add(duration.Day.Mul(int64(i))).WithContext(dtc)
			ev := dtc.Location().SunEvents(day)
			res := sunOutput{
				Date:  ev.Noon.Format(duration.FormatDate | duration.YYYYhMMhDD | duration.AsLocal | duration.WithDST),
				Rise:  ev.Rise.String(),
				Noon:  ev.Noon.String(),
				Set:   ev.Set.String(),
				Polar: polarStatus(ev.Flags),
			}
			if ev.Rise.IsSet() && ev.Set.IsSet() {
				res.DayLength = ev.Set.Since(ev.Rise).Format(duration.ExcludeSeconds)
			}
			if fv.CrossCheck {
				noon := ev.Noon.Time()
				rise, set := sunrise.SunriseSunset(dtc.Location().Latitude(), dtc.Location().Longitude(),
					noon.Year(), noon.Month(), noon.Day())
				res.RiseDelta = sunDelta(ev.Rise, rise)
				res.SetDelta = sunDelta(ev.Set, set)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var seasons []string
	if fv.Seasons {
		for _, ev := range solar.Seasons(start.Year(duration.AsLocal | duration.WithDST)) {
			seasons = append(seasons, ev.String())
		}
	}
	return writeYAML(e.out, struct {
		Location locationOutput `yaml:"location"`
		Days     []sunOutput    `yaml:"days"`
		Seasons  []string       `yaml:"seasons,omitempty"`
	}{describeLocation(loc), results, seasons})
}

type zoneOutput struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Offset   string `yaml:"offset"`
	DST      string `yaml:"dst"`
	ID       string `yaml:"id"`
	Origin   string `yaml:"origin,omitempty"`
	IANA     string `yaml:"iana,omitempty"`
	Daylight bool   `yaml:"daylight"`
}

func describeZone(r zones.Record, origin zones.Origin) zoneOutput {
	zo := zoneOutput{
		Code:     r.Code,
		Name:     r.Name,
		Offset:   r.Offset.Format(duration.ExcludeSeconds),
		DST:      r.DST.Format(duration.ExcludeSeconds),
		ID:       fmt.Sprintf("%#x", r.ID),
		Origin:   origin.String(),
		Daylight: r.DST != 0,
	}
	if iana, _, ok := zones.Upgrade(r.ID); ok {
		zo.IANA = iana
	}
	return zo
}

func zone(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*zoneFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.zone(ctx, fv, args)
}

func (e *env) zone(_ context.Context, fv *zoneFlags, args []string) error {
	set := e.set()
	if fv.Military {
		set = zones.Military
	}
	if fv.All {
		var out []zoneOutput
		for _, r := range e.catalog.All(set) {
			_, origin, _ := e.catalog.ByID(r.ID)
			out = append(out, describeZone(r, origin))
		}
		return writeYAML(e.out, out)
	}
	if len(args) == 1 {
		r, origin, ok := e.catalog.ByName(args[0], set)
		if !ok {
			r, origin, ok = e.catalog.ByName(args[0], zones.Any)
		}
		if !ok {
			return fmt.Errorf("unrecognised timezone: %q", args[0])
		}
		return writeYAML(e.out, describeZone(r, origin))
	}
	loc, err := e.location()
	if err != nil {
		return err
	}
	if fv.Military {
		if _, ok := loc.GuessZone(zones.Military); !ok {
			return fmt.Errorf("failed to guess a military timezone for %v", loc)
		}
	}
	r, origin, _ := loc.Zone()
	now := wtime.Now(wtime.NewTimeContext(loc))
	solarOffset := loc.SolarTimezone(now)
	return writeYAML(e.out, struct {
		Location locationOutput `yaml:"location"`
		Zone     zoneOutput     `yaml:"zone"`
		Solar    string         `yaml:"solar_offset"`
		Regions  []string       `yaml:"regions,omitempty"`
	}{
		Location: describeLocation(loc),
		Zone:     describeZone(r, origin),
		Solar:    solarOffset.Format(duration.ExcludeSeconds),
		Regions:  regionsOf(loc),
	})
}

func regionsOf(l *wtime.Location) []string {
	var out []string
	for _, r := range []struct {
		name   string
		inside func() bool
	}{
		{"canada", l.InsideCanada},
		{"new zealand", l.InsideNewZealand},
		{"tasmania", l.InsideTasmania},
		{"australia", l.InsideAustraliaMainland},
	} {
		if r.inside() {
			out = append(out, r.name)
		}
	}
	return out
}
