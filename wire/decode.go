// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wire

import (
	"strings"

	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
)

// Decoder decodes records, resolving zones using Catalog or, if nil,
// zones.Static().
type Decoder struct {
	Catalog *zones.Catalog
}

func (d Decoder) catalog() *zones.Catalog {
	if d.Catalog == nil {
		return zones.Static()
	}
	return d.Catalog
}

// DecodedTime is the result of decoding a TimeRecord: the instant along
// with the offset and daylight saving amount of the timezone it was
// recorded in. ZoneID is set when the timezone is a catalog zone used
// without modification.
type DecodedTime struct {
	Micros uint64
	Offset duration.Duration
	DST    duration.Duration
	ZoneID uint32
}

// Instant returns the decoded instant bound to ctx.
func (dt DecodedTime) Instant(ctx *wtime.TimeContext) wtime.Instant {
	return wtime.FromMicros(dt.Micros, ctx)
}

// Location returns a new Location at the specified coordinates, in
// degrees, for the decoded timezone. A non-zero DST is in effect for the
// whole year.
func (dt DecodedTime) Location(lat, lon float64, opts ...wtime.LocationOption) *wtime.Location {
	all := make([]wtime.LocationOption, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, wtime.WithTimezone(dt.Offset))
	if dt.DST != 0 {
		all = append(all, wtime.WithDST(0, fullYear, dt.DST))
	}
	loc := wtime.NewLocation(lat, lon, all...)
	if dt.ZoneID != 0 {
		loc.AttachByID(dt.ZoneID)
	}
	return loc
}

// noOffset is the sentinel used to detect whether the time string
// included an offset.
const noOffset = -duration.Second

type daylightKind int

const (
	daylightUnspecified daylightKind = iota
	daylightNone
	daylightHour
	daylightOther
)

func (d Decoder) daylight(r TimeRecord, rep *reporter) (duration.Duration, daylightKind) {
	if r.Daylight == nil {
		return 0, daylightUnspecified
	}
	v := strings.TrimSpace(*r.Daylight)
	switch {
	case strings.ContainsAny(v, "0123456789"):
		span, _, err := duration.Parse(v)
		if err != nil {
			rep.fail("daylight", "%q: %v", v, err)
			return 0, daylightUnspecified
		}
		switch span.Abs() {
		case 0:
			return 0, daylightNone
		case duration.Hour:
			return span, daylightHour
		}
		return span, daylightOther
	case strings.EqualFold(v, "LDT"), strings.EqualFold(v, "D"):
		return duration.Hour, daylightHour
	case strings.EqualFold(v, "LST"), strings.EqualFold(v, "S"), len(v) == 0:
		return 0, daylightUnspecified
	}
	rep.warn("daylight", "%q: not recognised", v)
	return 0, daylightUnspecified
}

func isOffset(s string) bool {
	return len(s) > 0 && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != ':' && r != '-' && r != '+'
	}) < 0
}

func (d Decoder) applyTimezone(r TimeRecord, out *DecodedTime, rep *reporter) {
	daylight, kind := d.daylight(r, rep)
	tz := strings.TrimSpace(*r.Timezone)
	if isOffset(tz) {
		span, _, err := duration.Parse(tz)
		if err != nil {
			rep.fail("timezone", "%q: %v", tz, err)
			return
		}
		out.Offset = span
		out.DST = daylight
		return
	}
	cat := d.catalog()
	var (
		zone zones.Record
		ok   bool
	)
	switch kind {
	case daylightHour, daylightOther:
		zone, _, ok = cat.ByName(tz, zones.Daylight)
	default:
		zone, _, ok = cat.ByName(tz, zones.Standard)
		if !ok && kind == daylightUnspecified {
			zone, _, ok = cat.ByName(tz, zones.Daylight)
		}
	}
	switch {
	case ok && daylight != 0:
		// Keep the zone's total offset with the specified amount of
		// daylight saving.
		out.Offset = zone.Offset + zone.DST - daylight
		out.DST = daylight
	case ok:
		out.Offset, out.DST, out.ZoneID = zone.Offset, zone.DST, zone.ID
	case daylight != 0:
		out.Offset -= daylight
		out.DST = daylight
		rep.warn("timezone", "%q: unknown zone, using the offset in the time", tz)
	default:
		rep.warn("timezone", "%q: unknown zone, using the offset in the time", tz)
	}
}

func (d Decoder) decodeTime(r TimeRecord, rep *reporter) (DecodedTime, bool) {
	if len(r.Time) == 0 {
		return DecodedTime{Micros: wtime.UnsetMicros}, true
	}
	embedded := wtime.NewLocation(0, 0, wtime.WithTimezone(noOffset))
	var t wtime.Instant
	if err := t.Parse(r.Time, duration.ISO8601, embedded); err != nil {
		rep.fail("time", "%v", err)
		return DecodedTime{}, false
	}
	hasOffset := embedded.TimezoneOffset() != noOffset
	out := DecodedTime{Micros: t.Micros(0)}
	if hasOffset {
		out.Offset = embedded.TimezoneOffset()
	}
	switch {
	case r.TimezoneID != 0:
		zone, _, ok := d.catalog().ByID(r.TimezoneID)
		if ok {
			out.Offset, out.DST, out.ZoneID = zone.Offset, zone.DST, zone.ID
			break
		}
		rep.fail("timezoneId", "%#x: unknown zone", r.TimezoneID)
		if r.Timezone != nil {
			d.applyTimezone(r, &out, rep)
		}
	case r.Timezone != nil:
		d.applyTimezone(r, &out, rep)
	}
	if hasOffset && out.DST != 0 && embedded.TimezoneOffset() == out.Offset {
		// The time was written outside of daylight saving.
		out.DST = 0
		if out.ZoneID != 0 {
			out.ZoneID, _ = zones.StandardOf(out.ZoneID)
		}
	}
	if !hasOffset && (out.Offset != 0 || out.DST != 0) {
		// The time was written in local time.
		utc := int64(out.Micros) - int64(out.Offset+out.DST)
		if utc < 0 {
			rep.fail("time", "%q: before the epoch", r.Time)
			return DecodedTime{}, false
		}
		out.Micros = uint64(utc)
	}
	return out, true
}

// Time decodes r, returning an error for the first malformed field.
func (d Decoder) Time(r TimeRecord) (DecodedTime, error) {
	rep := &reporter{}
	out, _ := d.decodeTime(r, rep)
	if rep.failed() {
		return DecodedTime{}, rep.err
	}
	return out, nil
}

// TimeDiagnostics decodes r, adding an entry to diags for every malformed
// or unrecognised field. It returns false if the time itself could not be
// decoded, the remaining fields are ignored when malformed.
func (d Decoder) TimeDiagnostics(r TimeRecord, diags *Diagnostics) (DecodedTime, bool) {
	if diags == nil {
		diags = &Diagnostics{}
	}
	return d.decodeTime(r, &reporter{diags: diags})
}

// Instant decodes r and returns the instant bound to ctx.
func (d Decoder) Instant(r TimeRecord, ctx *wtime.TimeContext) (wtime.Instant, error) {
	dt, err := d.Time(r)
	if err != nil {
		return wtime.Unset(ctx), err
	}
	return dt.Instant(ctx), nil
}

func (d Decoder) decodeDuration(r DurationRecord, rep *reporter) (duration.Duration, bool) {
	v, _, err := duration.Parse(r.Time)
	if err != nil {
		rep.fail("time", "%q: %v", r.Time, err)
		return 0, false
	}
	return v, true
}

// Duration decodes r.
func (d Decoder) Duration(r DurationRecord) (duration.Duration, error) {
	rep := &reporter{}
	v, _ := d.decodeDuration(r, rep)
	return v, rep.err
}

// DurationDiagnostics decodes r, adding an entry to diags if it is
// malformed.
func (d Decoder) DurationDiagnostics(r DurationRecord, diags *Diagnostics) (duration.Duration, bool) {
	if diags == nil {
		diags = &Diagnostics{}
	}
	return d.decodeDuration(r, &reporter{diags: diags})
}

func (d Decoder) attachName(loc *wtime.Location, name string, daylight bool) bool {
	if id, ok := zones.Downgrade(name, daylight); ok && loc.AttachByID(id) {
		return true
	}
	set := zones.Standard
	if daylight {
		set = zones.Daylight
	}
	return loc.AttachByName(name, set)
}

func (d Decoder) decodeLocation(r LocationRecord, rep *reporter) (*wtime.Location, bool) {
	if r.Latitude < -90 || r.Latitude > 90 {
		rep.fail("latitude", "%v: out of range", r.Latitude)
		return nil, false
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		rep.fail("longitude", "%v: out of range", r.Longitude)
		return nil, false
	}
	loc := wtime.NewLocation(r.Latitude, r.Longitude, wtime.WithCatalog(d.catalog()))
	attached := false
	switch r.Version {
	case Version1:
		if r.TimezoneIndex != 0 {
			if attached = loc.AttachByID(r.TimezoneIndex); !attached {
				rep.fail("timezoneIndex", "%#x: unknown zone", r.TimezoneIndex)
			}
		}
	case Version2:
		if len(r.Name) > 0 {
			if attached = d.attachName(loc, r.Name, r.Daylight); !attached {
				rep.fail("name", "%q: unknown zone", r.Name)
			}
		}
	default:
		rep.fail("version", "%d: unsupported version", r.Version)
		return nil, false
	}
	if attached || len(r.Offset) == 0 {
		return loc, true
	}
	quad := []struct {
		field, value string
		set          func(duration.Duration)
	}{
		{"offset", r.Offset, loc.SetTimezoneOffset},
		{"startDST", r.StartDST, loc.SetStartDST},
		{"endDST", r.EndDST, loc.SetEndDST},
		{"amtDST", r.AmtDST, loc.SetDSTAmount},
	}
	for _, q := range quad {
		if len(q.value) == 0 {
			continue
		}
		v, _, err := duration.Parse(q.value)
		if err != nil {
			rep.fail(q.field, "%q: %v", q.value, err)
			continue
		}
		q.set(v)
	}
	return loc, true
}

// Location decodes r, returning an error for the first malformed field.
func (d Decoder) Location(r LocationRecord) (*wtime.Location, error) {
	rep := &reporter{}
	loc, _ := d.decodeLocation(r, rep)
	if rep.failed() {
		return nil, rep.err
	}
	return loc, nil
}

// LocationDiagnostics decodes r, adding an entry to diags for every
// malformed field. It returns false if no Location could be created.
func (d Decoder) LocationDiagnostics(r LocationRecord, diags *Diagnostics) (*wtime.Location, bool) {
	if diags == nil {
		diags = &Diagnostics{}
	}
	return d.decodeLocation(r, &reporter{diags: diags})
}
