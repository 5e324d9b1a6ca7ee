// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime

import (
	"fmt"
	"math"

	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/regions"
	"cloudeng.io/wtime/solar"
	"cloudeng.io/wtime/zones"
)

// SunEvent records sunrise, sunset and solar noon for a single day.
// Flags indicates which of Rise and Set could not be determined, those
// are left unset.
type SunEvent struct {
	Rise, Set, Noon Instant
	Flags           solar.Status
}

type cacheKey struct {
	lat, lon float64
	day      int64
}

// maxCacheEntries bounds the per-location caches, they are cleared when
// full.
const maxCacheEntries = 64

// Location is a point on the earth's surface along with the timezone and
// daylight saving rules in effect there. The daylight saving window is
// described by start and end offsets from the start of the year, when
// they are equal daylight saving is disabled. A Location is not safe for
// concurrent use, use Clone to obtain a copy for each goroutine.
type Location struct {
	lat, lon float64 // radians
	tz       duration.Duration
	startDST duration.Duration
	endDST   duration.Duration
	amtDST   duration.Duration

	catalog    *zones.Catalog
	zone       zones.Record
	zoneOrigin zones.Origin
	hasZone    bool

	sunCache   map[cacheKey]SunEvent
	solarCache map[cacheKey]duration.Duration
}

type locationOptions struct {
	catalog  *zones.Catalog
	tz       duration.Duration
	dst      [3]duration.Duration
	zone     *zones.Record
	guessSet *zones.Set
}

// LocationOption represents an option to NewLocation.
type LocationOption func(o *locationOptions)

// WithCatalog specifies the zone catalog used to resolve zones, the
// default is zones.Static().
func WithCatalog(c *zones.Catalog) LocationOption {
	return func(o *locationOptions) {
		o.catalog = c
	}
}

// WithTimezone specifies the offset from UTC of standard time.
func WithTimezone(tz duration.Duration) LocationOption {
	return func(o *locationOptions) {
		o.tz = tz
	}
}

// WithDST specifies the daylight saving window and amount.
func WithDST(start, end, amount duration.Duration) LocationOption {
	return func(o *locationOptions) {
		o.dst = [3]duration.Duration{start, end, amount}
	}
}

// WithZone attaches the specified zone, overriding WithTimezone and
// WithDST.
func WithZone(r zones.Record) LocationOption {
	return func(o *locationOptions) {
		o.zone = &r
	}
}

// WithGuessedZone requests that the zone be guessed from the
// coordinates using the specified set.
func WithGuessedZone(set zones.Set) LocationOption {
	return func(o *locationOptions) {
		o.guessSet = &set
	}
}

// NewLocation returns a new Location for the specified latitude and
// longitude in degrees. The timezone defaults to UTC with no daylight
// saving and a daylight saving amount of one hour.
func NewLocation(lat, lon float64, opts ...LocationOption) *Location {
	o := locationOptions{
		dst: [3]duration.Duration{0, 0, duration.Hour},
	}
	for _, fn := range opts {
		fn(&o)
	}
	l := &Location{
		lat:      degToRad(lat),
		lon:      degToRad(lon),
		tz:       o.tz,
		startDST: o.dst[0],
		endDST:   o.dst[1],
		amtDST:   o.dst[2],
		catalog:  o.catalog,
	}
	if l.catalog == nil {
		l.catalog = zones.Static()
	}
	switch {
	case o.zone != nil:
		l.SetZone(*o.zone)
	case o.guessSet != nil:
		l.GuessZone(*o.guessSet)
	}
	return l
}

// Clone returns a copy of l with empty caches.
func (l *Location) Clone() *Location {
	n := *l
	n.sunCache, n.solarCache = nil, nil
	return &n
}

// Equal returns true if l and o describe the same place and timezone
// rules.
func (l *Location) Equal(o *Location) bool {
	if l == o {
		return true
	}
	if l == nil || o == nil {
		return false
	}
	return l.lat == o.lat && l.lon == o.lon && l.tz == o.tz &&
		l.startDST == o.startDST && l.endDST == o.endDST && l.amtDST == o.amtDST
}

func (l *Location) String() string {
	s := fmt.Sprintf("%.6f,%.6f UTC%s", l.Latitude(), l.Longitude(), l.tz.Format(duration.ExcludeSeconds))
	if l.DSTEnabled() {
		s += fmt.Sprintf(" dst %s [%s, %s)", l.amtDST.Format(duration.ExcludeSeconds), l.startDST, l.endDST)
	}
	if l.hasZone {
		s += " " + l.zone.Code
	}
	return s
}

// Catalog returns the zone catalog used by l.
func (l *Location) Catalog() *zones.Catalog {
	return l.catalog
}

// Latitude returns the latitude in degrees.
func (l *Location) Latitude() float64 { return radToDeg(l.lat) }

// Longitude returns the longitude in degrees.
func (l *Location) Longitude() float64 { return radToDeg(l.lon) }

// Radians returns the latitude and longitude in radians.
func (l *Location) Radians() (lat, lon float64) { return l.lat, l.lon }

func (l *Location) TimezoneOffset() duration.Duration { return l.tz }
func (l *Location) StartDST() duration.Duration       { return l.startDST }
func (l *Location) EndDST() duration.Duration         { return l.endDST }
func (l *Location) DSTAmount() duration.Duration      { return l.amtDST }

// DSTEnabled returns true unless the daylight saving window is empty.
func (l *Location) DSTEnabled() bool {
	return l.startDST != l.endDST
}

func (l *Location) invalidate() {
	clear(l.sunCache)
	clear(l.solarCache)
}

func (l *Location) detach() {
	l.hasZone = false
	l.zone = zones.Record{}
	l.invalidate()
}

// SetLatitude sets the latitude, in degrees.
func (l *Location) SetLatitude(lat float64) {
	l.lat = degToRad(lat)
	l.invalidate()
}

// SetLongitude sets the longitude, in degrees.
func (l *Location) SetLongitude(lon float64) {
	l.lon = degToRad(lon)
	l.invalidate()
}

// SetRadians sets the latitude and longitude in radians.
func (l *Location) SetRadians(lat, lon float64) {
	l.lat, l.lon = lat, lon
	l.invalidate()
}

// SetTimezoneOffset sets the offset of standard time and detaches any
// attached zone.
func (l *Location) SetTimezoneOffset(tz duration.Duration) {
	l.tz = tz
	l.detach()
}

// SetStartDST sets the start of the daylight saving window and detaches
// any attached zone.
func (l *Location) SetStartDST(d duration.Duration) {
	l.startDST = d
	l.detach()
}

// SetEndDST sets the end of the daylight saving window and detaches any
// attached zone.
func (l *Location) SetEndDST(d duration.Duration) {
	l.endDST = d
	l.detach()
}

// SetDSTAmount sets the amount of daylight saving and detaches any
// attached zone.
func (l *Location) SetDSTAmount(d duration.Duration) {
	l.amtDST = d
	l.detach()
}

// SetZone copies the offset and daylight saving amount from r and
// attaches it. Zones with daylight saving are considered to be in
// daylight saving for the entire year.
func (l *Location) SetZone(r zones.Record) {
	l.setZone(r, zones.Primary)
	if _, origin, ok := l.catalog.ByID(r.ID); ok {
		l.zoneOrigin = origin
	}
}

func (l *Location) setZone(r zones.Record, origin zones.Origin) {
	l.tz = r.Offset
	l.amtDST = r.DST
	l.startDST = 0
	if r.DST != 0 {
		l.endDST = duration.Day * 366
	} else {
		l.endDST = 0
	}
	l.zone, l.zoneOrigin, l.hasZone = r, origin, true
	l.invalidate()
}

// Zone returns the attached zone, if any.
func (l *Location) Zone() (zones.Record, zones.Origin, bool) {
	return l.zone, l.zoneOrigin, l.hasZone
}

// GuessZone guesses and attaches the zone for the location's
// coordinates.
func (l *Location) GuessZone(set zones.Set) (zones.Record, bool) {
	r, ok := l.catalog.Guess(l.Latitude(), l.Longitude(), set)
	if !ok {
		return zones.Record{}, false
	}
	origin := zones.Primary
	if r.Dynamic() {
		origin = zones.External
	}
	l.setZone(r, origin)
	return r, true
}

// CurrentZone returns the attached zone, or, if there is none, the first
// catalog zone whose standard offset matches the location's. The military
// table is searched when set is zones.Military, otherwise the daylight
// table is searched when daylight saving is enabled and the standard table
// when not. Hidden is true when the zone came from one of the extra
// tables.
func (l *Location) CurrentZone(set zones.Set) (r zones.Record, hidden, ok bool) {
	if l.hasZone {
		return l.zone, l.zoneOrigin.Hidden(), true
	}
	switch {
	case set == zones.Military:
	case l.DSTEnabled():
		set = zones.Daylight
	default:
		set = zones.Standard
	}
	r, origin, ok := l.catalog.Reverse(l.tz, 0, set)
	return r, origin.Hidden(), ok
}

// TimezoneFromName looks up, but does not attach, a zone by name.
func (l *Location) TimezoneFromName(name string, set zones.Set) (zones.Record, zones.Origin, bool) {
	return l.catalog.ByName(name, set)
}

// TimezoneFromID looks up, but does not attach, a zone by id.
func (l *Location) TimezoneFromID(id uint32) (zones.Record, zones.Origin, bool) {
	return l.catalog.ByID(id)
}

// AttachByName looks up and attaches a zone by name.
func (l *Location) AttachByName(name string, set zones.Set) bool {
	r, origin, ok := l.catalog.ByName(name, set)
	if ok {
		l.setZone(r, origin)
	}
	return ok
}

// AttachByID looks up and attaches a zone by id.
func (l *Location) AttachByID(id uint32) bool {
	r, origin, ok := l.catalog.ByID(id)
	if ok {
		l.setZone(r, origin)
	}
	return ok
}

func (l *Location) inside(r regions.Region) bool {
	return l.catalog.Borders().PointInRegion(l.Latitude(), l.Longitude(), r)
}

func (l *Location) InsideCanada() bool            { return l.inside(regions.Canada) }
func (l *Location) InsideNewZealand() bool        { return l.inside(regions.NewZealand) }
func (l *Location) InsideTasmania() bool          { return l.inside(regions.Tasmania) }
func (l *Location) InsideAustraliaMainland() bool { return l.inside(regions.AustraliaMainland) }

// insideDST reports whether intoYear, the time since the start of the
// year in standard time, falls within the half-open daylight saving
// window. The window wraps around the end of the year when start is
// after end.
func (l *Location) insideDST(intoYear duration.Duration) bool {
	switch {
	case l.startDST < l.endDST:
		return l.startDST <= intoYear && intoYear < l.endDST
	case l.startDST > l.endDST:
		return intoYear >= l.startDST || intoYear < l.endDST
	}
	return false
}

// dstAt returns the daylight saving in effect at the raw, UTC, time.
func (l *Location) dstAt(raw int64) duration.Duration {
	if !l.DSTEnabled() {
		return 0
	}
	if l.insideDST(intoYear(raw + int64(l.tz))) {
		return l.amtDST
	}
	return 0
}

// EffectiveOffset returns the offset from UTC, including any daylight
// saving, in effect at t.
func (l *Location) EffectiveOffset(t Instant) duration.Duration {
	if !t.IsSet() {
		return l.tz
	}
	return l.tz + l.dstAt(int64(t.t))
}

// InsideDST returns true if daylight saving is in effect at t.
func (l *Location) InsideDST(t Instant) bool {
	return t.IsSet() && l.dstAt(int64(t.t)) != 0
}

// intoYear returns the time since the start of the year containing v,
// where v is microseconds since the epoch.
func intoYear(v int64) duration.Duration {
	y, _, _ := CalendarDay(dayNumber(v))
	return duration.Duration(v - (JulianDay(y, 1, 1)-epochJDN)*microsPerDay)
}

// dayNumber returns the Julian Day Number of the day containing v.
func dayNumber(v int64) int64 {
	d := v / microsPerDay
	if v%microsPerDay < 0 {
		d--
	}
	return d + epochJDN
}

func (l *Location) solarInput(jdn int64) solar.Input {
	y, m, d := CalendarDay(jdn)
	return solar.Input{
		Latitude:  l.Latitude(),
		Longitude: -l.Longitude(),
		Year:      y,
		Month:     m,
		Day:       d,
	}
}

// SolarTimezone returns the offset from UTC of mean solar time on the
// local standard time date of t.
func (l *Location) SolarTimezone(t Instant) duration.Duration {
	if !t.IsSet() {
		return 0
	}
	return l.solarOffset(int64(t.t))
}

func (l *Location) solarOffset(raw int64) duration.Duration {
	key := cacheKey{l.lat, l.lon, dayNumber(raw + int64(l.tz))}
	if v, ok := l.solarCache[key]; ok {
		return v
	}
	out, _, _ := solar.Calculate(l.solarInput(key.day))
	noon := duration.Seconds(int64(math.Floor(out.NoonUTC * 60)))
	v := 12*duration.Hour - noon
	if l.solarCache == nil || len(l.solarCache) >= maxCacheEntries {
		l.solarCache = map[cacheKey]duration.Duration{}
	}
	l.solarCache[key] = v
	return v
}

// SunEvents returns sunrise, sunset and solar noon for the apparent
// solar date of t. The events are set to the same TimeContext as t.
func (l *Location) SunEvents(t Instant) SunEvent {
	if !t.IsSet() {
		return SunEvent{Rise: t, Set: t, Noon: t, Flags: solar.NoSunrise | solar.NoSunset}
	}
	raw := int64(t.t)
	key := cacheKey{l.lat, l.lon, dayNumber(raw + int64(l.solarOffset(raw)))}
	if v, ok := l.sunCache[key]; ok {
		v.Rise.ctx, v.Set.ctx, v.Noon.ctx = t.ctx, t.ctx, t.ctx
		return v
	}
	out, status, _ := solar.Calculate(l.solarInput(key.day))
	midnight := (key.day - epochJDN) * microsPerDay
	at := func(minutes float64) Instant {
		secs := int64(math.Floor(minutes * 60))
		return FromMicros(uint64(midnight+secs*int64(duration.Second)), t.ctx)
	}
	ev := SunEvent{
		Rise:  Unset(t.ctx),
		Set:   Unset(t.ctx),
		Noon:  at(out.NoonUTC),
		Flags: status,
	}
	if status&solar.NoSunrise == 0 {
		ev.Rise = at(out.RiseUTC)
	}
	if status&solar.NoSunset == 0 {
		ev.Set = at(out.SetUTC)
	}
	if l.sunCache == nil || len(l.sunCache) >= maxCacheEntries {
		l.sunCache = map[cacheKey]SunEvent{}
	}
	l.sunCache[key] = ev
	return ev
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
