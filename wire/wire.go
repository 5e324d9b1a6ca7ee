// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package wire provides the structured wire format for instants,
// durations and locations. Records are encoded using the protobuf wire
// format so that they interoperate with existing protobuf schemas without
// requiring generated code.
//
// Each record type has a strict decoder that returns an error for the
// first malformed field and a diagnostics decoder that records an entry
// for every malformed field and returns as much of the record as could be
// decoded.
package wire

import (
	"cloudeng.io/errors"
	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
)

// ErrMalformed is returned, wrapped, for records that cannot be decoded.
var ErrMalformed = errors.New("malformed record")

// Location record versions.
const (
	Version1 uint32 = 1 // zones referenced by catalog id
	Version2 uint32 = 2 // zones referenced by IANA name and daylight flag
)

// fullYear is the daylight saving window used for zones that are always
// in daylight saving.
const fullYear = 366 * duration.Day

// EncodeTime returns the TimeRecord for t. The timezone is UTC when the
// location has no offset and no daylight saving, otherwise the code of the
// current zone or, if there is none, the offset with the daylight saving
// amount. The id of an attached zone is always included. An unset t is
// encoded with an empty time.
func EncodeTime(t wtime.Instant) TimeRecord {
	var r TimeRecord
	if t.IsSet() {
		r.Time = t.Format(duration.ISO8601)
	}
	loc := t.Location()
	if loc == nil {
		return r
	}
	var tz string
	zone, _, found := loc.CurrentZone(zones.Standard)
	switch {
	case !loc.DSTEnabled() && loc.TimezoneOffset() == 0:
		tz = "UTC"
	case found:
		tz = zone.Code
	default:
		tz = loc.TimezoneOffset().Format(duration.ExcludeSeconds)
		if loc.DSTEnabled() && loc.DSTAmount() > 0 {
			daylight := loc.DSTAmount().Format(duration.ExcludeSeconds)
			r.Daylight = &daylight
		}
	}
	r.Timezone = &tz
	if zone, _, ok := loc.Zone(); ok {
		r.TimezoneID = zone.ID
	}
	return r
}

// EncodeDuration returns the DurationRecord for d.
func EncodeDuration(d duration.Duration) DurationRecord {
	return DurationRecord{
		Time: d.Format(duration.FormatYear | duration.FormatDay | duration.IncludeUsecs),
	}
}

// EncodeLocation returns the LocationRecord for l using the specified
// version. An attached zone is referenced by id in Version1 records and
// by IANA name in Version2 records, falling back to the explicit offset
// and daylight saving quad when the zone cannot be referenced.
func EncodeLocation(l *wtime.Location, version uint32) LocationRecord {
	r := LocationRecord{
		Version:   version,
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
	if zone, _, ok := l.Zone(); ok {
		switch version {
		case Version1:
			if !zone.Dynamic() {
				r.TimezoneIndex = zone.ID
				return r
			}
		case Version2:
			if name, daylight, ok := zones.Upgrade(zone.ID); ok {
				r.Name, r.Daylight = name, daylight
				return r
			}
			if zone.Dynamic() {
				r.Name, r.Daylight = zone.Name, zone.DST != 0
				return r
			}
		}
	}
	r.Offset = l.TimezoneOffset().String()
	r.StartDST = l.StartDST().String()
	r.EndDST = l.EndDST().String()
	r.AmtDST = l.DSTAmount().String()
	return r
}
