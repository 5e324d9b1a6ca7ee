// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package archive

import (
	"fmt"
	"io"
	"math"

	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
)

// Version identifies a location layout.
type Version int16

// The location layouts. Legacy has no prefix and consists of the
// latitude, longitude and timezone offset. All others are prefixed by -1
// and the version.
//
//	Legacy: lat, lon float64; tz Duration
//	V1:     lat, lon float64; tz int32 seconds; spheroid int16
//	V2:     V1 followed by start, end, amount int32 seconds
//	V3:     lat, lon float64; tz Duration; spheroid int16; start, end, amount Duration
//	V4:     V3 without the spheroid
//	V5:     V4 followed by a uint32 zone id, zero for none
const (
	Legacy Version = iota
	V1
	V2
	V3
	V4
	V5
	Latest = V5
)

func (v Version) String() string {
	if v == Legacy {
		return "legacy"
	}
	return fmt.Sprintf("v%d", int(v))
}

const prefix int16 = -1

type locationFields struct {
	lat, lon           float64
	tz                 duration.Duration
	start, end, amount duration.Duration
	dst                bool
	zone               uint32
}

func decodeLegacy(dec *decoder, first [2]int16, f *locationFields) {
	var rest [2]int16
	dec.read(&rest)
	bits := uint64(uint16(first[0])) | uint64(uint16(first[1]))<<16 |
		uint64(uint16(rest[0]))<<32 | uint64(uint16(rest[1]))<<48
	f.lat = math.Float64frombits(bits)
	dec.read(&f.lon)
	f.tz = dec.duration()
}

func decodeV1(dec *decoder, f *locationFields) {
	var spheroid int16
	dec.read(&f.lat, &f.lon)
	f.tz = dec.seconds32()
	dec.read(&spheroid)
}

func decodeV2(dec *decoder, f *locationFields) {
	decodeV1(dec, f)
	f.start = dec.seconds32()
	f.end = dec.seconds32()
	f.amount = dec.seconds32()
	f.dst = true
}

func decodeV3(dec *decoder, f *locationFields) {
	var spheroid int16
	dec.read(&f.lat, &f.lon)
	f.tz = dec.duration()
	dec.read(&spheroid)
	f.start = dec.duration()
	f.end = dec.duration()
	f.amount = dec.duration()
	f.dst = true
}

func decodeV4(dec *decoder, f *locationFields) {
	dec.read(&f.lat, &f.lon)
	f.tz = dec.duration()
	f.start = dec.duration()
	f.end = dec.duration()
	f.amount = dec.duration()
	f.dst = true
}

func decodeV5(dec *decoder, f *locationFields) {
	decodeV4(dec, f)
	dec.read(&f.zone)
}

var decoders = map[Version]func(*decoder, *locationFields){
	V1: decodeV1,
	V2: decodeV2,
	V3: decodeV3,
	V4: decodeV4,
	V5: decodeV5,
}

// ReadLocation reads a location in any of the supported layouts. The
// zone recorded by V5 layouts is attached if it can be resolved by the
// Location's catalog. It panics if the version is not recognised.
func ReadLocation(r io.Reader, opts ...wtime.LocationOption) (*wtime.Location, Version, error) {
	dec := &decoder{r: r}
	var head [2]int16
	dec.read(&head)
	if dec.err != nil {
		return nil, Legacy, dec.err
	}
	var f locationFields
	version := Legacy
	if head[0] == prefix {
		version = Version(head[1])
		fn, ok := decoders[version]
		if !ok {
			panic(fmt.Sprintf("archive: unrecognised location version: %d", head[1]))
		}
		fn(dec, &f)
	} else {
		decodeLegacy(dec, head, &f)
	}
	if dec.err != nil {
		return nil, version, dec.err
	}
	loc := wtime.NewLocation(0, 0, opts...)
	loc.SetRadians(f.lat, f.lon)
	loc.SetTimezoneOffset(f.tz)
	if f.dst {
		loc.SetStartDST(f.start)
		loc.SetEndDST(f.end)
		loc.SetDSTAmount(f.amount)
	}
	if f.zone != 0 {
		loc.AttachByID(f.zone)
	}
	return loc, version, nil
}

// WriteLocation writes l using V5 if a zone is attached and V4 otherwise.
func WriteLocation(w io.Writer, l *wtime.Location) error {
	if _, _, ok := l.Zone(); ok {
		return WriteLocationVersion(w, l, V5)
	}
	return WriteLocationVersion(w, l, V4)
}

// WriteLocationVersion writes l using the specified layout, fields that
// the layout cannot represent are dropped. It panics if the version is
// not recognised.
func WriteLocationVersion(w io.Writer, l *wtime.Location, version Version) error {
	enc := &encoder{w: w}
	lat, lon := l.Radians()
	const spheroid int16 = 0
	switch version {
	case Legacy:
		enc.write(lat, lon)
		enc.duration(l.TimezoneOffset())
	case V1, V2:
		enc.write(prefix, int16(version), lat, lon)
		enc.seconds32(l.TimezoneOffset())
		enc.write(spheroid)
		if version == V2 {
			enc.seconds32(l.StartDST())
			enc.seconds32(l.EndDST())
			enc.seconds32(l.DSTAmount())
		}
	case V3:
		enc.write(prefix, int16(version), lat, lon)
		enc.duration(l.TimezoneOffset())
		enc.write(spheroid)
		enc.duration(l.StartDST())
		enc.duration(l.EndDST())
		enc.duration(l.DSTAmount())
	case V4, V5:
		enc.write(prefix, int16(version), lat, lon)
		enc.duration(l.TimezoneOffset())
		enc.duration(l.StartDST())
		enc.duration(l.EndDST())
		enc.duration(l.DSTAmount())
		if version == V5 {
			var id uint32
			if zone, _, ok := l.Zone(); ok {
				id = zone.ID
			}
			enc.write(id)
		}
	default:
		panic(fmt.Sprintf("archive: unrecognised location version: %d", version))
	}
	return enc.err
}
