// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package archive reads and writes the legacy little-endian binary
// layouts used to persist durations, instants and locations. Durations
// and instants are prefixed by a magic number that distinguishes the
// microsecond layout from the older layout that stored whole seconds.
// Locations are prefixed by -1 and a version number, with the exception
// of the original layout which has no prefix.
package archive

import (
	"encoding/binary"
	"io"
	"math"

	"cloudeng.io/wtime"
	"cloudeng.io/wtime/duration"
)

const (
	// DurationMagic precedes a Duration stored in microseconds.
	DurationMagic uint64 = 0x7ffeeffccffaaffd
	// InstantMagic precedes an Instant stored in microseconds.
	InstantMagic uint64 = 0x7ffeeddccbbaa009
	// LegacyInstantBase is added to instants stored in seconds, which
	// are relative to 1900-01-01.
	LegacyInstantBase uint64 = 9467107200000000
)

var order = binary.LittleEndian

// decoder reads little-endian values and retains the first error.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) read(vals ...any) {
	for _, v := range vals {
		if d.err != nil {
			return
		}
		d.err = binary.Read(d.r, order, v)
	}
}

func (d *decoder) duration() duration.Duration {
	var v int64
	d.read(&v)
	if uint64(v) == DurationMagic {
		d.read(&v)
		return duration.Duration(v)
	}
	return duration.Seconds(v)
}

func (d *decoder) seconds32() duration.Duration {
	var v int32
	d.read(&v)
	return duration.Seconds(int64(v))
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(vals ...any) {
	for _, v := range vals {
		if e.err != nil {
			return
		}
		e.err = binary.Write(e.w, order, v)
	}
}

func (e *encoder) duration(d duration.Duration) {
	e.write(DurationMagic, int64(d))
}

func (e *encoder) seconds32(d duration.Duration) {
	e.write(int32(d.TotalSeconds()))
}

// ReadDuration reads a Duration stored either in microseconds, preceded
// by DurationMagic, or in whole seconds.
func ReadDuration(r io.Reader) (duration.Duration, error) {
	dec := &decoder{r: r}
	d := dec.duration()
	if dec.err != nil {
		return 0, dec.err
	}
	return d, nil
}

// WriteDuration writes d in microseconds preceded by DurationMagic.
func WriteDuration(w io.Writer, d duration.Duration) error {
	enc := &encoder{w: w}
	enc.duration(d)
	return enc.err
}

// ReadInstant reads an Instant stored either in microseconds since
// 1600-01-01, preceded by InstantMagic, or in whole seconds since
// 1900-01-01. An unset Instant is preserved in both layouts.
func ReadInstant(r io.Reader, ctx *wtime.TimeContext) (wtime.Instant, error) {
	dec := &decoder{r: r}
	var v uint64
	dec.read(&v)
	switch {
	case dec.err != nil:
	case v == InstantMagic:
		dec.read(&v)
	case v != math.MaxUint64:
		v = v*uint64(duration.Second) + LegacyInstantBase
	}
	if dec.err != nil {
		return wtime.Unset(ctx), dec.err
	}
	return wtime.FromMicros(v, ctx), nil
}

// WriteInstant writes t in microseconds preceded by InstantMagic.
func WriteInstant(w io.Writer, t wtime.Instant) error {
	enc := &encoder{w: w}
	enc.write(InstantMagic, t.Micros(0))
	return enc.err
}
