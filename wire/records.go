// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// TimeRecord is the wire form of an Instant. The time is always an
// ISO8601 string, the optional fields describe the timezone in effect.
//
//	message WTime {
//	  string time = 1;
//	  google.protobuf.StringValue timezone = 2;
//	  google.protobuf.StringValue daylight = 3;
//	  uint32 timezoneId = 4;
//	}
type TimeRecord struct {
	Time       string
	Timezone   *string
	Daylight   *string
	TimezoneID uint32
}

// DurationRecord is the wire form of a Duration.
//
//	message WTimeSpan {
//	  string time = 1;
//	}
type DurationRecord struct {
	Time string
}

// LocationRecord is the wire form of a Location. Version 1 records refer
// to a catalog zone by TimezoneIndex, version 2 records by Name and
// Daylight. The quad of Offset, StartDST, EndDST and AmtDST is used when
// no catalog zone applies.
//
//	message WorldLocation {
//	  uint32 version = 1;
//	  uint32 timezoneIndex = 2;
//	  string name = 3;
//	  bool daylight = 4;
//	  string offset = 5;
//	  string startDST = 6;
//	  string endDST = 7;
//	  string amtDST = 8;
//	  double latitude = 9;
//	  double longitude = 10;
//	}
type LocationRecord struct {
	Version       uint32
	TimezoneIndex uint32
	Name          string
	Daylight      bool
	Offset        string
	StartDST      string
	EndDST        string
	AmtDST        string
	Latitude      float64
	Longitude     float64
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if len(s) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendStringValue appends a google.protobuf.StringValue, which is
// present, even if empty, whenever s is not nil.
func appendStringValue(b []byte, num protowire.Number, s *string) []byte {
	if s == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, appendString(nil, 1, *s))
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// fieldFunc is called for each field in a message with the remainder of
// the message following the tag and returns the number of bytes consumed
// or a negative protowire error code.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func unmarshal(msg string, b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%s: %w", msg, protowire.ParseError(n))
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("%s: field %d: %w", msg, num, err)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%s: field %d: %w", msg, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func wireTypeError(typ, want protowire.Type) error {
	return fmt.Errorf("%w: wire type %d, expected %d", ErrMalformed, typ, want)
}

func consumeString(typ protowire.Type, b []byte, s *string) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(typ, protowire.BytesType)
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*s = v
	}
	return n, nil
}

func consumeStringValue(typ protowire.Type, b []byte, s **string) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(typ, protowire.BytesType)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	var value string
	err := unmarshal("StringValue", v, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &value)
		}
		return 0, nil
	})
	if err != nil {
		return 0, err
	}
	*s = &value
	return n, nil
}

func consumeVarint(typ protowire.Type, b []byte, v *uint64) (int, error) {
	if typ != protowire.VarintType {
		return 0, wireTypeError(typ, protowire.VarintType)
	}
	u, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*v = u
	}
	return n, nil
}

func consumeDouble(typ protowire.Type, b []byte, v *float64) (int, error) {
	if typ != protowire.Fixed64Type {
		return 0, wireTypeError(typ, protowire.Fixed64Type)
	}
	u, n := protowire.ConsumeFixed64(b)
	if n >= 0 {
		*v = math.Float64frombits(u)
	}
	return n, nil
}

// Marshal returns the protobuf encoding of r.
func (r TimeRecord) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.Time)
	b = appendStringValue(b, 2, r.Timezone)
	b = appendStringValue(b, 3, r.Daylight)
	b = appendVarint(b, 4, uint64(r.TimezoneID))
	return b
}

// Unmarshal decodes r from its protobuf encoding, unknown fields are
// ignored.
func (r *TimeRecord) Unmarshal(b []byte) error {
	var tr TimeRecord
	err := unmarshal("WTime", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &tr.Time)
		case 2:
			return consumeStringValue(typ, b, &tr.Timezone)
		case 3:
			return consumeStringValue(typ, b, &tr.Daylight)
		case 4:
			var v uint64
			n, err := consumeVarint(typ, b, &v)
			tr.TimezoneID = uint32(v)
			return n, err
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	*r = tr
	return nil
}

// Marshal returns the protobuf encoding of r.
func (r DurationRecord) Marshal() []byte {
	return appendString(nil, 1, r.Time)
}

// Unmarshal decodes r from its protobuf encoding.
func (r *DurationRecord) Unmarshal(b []byte) error {
	var dr DurationRecord
	err := unmarshal("WTimeSpan", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &dr.Time)
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	*r = dr
	return nil
}

// Marshal returns the protobuf encoding of r.
func (r LocationRecord) Marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(r.Version))
	b = appendVarint(b, 2, uint64(r.TimezoneIndex))
	b = appendString(b, 3, r.Name)
	if r.Daylight {
		b = appendVarint(b, 4, protowire.EncodeBool(true))
	}
	b = appendString(b, 5, r.Offset)
	b = appendString(b, 6, r.StartDST)
	b = appendString(b, 7, r.EndDST)
	b = appendString(b, 8, r.AmtDST)
	b = appendDouble(b, 9, r.Latitude)
	b = appendDouble(b, 10, r.Longitude)
	return b
}

// Unmarshal decodes r from its protobuf encoding, unknown fields are
// ignored.
func (r *LocationRecord) Unmarshal(b []byte) error {
	var lr LocationRecord
	err := unmarshal("WorldLocation", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var v uint64
		switch num {
		case 1:
			n, err := consumeVarint(typ, b, &v)
			lr.Version = uint32(v)
			return n, err
		case 2:
			n, err := consumeVarint(typ, b, &v)
			lr.TimezoneIndex = uint32(v)
			return n, err
		case 3:
			return consumeString(typ, b, &lr.Name)
		case 4:
			n, err := consumeVarint(typ, b, &v)
			lr.Daylight = protowire.DecodeBool(v)
			return n, err
		case 5:
			return consumeString(typ, b, &lr.Offset)
		case 6:
			return consumeString(typ, b, &lr.StartDST)
		case 7:
			return consumeString(typ, b, &lr.EndDST)
		case 8:
			return consumeString(typ, b, &lr.AmtDST)
		case 9:
			return consumeDouble(typ, b, &lr.Latitude)
		case 10:
			return consumeDouble(typ, b, &lr.Longitude)
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	*r = lr
	return nil
}
