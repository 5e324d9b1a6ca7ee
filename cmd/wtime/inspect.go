// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/wtime"
	"cloudeng.io/wtime/archive"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/wire"
)

type wireFlags struct {
	CommonFlags
	Kind string `subcmd:"kind,time,'the kind of record: time, duration or location'"`
	Hex  bool   `subcmd:"hex,false,the file contains hex encoded data"`
}

type archiveFlags struct {
	CommonFlags
	Kind string `subcmd:"kind,location,'the kind of record: instant, duration or location'"`
	Hex  bool   `subcmd:"hex,false,the file contains hex encoded data"`
}

type encodeFlags struct {
	CommonFlags
	Kind    string `subcmd:"kind,time,'the kind of record: time, duration or location'"`
	Format  string `subcmd:"format,wire,'the encoding to use: wire or archive'"`
	Version int    `subcmd:"version,-1,'the wire or archive location version, the latest is used if not specified'"`
}

func readInput(name string, isHex bool) ([]byte, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil || !isHex {
		return data, err
	}
	return hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
}

type entryOutput struct {
	Severity string `yaml:"severity"`
	Field    string `yaml:"field"`
	Message  string `yaml:"message"`
}

func diagnosticsOutput(diags *wire.Diagnostics) []entryOutput {
	out := make([]entryOutput, 0, len(diags.Entries))
	for _, e := range diags.Entries {
		out = append(out, entryOutput{
			Severity: e.Severity.String(),
			Field:    e.Field,
			Message:  e.Message,
		})
	}
	return out
}

type decodedTimeOutput struct {
	Time   string `yaml:"time"`
	UTC    string `yaml:"utc"`
	Offset string `yaml:"offset"`
	DST    string `yaml:"dst,omitempty"`
	Zone   string `yaml:"zone,omitempty"`
}

func inspectWire(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*wireFlags)
	data, err := readInput(args[0], fv.Hex)
	if err != nil {
		return err
	}
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.inspectWire(ctx, fv.Kind, data)
}

func (e *env) inspectWire(_ context.Context, kind string, data []byte) error {
	if err := flags.OneOf(kind).Validate("time", "duration", "location"); err != nil {
		return err
	}
	dec := wire.Decoder{Catalog: e.catalog}
	diags := &wire.Diagnostics{}
	var decoded any
	switch kind {
	case "time":
		var r wire.TimeRecord
		if err := r.Unmarshal(data); err != nil {
			return err
		}
		dt, _ := dec.TimeDiagnostics(r, diags)
		loc := dt.Location(e.cfg.Location.Latitude, e.cfg.Location.Longitude, wtime.WithCatalog(e.catalog))
		t := dt.Instant(wtime.NewTimeContext(loc))
		out := decodedTimeOutput{
			Time:   t.String(),
			UTC:    t.Format(utcLayout) + "Z",
			Offset: dt.Offset.Format(duration.ExcludeSeconds),
		}
		if dt.DST != 0 {
			out.DST = dt.DST.Format(duration.ExcludeSeconds)
		}
		if r, _, ok := loc.Zone(); ok {
			out.Zone = r.Code
		}
		decoded = out
	case "duration":
		var r wire.DurationRecord
		if err := r.Unmarshal(data); err != nil {
			return err
		}
		d, _ := dec.DurationDiagnostics(r, diags)
		decoded = d.String()
	case "location":
		var r wire.LocationRecord
		if err := r.Unmarshal(data); err != nil {
			return err
		}
		loc, ok := dec.LocationDiagnostics(r, diags)
		if ok {
			decoded = describeLocation(loc)
		}
	}
	return writeYAML(e.out, struct {
		Decoded     any           `yaml:"decoded,omitempty"`
		Diagnostics []entryOutput `yaml:"diagnostics,omitempty"`
	}{decoded, diagnosticsOutput(diags)})
}

func inspectArchive(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*archiveFlags)
	data, err := readInput(args[0], fv.Hex)
	if err != nil {
		return err
	}
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.inspectArchive(ctx, fv.Kind, data)
}

func (e *env) inspectArchive(_ context.Context, kind string, data []byte) error {
	if err := flags.OneOf(kind).Validate("instant", "duration", "location"); err != nil {
		return err
	}
	rd := bytes.NewReader(data)
	var out any
	switch kind {
	case "instant":
		t, err := archive.ReadInstant(rd, wtime.NewTimeContext(wtime.NewLocation(0, 0)))
		if err != nil {
			return err
		}
		out = t.String()
	case "duration":
		d, err := archive.ReadDuration(rd)
		if err != nil {
			return err
		}
		out = d.String()
	case "location":
		if err := archiveVersion(data); err != nil {
			return err
		}
		loc, version, err := archive.ReadLocation(rd, wtime.WithCatalog(e.catalog))
		if err != nil {
			return err
		}
		out = struct {
			Version  string         `yaml:"version"`
			Location locationOutput `yaml:"location"`
		}{version.String(), describeLocation(loc)}
	}
	if rd.Len() > 0 {
		e.logger.Warn("trailing data", "bytes", rd.Len())
	}
	return writeYAML(e.out, out)
}

// archiveVersion rejects prefixed locations with an unsupported version
// since ReadLocation panics on them.
func archiveVersion(data []byte) error {
	if len(data) < 4 || data[0] != 0xff || data[1] != 0xff {
		return nil
	}
	v := archive.Version(int16(uint16(data[2]) | uint16(data[3])<<8))
	if v < archive.V1 || v > archive.Latest {
		return fmt.Errorf("unsupported archive location version: %d", int(v))
	}
	return nil
}

func encode(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*encodeFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.encode(ctx, fv, args)
}

func (e *env) encode(_ context.Context, fv *encodeFlags, args []string) error {
	if err := flags.OneOf(fv.Kind).Validate("time", "duration", "location"); err != nil {
		return err
	}
	if err := flags.OneOf(fv.Format).Validate("wire", "archive"); err != nil {
		return err
	}
	if fv.Kind != "location" && len(args) != 1 {
		return fmt.Errorf("a %v must be specified", fv.Kind)
	}
	loc, err := e.location()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch fv.Kind {
	case "time":
		t, err := wtime.Parse(args[0], dateTime|duration.AsLocal|duration.WithDST, wtime.NewTimeContext(loc))
		if err != nil {
			return err
		}
		if fv.Format == "wire" {
			buf.Write(wire.EncodeTime(t).Marshal())
		} else {
			err = archive.WriteInstant(&buf, t)
		}
		if err != nil {
			return err
		}
	case "duration":
		d, _, err := duration.Parse(args[0])
		if err != nil {
			return err
		}
		if fv.Format == "wire" {
			buf.Write(wire.EncodeDuration(d).Marshal())
		} else if err := archive.WriteDuration(&buf, d); err != nil {
			return err
		}
	case "location":
		if err := e.encodeLocation(&buf, loc, fv); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(e.out, hex.EncodeToString(buf.Bytes()))
	return err
}

func (e *env) encodeLocation(buf *bytes.Buffer, loc *wtime.Location, fv *encodeFlags) error {
	if fv.Format == "wire" {
		version := wire.Version2
		switch fv.Version {
		case -1:
		case int(wire.Version1), int(wire.Version2):
			version = uint32(fv.Version)
		default:
			return fmt.Errorf("unsupported wire location version: %d", fv.Version)
		}
		buf.Write(wire.EncodeLocation(loc, version).Marshal())
		return nil
	}
	if fv.Version == -1 {
		return archive.WriteLocation(buf, loc)
	}
	if fv.Version < int(archive.Legacy) || fv.Version > int(archive.Latest) {
		return fmt.Errorf("unsupported archive location version: %d", fv.Version)
	}
	return archive.WriteLocationVersion(buf, loc, archive.Version(fv.Version))
}
