// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"cloudeng.io/errors"
)

// Severity is the severity of a diagnostic entry.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Entry is a single diagnostic produced while decoding a record.
type Entry struct {
	Severity Severity
	Field    string
	Message  string
}

func (e Entry) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Severity, e.Field, e.Message)
}

// Diagnostics collects the entries produced by the diagnostics decoders.
// The zero value is ready for use.
type Diagnostics struct {
	Entries []Entry
}

// Add appends an entry.
func (d *Diagnostics) Add(severity Severity, field, format string, args ...any) {
	d.Entries = append(d.Entries, Entry{
		Severity: severity,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Len returns the number of entries with at least the given severity.
func (d *Diagnostics) Len(severity Severity) int {
	n := 0
	for _, e := range d.Entries {
		if e.Severity >= severity {
			n++
		}
	}
	return n
}

// Err returns an error containing all of the Error entries, or nil if
// there are none.
func (d *Diagnostics) Err() error {
	errs := &errors.M{}
	for _, e := range d.Entries {
		if e.Severity == Error {
			errs.Append(fmt.Errorf("%w: %v", ErrMalformed, e))
		}
	}
	return errs.Err()
}

// reporter is shared by the strict and diagnostics decoders. The strict
// form retains only the first error, the diagnostics form records every
// entry.
type reporter struct {
	diags *Diagnostics
	err   error
}

func (r *reporter) fail(field, format string, args ...any) {
	if r.diags != nil {
		r.diags.Add(Error, field, format, args...)
		return
	}
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s: %s", ErrMalformed, field, fmt.Sprintf(format, args...))
	}
}

func (r *reporter) warn(field, format string, args ...any) {
	if r.diags != nil {
		r.diags.Add(Warning, field, format, args...)
	}
}

func (r *reporter) failed() bool {
	return r.err != nil
}
