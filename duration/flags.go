// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package duration

// Flags control formatting, parsing and timezone adjustment for both
// durations and instants. The numeric values are stable and may be
// stored or exchanged.
type Flags uint32

// Layout codes occupy the low byte and select the order of the date
// fields for instants.
const (
	DDMMYYYY    Flags = 0x01 // DD/MM/YYYY, the default for parsing
	YYYYMMDD    Flags = 0x02 // YYYY/MM/DD
	MMDDYYYY    Flags = 0x03 // MM/DD/YYYY
	DDhMMhYYYY  Flags = 0x04 // DD-MM-YYYY
	YYYYhMMhDD  Flags = 0x05 // YYYY-MM-DD
	MMhDDhYYYY  Flags = 0x06 // MM-DD-YYYY
	Compact     Flags = 0x07 // YYYYMMDD
	CompactHour Flags = 0x08 // YYYYMMDDHH
	CompactT    Flags = 0x10 // YYYYMMDDTHH:MM:SS
	YYYYhMMhDDT Flags = 0x20 // YYYY-MM-DDTHH:MM:SS

	LayoutMask Flags = 0xff
)

const (
	DayOfWeek       Flags = 0x00000100
	StringTimezone  Flags = 0x00000200
	Abbrev          Flags = 0x00001000
	IncludeUsecs    Flags = 0x00080000
	FormatTime      Flags = 0x00100000
	FormatDay       Flags = 0x00200000
	FormatMonth     Flags = 0x00400000
	FormatYear      Flags = 0x00800000
	AsLocal         Flags = 0x01000000
	AsSolar         Flags = 0x02000000
	WithDST         Flags = 0x04000000
	ExcludeSeconds  Flags = 0x20000000
	ConditionalTime Flags = 0x40000000

	FormatDate = FormatDay | FormatMonth

	// ISO8601 is the layout used for interchange.
	ISO8601 = StringTimezone | YYYYhMMhDDT | FormatDate | FormatTime | AsLocal | WithDST

	// WireFlags is the legacy layout used to exchange durations.
	WireFlags = FormatYear | FormatDay | IncludeUsecs
)

// Layout returns the low byte layout code.
func (f Flags) Layout() Flags {
	return f & LayoutMask
}

// Has returns true if all of the bits in o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}
