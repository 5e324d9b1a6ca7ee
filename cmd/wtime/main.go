// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command wtime parses and formats instants and durations, computes sun
// events, looks up timezones and inspects wire and archive encoded
// records.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	parseCmd := subcmd.NewCommand("parse",
		subcmd.MustRegisterFlagStruct(&parseFlags{}, nil, nil),
		parse, subcmd.AtLeastNArguments(1))
	parseCmd.Document("parse dates and times and display them as utc, local and solar time", "<date-time>...")

	durationCmd := subcmd.NewCommand("duration",
		subcmd.MustRegisterFlagStruct(&durationFlags{}, nil, nil),
		formatDuration, subcmd.AtLeastNArguments(1))
	durationCmd.Document("parse durations and display them in iso8601 and legacy formats", "<duration>...")

	sunCmd := subcmd.NewCommand("sun",
		subcmd.MustRegisterFlagStruct(&sunFlags{}, nil, nil),
		sun, subcmd.OptionalSingleArgument())
	sunCmd.Document("display sunrise, solar noon and sunset for one or more consecutive days", "[<date>]")

	zoneCmd := subcmd.NewCommand("zone",
		subcmd.MustRegisterFlagStruct(&zoneFlags{}, nil, nil),
		zone, subcmd.OptionalSingleArgument())
	zoneCmd.Document("look up a timezone by name, or guess the timezone for the configured location", "[<name>]")

	wireCmd := subcmd.NewCommand("wire",
		subcmd.MustRegisterFlagStruct(&wireFlags{}, nil, nil),
		inspectWire, subcmd.ExactlyNumArguments(1))
	wireCmd.Document("decode a protobuf encoded time, duration or location record and report any diagnostics", "<file>")

	archiveCmd := subcmd.NewCommand("archive",
		subcmd.MustRegisterFlagStruct(&archiveFlags{}, nil, nil),
		inspectArchive, subcmd.ExactlyNumArguments(1))
	archiveCmd.Document("decode a binary archived instant, duration or location", "<file>")

	encodeCmd := subcmd.NewCommand("encode",
		subcmd.MustRegisterFlagStruct(&encodeFlags{}, nil, nil),
		encode, subcmd.OptionalSingleArgument())
	encodeCmd.Document("encode a time, duration or the configured location as hex, using either the wire or archive formats", "[<value>]")

	cmdSet = subcmd.NewCommandSet(parseCmd, durationCmd, sunCmd, zoneCmd, wireCmd, archiveCmd, encodeCmd)
	cmdSet.Document(`wtime provides access to timezone, daylight saving and solar time aware
date and time handling.

The location used by the parse, sun and zone commands is specified by the
--latitude, --longitude, --timezone and --daylight flags, or by the
location section of the yaml file named by --config. An IANA timezone
database, optionally persisted to a local file, is used to resolve
timezone names and coordinates that are not in the built in tables.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
