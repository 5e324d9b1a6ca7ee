// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/wtime"
	"cloudeng.io/wtime/zonedb"
	"cloudeng.io/wtime/zones"
)

// LocationConfig specifies the default location.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude" cmd:"latitude in degrees"`
	Longitude float64 `yaml:"longitude" cmd:"longitude in degrees"`
	Timezone  string  `yaml:"timezone" cmd:"timezone code, name or IANA name, guessed from the coordinates if not specified"`
	Daylight  bool    `yaml:"daylight" cmd:"prefer the daylight saving variant of the timezone"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Location LocationConfig        `yaml:"location" cmd:"the default location"`
	ZoneDB   string                `yaml:"zonedb" cmd:"bbolt file used to persist dynamically allocated timezones"`
	NoIANA   bool                  `yaml:"no_iana" cmd:"restrict timezone lookups to the built in tables"`
	Logging  cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

// CommonFlags are shared by all commands. Values specified on the command
// line override those in the config file.
type CommonFlags struct {
	Config    string  `subcmd:"config,,yaml configuration file"`
	Latitude  float64 `subcmd:"latitude,0,latitude in degrees"`
	Longitude float64 `subcmd:"longitude,0,longitude in degrees"`
	Timezone  string  `subcmd:"timezone,,'timezone code, name or IANA name, guessed from the coordinates if not specified'"`
	Daylight  bool    `subcmd:"daylight,false,prefer the daylight saving variant of the timezone"`
	ZoneDB    string  `subcmd:"zonedb,,bbolt file used to persist dynamically allocated timezones"`
	NoIANA    bool    `subcmd:"no-iana,false,restrict timezone lookups to the built in tables"`
	cmdutil.LoggingFlags
}

func (cf CommonFlags) config(ctx context.Context) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return cfg, err
		}
	}
	if cf.Latitude != 0 || cf.Longitude != 0 {
		cfg.Location.Latitude, cfg.Location.Longitude = cf.Latitude, cf.Longitude
	}
	if len(cf.Timezone) > 0 {
		cfg.Location.Timezone = cf.Timezone
	}
	cfg.Location.Daylight = cfg.Location.Daylight || cf.Daylight
	if len(cf.ZoneDB) > 0 {
		cfg.ZoneDB = cf.ZoneDB
	}
	cfg.NoIANA = cfg.NoIANA || cf.NoIANA
	if len(cf.Config) == 0 || cf.LoggingFlags != (cmdutil.LoggingFlags{}) {
		cfg.Logging = cf.LoggingConfig()
	}
	return cfg, nil
}

// env holds the state shared by a single command invocation.
type env struct {
	cfg     Config
	out     io.Writer
	logger  *slog.Logger
	db      *zonedb.DB
	catalog *zones.Catalog
	closers []io.Closer
}

// newEnv creates the logger, zone database and catalog specified by cf.
// The returned context carries the logger.
func newEnv(ctx context.Context, cf CommonFlags) (context.Context, *env, error) {
	cfg, err := cf.config(ctx)
	if err != nil {
		return ctx, nil, err
	}
	return setup(ctx, cfg, os.Stdout)
}

func setup(ctx context.Context, cfg Config, out io.Writer) (context.Context, *env, error) {
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	e := &env{
		cfg:     cfg,
		out:     out,
		logger:  logger.Logger,
		catalog: zones.Static(),
		closers: []io.Closer{logger},
	}
	if cfg.NoIANA {
		return ctx, e, nil
	}
	var opts []zonedb.Option
	if len(cfg.ZoneDB) > 0 {
		opts = append(opts, zonedb.WithPersistence(os.ExpandEnv(cfg.ZoneDB)))
	}
	db, err := zonedb.Open(ctx, opts...)
	if err != nil {
		e.Close()
		return ctx, nil, errors.WithCaller(err)
	}
	e.db = db
	e.catalog = zones.NewCatalog(db, nil)
	e.closers = append(e.closers, db)
	return ctx, e, nil
}

// Close closes the zone database and log file, if any.
func (e *env) Close() error {
	var errs errors.M
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs.Append(e.closers[i].Close())
	}
	return errs.Err()
}

func (e *env) set() zones.Set {
	if e.cfg.Location.Daylight {
		return zones.Daylight
	}
	return zones.Standard
}

// location returns the configured location with its timezone attached.
func (e *env) location() (*wtime.Location, error) {
	lc := e.cfg.Location
	if lc.Latitude < -90 || lc.Latitude > 90 || lc.Longitude < -180 || lc.Longitude > 180 {
		return nil, fmt.Errorf("invalid coordinates: %v, %v", lc.Latitude, lc.Longitude)
	}
	if len(lc.Timezone) == 0 {
		loc := wtime.NewLocation(lc.Latitude, lc.Longitude,
			wtime.WithCatalog(e.catalog), wtime.WithGuessedZone(e.set()))
		e.logger.Info("guessed timezone", "location", loc.String())
		return loc, nil
	}
	loc := wtime.NewLocation(lc.Latitude, lc.Longitude, wtime.WithCatalog(e.catalog))
	if !loc.AttachByName(lc.Timezone, e.set()) && !loc.AttachByName(lc.Timezone, zones.Any) {
		return nil, fmt.Errorf("unrecognised timezone: %q", lc.Timezone)
	}
	return loc, nil
}
