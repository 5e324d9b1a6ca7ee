// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zonedb implements zones.Database using the IANA timezone
// database and a coordinate to timezone finder. Zones resolved by
// the database are allocated ids in the zones.DynamicID range and are
// never removed, so that ids remain valid for the lifetime of the DB, and
// across processes when persistence is enabled.
package zonedb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
	"github.com/ringsaturn/tzf"

	// Embed the IANA database so that lookups do not depend on the host.
	_ "time/tzdata"
)

// Finder maps a coordinate to an IANA timezone name, returning an empty
// string if none is found. It is implemented by tzf.F.
type Finder interface {
	GetTimezoneName(lng, lat float64) string
}

type options struct {
	finder Finder
	path   string
}

// Option represents an option to Open.
type Option func(*options)

// WithFinder specifies the Finder to use instead of the default tzf
// finder.
func WithFinder(f Finder) Option {
	return func(o *options) {
		o.finder = f
	}
}

// WithPersistence specifies a bbolt database file used to persist
// dynamically allocated zones.
func WithPersistence(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

type recordKey struct {
	offset, dst duration.Duration
	code, name  string
}

// DB is a zones.Database. It is safe for concurrent use.
type DB struct {
	logger *slog.Logger
	store  *store

	mu       sync.Mutex
	finder   Finder
	initErr  error
	initDone bool
	interned map[string]string
	records  []zones.Record
	index    map[recordKey]int
}

var _ zones.Database = (*DB)(nil)

// Open returns a new DB. The logger, if any, is obtained from ctx using
// ctxlog. The coordinate finder is created lazily on first use.
func Open(ctx context.Context, opts ...Option) (*DB, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	db := &DB{
		logger:   ctxlog.Logger(ctx).With("pkg", "zonedb"),
		finder:   o.finder,
		initDone: o.finder != nil,
		interned: map[string]string{},
		index:    map[recordKey]int{},
	}
	if len(o.path) == 0 {
		return db, nil
	}
	st, err := openStore(o.path)
	if err != nil {
		return nil, err
	}
	persisted, err := st.load()
	if err != nil {
		st.close()
		return nil, err
	}
	for _, r := range persisted {
		db.appendLocked(r.Offset, r.DST, r.Code, r.Name)
	}
	db.store = st
	db.logger.Debug("loaded persisted zones", "path", o.path, "count", len(persisted))
	return db, nil
}

// Close releases any resources used by the DB.
func (db *DB) Close() error {
	if db.store == nil {
		return nil
	}
	return db.store.close()
}

func (db *DB) initFinder() (Finder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if !db.initDone {
		start := time.Now()
		db.finder, db.initErr = tzf.NewDefaultFinder()
		db.initDone = true
		db.logger.Debug("initialized timezone finder", "duration", time.Since(start), "error", db.initErr)
	}
	return db.finder, db.initErr
}

// Len returns the number of dynamically allocated zones.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.records)
}

// ByCoordinate implements zones.Database.
func (db *DB) ByCoordinate(lat, lon float64, set zones.Set) (zones.Record, bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return zones.Record{}, false
	}
	finder, err := db.initFinder()
	if err != nil {
		return zones.Record{}, false
	}
	name := finder.GetTimezoneName(lon, lat)
	if len(name) == 0 {
		return zones.Record{}, false
	}
	return db.byIANA(name, set)
}

// ByName implements zones.Database. The name must be an IANA timezone
// name.
func (db *DB) ByName(name string, set zones.Set) (zones.Record, bool) {
	if len(name) == 0 || strings.EqualFold(name, "local") {
		return zones.Record{}, false
	}
	return db.byIANA(name, set)
}

// ByID implements zones.Database.
func (db *DB) ByID(id uint32) (zones.Record, bool) {
	if id&zones.DynamicID == 0 {
		return zones.Record{}, false
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	idx := zones.Index(id)
	if idx >= len(db.records) {
		return zones.Record{}, false
	}
	return db.records[idx], true
}

// referenceYear is used to determine the standard and daylight offsets
// of a zone.
const referenceYear = 2022

// Offsets returns the standard offset and daylight saving amount, along
// with the corresponding abbreviations, for the named IANA zone.
func Offsets(name string) (std, dst duration.Duration, stdCode, dstCode string, err error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, 0, "", "", fmt.Errorf("zonedb: %q: %w", name, err)
	}
	winter, woff := time.Date(referenceYear, 1, 2, 12, 0, 0, 0, loc).Zone()
	summer, soff := time.Date(referenceYear, 7, 2, 12, 0, 0, 0, loc).Zone()
	if woff > soff {
		// southern hemisphere.
		winter, summer = summer, winter
		woff, soff = soff, woff
	}
	return duration.Seconds(int64(woff)), duration.Seconds(int64(soff - woff)), winter, summer, nil
}

func (db *DB) byIANA(name string, set zones.Set) (zones.Record, bool) {
	std, amt, stdCode, dstCode, err := Offsets(name)
	if err != nil {
		return zones.Record{}, false
	}
	switch set {
	case zones.Standard:
		amt, dstCode = 0, stdCode
	case zones.Daylight:
		if amt == 0 {
			return zones.Record{}, false
		}
	case zones.Any:
		if amt == 0 {
			dstCode = stdCode
		}
	default:
		return zones.Record{}, false
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.appendLocked(std, amt, dstCode, name)
}

func (db *DB) intern(s string) string {
	if v, ok := db.interned[s]; ok {
		return v
	}
	db.interned[s] = s
	return s
}

// appendLocked returns the existing record matching the supplied values
// or allocates a new one.
func (db *DB) appendLocked(offset, dst duration.Duration, code, name string) (zones.Record, bool) {
	key := recordKey{offset: offset, dst: dst, code: db.intern(code), name: db.intern(name)}
	if idx, ok := db.index[key]; ok {
		return db.records[idx], true
	}
	idx := len(db.records)
	if idx > zones.Index(^uint32(0)) {
		db.logger.Warn("dynamic zone table is full", "name", name)
		return zones.Record{}, false
	}
	r := zones.Record{
		Offset: offset,
		DST:    dst,
		Code:   key.code,
		Name:   key.name,
		ID:     zones.DynamicID | uint32(idx),
	}
	if db.store != nil {
		if err := db.store.put(idx, r); err != nil {
			db.logger.Warn("failed to persist zone", "name", name, "error", err)
			return zones.Record{}, false
		}
	}
	db.records = append(db.records, r)
	db.index[key] = idx
	db.logger.Debug("allocated zone", "id", r.ID, "code", r.Code, "name", r.Name)
	return r, true
}
