// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zonedb

import (
	"encoding/binary"
	"fmt"
	"time"

	"cloudeng.io/wtime/duration"
	"cloudeng.io/wtime/zones"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("zones")

// persisted is the on-disk form of a dynamically allocated zone.
type persisted struct {
	Offset int64  `msgpack:"o"`
	DST    int64  `msgpack:"d"`
	Code   string `msgpack:"c"`
	Name   string `msgpack:"n"`
}

type store struct {
	bdb *bbolt.DB
}

func openStore(path string) (*store, error) {
	bdb, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("zonedb: failed to open %v: %w", path, err)
	}
	err = bdb.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("zonedb: failed to create bucket in %v: %w", path, err)
	}
	return &store{bdb: bdb}, nil
}

func (s *store) close() error {
	return s.bdb.Close()
}

func storeKey(idx int) []byte {
	var k [4]byte
	binary.BigEndian.PutUint32(k[:], uint32(idx))
	return k[:]
}

// load returns the persisted records in id order.
func (s *store) load() ([]zones.Record, error) {
	var out []zones.Record
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			if len(k) != 4 {
				return fmt.Errorf("zonedb: malformed key: %x", k)
			}
			if got, want := binary.BigEndian.Uint32(k), uint32(len(out)); got != want {
				return fmt.Errorf("zonedb: missing zone: got id %v, want %v", got, want)
			}
			var p persisted
			if err := msgpack.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("zonedb: failed to decode zone %x: %w", k, err)
			}
			out = append(out, zones.Record{
				Offset: duration.Duration(p.Offset),
				DST:    duration.Duration(p.DST),
				Code:   p.Code,
				Name:   p.Name,
				ID:     zones.DynamicID | uint32(len(out)),
			})
			return nil
		})
	})
	return out, err
}

func (s *store) put(idx int, r zones.Record) error {
	buf, err := msgpack.Marshal(&persisted{
		Offset: int64(r.Offset),
		DST:    int64(r.DST),
		Code:   r.Code,
		Name:   r.Name,
	})
	if err != nil {
		return err
	}
	return s.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(storeKey(idx), buf)
	})
}
