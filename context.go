// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package wtime

// TimeContext binds instants to the Location used to interpret them as
// local or solar time. A TimeContext is typically created once and
// shared by many instants; it must outlive all of the instants that
// refer to it.
type TimeContext struct {
	loc *Location
}

// NewTimeContext returns a TimeContext for loc.
func NewTimeContext(loc *Location) *TimeContext {
	return &TimeContext{loc: loc}
}

// Location returns the Location bound to the context.
func (c *TimeContext) Location() *Location {
	if c == nil {
		return nil
	}
	return c.loc
}
