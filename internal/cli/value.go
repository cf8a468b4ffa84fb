// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the command tree of the civil binary.
package cli

import (
	"fmt"
	"time"

	"gonih.org/civil"
)

// A value is a civil time of some alignment, determined at runtime from the
// canonical form of the input. It adapts the alignment-generic operations of
// package civil for commands that cannot know the alignment statically.
type value interface {
	fmt.Stringer
	unit() string
	add(n int64) value
	sub(n int64) value
	diff(u value) (int64, error)
	weekday() time.Weekday
	next(w time.Weekday) civil.Day
	prev(w time.Weekday) civil.Day
}

type val[A civil.Align] struct {
	t civil.Time[A]
}

func (v val[A]) String() string { return v.t.String() }

func (v val[A]) unit() string {
	switch any(v.t).(type) {
	case civil.Second:
		return "second"
	case civil.Minute:
		return "minute"
	case civil.Hour:
		return "hour"
	case civil.Day:
		return "day"
	case civil.Month:
		return "month"
	default:
		return "year"
	}
}

func (v val[A]) add(n int64) value { return val[A]{v.t.Add(n)} }
func (v val[A]) sub(n int64) value { return val[A]{v.t.Sub(n)} }

func (v val[A]) diff(u value) (int64, error) {
	uv, ok := u.(val[A])
	if !ok {
		return 0, fmt.Errorf("cannot subtract a %s-aligned value from a %s-aligned value", u.unit(), v.unit())
	}
	return v.t.Diff(uv.t), nil
}

func (v val[A]) weekday() time.Weekday { return v.t.Weekday() }

func (v val[A]) next(w time.Weekday) civil.Day { return v.t.NextWeekday(w) }
func (v val[A]) prev(w time.Weekday) civil.Day { return v.t.PrevWeekday(w) }

func parseAs[A civil.Align](layout, s string) (value, error) {
	t, err := civil.Parse[A](layout, s)
	if err != nil {
		return nil, err
	}
	return val[A]{t}, nil
}

// valueParsers tries the canonical layouts finest first, so that a value is
// given the finest alignment that consumes all of its input.
var valueParsers = []struct {
	layout string
	parse  func(layout, s string) (value, error)
}{
	{civil.LayoutSecond, parseAs[civil.SecondAlign]},
	{civil.LayoutMinute, parseAs[civil.MinuteAlign]},
	{civil.LayoutHour, parseAs[civil.HourAlign]},
	{civil.LayoutDay, parseAs[civil.DayAlign]},
	{civil.LayoutMonth, parseAs[civil.MonthAlign]},
	{civil.LayoutYear, parseAs[civil.YearAlign]},
}

// parseValue parses s as a civil time, inferring the alignment from which
// canonical layout matches.
func parseValue(s string) (value, error) {
	for _, p := range valueParsers {
		if v, err := p.parse(p.layout, s); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%q is not a canonical civil time", s)
}

// parseWeekday parses a weekday by its English name, full or abbreviated to
// three letters, case-insensitively.
func parseWeekday(s string) (time.Weekday, error) {
	for w := time.Sunday; w <= time.Saturday; w++ {
		name := w.String()
		if equalFold(s, name) || equalFold(s, name[:3]) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%q is not a weekday", s)
}

// equalFold is strings.EqualFold restricted to ASCII, which is all the
// weekday names need.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		c1, c2 := a[i], b[i]
		if c1 != c2 {
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 {
				return false
			}
		}
	}
	return true
}
