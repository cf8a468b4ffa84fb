// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil implements exact calendar arithmetic on civil times.
//
// A civil time is the human wall-clock time described by the six fields
// YYYY-MM-DD hh:mm:ss in the proleptic Gregorian calendar. It is independent
// of timezones, UTC offsets and leap seconds, which makes it the right
// representation for deterministic date math (scheduling, billing,
// calendars). This package deliberately provides no conversion to or from
// [time.Time]: a civil time is not a point in physical time.
//
// The package provides six value types, which differ only in their
// alignment, the calendar field that their arithmetic operates on:
//
//   - [Second]  e.g. 2015-11-22 12:34:56
//   - [Minute]  e.g. 2015-11-22 12:34:00
//   - [Hour]    e.g. 2015-11-22 12:00:00
//   - [Day]     e.g. 2015-11-22 00:00:00
//   - [Month]   e.g. 2015-11-01 00:00:00
//   - [Year]    e.g. 2015-01-01 00:00:00
//
// Fields below a type's alignment are always at their minimum (0 for the
// clock fields, 1 for month and day). Adding 1 to a [Day] advances the day
// field, adding 1 to a [Month] advances the month field, and so on, always
// producing a valid civil time. The difference between two values of the same
// type is a scalar in units of their alignment; differences between values of
// different types do not compile. This sidesteps ambiguous questions like
// "what is January 31 plus one month": to add a month, a value first has to
// be converted to a [Month], which pins it to the first of the month.
//
// Constructor arguments may lie outside their usual ranges, including being
// negative, and are normalized to a valid civil time, just as for
// [time.Date]. For example, October 32 converts to November 1, and hour -1 of
// January 1 converts to hour 23 of December 31 of the previous year. All
// arithmetic and normalization is closed-form; no path advances the calendar
// one unit at a time, so adding huge offsets costs the same as adding small
// ones.
//
// Values are small, immutable and comparable with ==. The zero value of every
// type is the civil time 0000-01-01 00:00:00, truncated to the type's
// alignment. Values may be shared between goroutines without synchronization.
//
// Years are int64. Operations whose true result would need a year (or a
// difference) outside the int64 range saturate at the minimum or maximum
// representable value instead of wrapping; see [Time.Add] for details.
// Results are exact whenever they are representable.
package civil

import (
	"fmt"
	"time"
)

// fields is a canonical civil-time sextuple. The month and day fields are
// stored biased by -1 so that the zero value is the canonical civil time
// 0000-01-01 00:00:00. Only the normalizer and the format validator construct
// a fields value.
type fields struct {
	y  int64
	m0 int8 // month-1, in [0,11]
	d0 int8 // day-1, in [0,daysIn-1]
	hh int8 // in [0,23]
	mm int8 // in [0,59]
	ss int8 // in [0,59]
}

func (f fields) month() int64 { return int64(f.m0) + 1 }
func (f fields) day() int64   { return int64(f.d0) + 1 }

// alignment selects the calendar field that arithmetic operates on.
type alignment int

const (
	alignSecond alignment = iota
	alignMinute
	alignHour
	alignDay
	alignMonth
	alignYear
)

// Align is the set of marker types that select a [Time] alignment. It is a
// closed set: exactly the six types [SecondAlign] through [YearAlign]
// implement it.
type Align interface {
	SecondAlign | MinuteAlign | HourAlign | DayAlign | MonthAlign | YearAlign
	align() alignment
}

// The alignment markers. They carry no data; their only job is to select the
// arithmetic unit of a [Time] at the type level.
type (
	SecondAlign struct{}
	MinuteAlign struct{}
	HourAlign   struct{}
	DayAlign    struct{}
	MonthAlign  struct{}
	YearAlign   struct{}
)

func (SecondAlign) align() alignment { return alignSecond }
func (MinuteAlign) align() alignment { return alignMinute }
func (HourAlign) align() alignment   { return alignHour }
func (DayAlign) align() alignment    { return alignDay }
func (MonthAlign) align() alignment  { return alignMonth }
func (YearAlign) align() alignment   { return alignYear }

// A Time is a civil time aligned to the calendar field A. It holds a
// normalized sextuple of calendar fields; the fields below its alignment are
// always at their minimum value.
//
// Times of the same alignment can be compared with ==. They are immutable:
// all operations return a new value.
type Time[A Align] struct {
	f fields
}

// The six civil-time types.
type (
	Second = Time[SecondAlign]
	Minute = Time[MinuteAlign]
	Hour   = Time[HourAlign]
	Day    = Time[DayAlign]
	Month  = Time[MonthAlign]
	Year   = Time[YearAlign]
)

func (t Time[A]) alignment() alignment {
	var a A
	return a.align()
}

// alignFields truncates f to a: every field below the alignment is forced to
// its minimum. A canonical fields value stays canonical.
func alignFields(a alignment, f fields) fields {
	switch a {
	case alignYear:
		f.m0 = 0
		fallthrough
	case alignMonth:
		f.d0 = 0
		fallthrough
	case alignDay:
		f.hh = 0
		fallthrough
	case alignHour:
		f.mm = 0
		fallthrough
	case alignMinute:
		f.ss = 0
	}
	return f
}

func of[A Align](year, month, day, hour, min, sec int64) Time[A] {
	var t Time[A]
	t.f = alignFields(t.alignment(), normalize(year, month, day, hour, min, sec))
	return t
}

// SecondOf returns the Second for the given fields. The arguments may be
// outside their usual ranges and will be normalized during the conversion.
// For example, October 32 converts to November 1, and second 60 converts to
// second 0 of the following minute.
func SecondOf(year, month, day, hour, min, sec int64) Second {
	return of[SecondAlign](year, month, day, hour, min, sec)
}

// MinuteOf returns the Minute for the given fields, normalized as for
// [SecondOf].
func MinuteOf(year, month, day, hour, min int64) Minute {
	return of[MinuteAlign](year, month, day, hour, min, 0)
}

// HourOf returns the Hour for the given fields, normalized as for [SecondOf].
func HourOf(year, month, day, hour int64) Hour {
	return of[HourAlign](year, month, day, hour, 0, 0)
}

// DayOf returns the Day for the given date, normalized as for [SecondOf].
func DayOf(year, month, day int64) Day {
	return of[DayAlign](year, month, day, 0, 0, 0)
}

// MonthOf returns the Month for the given year and month, normalized as for
// [SecondOf].
func MonthOf(year, month int64) Month {
	return of[MonthAlign](year, month, 1, 0, 0, 0)
}

// YearOf returns the Year for the given year.
func YearOf(year int64) Year {
	return of[YearAlign](year, 1, 1, 0, 0, 0)
}

// Year returns the year of t.
func (t Time[A]) Year() int64 { return t.f.y }

// Month returns the month of t. It is time.January for values aligned to a
// year.
func (t Time[A]) Month() time.Month { return time.Month(t.f.month()) }

// Day returns the day of the month of t, in the range [1,31]. It is 1 for
// values aligned to a month or coarser.
func (t Time[A]) Day() int { return int(t.f.day()) }

// Hour returns the hour of t, in the range [0,23]. It is 0 for values aligned
// to a day or coarser.
func (t Time[A]) Hour() int { return int(t.f.hh) }

// Minute returns the minute of t, in the range [0,59]. It is 0 for values
// aligned to an hour or coarser.
func (t Time[A]) Minute() int { return int(t.f.mm) }

// Second returns the second of t, in the range [0,59]. It is 0 for values
// aligned to a minute or coarser.
func (t Time[A]) Second() int { return int(t.f.ss) }

// YearDay returns the day of the year of t, in the range [1,365] for non-leap
// years, and [1,366] in leap years.
func (t Time[A]) YearDay() int {
	yd := int(daysBefore[t.f.m0]) + int(t.f.day())
	if t.f.m0 >= 2 && isLeap(t.f.y) {
		yd++
	}
	return yd
}

// GoString implements fmt.GoStringer and formats t to be printed in Go source
// code.
func (t Time[A]) GoString() string {
	f := t.f
	switch t.alignment() {
	case alignSecond:
		return fmt.Sprintf("civil.SecondOf(%d, %d, %d, %d, %d, %d)", f.y, f.month(), f.day(), f.hh, f.mm, f.ss)
	case alignMinute:
		return fmt.Sprintf("civil.MinuteOf(%d, %d, %d, %d, %d)", f.y, f.month(), f.day(), f.hh, f.mm)
	case alignHour:
		return fmt.Sprintf("civil.HourOf(%d, %d, %d, %d)", f.y, f.month(), f.day(), f.hh)
	case alignDay:
		return fmt.Sprintf("civil.DayOf(%d, %d, %d)", f.y, f.month(), f.day())
	case alignMonth:
		return fmt.Sprintf("civil.MonthOf(%d, %d)", f.y, f.month())
	default:
		return fmt.Sprintf("civil.YearOf(%d)", f.y)
	}
}
