// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil_test

import (
	"fmt"
	"time"

	"gonih.org/civil"
)

// ExampleDayOf demonstrates that constructors normalize their arguments.
func ExampleDayOf() {
	// Create a fixed date:
	d := civil.DayOf(2015, 8, 13)
	fmt.Println(d)

	// Out-of-range fields are folded into the adjacent ones:
	fmt.Println(civil.DayOf(2016, 10, 32))

	// Day 0 is the last day of the previous month:
	fmt.Println(civil.DayOf(2015, 3, 0))

	// This works for every field, including negative ones:
	fmt.Println(civil.HourOf(2016, 1, 1, -1))
	fmt.Println(civil.SecondOf(2016, -42, 122, 99, -147, 4949))

	// Output:
	// 2015-08-13
	// 2016-11-01
	// 2015-02-28
	// 2015-12-31T23
	// 2012-10-04T01:55:29
}

// ExampleTime_Add demonstrates that arithmetic operates in units of the
// value's alignment.
func ExampleTime_Add() {
	// Adding to a Day moves by days:
	fmt.Println(civil.DayOf(2015, 2, 1).Add(3))

	// Adding to a Month moves by months, so "a month later" is always
	// well-defined:
	fmt.Println(civil.MonthOf(2015, 1).Sub(2))

	// Month boundaries and leap years need no special handling:
	fmt.Println(civil.DayOf(2016, 2, 28).Add(2))
	fmt.Println(civil.DayOf(2015, 2, 28).Add(2))

	// Output:
	// 2015-02-04
	// 2014-11
	// 2016-03-01
	// 2015-03-02
}

// ExampleTime_Diff demonstrates exact differences between values of the same
// alignment.
func ExampleTime_Diff() {
	fmt.Println(civil.DayOf(2015, 8, 13).Diff(civil.DayOf(2015, 8, 11)))
	fmt.Println(civil.MonthOf(2015, 1).Diff(civil.MonthOf(2014, 11)))
	fmt.Println(civil.YearOf(2014).Diff(civil.YearOf(2016)))

	// Differences of different alignments do not compile; convert first:
	d := civil.DayOf(2015, 8, 13)
	m := civil.MonthOf(2015, 6)
	fmt.Println(civil.ToMonth(d).Diff(m))

	// Output:
	// 2
	// 2
	// -2
	// 2
}

// ExampleTime_NextWeekday demonstrates strict weekday searches.
func ExampleTime_NextWeekday() {
	d := civil.DayOf(2015, 8, 13)
	fmt.Println(d.Weekday())

	// The result is strictly after (or before) d, even if d already falls
	// on the requested weekday:
	fmt.Println(d.NextWeekday(time.Thursday))
	fmt.Println(d.PrevWeekday(time.Thursday))
	fmt.Println(d.NextWeekday(time.Friday))

	// Output:
	// Thursday
	// 2015-08-20
	// 2015-08-06
	// 2015-08-14
}

// ExampleParse demonstrates the usage of Parse.
func ExampleParse() {
	// Parse a date in its canonical layout:
	fmt.Println(civil.Parse[civil.DayAlign](civil.LayoutDay, "2024-05-14"))

	// Any layout built from the supported specifiers works:
	fmt.Println(civil.Parse[civil.DayAlign]("02 Jan 2006", "14 May 2024"))

	// Unlike the constructors, which normalize, Parse validates ranges:
	fmt.Println(civil.Parse[civil.DayAlign](civil.LayoutDay, "2024-13-01"))
	fmt.Println(civil.Parse[civil.DayAlign](civil.LayoutDay, "2024-02-29"))
	fmt.Println(civil.Parse[civil.DayAlign](civil.LayoutDay, "2023-02-29"))

	// Fields below the requested alignment are dropped:
	fmt.Println(civil.Parse[civil.MonthAlign](civil.LayoutSecond, "2015-08-13T12:34:56"))

	// Output:
	// 2024-05-14 <nil>
	// 2024-05-14 <nil>
	// 0000-01-01 parsing civil time "2024-13-01": month out of range
	// 2024-02-29 <nil>
	// 0000-01-01 parsing civil time "2023-02-29": day out of range
	// 2015-08 <nil>
}

// ExampleBuilder demonstrates collecting optional fields before construction.
func ExampleBuilder() {
	// Unset fields default to the epoch 1970-01-01 00:00:00:
	var b civil.Builder
	fmt.Println(b.BuildSecond())

	// Setters chain and the result type picks the alignment:
	fmt.Println(b.Year(2015).Month(8).Day(13).BuildDay())
	fmt.Println(b.Year(2015).Month(8).BuildMonth())

	// Output:
	// 1970-01-01T00:00:00
	// 2015-08-13
	// 2015-08
}

// ExampleToMonth demonstrates conversion between alignments.
func ExampleToMonth() {
	s := civil.SecondOf(2015, 8, 13, 12, 34, 56)

	// Converting to a coarser alignment truncates:
	m := civil.ToMonth(s)
	fmt.Println(m)

	// Converting back keeps the truncated fields at their minimum:
	fmt.Println(civil.ToSecond(m))

	// Output:
	// 2015-08
	// 2015-08-01T00:00:00
}
