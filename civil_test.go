// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math"
	"strconv"
	"testing"
	"time"
)

var normTCs = []struct {
	y, m, d, hh, mm, ss int64
	want                Second
}{
	{2016, 1, 1, 0, 0, 0, SecondOf(2016, 1, 1, 0, 0, 0)},
	{2016, 1, 1, 0, 0, 121, SecondOf(2016, 1, 1, 0, 2, 1)},
	{2016, 1, 1, 0, 0, -121, SecondOf(2015, 12, 31, 23, 57, 59)},
	{2016, 1, 1, 0, 2, -121, SecondOf(2015, 12, 31, 23, 59, 59)},
	{2016, 1, 1, 49, 0, 0, SecondOf(2016, 1, 3, 1, 0, 0)},
	{2016, 1, 1, -1, 0, 0, SecondOf(2015, 12, 31, 23, 0, 0)},
	{2016, 13, 1, 0, 0, 0, SecondOf(2017, 1, 1, 0, 0, 0)},
	{2016, 25, 1, 0, 0, 0, SecondOf(2018, 1, 1, 0, 0, 0)},
	{2016, -25, 1, 0, 0, 0, SecondOf(2013, 11, 1, 0, 0, 0)},
	{2016, 0, 1, 0, 0, 0, SecondOf(2015, 12, 1, 0, 0, 0)},
	{2016, 10, 32, 0, 0, 0, SecondOf(2016, 11, 1, 0, 0, 0)},
	{2016, 3, 0, 0, 0, 0, SecondOf(2016, 2, 29, 0, 0, 0)},
	{2015, 3, 0, 0, 0, 0, SecondOf(2015, 2, 28, 0, 0, 0)},
	{2016, 1, 292195, 0, 0, 0, SecondOf(2816, 1, 1, 0, 0, 0)},
	{2016, 1, -292195, 0, 0, 0, SecondOf(1215, 12, 30, 0, 0, 0)},
	{2016, -42, 122, 99, -147, 4949, SecondOf(2012, 10, 4, 1, 55, 29)},
	{1970, 1, 1, 0, 0, math.MaxInt32, SecondOf(2038, 1, 19, 3, 14, 7)},
	{1970, 1, 1, 0, 0, math.MinInt32, SecondOf(1901, 12, 13, 20, 45, 52)},
	{1970, 1, 1, 0, math.MaxInt32, 0, SecondOf(6053, 1, 23, 2, 7, 0)},
	{1970, 1, 1, math.MaxInt32, 0, 0, SecondOf(246953, 10, 9, 7, 0, 0)},
	// Extreme years survive normalization exactly as long as the result is
	// representable.
	{math.MaxInt64 - 1, 12, 31, 23, 59, 60, SecondOf(math.MaxInt64, 1, 1, 0, 0, 0)},
	{math.MinInt64 + 1, 1, 1, -1, 0, 0, SecondOf(math.MinInt64, 12, 31, 23, 0, 0)},
	// Out of range at the edges saturates.
	{math.MaxInt64, 12, 31, 23, 59, 60, SecondOf(math.MaxInt64, 12, 31, 23, 59, 59)},
	{math.MinInt64, 1, 1, 0, 0, -1, SecondOf(math.MinInt64, 1, 1, 0, 0, 0)},
	{math.MaxInt64, 13, 1, 0, 0, 0, SecondOf(math.MaxInt64, 12, 31, 23, 59, 59)},
	{math.MinInt64, 0, 1, 0, 0, 0, SecondOf(math.MinInt64, 1, 1, 0, 0, 0)},
}

func TestSecondOf(t *testing.T) {
	for i, tc := range normTCs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := SecondOf(tc.y, tc.m, tc.d, tc.hh, tc.mm, tc.ss); got != tc.want {
				t.Errorf("SecondOf(%d, %d, %d, %d, %d, %d) = %#v, want %#v", tc.y, tc.m, tc.d, tc.hh, tc.mm, tc.ss, got, tc.want)
			}
		})
	}
}

// TestNormalizeIdempotent checks that re-normalizing a canonical value is a
// no-op.
func TestNormalizeIdempotent(t *testing.T) {
	for i, tc := range normTCs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			w := tc.want
			got := SecondOf(w.Year(), int64(w.Month()), int64(w.Day()), int64(w.Hour()), int64(w.Minute()), int64(w.Second()))
			if got != w {
				t.Errorf("SecondOf(%#v fields) = %#v, want unchanged", w, got)
			}
		})
	}
}

func addAll(f *testing.F) {
	for _, tc := range normTCs {
		y, m, d := int32(tc.y), int32(tc.m), int32(tc.d)
		hh, mm, ss := int32(tc.hh), int32(tc.mm), int32(tc.ss)
		if int64(y) != tc.y {
			continue
		}
		f.Add(y, m, d, hh, mm, ss)
	}
}

func FuzzSecondOf(f *testing.F) {
	addAll(f)
	f.Fuzz(check)
}

// check that the given fields produce the same calendar calculations as
// time.Date.
func check(t *testing.T, year, month, day, hour, min, sec int32) {
	got := SecondOf(int64(year), int64(month), int64(day), int64(hour), int64(min), int64(sec))
	want := time.Date(int(year), time.Month(month), int(day), int(hour), int(min), int(sec), 0, time.UTC)
	if got.Year() != int64(want.Year()) || got.Month() != want.Month() || got.Day() != want.Day() ||
		got.Hour() != want.Hour() || got.Minute() != want.Minute() || got.Second() != want.Second() {
		t.Errorf("SecondOf(%d, %d, %d, %d, %d, %d) = %#v, want %v", year, month, day, hour, min, sec, got, want.Format(time.DateTime))
	}
	if gotYD, wantYD := got.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("SecondOf(%d, %d, %d, %d, %d, %d).YearDay() = %d, want %d", year, month, day, hour, min, sec, gotYD, wantYD)
	}
	if gotWD, wantWD := got.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("SecondOf(%d, %d, %d, %d, %d, %d).Weekday() = %v, want %v", year, month, day, hour, min, sec, gotWD, wantWD)
	}
}

// TestZeroValue checks that the zero value of every alignment is the civil
// time 0000-01-01 00:00:00.
func TestZeroValue(t *testing.T) {
	if got, want := (Second{}), SecondOf(0, 1, 1, 0, 0, 0); got != want {
		t.Errorf("zero Second = %#v, want %#v", got, want)
	}
	if got, want := (Day{}), DayOf(0, 1, 1); got != want {
		t.Errorf("zero Day = %#v, want %#v", got, want)
	}
	if got, want := (Year{}), YearOf(0); got != want {
		t.Errorf("zero Year = %#v, want %#v", got, want)
	}
	if got, want := (Day{}).String(), "0000-01-01"; got != want {
		t.Errorf("zero Day renders as %q, want %q", got, want)
	}
}

// TestTruncation checks that constructors force the fields below the
// alignment to their minimum.
func TestTruncation(t *testing.T) {
	if got, want := MinuteOf(2015, 8, 13, 12, 34), ToMinute(SecondOf(2015, 8, 13, 12, 34, 56)); got != want {
		t.Errorf("MinuteOf = %#v, ToMinute = %#v", got, want)
	}
	if got, want := MonthOf(2015, 8), ToMonth(DayOf(2015, 8, 13)); got != want {
		t.Errorf("MonthOf = %#v, ToMonth = %#v", got, want)
	}
	d := DayOf(2015, 8, 13)
	if got := ToDay(ToSecond(d)); got != d {
		t.Errorf("ToDay(ToSecond(%#v)) = %#v, want unchanged", d, got)
	}
	s := ToSecond(d)
	if s.Hour() != 0 || s.Minute() != 0 || s.Second() != 0 {
		t.Errorf("ToSecond(%#v) has nonzero clock fields: %#v", d, s)
	}
	y := ToYear(SecondOf(2015, 8, 13, 12, 34, 56))
	if got, want := y, YearOf(2015); got != want {
		t.Errorf("ToYear = %#v, want %#v", got, want)
	}
}

func TestYearDay(t *testing.T) {
	tcs := []struct {
		d    Day
		want int
	}{
		{DayOf(2023, 1, 9), 9},
		{DayOf(2023, 3, 2), 61},
		{DayOf(2024, 3, 2), 62},
		{DayOf(2023, 12, 31), 365},
		{DayOf(2024, 12, 31), 366},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.d.YearDay(); got != tc.want {
				t.Errorf("%#v.YearDay() = %d, want %d", tc.d, got, tc.want)
			}
		})
	}
}

func TestDayCount(t *testing.T) {
	tcs := []struct {
		d    Day
		want int64
	}{
		{DayOf(1970, 1, 1), 0},
		{DayOf(1970, 1, 2), 1},
		{DayOf(1969, 12, 31), -1},
		{DayOf(2000, 1, 1), 10957},
		{DayOf(2023, 7, 14), 19552},
		{DayOf(1, 1, 1), -719162},
		{DayOf(0, 1, 1), -719528},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.d.DayCount(); got != tc.want {
				t.Errorf("%#v.DayCount() = %d, want %d", tc.d, got, tc.want)
			}
		})
	}
}

// TestLeapYears checks the century rule: 1700, 1800 and 1900 are not leap
// years, 1600 and 2000 are.
func TestLeapYears(t *testing.T) {
	tcs := []struct {
		year int64
		leap bool
	}{
		{1600, true},
		{1700, false},
		{1800, false},
		{1900, false},
		{2000, true},
		{2015, false},
		{2016, true},
	}
	for _, tc := range tcs {
		want := DayOf(tc.year, 3, 1)
		if tc.leap {
			want = DayOf(tc.year, 2, 29)
		}
		if got := DayOf(tc.year, 2, 29); got != want {
			t.Errorf("DayOf(%d, 2, 29) = %#v, want %#v", tc.year, got, want)
		}
	}
}

func TestWeekday(t *testing.T) {
	tcs := []struct {
		d    Day
		want time.Weekday
	}{
		{DayOf(1970, 1, 1), time.Thursday},
		{DayOf(2015, 8, 13), time.Thursday},
		{DayOf(2000, 2, 29), time.Tuesday},
		{DayOf(2023, 10, 25), time.Wednesday},
		// The weekday pattern repeats every 400 years.
		{DayOf(2400, 2, 29), time.Tuesday},
		{DayOf(1600, 2, 29), time.Tuesday},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.d.Weekday(); got != tc.want {
				t.Errorf("%#v.Weekday() = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

// TestWeekdayExtreme checks that the weekday stays consistent with day
// arithmetic at the edges of the year range.
func TestWeekdayExtreme(t *testing.T) {
	for _, d := range []Day{DayOf(math.MaxInt64, 1, 1), DayOf(math.MinInt64, 12, 31)} {
		w, prev := d.Weekday(), d.Sub(1).Weekday()
		if (prev+1)%7 != w {
			t.Errorf("%#v.Weekday() = %v, but the day before is %v", d, w, prev)
		}
	}
}

func TestNextPrevWeekday(t *testing.T) {
	d := DayOf(2015, 8, 13) // a Thursday
	tcs := []struct {
		w          time.Weekday
		next, prev Day
	}{
		{time.Thursday, DayOf(2015, 8, 20), DayOf(2015, 8, 6)},
		{time.Friday, DayOf(2015, 8, 14), DayOf(2015, 8, 7)},
		{time.Wednesday, DayOf(2015, 8, 19), DayOf(2015, 8, 12)},
		{time.Sunday, DayOf(2015, 8, 16), DayOf(2015, 8, 9)},
	}
	for _, tc := range tcs {
		t.Run(tc.w.String(), func(t *testing.T) {
			if got := d.NextWeekday(tc.w); got != tc.next {
				t.Errorf("%#v.NextWeekday(%v) = %#v, want %#v", d, tc.w, got, tc.next)
			}
			if got := d.PrevWeekday(tc.w); got != tc.prev {
				t.Errorf("%#v.PrevWeekday(%v) = %#v, want %#v", d, tc.w, got, tc.prev)
			}
		})
	}
	// Coarser values are truncated to their first day.
	if got, want := MonthOf(2015, 8).NextWeekday(time.Saturday), DayOf(2015, 8, 8); got != want {
		t.Errorf("MonthOf(2015, 8).NextWeekday(Saturday) = %#v, want %#v", got, want)
	}
}

func TestCompare(t *testing.T) {
	if got := Compare(DayOf(2015, 8, 13), MonthOf(2015, 8)); got != 1 {
		t.Errorf("Compare(2015-08-13, 2015-08) = %d, want 1", got)
	}
	if got := Compare(MonthOf(2015, 8), DayOf(2015, 8, 13)); got != -1 {
		t.Errorf("Compare(2015-08, 2015-08-13) = %d, want -1", got)
	}
	if got := Compare(MonthOf(2015, 8), DayOf(2015, 8, 1)); got != 0 {
		t.Errorf("Compare(2015-08, 2015-08-01) = %d, want 0", got)
	}
	if !Equal(MonthOf(2015, 8), DayOf(2015, 8, 1)) {
		t.Errorf("Equal(2015-08, 2015-08-01) = false, want true")
	}
	if !Before(YearOf(2014), MonthOf(2015, 8)) {
		t.Errorf("Before(2014, 2015-08) = false, want true")
	}
	if !After(SecondOf(2015, 8, 13, 0, 0, 1), DayOf(2015, 8, 13)) {
		t.Errorf("After(2015-08-13T00:00:01, 2015-08-13) = false, want true")
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	if got, want := b.BuildSecond(), SecondOf(1970, 1, 1, 0, 0, 0); got != want {
		t.Errorf("zero Builder builds %#v, want %#v", got, want)
	}
	if got, want := b.Year(2015).Month(8).Day(13).BuildDay(), DayOf(2015, 8, 13); got != want {
		t.Errorf("Builder.BuildDay() = %#v, want %#v", got, want)
	}
	if got, want := b.Month(3).BuildMonth(), MonthOf(1970, 3); got != want {
		t.Errorf("Builder.BuildMonth() = %#v, want %#v", got, want)
	}
	if got, want := b.Year(2016).Month(10).Day(32).BuildDay(), DayOf(2016, 11, 1); got != want {
		t.Errorf("Builder normalizes to %#v, want %#v", got, want)
	}
	got := b.Year(2015).Month(8).Day(13).Hour(12).Minute(34).Second(56).BuildSecond()
	if want := SecondOf(2015, 8, 13, 12, 34, 56); got != want {
		t.Errorf("Builder.BuildSecond() = %#v, want %#v", got, want)
	}
	if got, want := Build[HourAlign](b.Year(2015).Hour(7)), HourOf(2015, 1, 1, 7); got != want {
		t.Errorf("Build[HourAlign] = %#v, want %#v", got, want)
	}
}

// TestString checks the default rendering of each alignment.
func TestString(t *testing.T) {
	tcs := []struct {
		v    interface{ String() string }
		want string
	}{
		{SecondOf(1970, 1, 1, 0, 0, 0), "1970-01-01T00:00:00"},
		{MinuteOf(1970, 1, 1, 0, 0), "1970-01-01T00:00"},
		{HourOf(1970, 1, 1, 0), "1970-01-01T00"},
		{DayOf(1970, 1, 1), "1970-01-01"},
		{MonthOf(1970, 1), "1970-01"},
		{YearOf(1970), "1970"},
		{SecondOf(2015, 8, 13, 12, 34, 56), "2015-08-13T12:34:56"},
		{YearOf(-5), "-0005"},
		{YearOf(123456), "123456"},
		{DayOf(-2023, 10, 25), "-2023-10-25"},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
