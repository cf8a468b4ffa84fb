// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "time"

// Weekday returns the day of the week of t. The epoch 1970-01-01 (day count
// 0) was a Thursday.
func (t Time[A]) Weekday() time.Weekday {
	return weekdayOf(t.f)
}

// NextWeekday returns the Day strictly after t's date that falls on w. If t
// already falls on w, the result is seven days later, never t itself.
func (t Time[A]) NextWeekday(w time.Weekday) Day {
	d := ToDay(t)
	n := (int64(w) - int64(weekdayOf(d.f)) + 7) % 7
	if n == 0 {
		n = 7
	}
	return d.Add(n)
}

// PrevWeekday returns the Day strictly before t's date that falls on w. If t
// already falls on w, the result is seven days earlier, never t itself.
func (t Time[A]) PrevWeekday(w time.Weekday) Day {
	d := ToDay(t)
	n := (int64(weekdayOf(d.f)) - int64(w) + 7) % 7
	if n == 0 {
		n = 7
	}
	return d.Sub(n)
}

// weekdayOf derives the weekday from the day count mod 7. The year is reduced
// mod 400 first: a 400-year cycle is 146097 days, a multiple of 7, so the
// reduction preserves the weekday and keeps the computation total for extreme
// years.
func weekdayOf(f fields) time.Weekday {
	dc := epochDays(f.y%400, f.month(), f.day())
	return time.Weekday((dc%7 + 7 + int64(time.Thursday)) % 7)
}
