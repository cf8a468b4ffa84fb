// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "math"

// Add returns t advanced by n units of its alignment: seconds for a [Second],
// days for a [Day], months for a [Month], and so on. The cost is independent
// of n; crossing leap years or month boundaries needs no special handling.
//
// If the true result is not representable, Add saturates at the maximum or
// minimum civil time rather than wrapping. The same holds for [Time.Sub] and,
// for the returned difference, [Time.Diff].
func (t Time[A]) Add(n int64) Time[A] {
	t.f = alignFields(t.alignment(), step(t.alignment(), t.f, n))
	return t
}

// Sub returns t moved back by n units of its alignment. It is equivalent to
// t.Add(-n), except that it also handles the smallest int64 correctly.
func (t Time[A]) Sub(n int64) Time[A] {
	if n == math.MinInt64 {
		return t.Add(-(n + 1)).Add(1)
	}
	return t.Add(-n)
}

// Diff returns the difference t - u in units of the shared alignment. It is
// the exact inverse of [Time.Add]: a.Add(n).Diff(a) == n for every
// representable n. Differences between values of different alignments do not
// compile.
func (t Time[A]) Diff(u Time[A]) int64 {
	return difference(t.alignment(), t.f, u.f)
}

// DayCount returns the number of days from the epoch 1970-01-01 to the date
// part of t, negative for earlier dates. It saturates for dates more than
// about 2.5e16 years from the epoch.
func (t Time[A]) DayCount() int64 {
	return dayDifference(t.f, fields{y: 1970})
}

// step advances the indicated field of f by n. Each case feeds the offset
// into the normalizer split across two adjacent fields, so that adding n to a
// canonical field value cannot overflow.
func step(a alignment, f fields, n int64) fields {
	switch a {
	case alignSecond:
		return normalize(f.y, f.month(), f.day(), int64(f.hh), int64(f.mm)+n/60, int64(f.ss)+n%60)
	case alignMinute:
		return normMinute(f.y, f.month(), f.day(), int64(f.hh)+n/60, 0, int64(f.mm)+n%60, f.ss)
	case alignHour:
		return normHour(f.y, f.month(), f.day()+n/24, 0, int64(f.hh)+n%24, f.mm, f.ss)
	case alignDay:
		return normDay(f.y, f.month(), f.day(), n, f.hh, f.mm, f.ss)
	case alignMonth:
		y, ok := addYears(f.y, n/12)
		if !ok {
			return clampFields(n > 0)
		}
		return normMonth(y, f.month()+n%12, f.day(), 0, f.hh, f.mm, f.ss)
	default: // alignYear
		y, ok := addYears(f.y, n)
		if !ok {
			return clampFields(n > 0)
		}
		f.y = y
		return f
	}
}

// difference returns f1 - f2 in units of the indicated field. The coarser
// difference is scaled up and the current field's offset added, in an order
// that keeps every intermediate value representable whenever the result is.
func difference(a alignment, f1, f2 fields) int64 {
	switch a {
	case alignSecond:
		return scaleAdd(difference(alignMinute, f1, f2), 60, int64(f1.ss)-int64(f2.ss))
	case alignMinute:
		return scaleAdd(difference(alignHour, f1, f2), 60, int64(f1.mm)-int64(f2.mm))
	case alignHour:
		return scaleAdd(difference(alignDay, f1, f2), 24, int64(f1.hh)-int64(f2.hh))
	case alignDay:
		return dayDifference(f1, f2)
	case alignMonth:
		return scaleAdd(difference(alignYear, f1, f2), 12, int64(f1.m0)-int64(f2.m0))
	default: // alignYear
		return satSub(f1.y, f2.y)
	}
}

// dayDifference returns the difference in days between the date parts of f1
// and f2. epochDays would overflow for extreme years, yet the difference
// between two such years may be small, so both dates are reduced to the same
// 400-year cycle phase first and the whole cycles are counted separately.
func dayDifference(f1, f2 fields) int64 {
	a4 := f1.y % 400
	b4 := f2.y % 400
	// In cycles rather than years: the year difference itself may overflow.
	cycles := (f1.y-a4)/400 - (f2.y-b4)/400
	delta := epochDays(a4, f1.month(), f1.day()) - epochDays(b4, f2.month(), f2.day())
	if cycles > 0 && delta < 0 {
		delta += 2 * daysPer400Years
		cycles -= 2
	} else if cycles < 0 && delta > 0 {
		delta -= 2 * daysPer400Years
		cycles += 2
	}
	return satAdd(satMul(cycles, daysPer400Years), delta)
}

// scaleAdd returns v*f + a, computed as ((v∓1)*f + a) ± f so that the
// intermediate product stays representable whenever the result is.
// Out-of-range results saturate.
func scaleAdd(v, f, a int64) int64 {
	if v < 0 {
		return satSub(satAdd(satMul(v+1, f), a), f)
	}
	return satAdd(satAdd(satMul(v-1, f), a), f)
}

func satAdd(a, b int64) int64 {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt64
	case b < 0 && s > a:
		return math.MinInt64
	}
	return s
}

func satSub(a, b int64) int64 {
	d := a - b
	switch {
	case b < 0 && d < a:
		return math.MaxInt64
	case b > 0 && d > a:
		return math.MinInt64
	}
	return d
}

func satMul(a, b int64) int64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case b == -1:
		if a == math.MinInt64 {
			return math.MaxInt64
		}
		return -a
	}
	r := a * b
	if r/b != a {
		if (a < 0) == (b < 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return r
}
