// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math"
	"time"
)

// The date computations work on a signed day count relative to the epoch
// 1970-01-01 (day 0). They use the era-based closed form described in
// https://howardhinnant.github.io/date_algorithms.html: the year is shifted
// so that March opens a synthetic year, which moves the leap day to the end
// of that year, and whole 400-year eras of 146097 days each are counted
// arithmetically. Division is corrected to round toward negative infinity, so
// the formulas hold exactly for dates before the epoch as well.

const (
	daysPer400Years = 146097

	// Day count of 0000-03-01, the start of era 0.
	epochShift = 719468
)

// daysBefore[m] counts the number of days in a non-leap year before month m+1
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int16{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func isLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn counts the number of days in a given month.
func daysIn(m time.Month, year int64) int64 {
	if m == time.February && isLeap(year) {
		return 29
	}
	return int64(daysBefore[m] - daysBefore[m-1])
}

// floorDiv divides a by b, rounding toward negative infinity. Go's / rounds
// toward zero, which is the wrong direction for the era formulas when a is
// negative.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// epochDays maps a date to the number of days since 1970-01-01. The month may
// be outside [1,12] and the day may be outside the month, including zero or
// negative; both cascade into adjacent months and years. The caller must keep
// the inputs small enough that the count fits in an int64; the normalizer
// guarantees that by reducing years mod 400 first.
func epochDays(year, month, day int64) int64 {
	if month < 1 || month > 12 {
		cy := floorDiv(month-1, 12)
		year += cy
		month -= cy * 12
	}
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400 // [0,399]
	var mp int64
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - epochShift
}

// epochDate is the inverse of epochDays for canonical dates: it maps a day
// count to the unique (year, month, day) with month in [1,12] and day valid
// for that month.
func epochDate(days int64) (year, month, day int64) {
	z := days + epochShift
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years // [0,146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		month = mp + 3
	} else {
		month = mp - 9
	}
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

// The saturation bounds: the maximum and minimum canonical civil times.
var (
	fieldsMax = fields{y: math.MaxInt64, m0: 11, d0: 30, hh: 23, mm: 59, ss: 59}
	fieldsMin = fields{y: math.MinInt64, m0: 0, d0: 0, hh: 0, mm: 0, ss: 0}
)

func clampFields(positive bool) fields {
	if positive {
		return fieldsMax
	}
	return fieldsMin
}

// addYears adds a year delta, reporting whether the sum is representable.
func addYears(y, n int64) (int64, bool) {
	s := y + n
	if (n > 0 && s < y) || (n < 0 && s > y) {
		return s, false
	}
	return s, true
}

// normalize converts an arbitrary sextuple into canonical fields. Each stage
// folds the excess of one field into the next coarser one, least-significant
// first; carries are handed on in separate day/hour chunks so that no
// intermediate sum can overflow. Inputs that are already canonical take the
// fast path and come back unchanged.
func normalize(y, m, d, hh, mm, ss int64) fields {
	if 0 <= ss && ss < 60 {
		if 0 <= mm && mm < 60 {
			if 0 <= hh && hh < 24 {
				if 1 <= m && m <= 12 && 1 <= d && d <= 28 {
					// 28 days works in every month.
					return fields{y: y, m0: int8(m - 1), d0: int8(d - 1), hh: int8(hh), mm: int8(mm), ss: int8(ss)}
				}
				return normMonth(y, m, d, 0, int8(hh), int8(mm), int8(ss))
			}
			return normHour(y, m, d, hh/24, hh%24, int8(mm), int8(ss))
		}
		return normMinute(y, m, d, hh, mm/60, mm%60, int8(ss))
	}
	cm := ss / 60
	ss %= 60
	if ss < 0 {
		cm--
		ss += 60
	}
	return normMinute(y, m, d, hh, mm/60+cm/60, mm%60+cm%60, int8(ss))
}

// normMinute normalizes the minute field, with ch carrying whole hours from
// the second stage.
func normMinute(y, m, d, hh, ch, mm int64, ss int8) fields {
	ch += mm / 60
	mm %= 60
	if mm < 0 {
		ch--
		mm += 60
	}
	return normHour(y, m, d, hh/24+ch/24, hh%24+ch%24, int8(mm), ss)
}

// normHour normalizes the hour field, with cd carrying whole days from the
// finer stages.
func normHour(y, m, d, cd, hh int64, mm, ss int8) fields {
	cd += hh / 24
	hh %= 24
	if hh < 0 {
		cd--
		hh += 24
	}
	return normMonth(y, m, d, cd, int8(hh), mm, ss)
}

// normMonth normalizes the month field into [1,12], carrying whole years with
// floor semantics: month 0 is December of the previous year.
func normMonth(y, m, d, cd int64, hh, mm, ss int8) fields {
	if m != 12 {
		cy := m / 12
		m %= 12
		if m <= 0 {
			cy--
			m += 12
		}
		var ok bool
		if y, ok = addYears(y, cy); !ok {
			return clampFields(cy > 0)
		}
	}
	return normDay(y, m, d, cd, hh, mm, ss)
}

// normDay resolves the day field by a single day-count round trip, which
// fixes day-of-month overflow and any knock-on month/year change in one pass.
// The round trip runs on a year reduced mod 400: the Gregorian calendar
// repeats exactly every 400 years (146097 days), so whole 400-year chunks of
// the day offset can be carried as years directly, and the codec only ever
// sees values it cannot overflow on.
func normDay(y, m, d, cd int64, hh, mm, ss int8) fields {
	yr := y % 400
	c4 := cd / daysPer400Years
	cd %= daysPer400Years
	c4 += d / daysPer400Years
	d = d%daysPer400Years + cd

	ny, nm, nd := epochDate(epochDays(yr, m, 0) + d)
	dy := 400*c4 + (ny - yr)
	y, ok := addYears(y, dy)
	if !ok {
		return clampFields(dy > 0)
	}
	return fields{y: y, m0: int8(nm - 1), d0: int8(nd - 1), hh: hh, mm: mm, ss: ss}
}
