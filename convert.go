// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// Conversion between alignments. Converting to a coarser alignment truncates:
// the fields below the new alignment are forced to their minimum. Converting
// to a finer alignment keeps all fields; they were already at their minimum.
// Either way the year through second accessors of the result never disagree
// with the input above the coarser of the two alignments.

// ToSecond converts t to second alignment.
func ToSecond[A Align](t Time[A]) Second {
	return Second{f: t.f}
}

// ToMinute converts t to minute alignment.
func ToMinute[A Align](t Time[A]) Minute {
	return Minute{f: alignFields(alignMinute, t.f)}
}

// ToHour converts t to hour alignment.
func ToHour[A Align](t Time[A]) Hour {
	return Hour{f: alignFields(alignHour, t.f)}
}

// ToDay converts t to day alignment.
func ToDay[A Align](t Time[A]) Day {
	return Day{f: alignFields(alignDay, t.f)}
}

// ToMonth converts t to month alignment.
func ToMonth[A Align](t Time[A]) Month {
	return Month{f: alignFields(alignMonth, t.f)}
}

// ToYear converts t to year alignment.
func ToYear[A Align](t Time[A]) Year {
	return Year{f: alignFields(alignYear, t.f)}
}
