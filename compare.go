// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "cmp"

// Compare compares all six fields of a and b, regardless of alignment, and
// returns -1 if a is earlier than b, 0 if they coincide and +1 if a is later.
// Values of the same alignment can also be compared directly with ==.
func Compare[A1, A2 Align](a Time[A1], b Time[A2]) int {
	if c := cmp.Compare(a.f.y, b.f.y); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.m0, b.f.m0); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.d0, b.f.d0); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.hh, b.f.hh); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.mm, b.f.mm); c != 0 {
		return c
	}
	return cmp.Compare(a.f.ss, b.f.ss)
}

// Equal reports whether a and b denote the same civil time.
func Equal[A1, A2 Align](a Time[A1], b Time[A2]) bool {
	return a.f == b.f
}

// Before reports whether a is earlier than b.
func Before[A1, A2 Align](a Time[A1], b Time[A2]) bool {
	return Compare(a, b) < 0
}

// After reports whether a is later than b.
func After[A1, A2 Align](a Time[A1], b Time[A2]) bool {
	return Compare(a, b) > 0
}
