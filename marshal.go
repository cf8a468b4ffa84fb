// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// MarshalText implements the encoding.TextMarshaler interface. The civil time
// is formatted with the canonical layout of its alignment, so a [Day]
// marshals as "2006-01-02" and a [Second] as "2006-01-02T15:04:05".
func (t Time[A]) MarshalText() ([]byte, error) {
	return t.AppendFormat(nil, t.alignment().layout()), nil
}

// AppendText is like MarshalText, but appends to b and returns the extended
// buffer.
func (t Time[A]) AppendText(b []byte) ([]byte, error) {
	return t.AppendFormat(b, t.alignment().layout()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The civil
// time must be in the canonical layout of its alignment.
func (t *Time[A]) UnmarshalText(b []byte) error {
	v, err := Parse[A](t.alignment().layout(), string(b))
	if err == nil {
		*t = v
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The civil
// time is represented as a [binary.Varint] for the year, followed by one byte
// each for month-1, day-1, hour, minute and second.
func (t Time[A]) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(nil)
}

// AppendBinary is like MarshalBinary, but appends to b and returns the
// extended buffer.
func (t Time[A]) AppendBinary(b []byte) ([]byte, error) {
	b = binary.AppendVarint(b, t.f.y)
	return append(b, byte(t.f.m0), byte(t.f.d0), byte(t.f.hh), byte(t.f.mm), byte(t.f.ss)), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. It
// rejects encodings that do not denote a canonical civil time of t's
// alignment.
func (t *Time[A]) UnmarshalBinary(b []byte) error {
	y, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded civil time truncated")
	case i < 0:
		return errors.New("encoded year overflows int64")
	case len(b)-i != 5:
		return errors.New("encoded civil time has wrong length")
	}
	f := fields{y: y, m0: int8(b[i]), d0: int8(b[i+1]), hh: int8(b[i+2]), mm: int8(b[i+3]), ss: int8(b[i+4])}
	if f.m0 < 0 || f.m0 > 11 ||
		f.d0 < 0 || int64(f.d0) >= daysIn(time.Month(f.month()), f.y) ||
		f.hh < 0 || f.hh > 23 ||
		f.mm < 0 || f.mm > 59 ||
		f.ss < 0 || f.ss > 59 {
		return errors.New("encoded civil time has field out of range")
	}
	if alignFields(t.alignment(), f) != f {
		return errors.New("encoded civil time does not match alignment")
	}
	t.f = f
	return nil
}

// Value implements the driver.Valuer interface. The civil time is stored as
// its canonical text form.
func (t Time[A]) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements the sql.Scanner interface. It accepts strings and byte
// slices in the canonical layout of t's alignment.
func (t *Time[A]) Scan(src any) error {
	switch src := src.(type) {
	case string:
		return t.UnmarshalText([]byte(src))
	case []byte:
		return t.UnmarshalText(src)
	default:
		return fmt.Errorf("cannot scan civil time from %T", src)
	}
}
