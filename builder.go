// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// A Builder collects optional calendar fields before constructing a civil
// time. Fields that are not set default to the epoch: year 1970, month 1,
// day 1, 00:00:00. The zero Builder is ready to use and builds the epoch.
//
// Like the constructors, the Build methods normalize out-of-range fields.
type Builder struct {
	year, month, day          int64
	hour, min, sec            int64
	hasYear, hasMonth, hasDay bool
}

// Year sets the year field.
func (b Builder) Year(year int64) Builder {
	b.year, b.hasYear = year, true
	return b
}

// Month sets the month field.
func (b Builder) Month(month int64) Builder {
	b.month, b.hasMonth = month, true
	return b
}

// Day sets the day field.
func (b Builder) Day(day int64) Builder {
	b.day, b.hasDay = day, true
	return b
}

// Hour sets the hour field.
func (b Builder) Hour(hour int64) Builder {
	b.hour = hour
	return b
}

// Minute sets the minute field.
func (b Builder) Minute(min int64) Builder {
	b.min = min
	return b
}

// Second sets the second field.
func (b Builder) Second(sec int64) Builder {
	b.sec = sec
	return b
}

func (b Builder) ymdhms() (year, month, day, hour, min, sec int64) {
	year, month, day = 1970, 1, 1
	if b.hasYear {
		year = b.year
	}
	if b.hasMonth {
		month = b.month
	}
	if b.hasDay {
		day = b.day
	}
	return year, month, day, b.hour, b.min, b.sec
}

// Build constructs the civil time of the requested alignment from b.
func Build[A Align](b Builder) Time[A] {
	return of[A](b.ymdhms())
}

// BuildSecond constructs a Second from b.
func (b Builder) BuildSecond() Second { return Build[SecondAlign](b) }

// BuildMinute constructs a Minute from b.
func (b Builder) BuildMinute() Minute { return Build[MinuteAlign](b) }

// BuildHour constructs an Hour from b.
func (b Builder) BuildHour() Hour { return Build[HourAlign](b) }

// BuildDay constructs a Day from b.
func (b Builder) BuildDay() Day { return Build[DayAlign](b) }

// BuildMonth constructs a Month from b.
func (b Builder) BuildMonth() Month { return Build[MonthAlign](b) }

// BuildYear constructs a Year from b.
func (b Builder) BuildYear() Year { return Build[YearAlign](b) }
