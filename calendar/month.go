// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the dates used to resolve annually recurring
// dates: months, month/day dates and dates within a specific year. Month
// lengths and leap years are provided by cloudeng.io/datetime and weekdays
// by the time package.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Month as an int, January is 1.
type Month datetime.Month

// leapYear is any leap year, used to find the longest length of a month.
const leapYear = 2024

// IsValid returns true if m is in the range 1-12.
func (m Month) IsValid() bool {
	return m >= 1 && m <= 12
}

func (m Month) String() string {
	return time.Month(m).String()
}

// MaxDays returns the largest number of days the month can have, ie.
// 29 for February.
func (m Month) MaxDays() int {
	return DaysInMonth(leapYear, m)
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	m, err := datetime.ParseNumericMonth(val)
	return Month(m), err
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	m, err := datetime.ParseMonth(strings.ToLower(val))
	return Month(m), err
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	n, err := ParseNumericMonth(val)
	if err != nil {
		if n, err = ParseMonth(val); err != nil {
			return err
		}
	}
	*m = n
	return nil
}

// DaysInMonth returns the number of days in the given month for the given year.
// It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.IsValid() {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return int(datetime.DaysInFeb(year))
}
