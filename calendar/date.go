// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Date as Month and Day, ie. a date that recurs every year. Use
// CalendarDate to specify a year.
type Date struct {
	Month Month
	Day   int
}

// NewDate returns the Date (month and day) of when.
func NewDate(when time.Time) Date {
	d := datetime.DateFromTime(when)
	return Date{Month: Month(d.Month()), Day: d.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%s %02d", time.Month(d.Month), d.Day)
}

// IsValid returns true if the day exists in the month in at least one year,
// that is, Feb 29 is considered valid.
func (d Date) IsValid() bool {
	return d.Day >= 1 && d.Day <= d.Month.MaxDays()
}

// In returns the CalendarDate for d in the specified year.
func (d Date) In(year int) CalendarDate {
	return CalendarDate{Year: year, Month: d.Month, Day: d.Day}
}

func parseDay(month Month, val string) (int, error) {
	day, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid day: %s", val)
	}
	if day < 1 || day > month.MaxDays() {
		return 0, fmt.Errorf("invalid day for %v: %d", month, day)
	}
	return day, nil
}

// ParseNumericDate parses a numeric date in the format '01/02' with
// error checking for a valid month and day. Feb 29 is accepted.
func ParseNumericDate(val string) (Date, error) {
	parts := strings.Split(val, "/")
	if len(parts) != 2 {
		return Date{}, fmt.Errorf("invalid value %q, expected format '01/02'", val)
	}
	month, err := ParseNumericMonth(parts[0])
	if err != nil {
		return Date{}, err
	}
	day, err := parseDay(month, parts[1])
	if err != nil {
		return Date{}, err
	}
	return Date{Month: month, Day: day}, nil
}

// ParseDate parses a date in the format 'Jan-02' with error checking
// for a valid month and day. Feb 29 is accepted.
func ParseDate(val string) (Date, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 2 {
		return Date{}, fmt.Errorf("invalid date %q, expected format 'Jan-02'", val)
	}
	month, err := ParseMonth(parts[0])
	if err != nil {
		return Date{}, err
	}
	day, err := parseDay(month, parts[1])
	if err != nil {
		return Date{}, err
	}
	return Date{Month: month, Day: day}, nil
}

const expectedDateFormats = "01/02 or Jan-02"

// Parse date in formats '01/02' or 'Jan-02'.
func (d *Date) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	var (
		date Date
		err  error
	)
	switch {
	case strings.Contains(val, "/"):
		date, err = ParseNumericDate(val)
	case strings.Contains(val, "-"):
		date, err = ParseDate(val)
	default:
		return fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, err)
	}
	*d = date
	return nil
}
