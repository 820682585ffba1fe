// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
// No validation is performed, use IsValid to check the result.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the CalendarDate for t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// Today returns the current date in the local time zone.
func Today() CalendarDate {
	return CalendarDateFromTime(time.Now())
}

// Date returns the Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return Date{cd.Month, cd.Day}
}

// IsValid returns true if the day exists in the month for the date's year.
func (cd CalendarDate) IsValid() bool {
	return cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// Time returns the time.Time for midnight UTC on the date.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same as
// or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	if c := cmp.Compare(cd.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(cd.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(cd.Day, o.Day)
}

// Before returns true if cd is before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.Compare(o) < 0
}

// After returns true if cd is after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.Compare(o) > 0
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.Time().AddDate(0, 0, n))
}

// Tomorrow returns the date of the next day, 12/31 wraps to 1/1 of the
// following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day, 1/1 wraps to 12/31 of the
// previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.AddDays(-1)
}

const secondsPerDay = 24 * 60 * 60

// DaysUntil returns the number of days from cd to o, which is negative
// if o is before cd. Seconds are used rather than a time.Duration, which
// is limited to about 292 years.
func (cd CalendarDate) DaysUntil(o CalendarDate) int {
	return int((o.Time().Unix() - cd.Time().Unix()) / secondsPerDay)
}

// FirstDayOfMonth returns the first day of the date's month.
func (cd CalendarDate) FirstDayOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: 1}
}

// LastDayOfMonth returns the last day of the date's month, taking leap
// years into account.
func (cd CalendarDate) LastDayOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: DaysInMonth(cd.Year, cd.Month)}
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Parse parses a date in ISO 8601 format (2006-01-02), checking that the day
// exists in the month for that year. The year must have at least four
// digits, so years before 1000 are zero padded as for String (0999-03-01).
// Negative years are not supported.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 || len(parts[0]) < 4 {
		return fmt.Errorf("invalid date %q, expected format '2006-01-02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	d := CalendarDate{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return fmt.Errorf("invalid day for %v %v: %d", time.Month(month), year, day)
	}
	*cd = d
	return nil
}

// CalendarDateList is a list of CalendarDate values.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
