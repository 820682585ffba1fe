// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import (
	"fmt"
	"time"

	"cloudeng.io/holiday/calendar"
)

// searchYears bounds the searches performed by After and Before, it is
// the length of the Gregorian calendar cycle.
const searchYears = 400

// Resolve returns the date of the rule in the specified year. An error
// wrapping ErrInvalidDate is returned if there is no such date.
func Resolve(rule Rule, year int) (calendar.CalendarDate, error) {
	if err := rule.Validate(); err != nil {
		return calendar.CalendarDate{}, err
	}
	return rule.resolve(year)
}

// InYear is the same as Resolve(r, year).
func (r Rule) InYear(year int) (calendar.CalendarDate, error) {
	return Resolve(r, year)
}

// resolve assumes that the rule is valid.
func (r Rule) resolve(year int) (calendar.CalendarDate, error) {
	if r.kind == Fixed {
		cd := calendar.NewCalendarDate(year, r.month, r.day)
		if !cd.IsValid() {
			return calendar.CalendarDate{}, fmt.Errorf("%w: %v %d %d", ErrInvalidDate, r.month, r.day, year)
		}
		return cd, nil
	}
	days := calendar.DaysInMonth(year, r.month)
	// The matching weekdays are first, first+7, ... up to days, of which
	// there are always 4 or 5.
	startOfMonth := calendar.NewCalendarDate(year, r.month, 1).Weekday()
	first := 1 + (int(r.weekday)-int(startOfMonth)+7)%7
	var day int
	if r.ordinal == Last {
		day = first + 7*((days-first)/7)
	} else {
		day = first + 7*(int(r.ordinal)-1)
	}
	if day > days {
		return calendar.CalendarDate{}, fmt.Errorf("%w: %v has no %v %v in %d", ErrInvalidDate, r.month, r.ordinal, r.weekday, year)
	}
	return calendar.NewCalendarDate(year, r.month, day), nil
}

// Matches returns true if date is the date of the rule in date's year,
// ie. iff Resolve(r, date.Year) == date. The rule is resolved afresh for
// every call.
func (r Rule) Matches(date calendar.CalendarDate) bool {
	cd, err := Resolve(r, date.Year)
	return err == nil && cd == date
}

// After returns the first occurrence of the rule on or after date. Years
// in which the rule has no date, eg. Feb 29, are skipped.
func (r Rule) After(date calendar.CalendarDate) (calendar.CalendarDate, error) {
	if err := r.Validate(); err != nil {
		return calendar.CalendarDate{}, err
	}
	for year := date.Year; year < date.Year+searchYears; year++ {
		cd, err := r.resolve(year)
		if err == nil && !cd.Before(date) {
			return cd, nil
		}
	}
	return calendar.CalendarDate{}, fmt.Errorf("%w: %v on or after %v", ErrNoOccurrence, r, date)
}

// Before returns the last occurrence of the rule strictly before date.
// Years in which the rule has no date are skipped.
func (r Rule) Before(date calendar.CalendarDate) (calendar.CalendarDate, error) {
	if err := r.Validate(); err != nil {
		return calendar.CalendarDate{}, err
	}
	for year := date.Year; year > date.Year-searchYears; year-- {
		cd, err := r.resolve(year)
		if err == nil && cd.Before(date) {
			return cd, nil
		}
	}
	return calendar.CalendarDate{}, fmt.Errorf("%w: %v before %v", ErrNoOccurrence, r, date)
}

// FromDate returns the NthWeekday rule that date satisfies, for example,
// 2020-06-08 is the Second Monday in June.
func FromDate(label string, date calendar.CalendarDate) (Rule, error) {
	if !date.IsValid() {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidDate, date)
	}
	return NewNth(label, Ordinal((date.Day-1)/7+1), date.Weekday(), date.Month), nil
}

// IsLastWeekday returns true if date is the last occurrence of its
// weekday in its month.
func IsLastWeekday(date calendar.CalendarDate) bool {
	return date.IsValid() && date.Day+7 > calendar.DaysInMonth(date.Year, date.Month)
}

// Weekdays returns the dates in the given month that fall on weekday in
// ascending order.
func Weekdays(year int, month calendar.Month, weekday time.Weekday) calendar.CalendarDateList {
	var dates calendar.CalendarDateList
	for ord := First; ord <= Fifth; ord++ {
		cd, err := Resolve(NewNth("", ord, weekday, month), year)
		if err != nil {
			break
		}
		dates = append(dates, cd)
	}
	return dates
}
