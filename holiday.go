// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holiday provides support for annually repeating dates such as
// holidays. A Rule is either a fixed date (eg. April 1) or the nth weekday
// of a month (eg. the fourth Thursday in November) and can be resolved to
// a concrete calendar.CalendarDate for any year:
//
//	pastover := holiday.NewNth("Pastover", holiday.First, time.Friday, 4)
//	pastover.InYear(2021) // 2021-04-02
//	pastover.InYear(2022) // 2022-04-01
//
// Rules are immutable values and all of the functions in this package are
// safe for concurrent use.
package holiday

import (
	"fmt"
	"time"

	"cloudeng.io/holiday/calendar"
)

// Kind distinguishes the two forms of Rule.
type Kind int

const (
	// Fixed is a fixed month and day, eg. "October 31".
	Fixed Kind = iota + 1
	// NthWeekday is the nth occurrence of a weekday in a month,
	// eg. "Fourth Thursday in November".
	NthWeekday
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case NthWeekday:
		return "nth-weekday"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Ordinal selects which of the matching weekdays in a month is referred
// to by a NthWeekday rule.
type Ordinal int

const (
	First Ordinal = iota + 1
	Second
	Third
	Fourth
	// Fifth only resolves in months that contain five of the
	// requested weekday.
	Fifth
	// Last is the final matching weekday of the month, whether
	// that is the fourth or the fifth.
	Last
)

var ordinalNames = []string{"", "First", "Second", "Third", "Fourth", "Fifth", "Last"}

// IsValid returns true if o is one of the defined ordinals.
func (o Ordinal) IsValid() bool {
	return o >= First && o <= Last
}

func (o Ordinal) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("Ordinal(%d)", int(o))
	}
	return ordinalNames[o]
}

// Rule represents an annually repeating calendar date. The zero value
// is not a valid rule, use NewFixed, NewNth, FromDate or Parse to create one.
type Rule struct {
	label   string
	kind    Kind
	month   calendar.Month
	day     int
	ordinal Ordinal
	weekday time.Weekday
}

// NewFixed returns a Rule for a fixed month and day. Feb 29 is allowed and
// only resolves in leap years. Use Validate to check the month and day.
func NewFixed(label string, month calendar.Month, day int) Rule {
	return Rule{label: label, kind: Fixed, month: month, day: day}
}

// NewNth returns a Rule for the nth weekday of the month.
// Use Validate to check the arguments.
func NewNth(label string, ordinal Ordinal, weekday time.Weekday, month calendar.Month) Rule {
	return Rule{label: label, kind: NthWeekday, month: month, ordinal: ordinal, weekday: weekday}
}

// Name returns the label of the rule.
func (r Rule) Name() string { return r.label }

// Kind returns the form of the rule.
func (r Rule) Kind() Kind { return r.kind }

// Month returns the month of the rule.
func (r Rule) Month() calendar.Month { return r.month }

// Day returns the day of the month for a Fixed rule and 0 otherwise.
func (r Rule) Day() int { return r.day }

// Ordinal returns the ordinal for a NthWeekday rule and 0 otherwise.
func (r Rule) Ordinal() Ordinal { return r.ordinal }

// Weekday returns the weekday for a NthWeekday rule, Sunday for a Fixed rule.
func (r Rule) Weekday() time.Weekday { return r.weekday }

// WithName returns a copy of the rule with a new label.
func (r Rule) WithName(label string) Rule {
	r.label = label
	return r
}

// Validate returns an error wrapping ErrInvalidDate if the rule can never
// be resolved, ie. has an invalid month, a day that does not exist in the
// month, an unknown ordinal or weekday.
func (r Rule) Validate() error {
	if !r.month.IsValid() {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, r.month)
	}
	switch r.kind {
	case Fixed:
		if d := (calendar.Date{Month: r.month, Day: r.day}); !d.IsValid() {
			return fmt.Errorf("%w: %v does not have a day %d", ErrInvalidDate, r.month, r.day)
		}
	case NthWeekday:
		if !r.ordinal.IsValid() {
			return fmt.Errorf("%w: %v", ErrInvalidDate, r.ordinal)
		}
		if r.weekday < time.Sunday || r.weekday > time.Saturday {
			return fmt.Errorf("%w: %v", ErrInvalidDate, r.weekday)
		}
	default:
		return fmt.Errorf("%w: %v rule", ErrInvalidDate, r.kind)
	}
	return nil
}

// Evaluate implements calendar.DynamicDate.
func (r Rule) Evaluate(year int) (calendar.CalendarDate, error) {
	return Resolve(r, year)
}

// Equal returns true if r and o have the same label and describe the
// same date. Note that two different rules may resolve to the same date
// in some years, eg. the fourth and last Tuesday in July 2020.
func (r Rule) Equal(o Rule) bool {
	return r == o
}
