// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import (
	"iter"

	"cloudeng.io/holiday/calendar"
)

// Iterator returns the dates of a rule in successive years. Each call to
// Next or Prev performs exactly one resolution. Iterators are cheap and
// independent, a new Iterator created with the same rule and start year
// will replay the same sequence.
type Iterator struct {
	rule Rule
	year int // the year most recently resolved.
}

// Iterate returns an Iterator whose first call to Next returns the
// date of rule in startYear.
func Iterate(rule Rule, startYear int) *Iterator {
	return &Iterator{rule: rule, year: startYear - 1}
}

// Next advances to the following year and returns the rule's date in that
// year. The iterator advances even when an error is returned, so that years
// without a date (eg. Feb 29) can be skipped by calling Next again.
func (it *Iterator) Next() (calendar.CalendarDate, error) {
	it.year++
	return Resolve(it.rule, it.year)
}

// Prev steps back to the year preceding the one most recently resolved
// and returns the rule's date in that year.
func (it *Iterator) Prev() (calendar.CalendarDate, error) {
	it.year--
	return Resolve(it.rule, it.year)
}

// Year returns the year most recently resolved by Next or Prev.
func (it *Iterator) Year() int {
	return it.year
}

// All returns an unbounded sequence of the rule's dates, and associated
// errors, starting with the year following the iterator's current
// position. The sequence shares its position with the iterator.
func (it *Iterator) All() iter.Seq2[calendar.CalendarDate, error] {
	return func(yield func(calendar.CalendarDate, error) bool) {
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Between returns the dates of the rule that fall within [from, to].
// Years in which the rule has no date are skipped.
func (r Rule) Between(from, to calendar.CalendarDate) iter.Seq[calendar.CalendarDate] {
	return func(yield func(calendar.CalendarDate) bool) {
		if r.Validate() != nil {
			return
		}
		for year := from.Year; year <= to.Year; year++ {
			cd, err := r.resolve(year)
			if err != nil || cd.Before(from) || cd.After(to) {
				continue
			}
			if !yield(cd) {
				return
			}
		}
	}
}
