// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import (
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/holiday/calendar"
)

// Occurrence is the date of a rule in a particular year.
type Occurrence struct {
	Rule Rule
	Date calendar.CalendarDate
}

// Less returns true if o occurs before x, occurrences on the same date
// are ordered using Compare.
func (o Occurrence) Less(x Occurrence) bool {
	if c := o.Date.Compare(x.Date); c != 0 {
		return c < 0
	}
	return Compare(o.Rule, x.Rule) < 0
}

func (o Occurrence) String() string {
	return o.Date.String() + " " + o.Rule.Name()
}

// Upcoming returns an unbounded, chronologically ordered, sequence of
// the occurrences of all of the supplied rules on or after from. Rules
// that are invalid or never occur are ignored.
func Upcoming(rules []Rule, from calendar.CalendarDate) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		h := make(heap.Heap[Occurrence], 0, len(rules))
		for _, r := range rules {
			if cd, err := r.After(from); err == nil {
				h.Push(Occurrence{Rule: r, Date: cd})
			}
		}
		for h.Len() > 0 {
			next := h.Pop()
			if !yield(next) {
				return
			}
			if cd, err := next.Rule.After(next.Date.Tomorrow()); err == nil {
				h.Push(Occurrence{Rule: next.Rule, Date: cd})
			}
		}
	}
}

// InYear returns the occurrences of all of the rules in the specified
// year in chronological order. Rules with no date in that year are
// omitted.
func InYear(rules []Rule, year int) []Occurrence {
	from := calendar.NewCalendarDate(year, 1, 1)
	var out []Occurrence
	for o := range Upcoming(rules, from) {
		if o.Date.Year != year {
			break
		}
		out = append(out, o)
	}
	return out
}
