// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides commonly observed holidays and support for
// looking them up by name.
package holidays

import (
	"slices"
	"strings"

	"cloudeng.io/holiday"
)

// Holiday is a named rule with optional alternative names that can
// be used to look it up.
type Holiday struct {
	holiday.Rule
	Aliases []string
}

func newHoliday(r holiday.Rule, aliases ...string) Holiday {
	return Holiday{Rule: r, Aliases: aliases}
}

// Set is a collection of holidays.
type Set []Holiday

// Normalize returns the form of a holiday name used for lookups: lower
// case, without apostrophes, a leading "the" or a trailing "day".
// For example "The President's Day" becomes "presidents".
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = strings.ReplaceAll(n, "'", "")
	n = strings.Join(strings.Fields(n), " ")
	n = strings.TrimPrefix(n, "the ")
	if n != "day" {
		n = strings.TrimSuffix(n, " day")
	}
	return n
}

func (h Holiday) matches(normalized string) bool {
	if Normalize(h.Name()) == normalized {
		return true
	}
	for _, a := range h.Aliases {
		if Normalize(a) == normalized {
			return true
		}
	}
	return false
}

// Lookup returns the holiday whose name, or one of whose aliases, matches
// name after both have been normalized using Normalize.
func (s Set) Lookup(name string) (Holiday, bool) {
	n := Normalize(name)
	for _, h := range s {
		if h.matches(n) {
			return h, true
		}
	}
	return Holiday{}, false
}

// Rules returns the rules for all of the holidays in the set.
func (s Set) Rules() []holiday.Rule {
	rules := make([]holiday.Rule, len(s))
	for i, h := range s {
		rules[i] = h.Rule
	}
	return rules
}

// Sorted returns a copy of the set ordered using holiday.Compare.
func (s Set) Sorted() Set {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b Holiday) int {
		return holiday.Compare(a.Rule, b.Rule)
	})
	return sorted
}

// InYear returns the dates of all of the holidays in the set for the
// specified year in chronological order.
func (s Set) InYear(year int) []holiday.Occurrence {
	return holiday.InYear(s.Rules(), year)
}

// Merge returns a new set containing the holidays in s and those in
// others. A holiday in others replaces any existing holiday with the
// same normalized name.
func (s Set) Merge(others ...Set) Set {
	merged := slices.Clone(s)
	for _, o := range others {
		for _, h := range o {
			n := Normalize(h.Name())
			idx := slices.IndexFunc(merged, func(m Holiday) bool {
				return Normalize(m.Name()) == n
			})
			if idx >= 0 {
				merged[idx] = h
				continue
			}
			merged = append(merged, h)
		}
	}
	return merged
}

// All returns all of the built in holidays.
func All() Set {
	return Global.Merge(UnitedStates)
}
