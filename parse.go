// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/holiday/calendar"
)

// String returns the rule in the format accepted by Parse, eg.
// "First Friday in April" or "April 02".
func (r Rule) String() string {
	switch r.kind {
	case Fixed:
		return calendar.Date{Month: r.month, Day: r.day}.String()
	case NthWeekday:
		return fmt.Sprintf("%v %v in %v", r.ordinal, r.weekday, r.month)
	}
	return "invalid rule"
}

var ordinalSpellings = map[string]Ordinal{
	"first": First, "1st": First,
	"second": Second, "2nd": Second,
	"third": Third, "3rd": Third,
	"fourth": Fourth, "4th": Fourth,
	"fifth": Fifth, "5th": Fifth,
	"last": Last,
}

// ParseOrdinal parses "first" through "fifth", "1st" through "5th"
// and "last" in either lower or upper case.
func ParseOrdinal(val string) (Ordinal, error) {
	if o, ok := ordinalSpellings[strings.ToLower(val)]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("invalid ordinal: %q", val)
}

const expectedRuleFormats = "'Jan-02', '01/02', 'January 02' or '<first..fifth|last> <weekday> [in|of] <month>'"

// Parse parses a rule in any of the following formats:
//
//	Jan-02, 01/02                  a fixed date
//	April 02                       a fixed date, as returned by String
//	first friday in april          the nth weekday of a month
//	4th thu nov, last mon of may   ditto, with abbreviations
//
// The parsed rule is validated before being returned.
func Parse(label, text string) (Rule, error) {
	r, err := parse(label, text)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid rule %q, expected %s: %w", text, expectedRuleFormats, err)
	}
	if err := r.Validate(); err != nil {
		return Rule{}, fmt.Errorf("invalid rule %q: %w", text, err)
	}
	return r, nil
}

func parse(label, text string) (Rule, error) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		var d calendar.Date
		if err := d.Parse(fields[0]); err != nil {
			return Rule{}, err
		}
		return NewFixed(label, d.Month, d.Day), nil
	case 2:
		month, err := calendar.ParseMonth(fields[0])
		if err != nil {
			return Rule{}, err
		}
		day, err := strconv.Atoi(fields[1])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid day: %s", fields[1])
		}
		return NewFixed(label, month, day), nil
	case 4:
		if p := strings.ToLower(fields[2]); p != "in" && p != "of" {
			return Rule{}, fmt.Errorf("unexpected %q", fields[2])
		}
		fields = append(fields[:2], fields[3])
		fallthrough
	case 3:
		ordinal, err := ParseOrdinal(fields[0])
		if err != nil {
			return Rule{}, err
		}
		weekday, err := calendar.ParseWeekday(fields[1])
		if err != nil {
			return Rule{}, err
		}
		var month calendar.Month
		if err := month.Parse(fields[2]); err != nil {
			return Rule{}, err
		}
		return NewNth(label, ordinal, weekday, month), nil
	}
	return Rule{}, fmt.Errorf("wrong number of words: %d", len(fields))
}

// MustParse is like Parse but panics on error.
func MustParse(label, text string) Rule {
	r, err := Parse(label, text)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalText implements encoding.TextMarshaler. Only the date description
// is marshaled, not the label.
func (r Rule) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The rule's existing
// label is retained.
func (r *Rule) UnmarshalText(text []byte) error {
	nr, err := Parse(r.label, string(text))
	if err != nil {
		return err
	}
	*r = nr
	return nil
}
