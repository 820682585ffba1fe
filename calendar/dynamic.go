// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "strings"

// DynamicDate is a date that varies by year and is intended to be
// evaluated once per year to calculate events such as holidays.
// Evaluate returns an error if there is no such date in the given year.
type DynamicDate interface {
	Name() string
	Evaluate(year int) (CalendarDate, error)
}

// DynamicDateList is a list of DynamicDate values.
type DynamicDateList []DynamicDate

func (dl DynamicDateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.Name())
	}
	return out.String()
}

// Evaluate returns the dates for the given year of all of the entries
// in the list that have a date in that year.
func (dl DynamicDateList) Evaluate(year int) CalendarDateList {
	result := make(CalendarDateList, 0, len(dl))
	for _, f := range dl {
		if cd, err := f.Evaluate(year); err == nil {
			result = append(result, cd)
		}
	}
	return result
}
