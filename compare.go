// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders rules by where they fall in a year without resolving
// them: by month, then fixed dates before nth weekdays in the same month,
// fixed dates by day and nth weekdays by ordinal and then weekday (with
// Sunday first). Rules that describe the same date are ordered by name.
func Compare(a, b Rule) int {
	if c := cmp.Compare(a.month, b.month); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == Fixed {
		if c := cmp.Compare(a.day, b.day); c != 0 {
			return c
		}
	} else {
		if c := cmp.Compare(a.ordinal, b.ordinal); c != 0 {
			return c
		}
		if c := cmp.Compare(a.weekday, b.weekday); c != 0 {
			return c
		}
	}
	return strings.Compare(a.label, b.label)
}

// Sort sorts rules in place using Compare.
func Sort(rules []Rule) {
	slices.SortFunc(rules, Compare)
}
