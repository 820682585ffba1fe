// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseWeekday parses a weekday name, or any unambiguous prefix of at
// least two letters ("mo", "Tue", "thurs"), in either lower or upper case.
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) < 2 {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	found := -1
	for i, wd := range weekdays {
		if !strings.HasPrefix(wd, lc) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("ambiguous weekday: %q", val)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	return time.Weekday(found), nil
}
