// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import "cloudeng.io/holiday"

// Globally recognized holidays.
var (
	NewYearsDay   = holiday.NewFixed("New Year's Day", 1, 1)
	StPatricksDay = holiday.NewFixed("St. Patrick's Day", 3, 17)
	ChristmasEve  = holiday.NewFixed("Christmas Eve", 12, 24)
	Christmas     = holiday.NewFixed("Christmas", 12, 25)
	NewYearsEve   = holiday.NewFixed("New Year's Eve", 12, 31)
)

// Global contains the globally recognized holidays.
var Global = Set{
	newHoliday(NewYearsDay),
	newHoliday(StPatricksDay, "st patricks", "saint patricks"),
	newHoliday(ChristmasEve),
	newHoliday(Christmas, "xmas"),
	newHoliday(NewYearsEve),
}
