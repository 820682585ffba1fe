// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"time"

	"cloudeng.io/holiday"
)

// Holidays in the United States.
var (
	MLKDay          = holiday.NewNth("Martin Luther King Jr. Day", holiday.Third, time.Monday, 1)
	GroundhogDay    = holiday.NewFixed("Groundhog Day", 2, 2)
	SuperBowlSunday = holiday.NewNth("Super Bowl Sunday", holiday.First, time.Sunday, 2)
	PresidentsDay   = holiday.NewNth("President's Day", holiday.Third, time.Monday, 2)
	ValentinesDay   = holiday.NewFixed("Valentine's Day", 2, 14)
	DSTStart        = holiday.NewNth("Daylight Saving Time Starts", holiday.Second, time.Sunday, 3)
	AprilFoolsDay   = holiday.NewFixed("April Fool's Day", 4, 1)
	KentuckyDerby   = holiday.NewNth("Kentucky Derby", holiday.First, time.Saturday, 5)
	MothersDay      = holiday.NewNth("Mother's Day", holiday.Second, time.Sunday, 5)
	MemorialDay     = holiday.NewNth("Memorial Day", holiday.Last, time.Monday, 5)
	FlagDay         = holiday.NewFixed("Flag Day", 6, 14)
	FathersDay      = holiday.NewNth("Father's Day", holiday.Third, time.Sunday, 6)
	IndependenceDay = holiday.NewFixed("Independence Day", 7, 4)
	LaborDay        = holiday.NewNth("Labor Day", holiday.First, time.Monday, 9)
	ColumbusDay     = holiday.NewNth("Columbus Day", holiday.Second, time.Monday, 10)
	Halloween       = holiday.NewFixed("Halloween", 10, 31)
	VeteransDay     = holiday.NewFixed("Veteran's Day", 11, 11)
	DSTEnd          = holiday.NewNth("Daylight Saving Time Ends", holiday.First, time.Sunday, 11)
	Thanksgiving    = holiday.NewNth("Thanksgiving", holiday.Fourth, time.Thursday, 11)
)

// UnitedStates contains holidays observed in the United States.
var UnitedStates = Set{
	newHoliday(MLKDay, "martin luther king jr.", "mlk"),
	newHoliday(GroundhogDay),
	newHoliday(SuperBowlSunday, "superbowl sunday", "superbowl"),
	newHoliday(PresidentsDay),
	newHoliday(ValentinesDay),
	newHoliday(DSTStart),
	newHoliday(AprilFoolsDay),
	newHoliday(KentuckyDerby),
	newHoliday(MothersDay),
	newHoliday(MemorialDay),
	newHoliday(FlagDay),
	newHoliday(FathersDay),
	newHoliday(IndependenceDay, "july 4th", "july fourth", "fourth of july"),
	newHoliday(LaborDay),
	newHoliday(ColumbusDay),
	newHoliday(Halloween),
	newHoliday(VeteransDay),
	newHoliday(DSTEnd),
	newHoliday(Thanksgiving),
}
