// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cloudeng.io/holiday"
	"cloudeng.io/holiday/calendar"
)

var ncd = calendar.NewCalendarDate

var (
	thanksgiving = holiday.NewNth("Thanksgiving", holiday.Fourth, time.Thursday, 11)
	memorialDay  = holiday.NewNth("Memorial Day", holiday.Last, time.Monday, 5)
	christmas    = holiday.NewFixed("Christmas", 12, 25)
	newYearsDay  = holiday.NewFixed("New Year's Day", 1, 1)
	leapDay      = holiday.NewFixed("Leap Day", 2, 29)
)

func ExampleRule() {
	pastover := holiday.NewNth("Pastover", holiday.First, time.Friday, 4)
	for _, year := range []int{2021, 2022} {
		cd, _ := pastover.InYear(year)
		fmt.Println(cd)
	}
	fmt.Println(pastover)
	fmt.Println(pastover.Matches(ncd(2022, 4, 1)))
	// Output:
	// 2021-04-02
	// 2022-04-01
	// First Friday in April
	// true
}

func TestResolve(t *testing.T) {
	for i, tc := range []struct {
		rule holiday.Rule
		year int
		want calendar.CalendarDate
	}{
		{holiday.NewNth("", holiday.First, time.Friday, 4), 2021, ncd(2021, 4, 2)},
		{holiday.NewNth("", holiday.First, time.Friday, 4), 2022, ncd(2022, 4, 1)},
		{thanksgiving, 2020, ncd(2020, 11, 26)},
		{thanksgiving, 2021, ncd(2021, 11, 25)},
		{memorialDay, 2020, ncd(2020, 5, 25)},
		{memorialDay, 2021, ncd(2021, 5, 31)},
		{christmas, 2020, ncd(2020, 12, 25)},
		{newYearsDay, 2020, ncd(2020, 1, 1)},
		{holiday.NewFixed("", 12, 31), 2020, ncd(2020, 12, 31)},
		{leapDay, 2024, ncd(2024, 2, 29)},
		{holiday.NewNth("", holiday.Fifth, time.Wednesday, 12), 2020, ncd(2020, 12, 30)},
		{holiday.NewNth("", holiday.Fifth, time.Wednesday, 12), 2021, ncd(2021, 12, 29)},
		{holiday.NewNth("", holiday.Last, time.Tuesday, 7), 2020, ncd(2020, 7, 28)},
		{holiday.NewNth("", holiday.Fourth, time.Tuesday, 7), 2020, ncd(2020, 7, 28)},
		{holiday.NewNth("", holiday.First, time.Wednesday, 1), 2020, ncd(2020, 1, 1)},
	} {
		got, err := holiday.Resolve(tc.rule, tc.year)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.rule, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.rule, got, tc.want)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	for i, tc := range []struct {
		rule holiday.Rule
		year int
	}{
		{leapDay, 2023},
		{leapDay, 1900},
		{holiday.NewNth("", holiday.Fifth, time.Wednesday, 12), 2022},
		{holiday.NewFixed("", 4, 31), 2024},
		{holiday.NewFixed("", 13, 1), 2024},
		{holiday.NewFixed("", 1, 0), 2024},
		{holiday.NewNth("", holiday.Ordinal(0), time.Monday, 1), 2024},
		{holiday.NewNth("", holiday.First, time.Weekday(7), 1), 2024},
		{holiday.Rule{}, 2024},
	} {
		_, err := holiday.Resolve(tc.rule, tc.year)
		if !errors.Is(err, holiday.ErrInvalidDate) {
			t.Errorf("%v: %v: expected ErrInvalidDate, got %v", i, tc.rule, err)
		}
	}
}

func TestResolveProperties(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := calendar.Month(1); month <= 12; month++ {
			for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
				cd, err := holiday.NewFixed("", month, day).InYear(year)
				if err != nil {
					t.Fatalf("%v-%v-%v: %v", year, month, day, err)
				}
				if cd.Month != month || cd.Day != day || cd.Year != year {
					t.Fatalf("%v-%v-%v: got %v", year, month, day, cd)
				}
			}
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				all := holiday.Weekdays(year, month, wd)
				if n := len(all); n != 4 && n != 5 {
					t.Fatalf("%v-%v %v: got %v occurrences", year, month, wd, n)
				}
				for ord := holiday.First; ord <= holiday.Last; ord++ {
					cd, err := holiday.NewNth("", ord, wd, month).InYear(year)
					if ord == holiday.Fifth && len(all) == 4 {
						if !errors.Is(err, holiday.ErrInvalidDate) {
							t.Fatalf("%v-%v %v %v: expected ErrInvalidDate, got %v", year, month, ord, wd, err)
						}
						continue
					}
					if err != nil {
						t.Fatalf("%v-%v %v %v: %v", year, month, ord, wd, err)
					}
					if got, want := cd.Weekday(), wd; got != want {
						t.Fatalf("%v: got %v, want %v", cd, got, want)
					}
					idx := int(ord) - 1
					if ord == holiday.Last {
						idx = len(all) - 1
						if !holiday.IsLastWeekday(cd) {
							t.Fatalf("%v: is not the last %v", cd, wd)
						}
					}
					if got, want := cd, all[idx]; got != want {
						t.Fatalf("%v %v in %v: got %v, want %v", ord, wd, month, got, want)
					}
				}
			}
		}
		cd, err := memorialDay.InYear(year)
		if err != nil {
			t.Fatal(err)
		}
		if cd.Month != 5 || cd.Day < 25 || cd.Day > 31 {
			t.Errorf("memorial day %v: not in the last week of May", cd)
		}
	}
}

func TestMatches(t *testing.T) {
	pastover := holiday.NewNth("Pastover", holiday.First, time.Friday, 4)
	april2 := holiday.NewFixed("April 2nd", 4, 2)
	for _, tc := range []struct {
		rule  holiday.Rule
		date  calendar.CalendarDate
		match bool
	}{
		{pastover, ncd(2021, 4, 2), true},
		{pastover, ncd(2022, 4, 1), true},
		{pastover, ncd(2022, 4, 2), false},
		{pastover, ncd(2021, 4, 9), false},
		{april2, ncd(2021, 4, 2), true},
		{april2, ncd(2022, 4, 2), true},
		{april2, ncd(2022, 4, 1), false},
		{leapDay, ncd(2024, 2, 29), true},
		{leapDay, ncd(2023, 3, 1), false},
		{holiday.NewNth("", holiday.Last, time.Tuesday, 7), ncd(2020, 7, 28), true},
		{holiday.NewNth("", holiday.Fourth, time.Tuesday, 7), ncd(2020, 7, 28), true},
		{holiday.NewNth("", holiday.Last, time.Tuesday, 7), ncd(2020, 7, 21), false},
	} {
		if got, want := tc.rule.Matches(tc.date), tc.match; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.rule, tc.date, got, want)
		}
	}

	last := holiday.NewNth("Last Tuesday in July", holiday.Last, time.Tuesday, 7)
	fourth := holiday.NewNth("Fourth Tuesday in July", holiday.Fourth, time.Tuesday, 7)
	if last.Equal(fourth) {
		t.Errorf("%v and %v should not be equal", last, fourth)
	}
	if !last.Equal(last.WithName("Last Tuesday in July")) {
		t.Errorf("%v should be equal to itself", last)
	}
	if last.Equal(last.WithName("other")) {
		t.Errorf("rules with different names should not be equal")
	}
}

func TestFromDate(t *testing.T) {
	r, err := holiday.FromDate("x", ncd(2020, 6, 8))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r, holiday.NewNth("x", holiday.Second, time.Monday, 6); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	r, _ = holiday.FromDate("", ncd(2020, 12, 30))
	if got, want := r.String(), "Fifth Wednesday in December"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := holiday.FromDate("", ncd(2023, 2, 29)); !errors.Is(err, holiday.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	for _, tc := range []struct {
		date calendar.CalendarDate
		last bool
	}{
		{ncd(2020, 7, 28), true},
		{ncd(2020, 7, 21), false},
		{ncd(2020, 12, 31), true},
		{ncd(2021, 1, 1), false},
		{ncd(2024, 2, 29), true},
		{ncd(2023, 2, 22), true},
	} {
		if got, want := holiday.IsLastWeekday(tc.date), tc.last; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestAfterBefore(t *testing.T) {
	fifthWed := holiday.NewNth("", holiday.Fifth, time.Wednesday, 12)
	for i, tc := range []struct {
		rule          holiday.Rule
		date          calendar.CalendarDate
		after, before calendar.CalendarDate
	}{
		{thanksgiving, ncd(2020, 11, 1), ncd(2020, 11, 26), ncd(2019, 11, 28)},
		{thanksgiving, ncd(2020, 11, 26), ncd(2020, 11, 26), ncd(2019, 11, 28)},
		{thanksgiving, ncd(2020, 11, 27), ncd(2021, 11, 25), ncd(2020, 11, 26)},
		{christmas, ncd(2020, 12, 26), ncd(2021, 12, 25), ncd(2020, 12, 25)},
		{leapDay, ncd(2021, 1, 1), ncd(2024, 2, 29), ncd(2020, 2, 29)},
		{fifthWed, ncd(2022, 1, 1), ncd(2025, 12, 31), ncd(2021, 12, 29)},
	} {
		after, err := tc.rule.After(tc.date)
		if err != nil {
			t.Errorf("%v: %v", i, err)
		}
		if got, want := after, tc.after; got != want {
			t.Errorf("%v: %v after %v: got %v, want %v", i, tc.rule, tc.date, got, want)
		}
		before, err := tc.rule.Before(tc.date)
		if err != nil {
			t.Errorf("%v: %v", i, err)
		}
		if got, want := before, tc.before; got != want {
			t.Errorf("%v: %v before %v: got %v, want %v", i, tc.rule, tc.date, got, want)
		}
	}

	if _, err := holiday.NewFixed("", 2, 30).After(ncd(2020, 1, 1)); !errors.Is(err, holiday.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	mlk := holiday.NewNth("MLK", holiday.Third, time.Monday, 1)
	veterans := holiday.NewFixed("Veterans Day", 11, 11)
	rules := []holiday.Rule{thanksgiving, christmas, veterans, mlk, newYearsDay, holiday.NewFixed("Boxing Day", 12, 26)}
	holiday.Sort(rules)
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	if got, want := fmt.Sprint(names), "[New Year's Day MLK Veterans Day Thanksgiving Christmas Boxing Day]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		a, b holiday.Rule
		cmp  int
	}{
		{holiday.NewNth("", holiday.First, time.Monday, 5), holiday.NewNth("", holiday.Second, time.Sunday, 5), -1},
		{holiday.NewNth("", holiday.Second, time.Sunday, 5), holiday.NewNth("", holiday.Second, time.Monday, 5), -1},
		{holiday.NewNth("", holiday.Last, time.Monday, 5), holiday.NewNth("", holiday.Fourth, time.Monday, 5), 1},
		{holiday.NewFixed("a", 5, 1), holiday.NewFixed("b", 5, 1), -1},
		{holiday.NewFixed("a", 5, 31), holiday.NewNth("", holiday.First, time.Monday, 5), -1},
		{holiday.NewNth("", holiday.First, time.Monday, 6), holiday.NewFixed("a", 5, 31), 1},
		{christmas, christmas, 0},
	} {
		if got, want := holiday.Compare(tc.a, tc.b), tc.cmp; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}
