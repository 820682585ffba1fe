// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/holiday"
	"cloudeng.io/holiday/calendar"
	"cloudeng.io/holiday/holidays"
	"cloudeng.io/holiday/ruleset"
	"cloudeng.io/logging/ctxlog"
)

// lookup returns the rule for a holiday name, or for a description
// of a date as accepted by holiday.Parse.
func lookup(set holidays.Set, arg string) (holiday.Rule, error) {
	if h, ok := set.Lookup(arg); ok {
		return h.Rule, nil
	}
	rule, err := holiday.Parse(arg, arg)
	if err != nil {
		return holiday.Rule{}, fmt.Errorf("unknown holiday: %q: %w", arg, err)
	}
	return rule, nil
}

func until(ctx context.Context, values any, args []string) error {
	fv := values.(*untilFlags)
	ctx, set, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	now := today()
	errs := errors.M{}
	for _, arg := range args {
		var target calendar.CalendarDate
		name := arg
		if err := target.Parse(arg); err != nil {
			rule, err := lookup(set, arg)
			if err != nil {
				errs.Append(err)
				continue
			}
			if target, err = rule.After(now); err != nil {
				errs.Append(err)
				continue
			}
			name = rule.Name()
		}
		ctxlog.Logger(ctx).Info("until", "holiday", name, "date", target.String())
		fmt.Fprintf(stdout, "Days until %s: %d\n", name, now.DaysUntil(target))
	}
	return errs.Err()
}

func list(ctx context.Context, values any, _ []string) error {
	fv := values.(*listFlags)
	_, set, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	year := fv.Year
	if year == 0 {
		year = today().Year
	}
	for _, o := range set.InYear(year) {
		fmt.Fprintf(stdout, "%v %-9v %v\n", o.Date, o.Date.Weekday(), o.Rule.Name())
	}
	return nil
}

func next(ctx context.Context, values any, _ []string) error {
	fv := values.(*nextFlags)
	_, set, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	if fv.Count <= 0 {
		return nil
	}
	now := today()
	n := 0
	for o := range holiday.Upcoming(set.Rules(), now) {
		fmt.Fprintf(stdout, "%v %-9v %v (%d days)\n", o.Date, o.Date.Weekday(), o.Rule.Name(), now.DaysUntil(o.Date))
		if n++; n == fv.Count {
			break
		}
	}
	return nil
}

func when(ctx context.Context, values any, args []string) error {
	fv := values.(*whenFlags)
	ctx, set, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	rule, err := lookup(set, args[0])
	if err != nil {
		return err
	}
	from := fv.From
	if from == 0 {
		from = today().Year
	}
	fmt.Fprintf(stdout, "%v: %v\n", rule.Name(), rule)
	it := holiday.Iterate(rule, from)
	for range fv.Count {
		cd, err := it.Next()
		if err != nil {
			ctxlog.Logger(ctx).Info("no date", "holiday", rule.Name(), "year", it.Year(), "error", err)
			fmt.Fprintf(stdout, "%04d       -\n", it.Year())
			continue
		}
		fmt.Fprintf(stdout, "%v %v\n", cd, cd.Weekday())
	}
	return nil
}

func export(ctx context.Context, values any, _ []string) error {
	fv := values.(*exportFlags)
	_, set, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	buf, err := ruleset.Marshal(set.Sorted())
	if err != nil {
		return err
	}
	_, err = stdout.Write(buf)
	return err
}
