// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command daysto reports on the dates of holidays, for example:
//
//	daysto until thanksgiving christmas
//	daysto list --year=2027
//	daysto next --count=3
//	daysto when "last monday in may" --count=10
//
// Holidays may be specified by name, by a description of the date such as
// "first friday in april" or "Mar-14", or, for until, as a specific date
// in 2006-01-02 format. Additional holidays can be defined in a YAML file
// specified with --config.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/holiday/calendar"
	"cloudeng.io/holiday/holidays"
	"cloudeng.io/holiday/ruleset"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: daysto
summary: report on the dates of holidays and other annually repeating dates
commands:
  - name: until
    summary: print the number of days until each of the specified holidays
    arguments:
      - <holiday>
      - ...
  - name: list
    summary: list the dates of all known holidays in a year
  - name: next
    summary: list the next upcoming holidays
  - name: when
    summary: list the dates of a holiday in successive years
    arguments:
      - <holiday>
  - name: export
    summary: print all known holidays in the YAML format accepted by --config
`

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'YAML file containing additional holidays, see cloudeng.io/holiday/ruleset'"`
}

type untilFlags struct {
	CommonFlags
}

type listFlags struct {
	CommonFlags
	Year int `subcmd:"year,0,'the year to list, defaults to the current year'"`
}

type nextFlags struct {
	CommonFlags
	Count int `subcmd:"count,5,number of upcoming holidays to list"`
}

type whenFlags struct {
	CommonFlags
	From  int `subcmd:"from,0,'the first year to list, defaults to the current year'"`
	Count int `subcmd:"count,5,number of years to list"`
}

type exportFlags struct {
	CommonFlags
}

var (
	cmdSet = subcmd.MustFromYAML(cmdSpec)

	// Overridden by tests.
	stdout io.Writer = os.Stdout
	today            = calendar.Today
)

func init() {
	cmdSet.Set("until").MustRunnerAndFlags(until,
		subcmd.MustRegisteredFlagSet(&untilFlags{}))
	cmdSet.Set("list").MustRunnerAndFlags(list,
		subcmd.MustRegisteredFlagSet(&listFlags{}))
	cmdSet.Set("next").MustRunnerAndFlags(next,
		subcmd.MustRegisteredFlagSet(&nextFlags{}))
	cmdSet.Set("when").MustRunnerAndFlags(when,
		subcmd.MustRegisteredFlagSet(&whenFlags{}))
	cmdSet.Set("export").MustRunnerAndFlags(export,
		subcmd.MustRegisteredFlagSet(&exportFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// setup configures logging and returns the built in holidays merged with
// any specified via --config.
func (cf CommonFlags) setup(ctx context.Context) (context.Context, holidays.Set, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cleanup := func() { logger.Close() }
	set := holidays.All()
	if len(cf.Config) > 0 {
		extra, err := ruleset.ParseFile(ctx, cf.Config)
		if err != nil {
			cleanup()
			return ctx, nil, nil, err
		}
		set = set.Merge(extra)
	}
	return ctx, set, cleanup, nil
}
