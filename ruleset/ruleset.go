// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ruleset provides support for defining holidays in YAML, for
// example:
//
//	holidays:
//	  - name: Pastover
//	    date: first friday in april
//	    aliases: [pastover day]
//	  - name: Founders Day
//	    date: Mar-14
//
// The date field accepts any of the formats supported by holiday.Parse.
package ruleset

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/holiday"
	"cloudeng.io/holiday/holidays"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Spec represents the YAML definition of a set of holidays.
type Spec struct {
	Holidays []HolidaySpec `yaml:"holidays" cmd:"the holidays in this set"`
}

// HolidaySpec represents the YAML definition of a single holiday.
type HolidaySpec struct {
	Name    string   `yaml:"name" cmd:"name of the holiday"`
	Date    string   `yaml:"date" cmd:"date of the holiday, eg. 'Jan-02', '01/02' or 'first friday in april'"`
	Aliases []string `yaml:"aliases,omitempty" cmd:"alternative names for the holiday"`
}

// Set returns the holidays.Set described by the spec. All of the invalid
// entries are reported, rather than just the first.
func (s Spec) Set() (holidays.Set, error) {
	errs := errors.M{}
	set := make(holidays.Set, 0, len(s.Holidays))
	seen := map[string]int{}
	for i, hs := range s.Holidays {
		if len(hs.Name) == 0 {
			errs.Append(fmt.Errorf("holiday %d: missing name", i+1))
			continue
		}
		n := holidays.Normalize(hs.Name)
		if prev, ok := seen[n]; ok {
			errs.Append(fmt.Errorf("holiday %d: %q is a duplicate of holiday %d", i+1, hs.Name, prev))
			continue
		}
		seen[n] = i + 1
		rule, err := holiday.Parse(hs.Name, hs.Date)
		if err != nil {
			errs.Append(fmt.Errorf("holiday %d: %q: %w", i+1, hs.Name, err))
			continue
		}
		set = append(set, holidays.Holiday{Rule: rule, Aliases: hs.Aliases})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// Parse parses the YAML spec, rejecting unknown fields.
func Parse(spec []byte) (holidays.Set, error) {
	var s Spec
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return nil, err
	}
	return s.Set()
}

// ParseFile is like Parse but reads the spec from filename. The file
// is read using file.FSReadFile and hence may be read from an fs.FS
// stored in ctx.
func ParseFile(ctx context.Context, filename string) (holidays.Set, error) {
	var s Spec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &s); err != nil {
		return nil, err
	}
	set, err := s.Set()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded holidays", "file", filename, "count", len(set))
	return set, nil
}

// NewSpec returns the Spec for set.
func NewSpec(set holidays.Set) Spec {
	s := Spec{Holidays: make([]HolidaySpec, len(set))}
	for i, h := range set {
		s.Holidays[i] = HolidaySpec{Name: h.Name(), Date: h.String(), Aliases: h.Aliases}
	}
	return s
}

// Marshal returns the YAML representation of set in the format
// accepted by Parse.
func Marshal(set holidays.Set) ([]byte, error) {
	return yaml.Marshal(NewSpec(set))
}
