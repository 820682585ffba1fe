// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holiday

import "cloudeng.io/errors"

var (
	// ErrInvalidDate is returned when a rule does not describe a date that
	// exists in a given year, eg. Feb 29 in a non-leap year, or the fifth
	// Monday of a month that has only four, or when the rule itself is
	// malformed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoOccurrence is returned when a search for the next or previous
	// occurrence of a rule does not find one.
	ErrNoOccurrence = errors.New("no occurrence")
)
