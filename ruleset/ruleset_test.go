// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ruleset_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cloudeng.io/file"
	"cloudeng.io/holiday"
	"cloudeng.io/holiday/calendar"
	"cloudeng.io/holiday/ruleset"
	"cloudeng.io/logging/ctxlog"
)

const spec = `
holidays:
  - name: Pastover
    date: first friday in april
    aliases: [pastover day, "passing over"]
  - name: Founders Day
    date: Mar-14
  - name: Leap Day
    date: 02/29
`

func TestParse(t *testing.T) {
	set, err := ruleset.Parse([]byte(spec))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(set), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		name string
		rule holiday.Rule
	}{
		{"pastover", holiday.NewNth("Pastover", holiday.First, time.Friday, 4)},
		{"Passing Over", holiday.NewNth("Pastover", holiday.First, time.Friday, 4)},
		{"founders", holiday.NewFixed("Founders Day", 3, 14)},
		{"leap", holiday.NewFixed("Leap Day", 2, 29)},
	} {
		h, ok := set.Lookup(tc.name)
		if !ok {
			t.Errorf("%v: not found", tc.name)
			continue
		}
		if got, want := h.Rule, tc.rule; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
	h, _ := set.Lookup("pastover")
	if got, want := h.Matches(calendar.NewCalendarDate(2022, 4, 1)), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ruleset.Parse([]byte(`
holidays:
  - name: Good
    date: Jan-01
  - date: Jan-02
  - name: Bad Date
    date: feb 30
  - name: good
    date: Jan-03
  - name: Nonsense
    date: second blursday in june
`))
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	for _, want := range []string{
		"holiday 2: missing name",
		`holiday 3: "Bad Date"`,
		`holiday 4: "good" is a duplicate of holiday 1`,
		`holiday 5: "Nonsense"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q does not contain %q", msg, want)
		}
	}
	if !errors.Is(err, holiday.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate: %v", err)
	}

	_, err = ruleset.Parse([]byte(`
holidays:
  - name: x
    when: Jan-01
`))
	if err == nil || !strings.Contains(err.Error(), "field when not found") {
		t.Errorf("missing or incorrect error for an unknown field: %v", err)
	}
}

func TestParseFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "holidays.yaml")
	if err := os.WriteFile(filename, []byte(spec), 0600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &out, &slog.HandlerOptions{Level: slog.LevelDebug})
	set, err := ruleset.ParseFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(set), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), `"msg":"loaded holidays"`) {
		t.Errorf("missing log record: %v", out.String())
	}

	ctx = file.ContextWithFS(context.Background(), mapFS{fstest.MapFS{
		"embedded.yaml": &fstest.MapFile{Data: []byte("holidays:\n  - name: Embedded\n    date: last monday of may\n")},
	}})
	set, err = ruleset.ParseFile(ctx, "embedded.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := set[0].Rule, holiday.NewNth("Embedded", holiday.Last, time.Monday, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ruleset.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestMarshal(t *testing.T) {
	set, err := ruleset.Parse([]byte(spec))
	if err != nil {
		t.Fatal(err)
	}
	buf, err := ruleset.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "date: First Friday in April") {
		t.Errorf("unexpected output: %s", buf)
	}
	roundtrip, err := ruleset.Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(roundtrip), len(set); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range set {
		if got, want := roundtrip[i].Rule, set[i].Rule; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

// mapFS adapts fstest.MapFS to file.ReadFileFS.
type mapFS struct{ fstest.MapFS }

func (m mapFS) ReadFileCtx(_ context.Context, name string) ([]byte, error) {
	return m.ReadFile(name)
}
