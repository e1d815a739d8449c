// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/stress"
)

func TestTableReporter(t *testing.T) {
	buffer := &bytes.Buffer{}
	r := newTableReporter(buffer, false)

	r.Start(stress.Configuration{Runs: 2, Keys: 900, Range: 20000, Seed: 5})
	r.Report(stress.Result{Run: 0, Unique: 881, Height: 11})
	r.Report(stress.Result{Run: 1, Unique: 879, Height: 10, Err: fault.ErrUnbalanced})
	r.Finish(stress.Summary{Runs: 2, Failures: 1, Stats: avl.Stats{Inserts: 1760}})

	s := buffer.String()
	assert.True(t, strings.Contains(s, "2 runs of 900 keys from [1, 20,000)"), "start line: %s", s)
	assert.True(t, strings.Contains(s, "run 1 failed: "+fault.ErrUnbalanced.Error()), "failure line: %s", s)
	assert.False(t, strings.Contains(s, "881"), "successful run shown: %s", s)
	assert.True(t, strings.Contains(s, "879"), "failed run missing: %s", s)
	assert.True(t, strings.Contains(s, "1,760"), "total inserts: %s", s)
	assert.True(t, strings.Contains(s, "1 failed"), "failure count: %s", s)
}

func TestTableReporterVerbose(t *testing.T) {
	buffer := &bytes.Buffer{}
	r := newTableReporter(buffer, true)

	r.Start(stress.Configuration{Runs: 1, Keys: 10, Range: 100, Seed: 1})
	r.Report(stress.Result{Run: 0, Unique: 9, Height: 3})
	r.Finish(stress.Summary{Runs: 1})

	s := buffer.String()
	assert.True(t, strings.Contains(s, "ok"), "successful run row: %s", s)
	assert.True(t, strings.Contains(s, "0 failed"), "footer: %s", s)
}

type fakeFlags struct {
	ints  map[string]int
	seed  int64
	isSet bool
}

func (f fakeFlags) Int(name string) int     { return f.ints[name] }
func (f fakeFlags) Int64(name string) int64 { return f.seed }
func (f fakeFlags) IsSet(name string) bool  { return f.isSet && "seed" == name }

func TestStressConfigurationOverrides(t *testing.T) {
	base := stress.Configuration{Runs: 100, Keys: 900, Range: 20000, Seed: 1}

	c := stressConfiguration(base, fakeFlags{})
	assert.Equal(t, base, c, "no flags")

	c = stressConfiguration(base, fakeFlags{
		ints:  map[string]int{"runs": 3, "range": 50},
		seed:  0,
		isSet: true,
	})
	assert.Equal(t, stress.Configuration{Runs: 3, Keys: 900, Range: 50, Seed: 0}, c, "overrides")
}

func TestValidityWithoutColour(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	assert.Equal(t, "true", validity(true), "valid")
	assert.Equal(t, "false", validity(false), "invalid")
}

func TestTableFooterKeepsCase(t *testing.T) {
	buffer := &bytes.Buffer{}
	r := newTableReporter(buffer, false)
	r.Start(stress.Configuration{Runs: 1, Keys: 10, Range: 100, Seed: 1})
	r.Finish(stress.Summary{Runs: 1, Duration: 1500 * time.Microsecond})

	s := buffer.String()
	assert.True(t, strings.Contains(s, "total"), "footer label: %s", s)
	assert.True(t, strings.Contains(s, "1.5ms"), "duration: %s", s)
	assert.False(t, strings.Contains(s, "TOTAL"), "upper case footer: %s", s)
	assert.False(t, strings.Contains(s, "FAILED"), "upper case status: %s", s)
}
