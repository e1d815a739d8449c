// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avlset/stress"
)

// one run as written to the record file
type recordedRun struct {
	stress.Result `yaml:",inline"`
	Error         string `yaml:"error,omitempty"`
}

// complete record of a stress session
type record struct {
	Configuration stress.Configuration `yaml:"configuration"`
	Runs          []recordedRun        `yaml:"runs"`
	Summary       stress.Summary       `yaml:"summary"`
}

// yamlRecorder - stress.Reporter keeping every result and writing
// them as a YAML document when the runs finish
type yamlRecorder struct {
	w      io.Writer
	record record
	err    error
}

func newYAMLRecorder(w io.Writer) *yamlRecorder {
	return &yamlRecorder{
		w: w,
	}
}

func (r *yamlRecorder) Start(c stress.Configuration) {
	r.record = record{
		Configuration: c,
		Runs:          make([]recordedRun, 0, c.Runs),
	}
}

func (r *yamlRecorder) Report(result stress.Result) {
	run := recordedRun{
		Result: result,
	}
	if nil != result.Err {
		run.Error = result.Err.Error()
	}
	r.record.Runs = append(r.record.Runs, run)
}

func (r *yamlRecorder) Finish(summary stress.Summary) {
	r.record.Summary = summary

	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&r.record); nil != err {
		r.err = err
		return
	}
	r.err = encoder.Close()
}

// reporters - pass each event to all of a list of reporters
type reporters []stress.Reporter

func (rs reporters) Start(c stress.Configuration) {
	for _, r := range rs {
		r.Start(c)
	}
}

func (rs reporters) Report(result stress.Result) {
	for _, r := range rs {
		r.Report(result)
	}
}

func (rs reporters) Finish(summary stress.Summary) {
	for _, r := range rs {
		r.Finish(summary)
	}
}
