// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bitmark-inc/avlset/stress"
)

// tableReporter - stress.Reporter that prints a table once all runs
// have finished, failures are printed as they occur
type tableReporter struct {
	w       io.Writer
	verbose bool
	tbl     table.Writer
}

func newTableReporter(w io.Writer, verbose bool) *tableReporter {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"run", "keys", "height", "rotations", "time", "status"})
	return &tableReporter{
		w:       w,
		verbose: verbose,
		tbl:     tbl,
	}
}

func (r *tableReporter) Start(c stress.Configuration) {
	fmt.Fprintf(r.w, "stress: %s runs of %s keys from [1, %s)  seed: %d\n",
		humanize.Comma(int64(c.Runs)), humanize.Comma(int64(c.Keys)), humanize.Comma(int64(c.Range)), c.Seed)
}

func (r *tableReporter) Report(result stress.Result) {
	status := "ok"
	if nil != result.Err {
		status = result.Err.Error()
		fmt.Fprintf(r.w, "run %d failed: %s\n", result.Run, result.Err)
	} else if !r.verbose {
		return
	}
	r.tbl.AppendRow(table.Row{
		result.Run,
		humanize.Comma(int64(result.Unique)),
		result.Height,
		humanize.Comma(int64(result.Stats.Rotations())),
		result.Duration,
		status,
	})
}

func (r *tableReporter) Finish(summary stress.Summary) {
	r.tbl.AppendFooter(table.Row{
		"total",
		humanize.Comma(int64(summary.Stats.Inserts)),
		"",
		humanize.Comma(int64(summary.Stats.Rotations())),
		summary.Duration,
		fmt.Sprintf("%d failed", summary.Failures),
	})
	fmt.Fprintln(r.w, r.tbl.Render())
}

// light style with footers printed as given
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

// scenario results as a table
func renderScenarios(w io.Writer, results []scenarioResult) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"scenario", "keys", "height", "removed", "rotations", "status"})

	failed := 0
	for _, result := range results {
		status := color.GreenString("ok")
		if nil != result.err {
			status = color.RedString(result.err.Error())
			failed += 1
		}
		tbl.AppendRow(table.Row{
			result.name,
			result.count,
			result.height,
			result.removed,
			result.stats.Rotations(),
			status,
		})
	}
	tbl.AppendFooter(table.Row{"total", "", "", "", "", fmt.Sprintf("%d/%d passed", len(results)-failed, len(results))})
	fmt.Fprintln(w, tbl.Render())
}
