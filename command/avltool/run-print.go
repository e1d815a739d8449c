// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/key"
)

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keys, err := key.ParseInts(c.Args())
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		return fault.ErrMissingKeys
	}
	removals, err := key.ParseInts(c.StringSlice("remove"))
	if nil != err {
		return err
	}

	tree := avl.New()
	for _, k := range keys {
		tree.Insert(k)
	}
	for _, k := range removals {
		if !tree.Delete(k) {
			fmt.Fprintf(m.w, "not present: %d\n", k)
		}
	}

	depth := tree.Print(m.w, m.verbose)
	fmt.Fprintf(m.w, "%s\n", tree)
	fmt.Fprintf(m.w, "count: %d  depth: %d  valid: %s\n", tree.Count(), depth, validity(tree.IsValid()))

	if err := tree.Check(); nil != err {
		fault.Criticalf("print: inconsistent tree: %s", err)
		return err
	}
	m.log.Debugf("print: %d keys  stats: %+v", tree.Count(), tree.Stats())
	return nil
}

func validity(valid bool) string {
	if valid {
		return color.GreenString("true")
	}
	return color.RedString("false")
}
