// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/key"
)

// outcome of one scenario
type scenarioResult struct {
	name    string
	count   int
	height  int
	shape   string
	removed int
	stats   avl.Stats
	err     error
}

// perform the scenario's operations, checking the tree after each
// structural change
func runScenario(s Scenario) scenarioResult {
	tree := avl.New()
	result := scenarioResult{
		name: s.Name,
	}
	result.err = applyScenario(tree, s, &result)

	result.count = tree.Count()
	result.height = tree.Height()
	result.shape = tree.String()
	result.stats = tree.Stats()
	return result
}

func applyScenario(tree *avl.Tree, s Scenario, result *scenarioResult) error {
	if 0 == len(s.Insert) {
		return fault.ErrMissingKeys
	}
	for _, k := range key.Ints(s.Insert) {
		tree.Insert(k)
		if err := tree.Check(); nil != err {
			return fmt.Errorf("insert: %d: %w", k, err)
		}
	}

	for _, k := range key.Ints(s.Remove) {
		if tree.Delete(k) {
			result.removed += 1
		}
		if err := tree.Check(); nil != err {
			return fmt.Errorf("remove: %d: %w", k, err)
		}
		if tree.Contains(k) {
			return fmt.Errorf("remove: %d: %w", k, fault.ErrMembershipMismatch)
		}
	}

	if s.RemoveRoot > 0 {
		for tree.Count() > s.RemoveRoot {
			k := tree.Root().Key()
			tree.Delete(k)
			result.removed += 1
			if err := tree.Check(); nil != err {
				return fmt.Errorf("remove root: %v: %w", k, err)
			}
		}
	}

	if nil != s.Expect {
		expected := key.Ints(s.Expect)
		actual := tree.Inorder()
		if len(expected) != len(actual) {
			return fmt.Errorf("expected %d keys, found %d: %w", len(expected), len(actual), fault.ErrScenarioFailed)
		}
		for i, k := range expected {
			if 0 != actual[i].Compare(k) {
				return fmt.Errorf("key[%d]: expected: %d  found: %v: %w", i, k, actual[i], fault.ErrScenarioFailed)
			}
		}
	}
	return nil
}
