// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/key"
)

// Run - execute all runs in sequence
//
// cancelling the context stops before the next run starts.  A failing
// run does not stop the others; the returned error is
// fault.ErrStressFailed if any run failed
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	log := r.log
	summary := Summary{}

	r.reporter.Start(r.configuration)
	log.Infof("start: %d runs of %d keys in [1, %d)  seed: %d", r.configuration.Runs, r.configuration.Keys, r.configuration.Range, r.configuration.Seed)

	start := time.Now()
	for run := 0; run < r.configuration.Runs; run += 1 {
		select {
		case <-ctx.Done():
			log.Warnf("cancelled after %d runs", run)
			return summary, ctx.Err()
		default:
		}

		result := r.single(run)
		summary.Runs += 1
		summary.Stats.Add(result.Stats)
		if nil != result.Err {
			summary.Failures += 1
			log.Errorf("run: %d  failed: %s", run, result.Err)
		} else {
			log.Debugf("run: %d  unique: %d  height: %d  rotations: %d", run, result.Unique, result.Height, result.Stats.Rotations())
		}
		r.reporter.Report(result)

		if r.progress.Allow() {
			log.Infof("progress: %d/%d runs  %d failures", summary.Runs, r.configuration.Runs, summary.Failures)
		}
	}
	summary.Duration = time.Since(start)

	r.reporter.Finish(summary)
	log.Infof("finish: %d runs  %d failures  %d rotations", summary.Runs, summary.Failures, summary.Stats.Rotations())

	if 0 != summary.Failures {
		return summary, fault.ErrStressFailed
	}
	return summary, nil
}

// one run with its own generator so that each run can be repeated
// from the seed and run number alone
func (r *Runner) single(run int) Result {
	start := time.Now()
	rng := rand.New(rand.NewSource(r.configuration.Seed + int64(run)))

	keys := Keys(rng, r.configuration.Keys, r.configuration.Range)

	tree := avl.New()
	result := Result{
		Run:    run,
		Unique: len(keys),
	}
	result.Err = exercise(tree, keys, &result)
	result.Stats = tree.Stats()
	result.Duration = time.Since(start)
	return result
}

// Keys - draw n keys from [1, limit) dropping duplicates but keeping
// the order in which they were first drawn
func Keys(rng *rand.Rand, n int, limit int) []key.Int {
	seen := make(map[int]struct{}, n)
	keys := make([]key.Int, 0, n)
	for i := 0; i < n; i += 1 {
		k := 1 + rng.Intn(limit-1)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, key.Int(k))
	}
	return keys
}

// insert all keys, delete the even positions, then the odd ones
func exercise(tree *avl.Tree, keys []key.Int, result *Result) error {
	for _, k := range keys {
		if !tree.Insert(k) {
			return fmt.Errorf("insert: %d: %w", k, fault.ErrDuplicateKey)
		}
	}
	if err := tree.Check(); nil != err {
		return fmt.Errorf("after insert: %w", err)
	}
	result.Height = tree.Height()

	for i := 0; i < len(keys); i += 2 {
		if !tree.Delete(keys[i]) {
			return fmt.Errorf("delete: %d: %w", keys[i], fault.ErrKeyNotFound)
		}
		result.Removed += 1
	}
	if err := tree.Check(); nil != err {
		return fmt.Errorf("after delete: %w", err)
	}

	for i, k := range keys {
		if tree.Contains(k) != (1 == i%2) {
			return fmt.Errorf("membership: %d: %w", k, fault.ErrMembershipMismatch)
		}
	}

	for i := 1; i < len(keys); i += 2 {
		if !tree.Delete(keys[i]) {
			return fmt.Errorf("delete: %d: %w", keys[i], fault.ErrKeyNotFound)
		}
	}
	if !tree.IsEmpty() || 0 != tree.Count() {
		return fmt.Errorf("remainder: %w", fault.ErrCountMismatch)
	}
	return nil
}
