// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stress - randomised insert/delete runs against the avl tree
//
// each run draws keys from a bounded range, discards duplicates,
// inserts them, deletes every other key in insertion order and then
// the remainder, checking the tree invariants after each phase.
// Results are passed to a Reporter as each run completes.
package stress

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avlset/stress Reporter
