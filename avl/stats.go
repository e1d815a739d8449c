// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Stats - running totals of the work done by a tree
type Stats struct {
	Inserts        uint64 `json:"inserts" yaml:"inserts"`
	Duplicates     uint64 `json:"duplicates" yaml:"duplicates"` // inserts ignored
	Deletes        uint64 `json:"deletes" yaml:"deletes"`
	Misses         uint64 `json:"misses" yaml:"misses"` // deletes of absent keys
	LeftRotations  uint64 `json:"left_rotations" yaml:"left_rotations"`
	RightRotations uint64 `json:"right_rotations" yaml:"right_rotations"`
	Allocated      uint64 `json:"allocated" yaml:"allocated"`
	Reused         uint64 `json:"reused" yaml:"reused"` // nodes taken from the pool
}

// Stats - snapshot of the tree's counters
func (tree *Tree) Stats() Stats {
	return tree.stats
}

// Rotations - total single rotations, a double rotation counts as two
func (s Stats) Rotations() uint64 {
	return s.LeftRotations + s.RightRotations
}

// Add - accumulate counters from another tree
func (s *Stats) Add(other Stats) {
	s.Inserts += other.Inserts
	s.Duplicates += other.Duplicates
	s.Deletes += other.Deletes
	s.Misses += other.Misses
	s.LeftRotations += other.LeftRotations
	s.RightRotations += other.RightRotations
	s.Allocated += other.Allocated
	s.Reused += other.Reused
}
