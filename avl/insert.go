// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// a key that is already present leaves the tree unchanged
// returns true if a node was added
func (tree *Tree) Insert(key Item) bool {
	if nil == tree.root {
		tree.root = tree.newNode(key, nil)
		tree.count += 1
		tree.stats.Inserts += 1
		return true
	}

	up := tree.root
	for {
		c := up.key.Compare(key)
		if 0 == c {
			tree.stats.Duplicates += 1
			return false
		}

		slot := &up.right
		if c > 0 { // up.key > key
			slot = &up.left
		}
		if nil == *slot {
			*slot = tree.newNode(key, up)
			break
		}
		up = *slot
	}

	tree.count += 1
	tree.stats.Inserts += 1

	// new leaf is balanced, start with its parent
	tree.retrace(up)
	return true
}
