// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// upper limit on reclaimed nodes held by one tree
const maximumFreeNodes = 1024

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item, up *Node) *Node {
	p := tree.pool
	if nil == p {
		if 0 != tree.free {
			panic("pool corrupt")
		}
		tree.stats.Allocated += 1
		return &Node{
			key: key,
			up:  up,
		}
	}
	tree.pool = p.up
	tree.free -= 1
	tree.stats.Reused += 1

	p.key = key
	p.up = up
	p.left = nil
	p.right = nil
	p.height = 0
	return p
}

// reclaim a node and keep it in the pool while there is room
func (tree *Tree) freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.key = nil
	node.height = 0

	if tree.free >= maximumFreeNodes {
		node.up = nil
		return
	}
	node.up = tree.pool // use as free list pointer
	tree.pool = node
	tree.free += 1
}
