// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the key was not in the tree
func (tree *Tree) Delete(key Item) bool {
	p := tree.search(key)
	if nil == p {
		tree.stats.Misses += 1
		return false
	}

	start := (*Node)(nil)
	if nil != p.left && nil != p.right {
		start = tree.removeSuccessor(p)
	} else {
		start = tree.unlink(p)
	}

	tree.count -= 1
	tree.stats.Deletes += 1

	tree.retrace(start)
	return true
}

// delete: node has at most one child
//
// a leaf is simply detached, a single child is promoted into the
// node's place.  Returns the former parent, which is where the
// rebalancing has to start (nil if the node was the root)
func (tree *Tree) unlink(p *Node) *Node {
	child := p.left
	if nil == child {
		child = p.right
	}

	up := p.up
	if nil != child {
		child.up = up
	}
	tree.replaceChild(up, p, child)

	tree.freeNode(p)
	return up
}

// delete: node has two children
//
// the in-order successor (leftmost node of the right sub-tree) has no
// left child, so its key is moved into p and the successor node is
// unlinked instead.  Returns the successor's former parent, which may
// be far below p
func (tree *Tree) removeSuccessor(p *Node) *Node {
	successor := p.right
	for nil != successor.left {
		successor = successor.left
	}
	p.key = successor.key
	return tree.unlink(successor)
}

// point the parent's link (or the root) at a replacement sub-tree
func (tree *Tree) replaceChild(up *Node, old *Node, replacement *Node) {
	switch {
	case nil == up:
		tree.root = replacement
	case old == up.left:
		up.left = replacement
	default:
		up.right = replacement
	}
}
