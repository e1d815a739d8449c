// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Height - height of the sub-tree rooted at this node
// leaf is 0 and an absent node is -1
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Balance - left height minus right height
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// recompute the cached height from the children
func (p *Node) updateHeight() {
	l := p.left.Height()
	r := p.right.Height()
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// walk from a node up to the root rebalancing every node visited
func (tree *Tree) retrace(p *Node) {
	for nil != p {
		p = tree.rebalance(p).up
	}
}

// rebalance - restore the balance of a single node whose children
// are already balanced; returns the root of the sub-tree which now
// occupies the node's position
func (tree *Tree) rebalance(p *Node) *Node {
	p.updateHeight()

	switch b := p.Balance(); {
	case b > 1: // left heavy
		if p.left.Balance() < 0 {
			tree.rotateLeft(p.left) // LR
		}
		return tree.rotateRight(p)

	case b < -1: // right heavy
		if p.right.Balance() > 0 {
			tree.rotateRight(p.right) // RL
		}
		return tree.rotateLeft(p)
	}
	return p
}

// single RR rotation
//
//	  p                r
//	 / \              / \
//	a   r     ->     p   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree) rotateLeft(p *Node) *Node {
	r := p.right

	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}

	r.up = p.up
	tree.replaceChild(p.up, p, r)

	r.left = p
	p.up = r

	p.updateHeight()
	r.updateHeight()

	tree.stats.LeftRotations += 1
	return r
}

// single LL rotation
//
//	    p            l
//	   / \          / \
//	  l   c   ->   a   p
//	 / \              / \
//	a   b            b   c
func (tree *Tree) rotateRight(p *Node) *Node {
	l := p.left

	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}

	l.up = p.up
	tree.replaceChild(p.up, p, l)

	l.right = p
	p.up = l

	p.updateHeight()
	l.updateHeight()

	tree.stats.RightRotations += 1
	return l
}
