// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// IsValid - true if every node has a correct height, is balanced and
// is linked correctly to its parent
func (tree *Tree) IsValid() bool {
	return nil == tree.Check()
}

// Check - walk the whole tree and return the first inconsistency
//
// this only reports problems, nothing is repaired
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrRootHasParent
	}

	err := error(nil)
	visited := 0
	tree.preorder(func(p *Node) bool {
		visited += 1
		if visited > tree.count {
			err = fault.ErrCountMismatch // also stops a cycle
			return false
		}
		err = tree.checkNode(p)
		return nil == err
	})
	if nil != err {
		return err
	}
	if visited != tree.count {
		return fault.ErrCountMismatch
	}

	// a local parent/child order check cannot see a key that is in
	// the wrong sub-tree further up, so also scan the whole sequence
	prev := (*Node)(nil)
	tree.inorder(func(p *Node) bool {
		if nil != prev && prev.key.Compare(p.key) >= 0 {
			err = fault.ErrOutOfOrder
			return false
		}
		prev = p
		return true
	})
	return err
}

// internal: checks for a single node
func (tree *Tree) checkNode(p *Node) error {
	l := p.left.Height()
	r := p.right.Height()

	h := l
	if r > h {
		h = r
	}
	if p.height != 1+h {
		return fault.ErrHeightMismatch
	}
	if l-r > 1 || r-l > 1 {
		return fault.ErrUnbalanced
	}

	if nil == p.up {
		// only the root may have no parent
		if p != tree.root {
			return fault.ErrParentMismatch
		}
		return nil
	}

	// side is decided by the keys, so a node linked on the wrong
	// side of its parent is detected here
	switch c := p.up.key.Compare(p.key); {
	case c > 0:
		if p.up.left != p {
			return fault.ErrParentMismatch
		}
	case c < 0:
		if p.up.right != p {
			return fault.ErrParentMismatch
		}
	default:
		return fault.ErrDuplicateKey
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCount - true if the number of reachable nodes matches Count
func (tree *Tree) CheckCount() bool {
	n := 0
	complete := tree.preorder(func(*Node) bool {
		n += 1
		return n <= tree.count
	})
	return complete && n == tree.count
}
