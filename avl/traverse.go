// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
)

// Min - lowest key, false if the tree is empty
func (tree *Tree) Min() (Item, bool) {
	p := tree.First()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// Max - highest key, false if the tree is empty
func (tree *Tree) Max() (Item, bool) {
	p := tree.Last()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// Height - height of the whole tree, -1 when empty
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Inorder - all keys in ascending order
func (tree *Tree) Inorder() []Item {
	keys := make([]Item, 0, tree.count)
	tree.inorder(func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}

// Preorder - all keys, each node before its left then right sub-trees
func (tree *Tree) Preorder() []Item {
	keys := make([]Item, 0, tree.count)
	tree.preorder(func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}

// String - keys in pre-order, enough to reconstruct the shape
func (tree *Tree) String() string {
	s := make([]string, 0, tree.count)
	for _, key := range tree.Preorder() {
		s = append(s, fmt.Sprintf("%v", key))
	}
	return "AVL pre-order { " + strings.Join(s, ", ") + " }"
}

// internal: visit nodes in pre-order using an explicit stack
// stops early if the visitor returns false
func (tree *Tree) preorder(visit func(*Node) bool) bool {
	if nil == tree.root {
		return true
	}
	stack := []*Node{tree.root}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		if !visit(p) {
			return false
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		if nil != p.left {
			stack = append(stack, p.left)
		}
	}
	return true
}

// internal: visit nodes in ascending order using an explicit stack
// stops early if the visitor returns false
func (tree *Tree) inorder(visit func(*Node) bool) bool {
	stack := []*Node{}
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		n := len(stack) - 1
		p = stack[n]
		stack = stack[:n]

		if !visit(p) {
			return false
		}
		p = p.right
	}
	return true
}

// First - node with the lowest key, nil if the tree is empty
func (tree *Tree) First() *Node {
	return tree.root.leftmost()
}

// Last - node with the highest key, nil if the tree is empty
func (tree *Tree) Last() *Node {
	return tree.root.rightmost()
}

// Next - in-order successor of a node, nil after the last
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.leftmost()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - in-order predecessor of a node, nil before the first
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.rightmost()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}

func (p *Node) leftmost() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

func (p *Node) rightmost() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
