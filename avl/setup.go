// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
// returning -1, 0, +1 for less than, equal and greater than
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node, never owns it
	key    Item  // key part for ordering
	height int   // height of this sub-tree, leaf = 0
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	pool  *Node // reclaimed nodes linked through up
	free  int   // number of nodes in the pool
	stats Stats
}

// New - create a tree, any keys given are inserted in order
func New(keys ...Item) *Tree {
	tree := &Tree{}
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - discard all nodes
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Depth - get the depth of a node, root is zero
func (p *Node) Depth() uint {
	count := uint(0)
	for up := p.up; up != nil; up = up.up {
		count += 1
	}
	return count
}
