// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with parent pointers to
// allow iteration through the nodes and upward rebalancing
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Each node caches the height of its sub-tree (leaf = 0, absent = -1).
// Insert and Delete find their position by ordinary descent, change
// the structure and then walk the parent pointers back to the root
// rebalancing every node on the path.
//
// Keys are unique: inserting a key that is already present is
// ignored.  Deleting a node with two children copies the key of its
// in-order successor into it and unlinks the successor node instead,
// so a *Node obtained before a Delete may hold a different key (or be
// reclaimed) afterwards.
package avl
