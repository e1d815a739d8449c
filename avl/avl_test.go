// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avlset/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	}
	return 0
}

func intItems(values ...int) []avl.Item {
	items := make([]avl.Item, len(values))
	for i, v := range values {
		items[i] = intItem(v)
	}
	return items
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"7310"}, {"0482"}, {"5526"}, {"2091"}, {"9963"},
		{"3377"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"3140"}, {"0159"}, {"2653"}, {"5897"}, {"9323"},
		{"8462"}, {"6433"}, {"8327"}, {"9502"}, {"8841"},
		{"3140"}, {"0159"}, {"2653"}, {"5897"}, {"9323"},
	}
	for i := 0; i < 40; i += 1 {
		addList = append(addList, stringItem{"6433"})
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	// deterministic pseudo random four digit keys
	addList := make([]stringItem, 0, 250)
	x := uint32(2463534242)
	for i := 0; i < cap(addList); i += 1 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		addList = append(addList, stringItem{fmt.Sprintf("%04d", x%10000)})
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// insert everything, delete a prefix, check, then delete the rest
// for every possible prefix length
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key)
		}

		if !tree.IsValid() {
			dump(t, tree)
			t.Fatalf("add: inconsistent tree: %s", tree.Check())
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}

		if !tree.IsValid() {
			dump(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", tree.Check())
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				if tree.Delete(key) {
					t.Fatalf("delete: %q deleted twice", key)
				}
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}
		if !tree.IsEmpty() {
			dump(t, tree)
			t.Fatal("remaining nodes")
		}
		if nil != tree.Root() {
			t.Fatal("root not cleared")
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key)
	}

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
	if !tree.CheckCount() {
		t.Fatal("reachable nodes do not match count")
	}

	for _, key := range expected {
		tree.Delete(stringItem{key})
	}

	if !tree.IsEmpty() {
		dump(t, tree)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// log the tree shape for a failing test
func dump(t *testing.T, tree *avl.Tree) {
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, true)
	t.Logf("depth: %d\n%s", depth, buffer.String())
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New(intItems(1, 2, 3, 4, 5, 6, 7)...)

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.New(intItems(1, 2, 3, 4, 5, 6, 7)...)

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}
