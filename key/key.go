// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package key - ready made key types for the avl tree
package key

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlset/fault"
)

// Int - integer key
type Int int

// String - text key, ordered bytewise
type String string

// Compare - integer comparison for AVL interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	}
	return 0
}

// String - decimal representation
func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// Compare - string comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the text itself
func (s String) String() string {
	return string(s)
}

// ParseInts - convert decimal strings to integer keys
func ParseInts(values []string) ([]Int, error) {
	keys := make([]Int, 0, len(values))
	for _, v := range values {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, Int(i))
	}
	return keys, nil
}

// Ints - convert plain integers to keys
func Ints(values []int) []Int {
	keys := make([]Int, len(values))
	for i, v := range values {
		keys[i] = Int(v)
	}
	return keys
}
