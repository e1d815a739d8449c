// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - exercise the avl ordered set from the command line
//
// print builds a tree from the keys given and displays it, scenario
// runs the insert/delete scenarios listed in the Lua configuration
// file and stress runs randomised insert/delete checks.
package main
