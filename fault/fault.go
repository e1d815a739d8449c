// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCountMismatch         = InvalidError("node count does not match tree count")
	ErrDuplicateKey          = InvalidError("duplicate key in tree")
	ErrHeightMismatch        = InvalidError("node height does not match its children")
	ErrInvalidCount          = InvalidError("count must be positive")
	ErrInvalidKey            = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRange          = InvalidError("key range must be greater than one")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMembershipMismatch    = InvalidError("key membership does not match deletions")
	ErrMissingKeys           = InvalidError("at least one key is required")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrNotFoundScenario      = NotFoundError("scenario is not found")
	ErrOutOfOrder            = InvalidError("keys are out of order")
	ErrParentMismatch        = InvalidError("node is not a child of its parent")
	ErrRootHasParent         = InvalidError("root node has a parent")
	ErrScenarioFailed        = ProcessError("scenario failed")
	ErrStressFailed          = ProcessError("stress run failed")
	ErrUnbalanced            = InvalidError("node is unbalanced")
	ErrUnexpectedConfigTable = InvalidError("configuration did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
