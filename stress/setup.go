// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// Configuration - parameters for a set of runs
type Configuration struct {
	Runs  int   `gluamapper:"runs" json:"runs" yaml:"runs"`
	Keys  int   `gluamapper:"keys" json:"keys" yaml:"keys"`    // keys drawn per run, before duplicates are dropped
	Range int   `gluamapper:"range" json:"range" yaml:"range"` // keys are drawn from 1 … Range-1
	Seed  int64 `gluamapper:"seed" json:"seed" yaml:"seed"`
}

// Result - outcome of a single run
type Result struct {
	Run      int           `json:"run" yaml:"run"`
	Unique   int           `json:"unique" yaml:"unique"`   // distinct keys inserted
	Height   int           `json:"height" yaml:"height"`   // tree height once all keys were inserted
	Removed  int           `json:"removed" yaml:"removed"` // keys deleted in the first pass
	Stats    avl.Stats     `json:"stats" yaml:"stats"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Err      error         `json:"-" yaml:"-"` // first inconsistency found or nil
}

// Summary - totals over all runs
type Summary struct {
	Runs     int           `json:"runs" yaml:"runs"`
	Failures int           `json:"failures" yaml:"failures"`
	Stats    avl.Stats     `json:"stats" yaml:"stats"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Reporter - receives progress of the runs
type Reporter interface {
	Start(Configuration)
	Report(Result)
	Finish(Summary)
}

// Runner - executes stress runs
type Runner struct {
	configuration Configuration
	reporter      Reporter
	log           *logger.L
	progress      *rate.Limiter
}

// interval between progress lines in the log
const progressInterval = 5 * time.Second

// New - check the configuration and create a runner
func New(configuration Configuration, reporter Reporter, log *logger.L) (*Runner, error) {
	if configuration.Runs <= 0 || configuration.Keys <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if configuration.Range <= 1 {
		return nil, fault.ErrInvalidRange
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		configuration: configuration,
		reporter:      reporter,
		log:           log,
		progress:      rate.NewLimiter(rate.Every(progressInterval), 1),
	}, nil
}
