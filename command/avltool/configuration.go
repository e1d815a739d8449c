// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/stress"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStressRuns  = 100
	defaultStressKeys  = 900
	defaultStressRange = 20000
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Scenario - one fixed sequence of tree operations
type Scenario struct {
	Name       string `gluamapper:"name" json:"name"`
	Insert     []int  `gluamapper:"insert" json:"insert"`
	Remove     []int  `gluamapper:"remove" json:"remove"`
	RemoveRoot int    `gluamapper:"remove_root" json:"remove_root"` // delete the root key until this many remain
	Expect     []int  `gluamapper:"expect" json:"expect"`           // in-order keys afterwards, if given
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
	Stress    stress.Configuration `gluamapper:"stress" json:"stress"`
	Scenarios []Scenario           `gluamapper:"scenarios" json:"scenarios"`
}

// defaults used when no configuration file is given
// logs go to the system temporary directory
func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "avltool"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
		Stress: stress.Configuration{
			Runs:  defaultStressRuns,
			Keys:  defaultStressKeys,
			Range: defaultStressRange,
			Seed:  1,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()
	options.Logging.Directory = defaultLogDirectory

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}

// find a scenario by name
func (c *Configuration) scenario(name string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
