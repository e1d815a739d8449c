// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
)

func runScenarios(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	log := logger.New("scenario")

	scenarios := m.config.Scenarios
	if c.NArg() > 0 {
		scenarios = make([]Scenario, 0, c.NArg())
		for _, name := range c.Args() {
			s, ok := m.config.scenario(name)
			if !ok {
				return fmt.Errorf("%q: %w", name, fault.ErrNotFoundScenario)
			}
			scenarios = append(scenarios, s)
		}
	}
	if 0 == len(scenarios) {
		return fault.ErrNotFoundScenario
	}

	results := make([]scenarioResult, 0, len(scenarios))
	failed := 0
	for _, s := range scenarios {
		result := runScenario(s)
		if nil != result.err {
			failed += 1
			log.Errorf("%s: %s", s.Name, result.err)
		} else {
			log.Infof("%s: %s", s.Name, result.shape)
		}
		if m.verbose {
			fmt.Fprintf(m.w, "%s: %s\n", s.Name, result.shape)
		}
		results = append(results, result)
	}

	renderScenarios(m.w, results)

	if 0 != failed {
		return fmt.Errorf("%d of %d: %w", failed, len(results), fault.ErrScenarioFailed)
	}
	return nil
}
