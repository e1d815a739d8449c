// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/stress"
)

func runStress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	configuration := stressConfiguration(m.config.Stress, c)

	var reporter stress.Reporter = newTableReporter(m.w, m.verbose)

	var recorder *yamlRecorder
	if outputFile := c.String("output"); "" != outputFile {
		fh, err := os.Create(outputFile)
		if nil != err {
			return err
		}
		defer fh.Close()
		recorder = newYAMLRecorder(fh)
		reporter = reporters{reporter, recorder}
	}

	r, err := stress.New(configuration, reporter, logger.New("stress"))
	if nil != err {
		return err
	}

	// stop between runs on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		select {
		case sig := <-ch:
			m.log.Warnf("received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	_, err = r.Run(ctx)
	if nil != recorder && nil != recorder.err {
		m.log.Errorf("write record: %s", recorder.err)
		if nil == err {
			err = recorder.err
		}
	}
	return err
}

// command line flags override the configuration file
func stressConfiguration(configuration stress.Configuration, c flagSource) stress.Configuration {
	if n := c.Int("runs"); n > 0 {
		configuration.Runs = n
	}
	if n := c.Int("keys"); n > 0 {
		configuration.Keys = n
	}
	if n := c.Int("range"); n > 0 {
		configuration.Range = n
	}
	if c.IsSet("seed") {
		configuration.Seed = c.Int64("seed")
	}
	return configuration
}

// the parts of cli.Context used to read flags
type flagSource interface {
	Int(name string) int
	Int64(name string) int64
	IsSet(name string) bool
}
