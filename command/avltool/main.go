// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "exercise the AVL ordered set"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: " plain output without colours",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "build a tree from integer keys and print it",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " remove `KEY` after inserting, may be repeated",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "scenario",
			Usage:     "run the scenarios from the configuration file",
			ArgsUsage: "[NAME...]\n   (all scenarios if no names given)",
			Action:    runScenarios,
		},
		{
			Name:  "stress",
			Usage: "randomised insert/delete runs",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "runs, n",
					Value: 0,
					Usage: " number of `RUNS` [configuration or 100]",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 0,
					Usage: " `COUNT` of keys drawn per run [configuration or 900]",
				},
				cli.IntFlag{
					Name:  "range, m",
					Value: 0,
					Usage: " keys are drawn below `LIMIT` [configuration or 20000]",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [configuration or 1]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write every run to YAML `FILE`",
				},
			},
			Action: runStress,
		},
		{
			Name:   "version",
			Usage:  "display avltool version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		if c.GlobalBool("no-color") {
			color.NoColor = true
		}

		file := c.GlobalString("config")
		config := defaultConfiguration()
		if "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			config, err = getConfiguration(file)
			if nil != err {
				return err
			}
		}

		// start logging
		if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			m.log.Info("finished")
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
