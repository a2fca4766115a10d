// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linkdiagram views, lays out and generates force-directed
// link diagrams.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/linkdiagram/base/logx"
	"cogentcore.org/linkdiagram/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// flags are the persistent flags of the root command.
type flags struct {
	config      string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:           "linkdiagram",
		Short:         "Force-directed link diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "TOML configuration file")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&fl.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(newViewCommand(fl))
	cmd.AddCommand(newLayoutCommand(fl))
	cmd.AddCommand(newSampleCommand())
	cmd.AddCommand(newConfigCommand(fl))
	return cmd
}

// load returns the configuration named by the flags, or the defaults.
func (fl *flags) load() (*config.Config, error) {
	if fl.config == "" {
		return config.New(), nil
	}
	path, err := homedir.Expand(fl.config)
	if err != nil {
		return nil, err
	}
	return config.Open(path)
}

func newConfigCommand(fl *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load()
			if err != nil {
				return err
			}
			return c.Write(cmd.OutOrStdout())
		},
	}
}
