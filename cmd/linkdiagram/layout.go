// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/linkdiagram/force"
	"cogentcore.org/linkdiagram/graph"
	"github.com/spf13/cobra"
)

func newLayoutCommand(fl *flags) *cobra.Command {
	var out, format string
	var maxTicks int
	cmd := &cobra.Command{
		Use:   "layout <data>",
		Short: "Run the simulation to convergence and write the node positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load()
			if err != nil {
				return err
			}
			data, err := graph.Open(args[0])
			if err != nil {
				return err
			}
			g, _, err := graph.Build(data)
			if err != nil {
				return err
			}
			sim := force.New(g, c.Simulation)
			n := sim.Converge(maxTicks)
			slog.Info("layout done", "nodes", len(g.Nodes), "links", len(g.Links), "ticks", n, "alpha", sim.Alpha())
			if out != "" && format == "" {
				return graph.Save(out, g.Data())
			}
			f := graph.JSON
			if format != "" {
				if f, err = graph.ParseFormat(format); err != nil {
					return err
				}
			}
			if out != "" {
				return saveAs(out, f, g.Data())
			}
			return graph.Write(cmd.OutOrStdout(), f, g.Data())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; the format defaults to its extension")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format, json or yaml")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", 1000, "maximum number of ticks")
	return cmd
}
