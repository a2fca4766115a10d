// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"cogentcore.org/linkdiagram/graph"
	"github.com/spf13/cobra"
)

func newSampleCommand() *cobra.Command {
	var opts graph.SampleOptions
	opts.Defaults()
	var out string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a random connected graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := graph.Sample(opts)
			if err != nil {
				return err
			}
			if out == "" {
				return graph.Write(cmd.OutOrStdout(), graph.JSON, d)
			}
			return graph.Save(out, d)
		},
	}
	cmd.Flags().IntVarP(&opts.Nodes, "nodes", "n", opts.Nodes, "number of nodes")
	cmd.Flags().IntVar(&opts.ExtraLinks, "extra-links", opts.ExtraLinks, "links added beyond the spanning tree")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, json or yaml by extension")
	return cmd
}

// saveAs writes the data to the file in the given format,
// regardless of its extension.
func saveAs(filename string, f graph.Format, d *graph.Data) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := graph.Write(fp, f, d); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
