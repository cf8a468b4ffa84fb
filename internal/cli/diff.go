// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the difference a - b in units of the shared alignment",
		Long: `Print the difference a - b in units of the shared alignment.

Both values must have the same alignment: "diff 2015-08-13 2015-08-11" prints
2 (days), "diff 2016 2014" prints 2 (years). Differences between values of
different alignments are an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseValue(args[0])
			if err != nil {
				return err
			}
			b, err := parseValue(args[1])
			if err != nil {
				return err
			}
			n, err := a.diff(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
