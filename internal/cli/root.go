// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the civil CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "civil",
		Short: "Exact calendar arithmetic on civil times",
		Long: `Exact calendar arithmetic on civil times.

A civil time is a wall-clock value like 2015-08-13 or 2015-08-13T12:34:56,
independent of timezones and leap seconds. Commands that take a value infer
its alignment (year, month, day, hour, minute or second) from its canonical
form; arithmetic operates in units of that alignment.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewNormCommand())
	cmd.AddCommand(NewAddCommand())
	cmd.AddCommand(NewSubCommand())
	cmd.AddCommand(NewDiffCommand())
	cmd.AddCommand(NewWeekdayCommand())
	cmd.AddCommand(NewNextCommand())
	cmd.AddCommand(NewPrevCommand())

	return cmd
}
