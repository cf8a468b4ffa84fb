// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <value> <n>",
		Short: "Advance a civil time by n units of its alignment",
		Long: `Advance a civil time by n units of its alignment.

The alignment is inferred from the value: "add 2015-08 3" adds three months,
"add 2015-08-13 3" adds three days. n may be negative.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args, false)
		},
	}
	// The offset may be negative; stop flag parsing at the first positional
	// argument so that "-3" is an offset, not a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// NewSubCommand creates the sub command.
func NewSubCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <value> <n>",
		Short: "Move a civil time back by n units of its alignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args, true)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runShift(cmd *cobra.Command, args []string, back bool) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad offset %q: %w", args[1], err)
	}
	if back {
		v = v.sub(n)
	} else {
		v = v.add(n)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
