// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWeekdayCommand creates the weekday command.
func NewWeekdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <value>",
		Short: "Print the day of the week of a civil time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.weekday())
			return nil
		},
	}
}

// NewNextCommand creates the next command.
func NewNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next <value> <weekday>",
		Short: "Print the next date strictly after a civil time that falls on the weekday",
		Long: `Print the next date strictly after a civil time that falls on the weekday.

If the value already falls on the weekday, the result is seven days later,
never the value itself.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			w, err := parseWeekday(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.next(w))
			return nil
		},
	}
}

// NewPrevCommand creates the prev command.
func NewPrevCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prev <value> <weekday>",
		Short: "Print the last date strictly before a civil time that falls on the weekday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			w, err := parseWeekday(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.prev(w))
			return nil
		},
	}
}
