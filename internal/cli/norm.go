// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gonih.org/civil"
)

// NewNormCommand creates the norm command.
func NewNormCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "norm <year> [month [day [hour [minute [second]]]]]",
		Short: "Normalize calendar fields into a canonical civil time",
		Long: `Normalize calendar fields into a canonical civil time.

The number of arguments picks the alignment: one argument builds a year, three
a day, six a second. Fields may be out of range, including negative; they are
folded into the adjacent fields, so "norm 2016 10 32" prints 2016-11-01.`,
		Args: cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := make([]int64, len(args))
			for i, a := range args {
				n, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return fmt.Errorf("bad field %q: %w", a, err)
				}
				fs[i] = n
			}
			var v fmt.Stringer
			switch len(fs) {
			case 1:
				v = civil.YearOf(fs[0])
			case 2:
				v = civil.MonthOf(fs[0], fs[1])
			case 3:
				v = civil.DayOf(fs[0], fs[1], fs[2])
			case 4:
				v = civil.HourOf(fs[0], fs[1], fs[2], fs[3])
			case 5:
				v = civil.MinuteOf(fs[0], fs[1], fs[2], fs[3], fs[4])
			case 6:
				v = civil.SecondOf(fs[0], fs[1], fs[2], fs[3], fs[4], fs[5])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	// Fields may be negative; stop flag parsing at the first positional
	// argument so that "-42" is a field, not a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
