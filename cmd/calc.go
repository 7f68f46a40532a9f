package cmd

import (
	"fmt"
	"strconv"

	"github.com/koki-develop/samplesize/internal/logger"
	"github.com/koki-develop/samplesize/internal/samplesize"
	"github.com/spf13/cobra"
)

var calcArgNames = []string{"TARGET_W", "TARGET_H", "ACTUAL_W", "ACTUAL_H"}

func newCalcCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "calc TARGET_W TARGET_H ACTUAL_W ACTUAL_H",
		Short: "Calculate the sample factor for the given dimensions",
		Long:  "Calculate the sample factor for the given dimensions. A target of 0 leaves that axis unconstrained.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]int, len(args))
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid %s: %w", calcArgNames[i], err)
				}
				vals[i] = v
			}

			target := samplesize.Size{Width: vals[0], Height: vals[1]}
			actual := samplesize.Size{Width: vals[2], Height: vals[3]}

			r, err := samplesize.Calculate(target, actual)
			if err != nil {
				return err
			}
			logger.Debug.Printf("target %s, actual %s, desired %s, factor %d", target, actual, r.Desired, r.Factor)

			return flags.writer(cmd).Result(actual.String(), r)
		},
	}
}
