package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/temporal/utils/timex"
)

var (
	betweenFrom string
	betweenTo   string
)

var maxCmd = &cobra.Command{
	Use:   "max <datetime>...",
	Short: "Print the latest date-time; - marks an absent entry",
	Long: `Print the latest of the given date-times. Absent entries (-) are
skipped. With nothing left the minimum sentinel is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dts, err := parseAll(cmd, args)
		if err != nil {
			return err
		}
		latest, err := timex.Max(dts...)
		if err != nil {
			return argError(cmd, err)
		}
		return render(cmd, field{"max", latest})
	},
}

var minCmd = &cobra.Command{
	Use:   "min <datetime>...",
	Short: "Print the earliest date-time; - marks an absent entry",
	Long: `Print the earliest of the given date-times. Absent entries (-) are
skipped. With nothing left the maximum sentinel is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dts, err := parseAll(cmd, args)
		if err != nil {
			return err
		}
		earliest, err := timex.Min(dts...)
		if err != nil {
			return argError(cmd, err)
		}
		return render(cmd, field{"min", earliest})
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <datetime>",
	Short: "Check from <= value <= to; a missing bound is open",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseDateTime(args[0], true)
		if err != nil {
			return argError(cmd, err)
		}
		from, err := optionalDateTime(betweenFrom)
		if err != nil {
			return argError(cmd, err)
		}
		to, err := optionalDateTime(betweenTo)
		if err != nil {
			return argError(cmd, err)
		}

		in, err := timex.IsBetween(value, from, to)
		if err != nil {
			return err
		}
		return render(cmd, field{"between", in})
	},
}

func parseAll(cmd *cobra.Command, args []string) ([]timex.LocalDateTime, error) {
	dts := make([]timex.LocalDateTime, 0, len(args))
	for _, arg := range args {
		dt, err := parseDateTime(arg, true)
		if err != nil {
			return nil, argError(cmd, err)
		}
		dts = append(dts, dt)
	}
	return dts, nil
}

func optionalDateTime(value string) (timex.LocalDateTime, error) {
	if value == "" {
		return timex.LocalDateTime{}, nil
	}
	return parseDateTime(value, true)
}

func init() {
	betweenCmd.Flags().StringVar(&betweenFrom, "from", "", "lower bound (inclusive)")
	betweenCmd.Flags().StringVar(&betweenTo, "to", "", "upper bound (inclusive)")
	rootCmd.AddCommand(maxCmd, minCmd, betweenCmd)
}
