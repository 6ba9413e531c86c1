package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/temporal/utils/timex"
)

var dayCmd = &cobra.Command{
	Use:   "day <datetime>",
	Short: "Print the start and end of the day",
	Long: `Print the date-time with its clock set to 00:00:00 and to 23:59:59.
Fractional seconds are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := parseDateTime(args[0], false)
		if err != nil {
			return argError(cmd, err)
		}
		start, err := timex.StartOfDay(dt)
		if err != nil {
			return err
		}
		end, err := timex.EndOfDay(dt)
		if err != nil {
			return err
		}
		return render(cmd, field{"start", start}, field{"end", end})
	},
}

var monthCmd = &cobra.Command{
	Use:   "month <datetime>",
	Short: "Print the first and last day of the month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := parseDateTime(args[0], false)
		if err != nil {
			return argError(cmd, err)
		}
		first, err := timex.FirstDayOfMonth(dt)
		if err != nil {
			return err
		}
		last, err := timex.LastDayOfMonth(dt)
		if err != nil {
			return err
		}
		return render(cmd, field{"first", first}, field{"last", last})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd, monthCmd)
}
