package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/temporal/utils/timex"
)

var nowMillis bool

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current UTC date-time",
	Long: `Print the current instant as a UTC date-time, as epoch milliseconds
and as an ISO-8601 string. --now on the root command pins the clock.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().BoolVar(&nowMillis, "millis", false, "print only epoch milliseconds")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	// One reading, so every printed field shows the same instant.
	instant := timex.FixedClock(current.clock.Now())
	if nowMillis {
		return render(cmd, field{"millis", timex.NowUTCMillis(instant)})
	}

	dt := timex.NowUTC(instant)
	iso, err := timex.FormatISOUTC(dt)
	if err != nil {
		return err
	}
	return render(cmd,
		field{"utc", dt},
		field{"millis", timex.NowUTCMillis(instant)},
		field{"iso", iso},
	)
}
