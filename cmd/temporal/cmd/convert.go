package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/temporal/core/errors"
	"github.com/msto63/temporal/core/log"
	"github.com/msto63/temporal/utils/timex"
)

var localZone string

var isoCmd = &cobra.Command{
	Use:   "iso <datetime>",
	Short: "Render a UTC date-time as ISO-8601 with a Z suffix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := parseDateTime(args[0], false)
		if err != nil {
			return argError(cmd, err)
		}
		iso, err := timex.FormatISOUTC(dt)
		if err != nil {
			return err
		}
		return render(cmd, field{"iso", iso})
	},
}

var fromMillisCmd = &cobra.Command{
	Use:   "from-millis <millis>",
	Short: "Convert epoch milliseconds to a UTC date-time (0 is absent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return argError(cmd, mdwerrors.InvalidFormat(mdwerrors.ModuleCLI, "from-millis", args[0], "integer milliseconds"))
		}
		current.logger.Debug("converting millis", log.Int64("millis", ms))
		return render(cmd, field{"utc", timex.ToUTCFromMillis(ms)})
	},
}

var toMillisCmd = &cobra.Command{
	Use:   "to-millis <instant>",
	Short: "Convert an instant to epoch milliseconds",
	Long: `Convert an RFC 3339 instant to epoch milliseconds. A date-time
without offset is read in the session zone (--zone or time.default_zone).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseInstantOrLocal(args[0])
		if err != nil {
			return argError(cmd, err)
		}
		ms, err := timex.ToUTCMillis(&t)
		if err != nil {
			return err
		}
		return render(cmd, field{"millis", ms})
	},
}

var utcCmd = &cobra.Command{
	Use:   "utc <instant>",
	Short: "Convert an instant to its UTC date-time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseInstantOrLocal(args[0])
		if err != nil {
			return argError(cmd, err)
		}
		return render(cmd, field{"utc", timex.ToUTC(&t)})
	},
}

var localCmd = &cobra.Command{
	Use:   "local <instant>",
	Short: "Read an instant as the wall clock of a zone",
	Long: `Read an instant as the wall-clock date-time of a zone. The zone given
with --in wins; without it the session zone (--zone or
time.default_zone) is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseInstantOrLocal(args[0])
		if err != nil {
			return argError(cmd, err)
		}

		var embedded *time.Location
		if localZone != "" {
			if embedded, err = timex.LoadLocation(localZone); err != nil {
				return err
			}
		}

		c := timex.NewCalendarIn(t, embedded)
		return render(cmd,
			field{"local", timex.FromCalendarIn(c, current.zone)},
			field{"zone", zoneOf(c)},
		)
	},
}

func zoneOf(c *timex.Calendar) string {
	if loc := c.Location(); loc != nil {
		return loc.String()
	}
	return current.zone.String()
}

func init() {
	localCmd.Flags().StringVar(&localZone, "in", "", "zone carried by the value")
	rootCmd.AddCommand(isoCmd, fromMillisCmd, toMillisCmd, utcCmd, localCmd)
}
