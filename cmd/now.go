package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethwu/rn/internal/clock"
	"github.com/ethwu/rn/internal/units"
)

var (
	nowLocal  bool
	nowFormat string
	useSpan   bool
	useBasic  bool
	useSnap   bool
)

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().BoolVarP(&nowLocal, "local", "l", false, "Reckon from local midnight instead of UTC")
	viper.BindPFlag("local", nowCmd.Flags().Lookup("local"))
	nowCmd.Flags().StringVarP(&nowFormat, "format", "f", "", "Unit system to render with (see 'rn formats')")
	nowCmd.Flags().BoolVarP(&useSpan, "span", "s", false, "Render the time in spans")
	nowCmd.Flags().BoolVarP(&useBasic, "basic", "b", false, "Render the undelimited snap count")
	nowCmd.Flags().BoolVar(&useSnap, "snap", false, "Alias for --basic")
	nowCmd.MarkFlagsMutuallyExclusive("span", "basic", "snap", "format")
}

var nowCmd = &cobra.Command{
	Use:   "now [when]",
	Short: "Print the time of day",
	Long: `Print the current time of day, or a given one. Times are
	reckoned from UTC midnight unless --local is set; a positional
	time like 13:37, 4pm, or 6h 45m is rendered as written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := pickFormat(nowFormat, useSpan, useBasic || useSnap)
		f, ok := formats.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown format %q (see 'rn formats')", name)
		}

		var ms uint64
		if len(args) > 0 {
			var err error
			if ms, err = clock.TimeOfDay(args[0]); err != nil {
				verbose("Time parse error")
				return err
			}
		} else {
			ms = sinceMidnight(time.Now(), viper.GetBool("local"))
		}

		vVerbose("Rendering [%d] ms with [%s]", ms, name)
		fmt.Println(f.Render(ms))
		return nil
	},
}

// pickFormat resolves the format name from the convenience flags, an
// explicit --format, then the configured default, in that order.
func pickFormat(explicit string, span, basic bool) string {
	switch {
	case span:
		return units.NameSpan
	case basic:
		return units.NameSnap
	case explicit != "":
		return explicit
	}
	return viper.GetString("format")
}

// sinceMidnight reads the wall clock against UTC midnight unless local
// reckoning is asked for.
func sinceMidnight(t time.Time, local bool) uint64 {
	if !local {
		t = t.UTC()
	}
	return clock.SinceMidnight(t)
}
