package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	renderFormat string
	renderAll    bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Unit system to render with (see 'rn formats')")
	renderCmd.Flags().BoolVarP(&renderAll, "all", "a", false, "Render with every registered format")
	renderCmd.MarkFlagsMutuallyExclusive("format", "all")
}

var renderCmd = &cobra.Command{
	Use:   "render <milliseconds>...",
	Short: "Render raw millisecond counts",
	Long: `Render one or more millisecond counts instead of reading the
	wall clock. Useful for checking a unit system definition against
	known values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]uint64, 0, len(args))
		for _, arg := range args {
			ms, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid millisecond count %q", arg)
			}
			values = append(values, ms)
		}

		if renderAll {
			for _, ms := range values {
				for _, name := range formats.Names() {
					f, _ := formats.Lookup(name)
					fmt.Printf("%-10s %s\n", name, f.Render(ms))
				}
			}
			return nil
		}

		name := pickFormat(renderFormat, false, false)
		f, ok := formats.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown format %q (see 'rn formats')", name)
		}
		for _, ms := range values {
			fmt.Println(f.Render(ms))
		}
		return nil
	},
}
