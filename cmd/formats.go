package cmd

import (
	"fmt"
	"time"

	"github.com/Goldziher/go-utils/sliceutils"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethwu/rn/internal/timefmt"
	"github.com/ethwu/rn/internal/units"
	"github.com/ethwu/rn/internal/util"
)

const nameColWidth = 12

var (
	HeaderStyle  = orangeStyle.Bold(true).Align(lipgloss.Center)
	CellStyle    = textStyle.Padding(0, 1)
	OddRowStyle  = stdRe.NewStyle().Background(gray).Inherit(CellStyle)
	EvenRowStyle = stdRe.NewStyle().Background(lipgloss.NoColor{}).Inherit(CellStyle)
	BorderStyle  = orangeStyle
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered unit systems",
	Long: `List every registered unit system with its base ratio in
	lowest terms, its layout, and the current time rendered in it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ms := sinceMidnight(time.Now(), viper.GetBool("local"))
		verbose("Listing [%d] formats at [%d] ms", len(formats.Names()), ms)

		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(BorderStyle).
			StyleFunc(formatsTableStyle).
			Headers("FORMAT", "BASE", "LAYOUT", "NOW")

		for _, row := range formatRows(formats, ms) {
			t.Row(row...)
		}

		fmt.Println(t)
		return nil
	},
}

// formatsTableStyle styles the header row and bands the data rows,
// which lipgloss/table hands over as table.HeaderRow and 0..n-1.
func formatsTableStyle(row, col int) lipgloss.Style {
	var style lipgloss.Style

	switch {
	case row == table.HeaderRow:
		return HeaderStyle
	case row%2 == 0:
		style = OddRowStyle
	default:
		style = EvenRowStyle
	}

	switch col {
	case 0:
		style = stdRe.NewStyle().Inline(true).Width(nameColWidth).Inherit(style)
	case 3:
		style = stdRe.NewStyle().Align(lipgloss.Right).Inherit(style)
	}

	return style
}

// formatRows builds one FORMAT/BASE/LAYOUT/NOW row per registered
// format, in Names() order.
func formatRows(reg *units.Registry, ms uint64) [][]string {
	return sliceutils.Map(reg.Names(), func(name string, index int, slice []string) []string {
		f, _ := reg.Lookup(name)
		return []string{name, reducedBase(f.Base()), f.Layout(), f.Render(ms)}
	})
}

// reducedBase shows the units-per-millisecond ratio in lowest terms,
// so the seximal systems read 81/25000 rather than 279936/86400000.
func reducedBase(r timefmt.Ratio) string {
	d := util.GCD(r.Num, r.Den)
	return fmt.Sprintf("%d/%d", r.Num/d, r.Den/d)
}
