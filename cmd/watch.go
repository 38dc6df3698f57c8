package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(orange)

var watchColumns = []table.Column{
	{Title: "Format", Width: 12},
	{Title: "Time", Width: 30},
}

var (
	headStyle = infoBoxStyle.Align(lipgloss.Center).Width(46)
	helpStyle = grayStyle.Align(lipgloss.Center).Width(46)
)

// watchInterval is comfortably under a snap (about 309 ms), so no
// place ever visibly skips.
const watchInterval = 100 * time.Millisecond

type tickMsg time.Time

type watchModel struct {
	table table.Model
	local bool
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch every unit system tick in real time",
	Long:  `Show a live table of the current time of day rendered in every registered unit system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.New(
			table.WithColumns(watchColumns),
			table.WithRows([]table.Row{}),
			table.WithFocused(true),
			table.WithHeight(len(formats.Names())+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(orange).
			BorderBottom(true).
			Foreground(textColor).
			Bold(true)
		s.Cell = s.Cell.Foreground(textColor)
		s.Selected = s.Selected.
			Foreground(textColor).
			Background(cyan).
			Bold(false)
		t.SetStyles(s)

		m := watchModel{table: t, local: viper.GetBool("local")}
		m.refresh(time.Now())

		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func tick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.local = !m.local
			m.refresh(time.Now())
			return m, nil
		}
	case tickMsg:
		m.refresh(time.Time(msg))
		return m, tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *watchModel) refresh(now time.Time) {
	ms := sinceMidnight(now, m.local)
	rows := []table.Row{}
	for _, name := range formats.Names() {
		f, _ := formats.Lookup(name)
		rows = append(rows, table.Row{name, f.Render(ms)})
	}
	m.table.SetRows(rows)
}

func (m watchModel) View() string {
	zone := "UTC"
	if m.local {
		zone = "local"
	}
	s := headStyle.Render(fmt.Sprintf("Time since %s midnight", zone)) + "\n"
	s += baseStyle.Render(m.table.View()) + "\n"
	s += helpStyle.Render("l: toggle local ⌃+c/q: quit") + "\n"
	return s
}
