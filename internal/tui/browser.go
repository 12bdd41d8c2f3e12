// Package tui provides an interactive bubbletea browser over the ranked
// designs of a run.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/racketlab/internal/sim"
	"github.com/san-kum/racketlab/internal/table"
	"github.com/san-kum/racketlab/internal/viz"
)

// Browser is a tea.Model listing ranked designs with a detail panel for the
// selected row. The tables are read-only.
type Browser struct {
	top    *table.Table
	runID  string
	cursor int
	width  int
	height int
}

func NewBrowser(runID string, top *table.Table) Browser {
	return Browser{runID: runID, top: top, width: 80, height: 24}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < b.top.Len()-1 {
				b.cursor++
			}
		case "g":
			b.cursor = 0
		case "G":
			b.cursor = b.top.Len() - 1
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if b.top.Len() == 0 {
		return viz.Subtle.Render("no designs to browse") + "\n"
	}

	var sb strings.Builder
	sb.WriteString("\n  " + viz.Title.Render("top designs") + "  " + viz.Subtle.Render(b.runID) + "\n\n")

	scores := b.top.MustColumn(sim.ColSweetScore)
	lo, hi := scores[len(scores)-1], scores[0]
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for i := 0; i < b.top.Len(); i++ {
		bar := viz.ScoreBar((scores[i]-lo)/span, 20)
		line := fmt.Sprintf("#%-3d %s %8.4f", i+1, bar, scores[i])
		if i == b.cursor {
			sb.WriteString("  " + viz.Highlight.Render("▸ "+line) + "\n")
		} else {
			sb.WriteString("  " + viz.Label.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n" + b.detailPanel() + "\n")
	sb.WriteString("  " + viz.KeyHint.Render("j/k navigate · g/G first/last · q quit") + "\n")
	return sb.String()
}

func (b Browser) detailPanel() string {
	row := b.top.Row(b.cursor)

	fields := []struct {
		label, unit string
		col         string
	}{
		{"racket mass", "kg", sim.ColMRacket},
		{"string stiffness", "N/m", sim.ColKString},
		{"damping", "", sim.ColDamping},
		{"impact location", "", sim.ColXNorm},
		{"exit speed", "m/s", sim.ColExitSpeed},
		{"shock proxy", "", sim.ColShockProxy},
		{"sweet score", "", sim.ColSweetScore},
	}

	var sb strings.Builder
	for _, f := range fields {
		v, ok := row[f.col]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			viz.Label.Render(fmt.Sprintf("%-18s", f.label)),
			viz.Value.Render(fmt.Sprintf("%10.4f", v)),
			viz.Subtle.Render(f.unit)))
	}
	return viz.Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

// Run starts the browser program and blocks until quit.
func Run(runID string, top *table.Table) error {
	_, err := tea.NewProgram(NewBrowser(runID, top), tea.WithAltScreen()).Run()
	return err
}
