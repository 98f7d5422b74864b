// Package render paints a chart view as horizontal text bars.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regionchart/internal/models"
)

// First two colours of d3's category10 scheme, one per metric key.
var keyColors = map[string]lipgloss.Color{
	models.KeyEstablishments: lipgloss.Color("#1f77b4"),
	models.KeyWorkingPersons: lipgloss.Color("#ff7f0e"),
}

const barRune = "█"

// Terminal writes views to an io.Writer. Width is the length of a bar at
// the top of the value domain.
type Terminal struct {
	Width int

	out      io.Writer
	renderer *lipgloss.Renderer
}

func NewTerminal(w io.Writer, width int) *Terminal {
	if width <= 0 {
		width = 40
	}
	return &Terminal{Width: width, out: w, renderer: lipgloss.NewRenderer(w)}
}

func (t *Terminal) style(key string) lipgloss.Style {
	return t.renderer.NewStyle().Foreground(keyColors[key])
}

// Render writes the title, the legend and one block per bar group.
func (t *Terminal) Render(view models.ChartView) error {
	var b strings.Builder

	title := fmt.Sprintf("%s · %d", view.AxisLabel, view.SelectedYear)
	if view.SortDirection != models.SortNone {
		title += " · " + strings.ToLower(string(view.SortDirection))
	}
	b.WriteString(t.renderer.NewStyle().Bold(true).Render(title))
	b.WriteString("\n")

	legend := make([]string, 0, len(view.Legend))
	for _, l := range view.Legend {
		legend = append(legend, t.style(l.Key).Render(barRune)+" "+l.Label)
	}
	b.WriteString(strings.Join(legend, "   "))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, k := range view.Keys {
		keyWidth = max(keyWidth, len(k))
	}

	top := view.Domains.ValueDomain[1]
	for _, g := range view.Groups {
		fmt.Fprintf(&b, "%s %s\n", g.ID, g.Name)
		for _, bar := range g.Bars {
			fmt.Fprintf(&b, "  %-*s ", keyWidth, bar.Key)
			switch {
			case bar.Missing:
				b.WriteString("n/a")
			case bar.Value == nil:
				b.WriteString("-")
			default:
				n := barLength(*bar.Value, top, t.Width)
				b.WriteString(t.style(bar.Key).Render(strings.Repeat(barRune, n)))
				b.WriteString(" ")
				b.WriteString(strconv.FormatFloat(*bar.Value, 'f', -1, 64))
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

// barLength scales v against top. Negative values and a zero domain draw
// nothing.
func barLength(v, top float64, width int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / top * float64(width)))
}
