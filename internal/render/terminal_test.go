package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regionchart/internal/models"
)

func num(v float64) *float64 { return &v }

func TestBarLength(t *testing.T) {
	assert.Equal(t, 10, barLength(50, 50, 10))
	assert.Equal(t, 5, barLength(25, 50, 10))
	assert.Equal(t, 0, barLength(3, 0, 10))
	assert.Equal(t, 0, barLength(-3, 50, 10))
}

func TestRender(t *testing.T) {
	view := models.ChartView{
		SelectedYear:  2014,
		SortDirection: models.SortDesc,
		Keys:          models.Keys,
		AxisLabel:     models.AxisLabel,
		Legend: []models.LegendEntry{
			{Key: "wp", Label: "werkzame pers."},
			{Key: "v_wp", Label: "vestigingen met wp"},
		},
		Domains: models.ScaleDomains{ValueDomain: [2]float64{0, 50}},
		Groups: []models.BarGroup{
			{ID: "A02", Name: "Oost", Bars: []models.Bar{
				{Key: "v_wp", Value: num(5)},
				{Key: "wp", Value: num(50)},
			}},
			{ID: "A03", Name: "Zuid", Bars: []models.Bar{
				{Key: "v_wp", Missing: true},
				{Key: "wp", Missing: true},
			}},
			{ID: "A04", Name: "West", Bars: []models.Bar{
				{Key: "v_wp", Value: nil},
				{Key: "wp", Value: num(0)},
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf, 10).Render(view))
	out := buf.String()

	assert.Contains(t, out, "Werkzame personen · 2014 · desc")
	assert.Contains(t, out, "werkzame pers.")
	assert.Contains(t, out, "A02 Oost")
	assert.Contains(t, out, strings.Repeat(barRune, 10)+" 50")
	assert.Contains(t, out, "  wp   n/a")
	assert.Contains(t, out, "  v_wp -")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3+3*3)
}
