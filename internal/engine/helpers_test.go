package engine

import "regionchart/internal/models"

func num(v float64) *float64 { return &v }

// sampleExport mirrors the layout of the regional export: a title block, the
// data rows, then the totals row and a source line.
const sampleExport = `Vestigingen en werkzame personen per gebied
gebied;2013;;2014;
;v_wp;wp;v_wp;wp
A001 Alpha;10;20;30;40
A002 Beta centrum;1,200;50;x;60
totaal;1210;70;30;100
bron: LISA
`

func record(id string, pairs ...[2]*float64) models.Record {
	r := models.Record{ID: id, Name: id}
	for i, p := range pairs {
		r.Values = append(r.Values, models.YearValue{Year: DefaultBaseYear + i, MetricA: p[0], MetricB: p[1]})
	}
	return r
}

func pair(a, b *float64) [2]*float64 { return [2]*float64{a, b} }
