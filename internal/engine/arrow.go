package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"regionchart/internal/models"
)

// viewSchema has one row per bar, in group order then key order.
func viewSchema(view models.ChartView) *arrow.Schema {
	md := arrow.NewMetadata(
		[]string{"dataset_id", "selected_year", "sort_direction", "value_max"},
		[]string{
			view.DatasetID,
			strconv.Itoa(view.SelectedYear),
			string(view.SortDirection),
			strconv.FormatFloat(view.Domains.ValueDomain[1], 'f', -1, 64),
		},
	)
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.BinaryTypes.String},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "key", Type: arrow.BinaryTypes.String},
		{Name: "value", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "missing", Type: arrow.FixedWidthTypes.Boolean},
	}, &md)
}

// WriteArrow streams the bars of view as a single Arrow IPC record batch.
func WriteArrow(w io.Writer, view models.ChartView) error {
	mem := memory.NewGoAllocator()
	schema := viewSchema(view)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	ids := b.Field(0).(*array.StringBuilder)
	names := b.Field(1).(*array.StringBuilder)
	keys := b.Field(2).(*array.StringBuilder)
	values := b.Field(3).(*array.Float64Builder)
	missing := b.Field(4).(*array.BooleanBuilder)

	for _, g := range view.Groups {
		for _, bar := range g.Bars {
			ids.Append(g.ID)
			names.Append(g.Name)
			keys.Append(bar.Key)
			if bar.Value == nil {
				values.AppendNull()
			} else {
				values.Append(*bar.Value)
			}
			missing.Append(bar.Missing)
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		iw.Close()
		return fmt.Errorf("write arrow batch: %w", err)
	}
	if err := iw.Close(); err != nil {
		return fmt.Errorf("close arrow stream: %w", err)
	}
	return nil
}
