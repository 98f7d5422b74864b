package main

import (
	"github.com/spf13/cobra"

	"regionchart/internal/chart"
	"regionchart/internal/models"
	"regionchart/internal/render"
)

var (
	renderYear  int
	renderSort  string
	renderWidth int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the chart for one year to the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context(), nil)
		if err != nil {
			return err
		}
		ctrl := chart.New(ds, cfg.Chart.DefaultYear, chart.WithLogger(logger))

		view := ctrl.View()
		if cmd.Flags().Changed("year") {
			if view, err = ctrl.Dispatch(chart.YearChanged{Year: renderYear}); err != nil {
				return err
			}
		}
		dir, err := models.ParseDirection(renderSort)
		if err != nil {
			return err
		}
		if dir != models.SortNone {
			if view, err = ctrl.Dispatch(chart.SortChanged{Direction: dir}); err != nil {
				return err
			}
		}
		return render.NewTerminal(cmd.OutOrStdout(), renderWidth).Render(view)
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderYear, "year", 0, "year to show (defaults to CHART_DEFAULT_YEAR)")
	renderCmd.Flags().StringVar(&renderSort, "sort", "", "sort by yearly total: asc or desc")
	renderCmd.Flags().IntVar(&renderWidth, "width", 40, "bar width at the top of the scale")
}
