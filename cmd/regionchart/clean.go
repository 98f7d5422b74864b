package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"regionchart/internal/engine"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Print the export as cleaned comma separated lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource(cmd.Context())
		if err != nil {
			return err
		}
		raw, err := src.Read(cmd.Context(), cfg.Source.Key)
		if err != nil {
			return &engine.InputLoadError{Source: cfg.Source.Key, Err: err}
		}
		cleaned, err := engine.Clean(string(raw), engine.CleanOptions{
			StartMarker:  cfg.Chart.StartMarker,
			FooterMarker: cfg.Chart.FooterMarker,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cleaned)
		return err
	},
}
