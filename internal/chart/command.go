package chart

import (
	"fmt"

	"regionchart/internal/models"
)

// Command is a selection change coming from a control.
type Command interface {
	isCommand()
}

type YearChanged struct {
	Year int
}

type SortChanged struct {
	Direction models.Direction
}

func (YearChanged) isCommand() {}
func (SortChanged) isCommand() {}

// Dispatch applies cmd and returns the resulting view.
func (c *Controller) Dispatch(cmd Command) (models.ChartView, error) {
	switch cmd := cmd.(type) {
	case YearChanged:
		return c.OnYearChange(cmd.Year)
	case SortChanged:
		return c.OnSortChange(cmd.Direction)
	default:
		return models.ChartView{}, fmt.Errorf("unsupported command %T", cmd)
	}
}
