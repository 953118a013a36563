package main

import (
	"fmt"

	"github.com/bivory/roz/internal/render"
	"github.com/bivory/roz/internal/stats"
)

func (c *StatsCmd) Run(g *Globals) error {
	report, err := stats.Aggregate(g.Store, c.Days)
	if err != nil {
		return err
	}

	fmt.Print(render.Stats(report, c.Days))
	return nil
}
