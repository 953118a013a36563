package main

import (
	"fmt"

	"github.com/bivory/roz/internal/render"
)

func (c *ListCmd) Run(g *Globals) error {
	sessions, err := g.Store.List(c.Limit)
	if err != nil {
		return err
	}

	fmt.Print(render.List(sessions, g.Config.Storage.Path))
	return nil
}
