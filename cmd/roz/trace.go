package main

import (
	"fmt"

	"github.com/bivory/roz/internal/render"
	"github.com/bivory/roz/internal/rozerr"
)

func (c *TraceCmd) Run(g *Globals) error {
	s, err := g.Store.Get(c.SessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return rozerr.SessionNotFound(c.SessionID)
	}

	fmt.Print(render.Trace(s, c.Verbose))
	return nil
}
