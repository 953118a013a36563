package main

import (
	"fmt"

	"github.com/bivory/roz/internal/render"
	"github.com/bivory/roz/internal/rozerr"
)

func (c *DebugCmd) Run(g *Globals) error {
	s, err := g.Store.Get(c.SessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return rozerr.SessionNotFound(c.SessionID)
	}

	out, err := render.Debug(s)
	if err != nil {
		return rozerr.Serialization(err, "marshal session %s", c.SessionID)
	}
	fmt.Print(out)
	return nil
}
