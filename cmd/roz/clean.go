package main

import (
	"fmt"

	"github.com/bivory/roz/internal/clean"
)

func (c *CleanCmd) Run(g *Globals) error {
	removed, err := clean.Run(g.Store, c.Before, c.All)
	if err != nil {
		return err
	}

	if removed == 0 {
		fmt.Println("No sessions to clean.")
	} else {
		fmt.Printf("Cleaned %d session(s).\n", removed)
	}
	return nil
}
