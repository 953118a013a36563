package main

import (
	"fmt"
	"strings"

	"github.com/bivory/roz/internal/decide"
)

func (c *DecideCmd) Run(g *Globals) error {
	_, err := decide.Run(g.Store, decide.Request{
		SessionID: c.SessionID,
		Decision:  c.Decision,
		Summary:   c.Summary,
		Message:   c.Message,
		Opinions:  c.Opinions,
		MaxEvents: g.Config.Trace.MaxEvents,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Decision recorded: %s for session %s\n", strings.ToUpper(c.Decision), c.SessionID)
	return nil
}
