package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bivory/roz/internal/hooks"
)

// Run reads the hook's JSON input from stdin, dispatches it, and writes the
// verdict JSON to stdout. It always exits 0: the hook protocol communicates
// allow/deny through the JSON payload, not the process exit code.
func (c *HookCmd) Run(g *Globals) error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		g.Log.FailOpen("read hook stdin", err)
		raw = []byte("{}")
	}

	out := hooks.Dispatch(c.Name, raw, g.Store, g.Config, g.Log)

	data, err := hooks.MarshalOutput(out)
	if err != nil {
		g.Log.Error("marshal hook output", map[string]any{"cause": err.Error()})
		fmt.Print("{}")
		return nil
	}

	os.Stdout.Write(data)
	return nil
}
