// Package main is the roz command-line entry point: the hook dispatcher
// Claude Code invokes per lifecycle event, plus the inspection and
// maintenance subcommands a human runs directly.
package main

import "github.com/alecthomas/kong"

// CLI defines the full command-line interface.
type CLI struct {
	Hook    HookCmd    `cmd:"" help:"Dispatch a hook event (reads JSON from stdin, writes JSON to stdout)"`
	Decide  DecideCmd  `cmd:"" help:"Post a COMPLETE or ISSUES decision for a session"`
	Context ContextCmd `cmd:"" help:"Show review context for a session"`
	List    ListCmd    `cmd:"" help:"List recent sessions"`
	Debug   DebugCmd   `cmd:"" help:"Dump full session state as JSON"`
	Trace   TraceCmd   `cmd:"" help:"Show a session's trace events"`
	Clean   CleanCmd   `cmd:"" help:"Remove old sessions"`
	Stats   StatsCmd   `cmd:"" help:"Show template A/B test performance"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// HookCmd dispatches a single hook invocation.
type HookCmd struct {
	Name string `arg:"" help:"Hook name: session-start, user-prompt, stop, subagent-stop, pre-tool-use"`
}

// DecideCmd posts a terminal review decision.
type DecideCmd struct {
	SessionID string `arg:"" help:"Session id"`
	Decision  string `arg:"" help:"COMPLETE or ISSUES"`
	Summary   string `arg:"" help:"One-line summary of the review outcome"`
	Message   string `help:"Message back to the agent (ISSUES only)"`
	Opinions  string `help:"Second-opinion notes (COMPLETE only)"`
}

// ContextCmd shows a session's review context.
type ContextCmd struct {
	SessionID string `arg:"" help:"Session id"`
}

// ListCmd lists recent sessions.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum sessions to show"`
}

// DebugCmd dumps a session's full state.
type DebugCmd struct {
	SessionID string `arg:"" help:"Session id"`
}

// TraceCmd shows a session's trace events.
type TraceCmd struct {
	SessionID string `arg:"" help:"Session id"`
	Verbose   bool   `short:"v" help:"Print each event's full JSON payload"`
}

// CleanCmd removes old sessions.
type CleanCmd struct {
	Before string `default:"7d" help:"Age threshold, e.g. 7d, 24h, 30m"`
	All    bool   `help:"Remove every session regardless of age"`
}

// StatsCmd shows template performance statistics.
type StatsCmd struct {
	Days int `default:"30" help:"Number of days to look back"`
}

// VersionCmd prints build version info.
type VersionCmd struct{}

func kongVars() kong.Vars {
	return kong.Vars{"version": version}
}
