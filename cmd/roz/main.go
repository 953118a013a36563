package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/store"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Globals are the dependencies every subcommand's Run method receives.
type Globals struct {
	Store  store.Store
	Config *config.Config
	Log    *logging.Logger
}

func init() {
	_ = godotenv.Load()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roz"),
		kong.Description("A quality-gate controller for AI coding agent sessions."),
		kongVars(),
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roz: config error: %v\n", err)
		os.Exit(1)
	}

	fileStore, err := store.NewFileStore(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roz: storage error: %v\n", err)
		os.Exit(1)
	}

	globals := &Globals{
		Store:  fileStore,
		Config: cfg,
		Log:    logging.New(),
	}

	if err := ctx.Run(globals); err != nil {
		fmt.Fprintf(os.Stderr, "roz: %v\n", err)
		os.Exit(1)
	}
}

func (v *VersionCmd) Run(g *Globals) error {
	fmt.Printf("roz version %s (commit: %s)\n", version, commit)
	return nil
}
