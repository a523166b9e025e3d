package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JohnCastleman/eob-audit-tool/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		dir           string
		title         string
		providerTable string
		compositePDF  string
		configPath    string
		force         bool
		verbose       bool
	)

	flag.StringVar(&dir, "dir", "", "Directory of statement documents (*.html statements, *.txt extracted PDF page text)")
	flag.StringVar(&title, "title", "", "Composite report title (default derives from the directory name)")
	flag.StringVar(&providerTable, "providers.table", os.Getenv("EOB_PROVIDER_TABLE"), "Path to YAML provider fallback table; replaces the built-in set")
	flag.StringVar(&compositePDF, "composite.pdf", "", "Also write the composite report as a PDF at this path")
	flag.StringVar(&configPath, "config", os.Getenv("EOB_CONFIG"), "Optional YAML/JSON config file; explicit flags win")
	flag.BoolVar(&force, "force", false, "Overwrite existing outputs")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Positional form: eobaudit <dir>
	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	cfg := app.Config{
		Dir:               dir,
		Title:             title,
		ProviderTablePath: providerTable,
		CompositePDF:      compositePDF,
		Force:             force,
		Verbose:           verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.Dir == "" {
		fmt.Fprintln(os.Stderr, "usage: eobaudit -dir <statement directory> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}
	if err := a.Run(); err != nil {
		log.Error().Err(err).Msg("processing failed")
		os.Exit(1)
	}
}
