package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tido/internal/app"
	"tido/internal/config"
	"tido/internal/logging"
	"tido/internal/query"
	"tido/internal/render"
	"tido/internal/storage"
	"tido/internal/theme"
	"tido/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	configPath := flags.String("config", config.ResolveConfigPath(), "path to config.toml")
	dbPath := flags.String("db", "", "preferences database (overrides db_path)")
	exportPath := flags.String("export-html", "", "write an HTML snapshot of the visible list on exit")
	logLevel := flags.String("log-level", "", "debug, info, warn or error (overrides log_level)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	logger, logFile, err := logging.OpenFile(cfg.LogFile, opts)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logFile.Close()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	th := theme.New(store, nil, logger)
	th.Init()

	state := app.New(th, app.Options{
		Filter: query.Filter(cfg.DefaultFilter),
		Sort:   query.SortKey(cfg.DefaultSort),
		Logger: logger,
	})
	logger.Info("starting", "config", *configPath, "theme", th.Get())

	if err := ui.Run(state, cfg, logger); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if *exportPath != "" {
		if err := exportHTML(*exportPath, state); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		logger.Info("exported snapshot", "path", *exportPath)
	}
	return nil
}

func exportHTML(path string, state *app.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.HTML(f, render.Page{
		Theme:  state.Theme.Get(),
		Filter: state.Filter(),
		Search: state.Search(),
		Sort:   state.Sort(),
		Tasks:  state.Visible(),
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
