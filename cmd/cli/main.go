package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rhyrak/wolfscheduler/internal/config"
	"github.com/rhyrak/wolfscheduler/internal/csvio"
	"github.com/rhyrak/wolfscheduler/internal/logger"
	"github.com/rhyrak/wolfscheduler/internal/scheduler"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to config.yaml (default: ./config/config.yaml or ./config.yaml)")
		catalog    = pflag.String("catalog", "", "course record file, overrides catalog.path")
		script     = pflag.String("script", "", "read commands from this file instead of stdin")
		initConfig = pflag.String("init-config", "", "write a default config file to this path and exit")
	)
	pflag.Parse()

	if *initConfig != "" {
		if err := config.WriteDefault(*initConfig); err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *initConfig)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *catalog != "" {
		cfg.Catalog.Path = *catalog
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	source := csvio.RecordFile{Path: cfg.Catalog.Path, Comma: cfg.CatalogDelimiter(), Logger: log}
	sched, err := scheduler.New(source, log)
	if err != nil {
		log.Fatal("could not load the course catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	sched.SetTitle(cfg.Schedule.Title)

	var in io.Reader = os.Stdin
	prompt := "> "
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatal("could not open script", zap.Error(err))
		}
		defer f.Close()
		in = f
		prompt = ""
	}

	sh := newShell(sched, cfg, os.Stdout, log)
	sh.prompt = prompt
	if err := sh.run(in); err != nil {
		log.Error("shell stopped", zap.Error(err))
		os.Exit(1)
	}
}
