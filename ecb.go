package main

import (
	"io"
	"log"
	"os"

	"github.com/lpbeast/ecbtoys/config"
	"github.com/lpbeast/ecbtoys/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// errors always go to stderr; load and trace lines only when asked for
	logger := log.New(os.Stderr, "ecb: ", log.LstdFlags)
	trace := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		trace = logger
	}

	doc := roster.Default()
	if cfg.RosterPath != "" {
		doc, err = roster.LoadFile(cfg.RosterPath)
		if err != nil {
			logger.Fatalf("loading roster: %s", err)
		}
	}
	rs, err := roster.Build(doc, os.Stdout, trace)
	if err != nil {
		logger.Fatalf("building roster: %s", err)
	}

	script := demoScript(cfg.Demo)
	if cfg.ScriptPath != "" {
		f, err := os.Open(cfg.ScriptPath)
		if err != nil {
			logger.Fatalf("unable to open script file: %s", err)
		}
		script, err = LoadScript(f)
		f.Close()
		if err != nil {
			logger.Fatal(err)
		}
	}

	w := NewWorld(rs, os.Stdout, logger)
	w.Enqueue(script...)
	report := w.Run()
	trace.Printf("done: %d performed, %d refused, %d failed\n", report.Performed, report.Refused, report.Failed)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
