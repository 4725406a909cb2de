// Package main provides the CLI entrypoint for edm4hep2lcio.
//
// edm4hep2lcio reads a source event from YAML, converts the collections
// named in the config and registers the resulting event either in memory
// or, when an output directory is configured, as a compressed snapshot.
//
// Usage:
//
//	edm4hep2lcio -config conv.yaml -input event.yaml [-dump]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/config"
	"edm4hep2lcio/internal/convert"
	"edm4hep2lcio/internal/metrics"
	"edm4hep2lcio/internal/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("edm4hep2lcio", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to the converter config file")
	inputPath := fs.String("input", "", "path to the source event file")
	dump := fs.Bool("dump", false, "dump the converted event")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath == "" || *inputPath == "" {
		fs.Usage()
		return errors.New("both -config and -input are required")
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}

	ev, err := edm4hep.LoadEvent(*inputPath)
	if err != nil {
		return err
	}

	st, err := newStore(cfg)
	if err != nil {
		return err
	}

	opts, err := cfg.Options(logger, metrics.New(prometheus.NewRegistry()))
	if err != nil {
		return err
	}

	res, err := convert.New(st, opts...).Convert(ev, cfg.Collections)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics.Errors {
		fmt.Fprintln(stderr, d.String())
	}

	for _, d := range res.Diagnostics.Warnings {
		fmt.Fprintln(stderr, d.String())
	}

	switch st := st.(type) {
	case *store.File:
		fmt.Fprintf(stdout, "wrote %s\n", st.Path(cfg.EventKey))
	case *store.Memory:
		for _, key := range st.Keys() {
			fmt.Fprintf(stdout, "registered %s\n", key)
		}
	}

	if *dump {
		spew.Fdump(stdout, res.Event)
	}

	return nil
}

func newStore(cfg *config.Config) (convert.Store, error) {
	if cfg.Output == "" {
		return store.NewMemory(), nil
	}

	return store.NewFile(cfg.Output)
}
