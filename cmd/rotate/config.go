package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

type config struct {
	Sample string `env:"GRIDROT_SAMPLE" envDefault:"keypad"`
	Turns  int    `env:"GRIDROT_TURNS" envDefault:"1"`
	Dense  bool   `env:"GRIDROT_DENSE" envDefault:"false"`
}

// loadConfig reads GRIDROT_* defaults from the environment and lets args
// override them.
func loadConfig(args []string, errW io.Writer) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&cfg.Sample, "sample", cfg.Sample, "sample grid to rotate (keypad, digits)")
	fs.IntVar(&cfg.Turns, "turns", cfg.Turns, "quarter turns anticlockwise (negative turns clockwise)")
	fs.BoolVar(&cfg.Dense, "dense", cfg.Dense, "rotate the digits sample as a dense float32 matrix")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}
