package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Mode selects the frontend started by the binary.
type Mode string

const (
	ModeTerminal Mode = "terminal"
	ModeServe    Mode = "serve"
)

// Config holds the command line options.
type Config struct {
	Mode       Mode
	Address    string
	Prefix     string
	Root       string
	FPS        int
	LogFile    string
	ResizeWrap bool
	Seed       int64
	Duration   float64
}

// Parse reads the options from args (without the program name).
func Parse(args []string, output io.Writer) (*Config, error) {
	var (
		c    Config
		mode string
	)
	fs := flag.NewFlagSet("pagefx", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&mode, "mode", string(ModeTerminal), "frontend to run (terminal|serve)")
	fs.StringVar(&c.Address, "a", "localhost:5000", "address to serve(host:port)")
	fs.StringVar(&c.Prefix, "p", "/", "prefix path under")
	fs.StringVar(&c.Root, "r", ".", "root path to serve")
	fs.IntVar(&c.FPS, "fps", 60, "frames per second")
	fs.StringVar(&c.LogFile, "log", "debug.log", "log file used by the terminal frontend")
	fs.BoolVar(&c.ResizeWrap, "resize-wrap", true, "wrap particles left outside the surface by a resize")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.Float64Var(&c.Duration, "duration", 125, "length in seconds of the demo timeline")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.Mode = Mode(strings.ToLower(mode))
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &c, nil
}

// Validate checks the options for consistency.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTerminal, ModeServe:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.FPS <= 0 {
		return errors.New("fps must be positive")
	}
	if c.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if !strings.HasPrefix(c.Prefix, "/") {
		return fmt.Errorf("prefix %q must start with /", c.Prefix)
	}
	return nil
}
