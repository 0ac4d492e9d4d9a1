package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/esimov/pagefx/config"
	"github.com/esimov/pagefx/http"
	"github.com/esimov/pagefx/terminal"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeServe:
		err = http.InitServer(ctx, cfg)
	case config.ModeTerminal:
		var term *terminal.Terminal
		term, err = terminal.New(cfg)
		if err == nil {
			err = term.Render(ctx, cfg)
		}
	}
	if err != nil {
		log.Fatalln(err)
	}
}
