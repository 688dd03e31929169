package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/croissant/internal/client/cli"
	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server"
	"github.com/dmitrijs2005/croissant/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	d := server.NewDispatcher(cfg, logger)

	cli.NewApp(d, os.Stdin, os.Stdout).Run(ctx)

}
