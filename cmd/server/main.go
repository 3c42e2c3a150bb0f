package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/pizzastore/internal/buildinfo"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server"
	"github.com/dmitrijs2005/pizzastore/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Output:  os.Stdout,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
