// Command provision applies the embedded schema to the configured Postgres
// database. It is run once per environment, outside the request path.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/config"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	p := db.NewPostgresProvider(cfg.Database, logger)
	conn, err := p.OpenDB()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer conn.Close()

	m := repomanager.NewPostgresRepositoryManager(accounts.SchemaFor(cfg.Database.AccountSchema))
	if err := m.RunMigrations(ctx, conn.DB); err != nil {
		logger.Error(ctx, "provisioning failed", "error", err.Error())
		return
	}

	logger.Info(ctx, "schema provisioned", "database", cfg.Database.Name)

}
