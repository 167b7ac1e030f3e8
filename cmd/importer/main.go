// Command importer loads tracking/leads.json, tracking/applications.json and
// tracking/criteria.yml into the ScholarshipOps database.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/scholarshipops/scholarshipops/internal/importer"
	"github.com/scholarshipops/scholarshipops/internal/logging"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/repomanager"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := importer.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if cfg.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			return err
		}
	}

	var src importer.Source = importer.NewDirSource(cfg.Dir)
	if cfg.S3.Bucket != "" {
		src, err = importer.NewS3Source(ctx, cfg.S3)
		if err != nil {
			return err
		}
	}

	_, err = importer.New(db, rm, logger).Run(ctx, src)
	return err
}
