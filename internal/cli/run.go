// Package cli wires the articledb command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/articledb/articledb"
	"github.com/articledb/articledb/internal/cli/config"
	"github.com/articledb/articledb/internal/cli/repl"
	"github.com/articledb/articledb/internal/log"
)

// Run runs the articledb CLI.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewLogger(os.Stdout)

	// Archive commands work on the database file itself, so the handle must
	// stay closed for them.
	if conf.Pack != nil {
		return runPack(logger, conf.Database)
	}
	if conf.Unpack != nil {
		return runUnpack(logger, conf.Unpack.Archive)
	}

	db, err := articledb.Open(conf.Database)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database:", log.KV{"error": err})
		}
	}()

	switch {
	case conf.Ingest != nil:
		return runIngest(ctx, logger, db, conf.Ingest)
	case conf.CSV != nil:
		return runCSV(ctx, logger, db, conf.CSV)
	case conf.Tables != nil:
		return runTables(ctx, db)
	case conf.Schema != nil:
		return runSchema(ctx, db, conf.Schema.Table)
	case conf.Count != nil:
		return runCount(ctx, db, conf.Count.Table)
	case conf.Backup != nil:
		return runBackup(ctx, logger, db, conf.Backup.Dest)
	case conf.Shell != nil:
		return runShell(ctx, stop, conf, db)
	}

	return errors.New("no command specified, run with --help for usage")
}

func runShell(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	db *articledb.DB,
) error {
	rp := repl.NewRepl(ctx, stop, conf, db)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
