package cli

import (
	"context"
	"fmt"

	"github.com/articledb/articledb"
	"github.com/articledb/articledb/internal/cli/config"
	"github.com/articledb/articledb/internal/cli/styled"
	"github.com/articledb/articledb/internal/log"
	"github.com/articledb/articledb/internal/util/numutil"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

func runIngest(
	ctx context.Context, logger log.Logger, db *articledb.DB, cmd *config.IngestCmd,
) error {
	batchId, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to generate batch ID: %w", err)
	}

	logger.Info("starting ingestion", log.KV{
		"batch": batchId.String(),
		"table": cmd.Table,
		"dir":   cmd.Dir,
	})

	if err := db.InsertTextFiles(ctx, cmd.Table, cmd.Dir, articledb.WithProgress()); err != nil {
		return fmt.Errorf("error ingesting text files: %w", err)
	}

	count, err := db.CountRows(ctx, cmd.Table)
	if err != nil {
		return fmt.Errorf("error counting rows after ingestion: %w", err)
	}

	logger.Info("ingestion finished", log.KV{
		"batch": batchId.String(),
		"table": cmd.Table,
		"rows":  count,
	})
	return nil
}

func runCSV(
	ctx context.Context, logger log.Logger, db *articledb.DB, cmd *config.CSVCmd,
) error {
	logger.Info("loading csv file", log.KV{"table": cmd.Table, "file": cmd.File})

	if err := db.InsertCSV(ctx, cmd.Table, cmd.File); err != nil {
		return fmt.Errorf("error loading csv file: %w", err)
	}

	count, err := db.CountRows(ctx, cmd.Table)
	if err != nil {
		return fmt.Errorf("error counting rows after load: %w", err)
	}

	logger.Info("csv load finished", log.KV{"table": cmd.Table, "rows": count})
	return nil
}

func runTables(ctx context.Context, db *articledb.DB) error {
	tables, err := db.Tables(ctx)
	if err != nil {
		return fmt.Errorf("error listing tables: %w", err)
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Table"})
	for _, name := range tables {
		tw.AppendRow(table.Row{name})
	}

	fmt.Println(tw.Render())
	return nil
}

func runSchema(ctx context.Context, db *articledb.DB, tableName string) error {
	columns, err := db.TableInfo(ctx, tableName)
	if err != nil {
		return fmt.Errorf("error reading schema of %s: %w", tableName, err)
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"ID", "Name", "Type", "NotNull", "Default", "PrimaryKey"})
	for _, col := range columns {
		defaultVal := ""
		if col.Default.Valid {
			defaultVal = col.Default.String
		}
		tw.AppendRow(table.Row{col.ID, col.Name, col.Type, col.NotNull, defaultVal, col.PrimaryKey})
	}

	fmt.Println(tw.Render())
	return nil
}

func runCount(ctx context.Context, db *articledb.DB, tableName string) error {
	count, err := db.CountRows(ctx, tableName)
	if err != nil {
		return fmt.Errorf("error counting rows of %s: %w", tableName, err)
	}

	fmt.Println(numutil.Int64WithCommas(count))
	styled.DimmedColor().Printf("rows in %s\n", tableName)
	return nil
}

func runBackup(
	ctx context.Context, logger log.Logger, db *articledb.DB, dest string,
) error {
	if err := db.Backup(ctx, dest); err != nil {
		return fmt.Errorf("error creating backup: %w", err)
	}

	logger.Info("backup created", log.KV{"dest": dest})
	return nil
}

func runPack(logger log.Logger, path string) error {
	archive, err := articledb.Pack(path)
	if err != nil {
		return fmt.Errorf("error packing database: %w", err)
	}

	logger.Info("database packed", log.KV{"archive": archive})
	return nil
}

func runUnpack(logger log.Logger, archive string) error {
	path, err := articledb.Unpack(archive)
	if err != nil {
		return fmt.Errorf("error unpacking database: %w", err)
	}

	logger.Info("database unpacked", log.KV{"path": path})
	return nil
}
