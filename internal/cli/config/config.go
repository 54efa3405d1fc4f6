package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/articledb/articledb/internal/version"
)

// IngestCmd loads a directory of text files into a table.
type IngestCmd struct {
	Table string `arg:"--table,required" help:"Table to insert the files into"`
	Dir   string `arg:"positional,required" help:"Directory with the text files"`
}

// CSVCmd loads a CSV file into a table.
type CSVCmd struct {
	Table string `arg:"--table,required" help:"Table to insert the records into"`
	File  string `arg:"positional,required" help:"CSV file to load"`
}

// TablesCmd lists all tables in the database.
type TablesCmd struct{}

// SchemaCmd shows the column layout of a table.
type SchemaCmd struct {
	Table string `arg:"positional,required" help:"Table to describe"`
}

// CountCmd counts the rows of a table.
type CountCmd struct {
	Table string `arg:"positional,required" help:"Table to count"`
}

// BackupCmd writes a consistent snapshot of the database.
type BackupCmd struct {
	Dest string `arg:"positional,required" help:"Destination file for the snapshot"`
}

// PackCmd compresses the database file into a zip archive.
type PackCmd struct{}

// UnpackCmd restores the database file from a zip archive.
type UnpackCmd struct {
	Archive string `arg:"positional,required" help:"Archive created by the pack command"`
}

// ShellCmd opens an interactive SQL shell on the database.
type ShellCmd struct{}

// Config represents the configuration for the articledb CLI.
type Config struct {
	Database string `arg:"--database,env:ARTICLEDB_DATABASE" help:"Path to the SQLite database file" default:"articles.db"`

	Ingest *IngestCmd `arg:"subcommand:ingest" help:"Load a directory of text files into a table"`
	CSV    *CSVCmd    `arg:"subcommand:csv" help:"Load a CSV file into a table"`
	Tables *TablesCmd `arg:"subcommand:tables" help:"List all tables in the database"`
	Schema *SchemaCmd `arg:"subcommand:schema" help:"Show the columns of a table"`
	Count  *CountCmd  `arg:"subcommand:count" help:"Count the rows of a table"`
	Backup *BackupCmd `arg:"subcommand:backup" help:"Write a consistent snapshot of the database"`
	Pack   *PackCmd   `arg:"subcommand:pack" help:"Compress the database file into a zip archive"`
	Unpack *UnpackCmd `arg:"subcommand:unpack" help:"Restore the database file from a zip archive"`
	Shell  *ShellCmd  `arg:"subcommand:shell" help:"Open an interactive SQL shell"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDatabasePath(cfg.Database); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateDatabasePath validates if path can refer to a database file.
func validateDatabasePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("database path cannot be empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("database path %s is a directory", path)
	}

	return nil
}
