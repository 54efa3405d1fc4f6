// Package repl implements the interactive SQL shell of the articledb CLI.
package repl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/articledb/articledb"
	"github.com/articledb/articledb/internal/cli/config"
	"github.com/articledb/articledb/internal/util/sysutil"
	"github.com/articledb/articledb/internal/version"
	"github.com/peterh/liner"
)

type Repl struct {
	conf        config.Config
	db          *articledb.DB
	ctx         context.Context
	stop        context.CancelFunc
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	db *articledb.DB,
) Repl {
	return Repl{
		conf:        conf,
		db:          db,
		ctx:         ctx,
		stop:        stop,
		historyPath: filepath.Join(os.TempDir(), ".articledb_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Println(version.CLIVersion())
	fmt.Println()
	fmt.Printf("Connected to %s\n", r.db.Path())
	fmt.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".tables" {
				cmdTables(r)
				continue
			}

			if table, ok := strings.CutPrefix(input, ".schema "); ok {
				cmdSchema(r, strings.TrimSpace(table))
				continue
			}

			if table, ok := strings.CutPrefix(input, ".count "); ok {
				cmdCount(r, strings.TrimSpace(table))
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(r, input)
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// cleanError removes the wrapping prefixes from the error message, so the
// shell output stays readable.
func (r *Repl) cleanError(errStr string) string {
	errStr = strings.ReplaceAll(errStr, "run:", "")
	errStr = strings.ReplaceAll(errStr, "failed to prepare statement:", "")
	return strings.TrimSpace(errStr)
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt("articledb> ")
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}
