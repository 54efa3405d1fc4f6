package repl

import (
	"fmt"

	"github.com/articledb/articledb"
	"github.com/articledb/articledb/internal/cli/styled"
	"github.com/articledb/articledb/internal/util/numutil"
	"github.com/jedib0t/go-pretty/v6/table"
)

func cmdQuery(r *Repl, input string) {
	tw := styled.NewTableWriter()

	res, err := r.db.Run(r.ctx, input)
	if err != nil {
		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{r.cleanError(err.Error())})
		fmt.Println(tw.Render())
		return
	}

	if res.Type == articledb.QueryWrite {
		tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
		tw.AppendRow(table.Row{"OK", res.RowsAffected, res.LastInsertID})
	}

	if res.Type == articledb.QueryRead {
		header := table.Row{}
		for _, col := range res.Columns {
			header = append(header, col)
		}
		tw.AppendHeader(header)

		for _, value := range res.Values {
			tw.AppendRow(value)
		}
	}

	fmt.Println(tw.Render())
}

func cmdTables(r *Repl) {
	tables, err := r.db.Tables(r.ctx)
	if err != nil {
		fmt.Println(r.cleanError(err.Error()))
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Table"})
	for _, name := range tables {
		tw.AppendRow(table.Row{name})
	}

	fmt.Println(tw.Render())
}

func cmdSchema(r *Repl, tableName string) {
	columns, err := r.db.TableInfo(r.ctx, tableName)
	if err != nil {
		fmt.Println(r.cleanError(err.Error()))
		return
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
}

func cmdCount(r *Repl, tableName string) {
	count, err := r.db.CountRows(r.ctx, tableName)
	if err != nil {
		fmt.Println(r.cleanError(err.Error()))
		return
	}

	fmt.Println(numutil.Int64WithCommas(count))
	styled.DimmedColor().Printf("rows in %s\n", tableName)
}
