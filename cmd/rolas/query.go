package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/rolas"
	"github.com/pthm/rolas/internal/cli"
)

// conditionalArg is one --eq, --eq-val or --like occurrence.
type conditionalArg struct {
	kind cli.ConditionalKind
	arg  string
}

// conditionalFlag appends to a slice shared by all conditional flags, so
// the command line order is kept across kinds.
type conditionalFlag struct {
	kind cli.ConditionalKind
	args *[]conditionalArg
}

func (f *conditionalFlag) String() string {
	var vals []string
	for _, a := range *f.args {
		if a.kind == f.kind {
			vals = append(vals, a.arg)
		}
	}
	return "[" + strings.Join(vals, ",") + "]"
}

func (f *conditionalFlag) Set(v string) error {
	*f.args = append(*f.args, conditionalArg{kind: f.kind, arg: v})
	return nil
}

func (f *conditionalFlag) Type() string {
	return "table.column=value"
}

var (
	queryDB           string
	queryColumns      []string
	queryConditionals []conditionalArg
	queryLegacyWhere  bool
	queryEscape       bool
	queryExec         bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Build a SELECT over the music tables",
	Long: `Build a SELECT statement from typed columns and conditionals.

Columns are given as table.column. Tables accept their singular alias
(rola.title is rolas.title). Conditionals are joined with AND in the
order they appear on the command line.`,
	Example: `  # Titles with their album names
  rolas query --column rolas.title --column albums.name --eq rolas.id_album=albums.id_album

  # Titles containing "amor", executed against the database
  rolas query --column rola.title --like rola.title=amor --exec`,
	RunE: func(cmd *cobra.Command, args []string) error {
		legacy := resolveBool(queryLegacyWhere, cfg.Query.LegacyWhere)
		escape := resolveBool(queryEscape, cfg.Query.EscapeLiterals)

		query, err := buildQuery(queryColumns, queryConditionals, legacy, escape)
		if err != nil {
			return err
		}

		if !queryExec {
			fmt.Println(query)
			return nil
		}

		dsn, err := resolveDSN(queryDB)
		if err != nil {
			return err
		}
		return runQuery(dsn, query)
	},
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryDB, "db", "", "database URL (with --exec)")
	f.StringArrayVar(&queryColumns, "column", nil, "selected column as table.column (repeatable)")
	f.Var(&conditionalFlag{kind: cli.KindEq, args: &queryConditionals}, "eq", "column equality a.x=b.y (repeatable)")
	f.Var(&conditionalFlag{kind: cli.KindEqVal, args: &queryConditionals}, "eq-val", "column equals literal a.x=value (repeatable)")
	f.Var(&conditionalFlag{kind: cli.KindLike, args: &queryConditionals}, "like", "column contains literal a.x=value (repeatable)")
	f.BoolVar(&queryLegacyWhere, "legacy-where", false, "only render WHERE for two or more conditionals")
	f.BoolVar(&queryEscape, "escape", false, "escape literal values")
	f.BoolVar(&queryExec, "exec", false, "run the query and print tab-separated rows")
}

// buildQuery parses the arguments and renders the statement.
func buildQuery(columnArgs []string, condArgs []conditionalArg, legacy, escape bool) (string, error) {
	columns, err := cli.ParseColumnRefs(columnArgs)
	if err != nil {
		return "", cli.ParseError("parsing columns", err)
	}

	conds := make([]rolas.Conditional, 0, len(condArgs))
	for _, a := range condArgs {
		c, err := cli.ParseConditional(a.kind, a.arg)
		if err != nil {
			return "", cli.ParseError("parsing conditionals", err)
		}
		conds = append(conds, c)
	}

	var opts []rolas.Option
	if legacy {
		opts = append(opts, rolas.WithWhereThreshold(2))
	}
	if escape {
		opts = append(opts, rolas.WithLiteralEscaping())
	}

	query, err := rolas.NewBuilder(opts...).Build(columns, conds)
	if err != nil {
		return "", cli.ParseError("building query", err)
	}
	return query, nil
}

func runQuery(dsn, query string) error {
	ctx := context.Background()

	db, _, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if verbose > 0 && !quiet {
		fmt.Fprintln(os.Stderr, query)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return cli.GeneralError("running query", err)
	}
	defer func() { _ = rows.Close() }()

	n, err := printRows(os.Stdout, rows)
	if err != nil {
		return cli.GeneralError("reading rows", err)
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "(%d rows)\n", n)
	}
	return nil
}

// printRows writes one tab-separated line per row. NULL prints as an empty
// field.
func printRows(w io.Writer, rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, err
		}
		fields := make([]string, len(vals))
		for i, v := range vals {
			fields[i] = v.String
		}
		_, _ = fmt.Fprintln(w, strings.Join(fields, "\t"))
		n++
	}
	return n, rows.Err()
}
