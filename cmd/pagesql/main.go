// Command pagesql prints the paged and count statements for a SELECT.
//
//	echo "SELECT id FROM users" | pagesql -dialect postgres -where "age > 18" -order name.asc -page 2 -limit 10
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zoobzio/pagesql"
	"github.com/zoobzio/pagesql/config"
	"github.com/zoobzio/pagesql/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pagesql:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pagesql", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a TOML config file")
	dialect := fs.String("dialect", "", "dialect name, overrides the config file")
	where := fs.String("where", "", "condition to inject, without WHERE")
	orderBy := fs.String("orderby", "", "raw ORDER BY clause")
	order := fs.String("order", "", "sort terms such as name.asc,id.desc")
	page := fs.Int("page", 0, "1-based page; used with -limit")
	limit := fs.Int("limit", pagesql.NoRowLimit, "row limit")
	offset := fs.Int("offset", pagesql.NoRowOffset, "row offset; ignored with -page")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *dialect != "" {
		cfg.Dialect = *dialect
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.NewWithWriter(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	pager, err := cfg.Pager(log)
	if err != nil {
		return err
	}

	sql := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(sql) == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read statement: %w", err)
		}
		sql = string(data)
	}
	if strings.TrimSpace(sql) == "" {
		return fmt.Errorf("no statement given")
	}

	orders, err := pagesql.ParseOrders(*order)
	if err != nil {
		return err
	}

	bounds := pagesql.PageBounds{Offset: *offset, Limit: *limit}
	if *page > 0 {
		bounds = pagesql.NewPageBounds(*page, *limit)
	}
	bounds.Where = *where
	bounds.OrderBy = *orderBy
	bounds.Orders = orders

	result, err := pager.Rewrite(pagesql.Statement{SQL: sql}, nil, bounds)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "-- page")
	fmt.Fprintln(stdout, result.PageSQL)
	fmt.Fprintln(stdout, "-- count")
	fmt.Fprintln(stdout, result.CountSQL)
	if len(result.Bindings) > 0 {
		fmt.Fprintln(stdout, "-- params")
		for _, b := range result.Bindings {
			fmt.Fprintf(stdout, "%s = %v\n", b.Name, result.Values[b.Name])
		}
	}
	return nil
}
