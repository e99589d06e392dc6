package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alt-code/Research/cli"
	"github.com/alt-code/Research/logging"
	"github.com/alt-code/Research/src/bq"
	"github.com/alt-code/Research/src/cache"
	"github.com/alt-code/Research/src/lang"
	"github.com/alt-code/Research/src/posts"
	"github.com/alt-code/Research/src/table"
)

// newBatch wires a query batch from the configuration: BigQuery client,
// optional result cache, output directories, logger.
func newBatch(ctx context.Context, cfg *Config, verbose bool) (*posts.Batch, func(), error) {
	if cfg.Project == "" {
		return nil, nil, fmt.Errorf("no BigQuery project configured; run 'soquery init' and set [bigquery] project")
	}

	client, err := bq.NewClient(ctx, cfg.Project, cfg.Location)
	if err != nil {
		return nil, nil, err
	}

	var store *cache.Store
	if cfg.CachePath != "" {
		store, err = cache.Open(ctx, cfg.CachePath)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
	}

	batch := &posts.Batch{
		Builder:   posts.NewBuilder(lang.Default(), cfg.Table),
		Runner:    client,
		Cache:     store,
		OutDir:    cfg.OutDir,
		CountsDir: cfg.CountsDir,
		Log:       logging.Default(verbose),
	}
	cleanup := func() {
		if store != nil {
			store.Close()
		}
		client.Close()
	}
	return batch, cleanup, nil
}

// resolveLang accepts either a canonical name or a file token ("cpp") and
// returns the canonical name, warning when it is outside the study's table.
func resolveLang(langs *lang.Set, name string) string {
	canonical := langs.FromToken(name)
	if !langs.Contains(canonical) {
		cli.Warnf("%q is not in the language table; querying it as-is", name)
	}
	return canonical
}

func runInit(configPath string, stdout, stderr io.Writer) int {
	path := configPath
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(stderr, "error: %s already exists\n", path)
		return 1
	}

	if err := writeDefaultConfig(path); err != nil {
		fmt.Fprintf(stderr, "error: write %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(stdout, "✓ wrote %s\n", path)
	fmt.Fprintln(stdout, "Set [bigquery] project before running query commands.")
	return 0
}

func runLangs(stdout io.Writer) int {
	langs := lang.Default()

	rows := make([][]string, 0, langs.Len())
	for _, name := range langs.Names() {
		rows = append(rows, []string{name, langs.Tag(name), langs.Token(name)})
	}
	fmt.Fprintln(stdout, renderTable(
		[]string{"Language", "Tag", "File token"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	return 0
}

func runPair(args []string, configPath string, verbose bool, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: soquery pair <source> <target>")
		return 1
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	batch, cleanup, err := newBatch(ctx, cfg, verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer cleanup()

	langs := batch.Builder.Langs()
	a := resolveLang(langs, args[0])
	target := resolveLang(langs, args[1])

	path, err := batch.QueryPair(ctx, a, target)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	cli.Successf("saved posts for <%s, %s> to %s", a, target, path)
	return 0
}

func runCounts(args []string, configPath string, verbose bool, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	batch, cleanup, err := newBatch(ctx, cfg, verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer cleanup()

	if len(args) == 0 {
		if err := batch.QueryAll(ctx); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		cli.Successf("saved counts for all %d languages to %s", batch.Builder.Langs().Len(), cfg.CountsDir)
		return 0
	}

	langs := batch.Builder.Langs()
	for _, arg := range args {
		a := resolveLang(langs, arg)
		result, path, err := batch.QueryCounts(ctx, a)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		cli.Successf("saved counts for %s to %s", a, path)
		fmt.Fprintln(stdout, renderCounts(result))
	}
	return 0
}

func runPairs(args []string, configPath string, verbose bool, stdout, stderr io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(stderr, "usage: soquery pairs")
		return 1
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	batch, cleanup, err := newBatch(ctx, cfg, verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer cleanup()

	cli.Infof("querying %d stop-rule pairs...", len(posts.StopRulePairs()))
	if err := batch.QueryStopRulePairs(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	cli.Successf("saved stop-rule pair posts to %s", cfg.OutDir)
	return 0
}

// renderCounts turns the one-wide-row counts result into a readable
// two-column terminal table.
func renderCounts(result *table.Table) string {
	rows := make([][]string, 0, len(result.Columns))
	for i, col := range result.Columns {
		count := ""
		if len(result.Rows) > 0 && i < len(result.Rows[0]) {
			count = formatCount(result.Rows[0][i])
		}
		rows = append(rows, []string{col, count})
	}
	return renderTable(
		[]string{"Target", "Posts"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

// formatCount renders a count cell. BigQuery hands back int64; cached
// results come back as float64 after the JSON round trip.
func formatCount(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}
