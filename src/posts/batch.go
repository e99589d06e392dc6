package posts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alt-code/Research/src/bq"
	"github.com/alt-code/Research/src/cache"
	"github.com/alt-code/Research/src/lang"
	"github.com/alt-code/Research/src/table"
)

// Batch runs the study's query batches sequentially and writes one CSV per
// item. There is no retry and no checkpointing: the first error aborts the
// batch, leaving earlier output files in place. Re-running overwrites them.
type Batch struct {
	Builder   *Builder
	Runner    bq.Runner
	Cache     *cache.Store // optional; nil disables caching
	OutDir    string       // pair-detail CSVs
	CountsDir string       // per-language count CSVs
	Log       *slog.Logger
}

func (b *Batch) logger() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return slog.Default()
}

func (b *Batch) langs() *lang.Set { return b.Builder.Langs() }

// fetch returns the result for statement, consulting the cache first.
func (b *Batch) fetch(ctx context.Context, statement string) (t *table.Table, hit bool, err error) {
	if b.Cache != nil {
		t, hit, err = b.Cache.Get(ctx, statement)
		if err != nil {
			return nil, false, err
		}
		if hit {
			return t, true, nil
		}
	}

	t, err = b.Runner.Run(ctx, statement)
	if err != nil {
		return nil, false, err
	}
	if b.Cache != nil {
		if err := b.Cache.Put(ctx, statement, t); err != nil {
			return nil, false, err
		}
	}
	return t, false, nil
}

// QueryPair runs the pair-detail query for (a, target) and writes
// {token(a)}_{token(target)}.csv under OutDir. Returns the output path.
func (b *Batch) QueryPair(ctx context.Context, a, target string) (string, error) {
	start := time.Now()
	log := b.logger().With("source", a, "target", target)
	log.Info("querying posts for pair")

	statement, err := b.Builder.PairSQL(a, target)
	if err != nil {
		return "", fmt.Errorf("build pair query <%s, %s>: %w", a, target, err)
	}

	result, hit, err := b.fetch(ctx, statement)
	if err != nil {
		return "", fmt.Errorf("query pair <%s, %s>: %w", a, target, err)
	}

	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.csv", b.langs().Token(a), b.langs().Token(target))
	path := filepath.Join(b.OutDir, name)
	if err := result.WriteCSV(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log.Info("saved pair posts",
		"path", path,
		"rows", result.NumRows(),
		"cached", hit,
		"duration", time.Since(start).Round(time.Millisecond))
	return path, nil
}

// QueryCounts runs the all-targets count query for source language a and
// writes {token(a)}.csv under CountsDir. The returned table holds the
// single row of per-target counts.
func (b *Batch) QueryCounts(ctx context.Context, a string) (*table.Table, string, error) {
	start := time.Now()
	log := b.logger().With("source", a)
	log.Info("querying target counts")

	statement, err := b.Builder.CountsSQL(a)
	if err != nil {
		return nil, "", fmt.Errorf("build counts query for %s: %w", a, err)
	}

	result, hit, err := b.fetch(ctx, statement)
	if err != nil {
		return nil, "", fmt.Errorf("query counts for %s: %w", a, err)
	}

	if err := os.MkdirAll(b.CountsDir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(b.CountsDir, b.langs().Token(a)+".csv")
	if err := result.WriteCSV(path); err != nil {
		return nil, "", fmt.Errorf("write %s: %w", path, err)
	}

	log.Info("saved target counts",
		"path", path,
		"cached", hit,
		"duration", time.Since(start).Round(time.Millisecond))
	return result, path, nil
}

// QueryAll runs QueryCounts for every language in the set, in sorted order.
func (b *Batch) QueryAll(ctx context.Context) error {
	for _, l := range b.langs().Names() {
		if _, _, err := b.QueryCounts(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// StopRulePairs returns the (source, target) file-token pairs selected by
// the stop-rule criteria in the paper.
func StopRulePairs() [][2]string {
	return [][2]string{
		{"c", "cpp"},
		{"cs", "visualbasic"},
		{"clojure", "java"},
		{"java", "cs"},
		{"kotlin", "java"},
		{"lua", "cpp"},
		{"matlab", "python"},
		{"node", "php"},
		{"objectivec", "swift"},
		{"perl", "python"},
		{"php", "java"},
		{"python", "cpp"},
		{"r", "python"},
		{"ruby", "python"},
		{"scala", "java"},
	}
}

// QueryStopRulePairs runs QueryPair for each stop-rule pair, converting
// file tokens back to canonical names first.
func (b *Batch) QueryStopRulePairs(ctx context.Context) error {
	for _, pair := range StopRulePairs() {
		a := b.langs().FromToken(pair[0])
		target := b.langs().FromToken(pair[1])
		if _, err := b.QueryPair(ctx, a, target); err != nil {
			return err
		}
	}
	return nil
}
