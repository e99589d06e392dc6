// Package posts builds and runs the migration-study queries against the
// SOTorrent Posts dump: per-pair post detail and per-source-language
// target counts.
package posts

import (
	"github.com/alt-code/Research/src/lang"
	"github.com/alt-code/Research/src/query"
)

// DefaultTable is the hosted SOTorrent dump this study was run against.
const DefaultTable = "sotorrent-org.2018_12_09.Posts"

// Builder produces the study's SQL statements for one language table and
// one posts table.
type Builder struct {
	langs     *lang.Set
	tableName string
}

// NewBuilder returns a Builder over the given language set. An empty
// tableName selects DefaultTable.
func NewBuilder(langs *lang.Set, tableName string) *Builder {
	if tableName == "" {
		tableName = DefaultTable
	}
	return &Builder{langs: langs, tableName: tableName}
}

// Langs returns the builder's language set.
func (b *Builder) Langs() *lang.Set { return b.langs }

func (b *Builder) from() query.TableRef {
	return query.TableRef{Name: b.tableName, Alias: "P"}
}

// migrationPredicate matches questions where the asker is moving from
// language a to the target: both tags present, or a's tag present and the
// target mentioned in the title or body.
func (b *Builder) migrationPredicate(a, target string) query.Expr {
	aTag := b.langs.TagLike(a)
	targetTag := b.langs.TagLike(target)
	targetText := b.langs.TextPattern(target)

	return query.Or(
		query.And(
			query.Like("P.Tags", aTag),
			query.Like("P.Tags", targetTag),
		),
		query.And(
			query.Like("P.Tags", aTag),
			query.Or(
				query.Like("P.Title", targetText),
				query.Like("P.Body", targetText),
			),
		),
	)
}

// PairQuery selects full post detail for questions migrating from a to
// target: question posts with an accepted answer and non-negative score.
// Self-pairs are not rejected; the caller gets the degenerate query it
// asked for.
func (b *Builder) PairQuery(a, target string) *query.Select {
	return &query.Select{
		Cols: []query.SelectExpr{
			{
				Expr: query.FuncExpr{Name: "CONCAT", Args: []query.Expr{
					query.LiteralExpr{Value: "http://stackoverflow.com/q/"},
					query.CastExpr{Expr: query.ColumnExpr{Column: "P.Id"}, Type: "STRING"},
				}},
				Alias: "URL",
			},
			{Expr: query.ColumnExpr{Column: "P.Title"}},
			{Expr: query.ColumnExpr{Column: "P.ViewCount"}},
			{Expr: query.ColumnExpr{Column: "P.Score"}},
			{Expr: query.ColumnExpr{Column: "P.AcceptedAnswerId"}},
			{Expr: query.ColumnExpr{Column: "P.Tags"}},
			{Expr: query.ColumnExpr{Column: "P.Body"}},
		},
		From: b.from(),
		Where: query.And(
			query.Eq("P.PostTypeId", 1),
			b.migrationPredicate(a, target),
			query.Gte("P.Score", 0),
			query.NotNull("P.AcceptedAnswerId"),
		),
	}
}

// PairSQL compiles PairQuery to statement text.
func (b *Builder) PairSQL(a, target string) (string, error) {
	return b.PairQuery(a, target).SQL()
}

// CountsQuery builds the one-wide-row count statement for source language
// a: one COUNT(DISTINCT P.Id) subselect per other language, aliased by
// file token, in sorted-language order. There is no accepted-answer filter
// here; the original count runs never had one.
//
// Subselects are joined positionally, so every source language — including
// the last-sorted one — gets exactly len(langs)-1 subselects (see
// DESIGN.md on the original's separator special case).
func (b *Builder) CountsQuery(a string) *query.CrossRow {
	row := &query.CrossRow{}
	for _, l := range b.langs.Names() {
		if l == a {
			continue
		}
		alias := b.langs.ColumnToken(l)
		sub := &query.Select{
			Cols: []query.SelectExpr{
				{Expr: query.CountDistinctExpr{Col: "P.Id"}, Alias: alias},
			},
			From: b.from(),
			Where: query.And(
				query.Eq("P.PostTypeId", 1),
				b.migrationPredicate(a, l),
				query.Gte("P.Score", 0),
			),
		}
		row.Items = append(row.Items, query.CrossItem{Query: sub, Alias: alias})
	}
	return row
}

// CountsSQL compiles CountsQuery to statement text.
func (b *Builder) CountsSQL(a string) (string, error) {
	return b.CountsQuery(a).SQL()
}
