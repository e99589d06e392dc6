package query

import (
	"strings"
	"testing"
)

func TestSelect_SimpleSQL(t *testing.T) {
	s := &Select{
		Cols: []SelectExpr{
			{Expr: ColumnExpr{Column: "P.Title"}},
			{Expr: ColumnExpr{Column: "P.Score"}},
		},
		From:  TableRef{Name: "sotorrent-org.2018_12_09.Posts", Alias: "P"},
		Where: Eq("P.PostTypeId", 1),
	}

	sql, err := s.SQL()
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT P.Title, P.Score FROM `sotorrent-org.2018_12_09.Posts` P WHERE (P.PostTypeId = 1)"
	if sql != want {
		t.Errorf("got  %q\nwant %q", sql, want)
	}
}

func TestSelect_StarWhenNoColumns(t *testing.T) {
	s := &Select{From: TableRef{Name: "t"}}
	sql, err := s.SQL()
	if err != nil {
		t.Fatal(err)
	}
	if sql != "SELECT * FROM `t`" {
		t.Errorf("got %q", sql)
	}
}

func TestSelect_AliasAndFuncAndCast(t *testing.T) {
	s := &Select{
		Cols: []SelectExpr{
			{
				Expr: FuncExpr{Name: "CONCAT", Args: []Expr{
					LiteralExpr{Value: "http://stackoverflow.com/q/"},
					CastExpr{Expr: ColumnExpr{Column: "P.Id"}, Type: "STRING"},
				}},
				Alias: "URL",
			},
		},
		From: TableRef{Name: "t", Alias: "P"},
	}

	sql, err := s.SQL()
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT CONCAT('http://stackoverflow.com/q/', CAST(P.Id AS STRING)) AS URL FROM `t` P"
	if sql != want {
		t.Errorf("got  %q\nwant %q", sql, want)
	}
}

func TestLike_EscapesSingleQuotes(t *testing.T) {
	var b strings.Builder
	if err := writeExpr(&b, Like("P.Tags", "%<o'caml>%")); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != `P.Tags LIKE '%<o''caml>%'` {
		t.Errorf("got %q", got)
	}
}

func TestAndOr_Folding(t *testing.T) {
	if And() != nil {
		t.Error("And() with no args should be nil")
	}

	single := Like("P.Tags", "%<java>%")
	if got := And(single); got != single {
		t.Error("And with one expr should return it unchanged")
	}

	var b strings.Builder
	expr := Or(
		And(Like("P.Tags", "a"), Like("P.Tags", "b")),
		Like("P.Title", "c"),
	)
	if err := writeExpr(&b, expr); err != nil {
		t.Fatal(err)
	}
	want := "((P.Tags LIKE 'a' AND P.Tags LIKE 'b') OR P.Title LIKE 'c')"
	if got := b.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestNotNullAndGte(t *testing.T) {
	var b strings.Builder
	expr := And(Gte("P.Score", 0), NotNull("P.AcceptedAnswerId"))
	if err := writeExpr(&b, expr); err != nil {
		t.Fatal(err)
	}
	want := "((P.Score >= 0) AND P.AcceptedAnswerId IS NOT NULL)"
	if got := b.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestCrossRow_JoinsWithoutTrailingSeparator(t *testing.T) {
	sub := func(alias string) *Select {
		return &Select{
			Cols: []SelectExpr{{Expr: CountDistinctExpr{Col: "P.Id"}, Alias: alias}},
			From: TableRef{Name: "t", Alias: "P"},
		}
	}
	c := &CrossRow{Items: []CrossItem{
		{Query: sub("a1"), Alias: "a1"},
		{Query: sub("a2"), Alias: "a2"},
	}}

	sql, err := c.SQL()
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT * FROM (SELECT COUNT(DISTINCT P.Id) AS a1 FROM `t` P) AS a1,\n" +
		"(SELECT COUNT(DISTINCT P.Id) AS a2 FROM `t` P) AS a2"
	if sql != want {
		t.Errorf("got  %q\nwant %q", sql, want)
	}
	if strings.Contains(sql, "UNION") {
		t.Error("cross row must not be a UNION")
	}
}

func TestCrossRow_EmptyIsError(t *testing.T) {
	c := &CrossRow{}
	if _, err := c.SQL(); err == nil {
		t.Fatal("expected error for empty cross row")
	}
}

func TestWriteLiteral_RejectsUnsupportedTypes(t *testing.T) {
	var b strings.Builder
	if err := writeExpr(&b, LiteralExpr{Value: 3.14}); err == nil {
		t.Fatal("expected error for float literal")
	}
}
