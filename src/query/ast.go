// Package query provides an explicit structure type for the SQL statements
// this tool sends to BigQuery, replacing string templating. The shapes are
// deliberately narrow: a flat SELECT over one table, and a single-row cross
// join of count subselects.
package query

// Expr is a node in a SQL expression tree.
type Expr interface {
	isExpr()
}

// Column references a column, optionally table-qualified (e.g. "P.Tags").
// Written verbatim; callers only pass static identifiers.
type Column string

// Op is a binary SQL operator.
type Op string

const (
	OpAnd Op = "AND"
	OpOr  Op = "OR"
	OpEq  Op = "="
	OpGte Op = ">="
)

// ColumnExpr wraps a column reference as an expression.
type ColumnExpr struct {
	Column Column
}

// LiteralExpr is a string or integer literal.
type LiteralExpr struct {
	Value any
}

// LikeExpr is `col LIKE 'pattern'`.
type LikeExpr struct {
	Col     Column
	Pattern string
}

// BinaryExpr applies Op between two expressions.
type BinaryExpr struct {
	Left  Expr
	Op    Op
	Right Expr
}

// NotNullExpr is `col IS NOT NULL`.
type NotNullExpr struct {
	Col Column
}

// CountDistinctExpr is `COUNT(DISTINCT col)`.
type CountDistinctExpr struct {
	Col Column
}

// FuncExpr is a function call such as CONCAT.
type FuncExpr struct {
	Name string
	Args []Expr
}

// CastExpr is `CAST(expr AS type)`.
type CastExpr struct {
	Expr Expr
	Type string
}

func (ColumnExpr) isExpr()        {}
func (LiteralExpr) isExpr()       {}
func (LikeExpr) isExpr()          {}
func (BinaryExpr) isExpr()        {}
func (NotNullExpr) isExpr()       {}
func (CountDistinctExpr) isExpr() {}
func (FuncExpr) isExpr()          {}
func (CastExpr) isExpr()          {}

// TableRef references a table, optionally with an alias.
type TableRef struct {
	Name  string
	Alias string
}

// SelectExpr is a column or expression in a SELECT clause.
type SelectExpr struct {
	Expr  Expr
	Alias string
}

// Select is a flat SELECT over a single table.
type Select struct {
	Cols  []SelectExpr
	From  TableRef
	Where Expr
}

// CrossItem is one aliased subselect in a CrossRow.
type CrossItem struct {
	Query *Select
	Alias string
}

// CrossRow is `SELECT * FROM (sub1) AS a1, (sub2) AS a2, ...`: an implicit
// cross join of single-row subselects producing one wide row. Never a UNION.
type CrossRow struct {
	Items []CrossItem
}

// And combines expressions with AND, folding left.
// Returns nil for no expressions and the expression itself for one.
func And(exprs ...Expr) Expr {
	return fold(OpAnd, exprs)
}

// Or combines expressions with OR, folding left.
func Or(exprs ...Expr) Expr {
	return fold(OpOr, exprs)
}

func fold(op Op, exprs []Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	result := exprs[0]
	for _, expr := range exprs[1:] {
		result = BinaryExpr{Left: result, Op: op, Right: expr}
	}
	return result
}

// Like builds `col LIKE 'pattern'`.
func Like(col Column, pattern string) Expr {
	return LikeExpr{Col: col, Pattern: pattern}
}

// Eq builds `col = value`.
func Eq(col Column, value any) Expr {
	return BinaryExpr{Left: ColumnExpr{Column: col}, Op: OpEq, Right: LiteralExpr{Value: value}}
}

// Gte builds `col >= value`.
func Gte(col Column, value any) Expr {
	return BinaryExpr{Left: ColumnExpr{Column: col}, Op: OpGte, Right: LiteralExpr{Value: value}}
}

// NotNull builds `col IS NOT NULL`.
func NotNull(col Column) Expr {
	return NotNullExpr{Col: col}
}
