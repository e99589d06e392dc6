package query

import (
	"fmt"
	"strings"
)

// SQL compiles a Select to its statement text.
func (s *Select) SQL() (string, error) {
	var b strings.Builder
	if err := writeSelect(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// SQL compiles a CrossRow to its statement text.
func (c *CrossRow) SQL() (string, error) {
	if len(c.Items) == 0 {
		return "", fmt.Errorf("cross row has no subselects")
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	for i, item := range c.Items {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("(")
		if err := writeSelect(&b, item.Query); err != nil {
			return "", err
		}
		b.WriteString(") AS ")
		b.WriteString(item.Alias)
	}
	return b.String(), nil
}

func writeSelect(b *strings.Builder, s *Select) error {
	b.WriteString("SELECT ")
	if len(s.Cols) == 0 {
		b.WriteString("*")
	} else {
		for i, col := range s.Cols {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeExpr(b, col.Expr); err != nil {
				return err
			}
			if col.Alias != "" {
				b.WriteString(" AS ")
				b.WriteString(col.Alias)
			}
		}
	}

	b.WriteString(" FROM ")
	writeTable(b, s.From)

	if s.Where != nil {
		b.WriteString(" WHERE ")
		if err := writeExpr(b, s.Where); err != nil {
			return err
		}
	}
	return nil
}

// writeTable writes the table name in backticks. BigQuery table paths
// contain dots and dashes, so quoting is unconditional.
func writeTable(b *strings.Builder, t TableRef) {
	b.WriteString("`")
	b.WriteString(t.Name)
	b.WriteString("`")
	if t.Alias != "" {
		b.WriteString(" ")
		b.WriteString(t.Alias)
	}
}

func writeExpr(b *strings.Builder, expr Expr) error {
	switch e := expr.(type) {
	case ColumnExpr:
		b.WriteString(string(e.Column))

	case LiteralExpr:
		return writeLiteral(b, e.Value)

	case LikeExpr:
		b.WriteString(string(e.Col))
		b.WriteString(" LIKE ")
		writeString(b, e.Pattern)

	case BinaryExpr:
		b.WriteString("(")
		if err := writeExpr(b, e.Left); err != nil {
			return err
		}
		fmt.Fprintf(b, " %s ", e.Op)
		if err := writeExpr(b, e.Right); err != nil {
			return err
		}
		b.WriteString(")")

	case NotNullExpr:
		b.WriteString(string(e.Col))
		b.WriteString(" IS NOT NULL")

	case CountDistinctExpr:
		b.WriteString("COUNT(DISTINCT ")
		b.WriteString(string(e.Col))
		b.WriteString(")")

	case FuncExpr:
		b.WriteString(e.Name)
		b.WriteString("(")
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeExpr(b, arg); err != nil {
				return err
			}
		}
		b.WriteString(")")

	case CastExpr:
		b.WriteString("CAST(")
		if err := writeExpr(b, e.Expr); err != nil {
			return err
		}
		b.WriteString(" AS ")
		b.WriteString(e.Type)
		b.WriteString(")")

	default:
		return fmt.Errorf("unknown expression type: %T", expr)
	}

	return nil
}

func writeLiteral(b *strings.Builder, val any) error {
	switch v := val.(type) {
	case string:
		writeString(b, v)
	case int:
		fmt.Fprintf(b, "%d", v)
	case int64:
		fmt.Fprintf(b, "%d", v)
	default:
		return fmt.Errorf("unsupported literal type %T: only string and int literals are allowed", val)
	}
	return nil
}

// writeString writes a single-quoted string literal, escaping single quotes
// by doubling them.
func writeString(b *strings.Builder, s string) {
	b.WriteString("'")
	b.WriteString(strings.ReplaceAll(s, "'", "''"))
	b.WriteString("'")
}
