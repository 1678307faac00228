package predicate

import (
	"strings"

	"github.com/satishbabariya/sqlkit/dialect"
)

// Builder constructs predicates for a single operand. The operand is any
// SQL-fragment text, typically a column name. The dialect is consulted for
// operator tokens at leaf construction only; the resulting text uses ?
// placeholders regardless of dialect.
type Builder struct {
	operand string
	d       *dialect.Dialect
}

// Field returns a Builder for the given operand under the given dialect.
func Field(operand string, d *dialect.Dialect) Builder {
	return Builder{operand: operand, d: d}
}

func (b Builder) compare(op dialect.Op, v any) Predicate {
	return NewSimple(b.operand+" "+b.d.Token(op)+" ?", v)
}

// EQ builds "<operand> = ?".
func (b Builder) EQ(v any) Predicate { return b.compare(dialect.OpEQ, v) }

// NE builds "<operand> <> ?".
func (b Builder) NE(v any) Predicate { return b.compare(dialect.OpNE, v) }

// GT builds "<operand> > ?".
func (b Builder) GT(v any) Predicate { return b.compare(dialect.OpGT, v) }

// GE builds "<operand> >= ?".
func (b Builder) GE(v any) Predicate { return b.compare(dialect.OpGE, v) }

// LT builds "<operand> < ?".
func (b Builder) LT(v any) Predicate { return b.compare(dialect.OpLT, v) }

// LE builds "<operand> <= ?".
func (b Builder) LE(v any) Predicate { return b.compare(dialect.OpLE, v) }

// Like builds "<operand> like ?".
func (b Builder) Like(v any) Predicate { return b.compare(dialect.OpLike, v) }

// ILike builds a case-insensitive like comparison using the dialect's token.
func (b Builder) ILike(v any) Predicate { return b.compare(dialect.OpILike, v) }

// IsNull builds "<operand> is null". No arguments.
func (b Builder) IsNull() Predicate {
	return NewSimple(b.operand + " " + b.d.Token(dialect.OpIsNull))
}

// NotNull builds "<operand> is not null". No arguments.
func (b Builder) NotNull() Predicate {
	return NewSimple(b.operand + " " + b.d.Token(dialect.OpNotNull))
}

// In builds "<operand> in (?, ?, ...)" with one argument per value, in call
// order. Membership over zero values is a caller contract violation.
func (b Builder) In(vs ...any) Predicate {
	return b.membership(dialect.OpIn, vs)
}

// NotIn builds "<operand> not in (?, ?, ...)" with one argument per value.
func (b Builder) NotIn(vs ...any) Predicate {
	return b.membership(dialect.OpNotIn, vs)
}

func (b Builder) membership(op dialect.Op, vs []any) Predicate {
	holes := make([]string, len(vs))
	for i := range vs {
		holes[i] = "?"
	}
	return NewSimple(b.operand+" "+b.d.Token(op)+" ("+strings.Join(holes, ", ")+")", vs...)
}

// Between builds "<operand> between ? and ?" with exactly two arguments,
// lower then upper.
func (b Builder) Between(lo, hi any) Predicate {
	return NewSimple(b.operand+" "+b.d.Token(dialect.OpBetween)+" ? and ?", lo, hi)
}

// InQuery builds "<operand> in (<subquery>)". All arguments come from the
// subquery.
func (b Builder) InQuery(sub Expression) Predicate {
	return NewSubquery(b.operand+" "+b.d.Token(dialect.OpIn)+" ("+sub.SQL()+")", sub)
}

// NotInQuery builds "<operand> not in (<subquery>)".
func (b Builder) NotInQuery(sub Expression) Predicate {
	return NewSubquery(b.operand+" "+b.d.Token(dialect.OpNotIn)+" ("+sub.SQL()+")", sub)
}

// All builds a quantified comparison against every row of the subquery:
// "<operand> <op> all (<subquery>)". The outer comparison contributes no
// arguments.
func (b Builder) All(op dialect.Op, sub Expression) Predicate {
	return b.quantified(op, dialect.OpAll, sub)
}

// Some builds a quantified comparison against at least one row of the
// subquery: "<operand> <op> some (<subquery>)".
func (b Builder) Some(op dialect.Op, sub Expression) Predicate {
	return b.quantified(op, dialect.OpSome, sub)
}

func (b Builder) quantified(op, quant dialect.Op, sub Expression) Predicate {
	text := b.operand + " " + b.d.Token(op) + " " + b.d.Token(quant) + " (" + sub.SQL() + ")"
	return NewSubquery(text, sub)
}
