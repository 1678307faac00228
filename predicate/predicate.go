// Package predicate builds composable, parameterized SQL boolean conditions.
// Every predicate renders to SQL text plus an ordered argument list whose
// length and left-to-right order exactly match the ? placeholders in the
// text. Predicates are immutable once constructed: combining them always
// produces a new node, so a predicate tree can be shared and re-rendered
// concurrently.
package predicate

import "strings"

// Expression is anything that renders to SQL text with an aligned ordered
// argument list.
type Expression interface {
	// SQL returns the rendered SQL fragment.
	SQL() string
	// Args returns the bind values, one per ? placeholder, in placeholder order.
	Args() []any
}

// Predicate is a boolean SQL condition. The interface is closed: only types
// in this package implement it.
type Predicate interface {
	Expression
	predicate()
}

// emptySQL is the fixed always-true condition rendered by Empty and by
// aggregations over zero children, so "no filter" means "match all rows".
const emptySQL = "1 = 1"

type empty struct{}

func (empty) SQL() string { return emptySQL }
func (empty) Args() []any { return nil }
func (empty) predicate()  {}

// Empty is the always-true predicate. It carries no arguments.
var Empty Predicate = empty{}

// Simple is a leaf predicate whose text and arguments are caller-supplied
// verbatim and never altered.
type Simple struct {
	text string
	args []any
}

// NewSimple returns a leaf predicate from raw SQL text and its bind values.
// The caller is responsible for the text containing exactly one ? per value.
func NewSimple(text string, args ...any) *Simple {
	return &Simple{text: text, args: args}
}

// SQL returns the leaf text unchanged.
func (s *Simple) SQL() string { return s.text }

// Args returns the leaf arguments unchanged.
func (s *Simple) Args() []any { return s.args }

func (s *Simple) predicate() {}

// Aggregate is a boolean combination of child predicates. Its arguments are
// the concatenation of each child's arguments in child order.
type Aggregate struct {
	op       string
	children []Predicate
}

// And combines predicates with the AND operator.
func And(ps ...Predicate) *Aggregate {
	return &Aggregate{op: "and", children: append([]Predicate(nil), ps...)}
}

// Or combines predicates with the OR operator.
func Or(ps ...Predicate) *Aggregate {
	return &Aggregate{op: "or", children: append([]Predicate(nil), ps...)}
}

// SQL renders "(<child1> <op> <child2> ...)". An aggregation over zero
// children renders identically to Empty.
func (a *Aggregate) SQL() string {
	if len(a.children) == 0 {
		return emptySQL
	}
	parts := make([]string, len(a.children))
	for i, p := range a.children {
		parts[i] = p.SQL()
	}
	return "(" + strings.Join(parts, " "+a.op+" ") + ")"
}

// Args returns the children's arguments concatenated in child order.
func (a *Aggregate) Args() []any {
	var args []any
	for _, p := range a.children {
		args = append(args, p.Args()...)
	}
	return args
}

func (a *Aggregate) predicate() {}

// Subquery compares an operand against an embedded query. The outer
// comparison contributes no arguments of its own: the argument list is
// exactly the subquery's, in the subquery's order.
type Subquery struct {
	text string
	sub  Expression
}

// NewSubquery returns a predicate whose text embeds the subquery's rendered
// SQL and whose arguments are the subquery's arguments.
func NewSubquery(text string, sub Expression) *Subquery {
	return &Subquery{text: text, sub: sub}
}

// SQL returns the comparison text with the embedded subquery.
func (s *Subquery) SQL() string { return s.text }

// Args returns the subquery's arguments, unaltered.
func (s *Subquery) Args() []any { return s.sub.Args() }

func (s *Subquery) predicate() {}
