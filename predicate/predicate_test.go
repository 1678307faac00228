package predicate

import (
	"reflect"
	"testing"
)

func TestEmpty(t *testing.T) {
	if got := Empty.SQL(); got != "1 = 1" {
		t.Errorf("Empty.SQL() = %q, want %q", got, "1 = 1")
	}
	if got := Empty.Args(); len(got) != 0 {
		t.Errorf("Empty.Args() = %v, want none", got)
	}
}

func TestSimple_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		args []any
	}{
		{"no args", "deleted_at is null", nil},
		{"one arg", "age >= ?", []any{18}},
		{"many args", "a = ? and b = ? and c = ?", []any{1, "x", true}},
		{"weird text", "  ?? not really sql  ", []any{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSimple(tt.text, tt.args...)
			if p.SQL() != tt.text {
				t.Errorf("SQL() = %q, want text unchanged %q", p.SQL(), tt.text)
			}
			if !reflect.DeepEqual(p.Args(), tt.args) {
				t.Errorf("Args() = %v, want %v", p.Args(), tt.args)
			}
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	for _, agg := range []*Aggregate{And(), Or()} {
		if agg.SQL() != Empty.SQL() {
			t.Errorf("empty aggregate SQL = %q, want %q", agg.SQL(), Empty.SQL())
		}
		if len(agg.Args()) != 0 {
			t.Errorf("empty aggregate Args = %v, want none", agg.Args())
		}
	}
}

func TestAggregate_SQL(t *testing.T) {
	status := NewSimple("status = ?", "active")
	age := NewSimple("age > ?", 18)

	and := And(status, age)
	if got, want := and.SQL(), "(status = ? and age > ?)"; got != want {
		t.Errorf("And SQL = %q, want %q", got, want)
	}
	if got, want := and.Args(), []any{"active", 18}; !reflect.DeepEqual(got, want) {
		t.Errorf("And Args = %v, want %v", got, want)
	}

	or := Or(status, age)
	if got, want := or.SQL(), "(status = ? or age > ?)"; got != want {
		t.Errorf("Or SQL = %q, want %q", got, want)
	}
}

func TestAggregate_ArgsConcatOrder(t *testing.T) {
	// Arguments must be the concatenation of child arguments in child
	// order, regardless of operator and nesting depth.
	a := NewSimple("a = ?", 1)
	b := NewSimple("b in (?, ?)", 2, 3)
	c := NewSimple("c = ?", 4)

	inner := Or(b, c)
	outer := And(a, inner)

	want := []any{1, 2, 3, 4}
	if got := outer.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("nested Args = %v, want %v", got, want)
	}
	if got, want := outer.SQL(), "(a = ? and (b in (?, ?) or c = ?))"; got != want {
		t.Errorf("nested SQL = %q, want %q", got, want)
	}
}

func TestAggregate_DeepNesting(t *testing.T) {
	var want []any
	p := Predicate(NewSimple("x = ?", 0))
	want = append(want, 0)
	for i := 1; i <= 20; i++ {
		p = And(p, NewSimple("x = ?", i))
		want = append(want, i)
	}
	if got := p.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("deep nesting Args = %v, want %v", got, want)
	}
}

func TestAggregate_Immutable(t *testing.T) {
	a := NewSimple("a = ?", 1)
	b := NewSimple("b = ?", 2)
	first := And(a, b)
	sqlBefore := first.SQL()
	argsBefore := first.Args()

	// Combining again must not disturb the original tree.
	_ = Or(first, NewSimple("c = ?", 3))
	_ = And(first, first)

	if first.SQL() != sqlBefore {
		t.Errorf("SQL changed after recombination: %q -> %q", sqlBefore, first.SQL())
	}
	if !reflect.DeepEqual(first.Args(), argsBefore) {
		t.Errorf("Args changed after recombination: %v -> %v", argsBefore, first.Args())
	}
}

func TestAggregate_CopiesChildSlice(t *testing.T) {
	children := []Predicate{NewSimple("a = ?", 1), NewSimple("b = ?", 2)}
	agg := And(children...)
	children[0] = NewSimple("mutated = ?", 99)

	if got, want := agg.SQL(), "(a = ? and b = ?)"; got != want {
		t.Errorf("aggregate saw caller slice mutation: %q", got)
	}
}

func TestSubquery_ArgsAreSubqueryArgs(t *testing.T) {
	sub := NewSimple("select id from orders where total > ? and region = ?", 100, "eu")
	p := NewSubquery("user_id in ("+sub.SQL()+")", sub)

	if !reflect.DeepEqual(p.Args(), sub.Args()) {
		t.Errorf("Subquery Args = %v, want subquery's %v", p.Args(), sub.Args())
	}
	want := "user_id in (select id from orders where total > ? and region = ?)"
	if p.SQL() != want {
		t.Errorf("Subquery SQL = %q, want %q", p.SQL(), want)
	}
}

func TestSubquery_InsideAggregate(t *testing.T) {
	sub := NewSimple("select id from banned where since > ?", 2020)
	inQuery := NewSubquery("user_id in ("+sub.SQL()+")", sub)
	active := NewSimple("status = ?", "active")

	agg := And(active, inQuery)
	want := []any{"active", 2020}
	if got := agg.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args = %v, want %v", got, want)
	}
}
