// Package columns provides typed column handles with a strict
// nullable/non-nullable split. A Column always holds a value; a NullColumn
// distinguishes "holds a value" from "absent" with an explicit presence
// flag, never a bare nil sentinel. The two variants are disjoint types, so
// which one a piece of code works with is settled at compile time.
//
// A column's value cell is a single-owner mutable slot: it is not safe for
// concurrent mutation without external synchronization.
package columns

import (
	"errors"
	"fmt"

	"github.com/satishbabariya/sqlkit/dialect"
	"github.com/satishbabariya/sqlkit/predicate"
)

// ErrNoValue is returned by NullColumn.Get when the cell holds no value.
var ErrNoValue = errors.New("columns: no value present")

// Option configures a column at construction time.
type Option func(*meta)

type meta struct {
	defaultExpr string
}

// WithDefault sets the column's SQL default-value expression.
func WithDefault(expr string) Option {
	return func(m *meta) { m.defaultExpr = expr }
}

// Column is a non-nullable typed column. Absence is not representable: the
// constructor requires an initial value, so the cell is always set.
type Column[T any] struct {
	name        string
	sqlType     string
	defaultExpr string
	value       T
}

// New returns a non-nullable column. The initial value is mandatory, which
// keeps the variant's guarantee honest: there is no uninitialized state to
// leak through rendering or access.
func New[T any](name, sqlType string, initial T, opts ...Option) *Column[T] {
	var m meta
	for _, opt := range opts {
		opt(&m)
	}
	return &Column[T]{name: name, sqlType: sqlType, defaultExpr: m.defaultExpr, value: initial}
}

// Name returns the column name.
func (c *Column[T]) Name() string { return c.name }

// SQLType returns the column's SQL type token.
func (c *Column[T]) SQLType() string { return c.sqlType }

// DefaultExpr returns the SQL default-value expression, empty if unset.
func (c *Column[T]) DefaultExpr() string { return c.defaultExpr }

// Set stores a value in the cell.
func (c *Column[T]) Set(v T) { c.value = v }

// Value returns the stored value.
func (c *Column[T]) Value() T { return c.value }

// String renders the stored value for display.
func (c *Column[T]) String() string {
	return fmt.Sprint(c.value)
}

// Nullable returns a fresh nullable column carrying over the name and
// default expression. The new cell starts absent; value state does not
// transfer between variants.
func (c *Column[T]) Nullable() *NullColumn[T] {
	return &NullColumn[T]{name: c.name, sqlType: c.sqlType, defaultExpr: c.defaultExpr}
}

// Field returns a predicate builder using this column's name as operand.
func (c *Column[T]) Field(d *dialect.Dialect) predicate.Builder {
	return predicate.Field(c.name, d)
}

// Describe returns the minimal DDL descriptor for this column.
func (c *Column[T]) Describe() dialect.Column {
	return dialect.Column{Name: c.name, Type: c.sqlType, NotNull: true, Default: c.defaultExpr}
}

// NullColumn is a nullable typed column. The cell is either absent or holds
// a value of T; a freshly constructed or cleared cell is absent.
type NullColumn[T any] struct {
	name        string
	sqlType     string
	defaultExpr string
	value       T
	valid       bool
}

// NewNull returns a nullable column whose cell starts absent.
func NewNull[T any](name, sqlType string, opts ...Option) *NullColumn[T] {
	var m meta
	for _, opt := range opts {
		opt(&m)
	}
	return &NullColumn[T]{name: name, sqlType: sqlType, defaultExpr: m.defaultExpr}
}

// Name returns the column name.
func (c *NullColumn[T]) Name() string { return c.name }

// SQLType returns the column's SQL type token.
func (c *NullColumn[T]) SQLType() string { return c.sqlType }

// DefaultExpr returns the SQL default-value expression, empty if unset.
func (c *NullColumn[T]) DefaultExpr() string { return c.defaultExpr }

// Set stores a value, marking the cell present.
func (c *NullColumn[T]) Set(v T) {
	c.value = v
	c.valid = true
}

// Clear resets the cell to the absent state.
func (c *NullColumn[T]) Clear() {
	var zero T
	c.value = zero
	c.valid = false
}

// Valid reports whether the cell holds a value.
func (c *NullColumn[T]) Valid() bool { return c.valid }

// Get returns the stored value, or ErrNoValue when the cell is absent.
func (c *NullColumn[T]) Get() (T, error) {
	if !c.valid {
		var zero T
		return zero, fmt.Errorf("%w: column %s", ErrNoValue, c.name)
	}
	return c.value, nil
}

// GetOr returns the stored value, or def when the cell is absent. It never
// fails.
func (c *NullColumn[T]) GetOr(def T) T {
	if !c.valid {
		return def
	}
	return c.value
}

// String renders the stored value for display, or the empty string when the
// cell is absent. This is a display convenience, not a presence check.
func (c *NullColumn[T]) String() string {
	if !c.valid {
		return ""
	}
	return fmt.Sprint(c.value)
}

// NotNull returns a fresh non-nullable column carrying over the name and
// default expression. The prior cell's contents are discarded; the
// non-nullable variant requires its own initial value.
func (c *NullColumn[T]) NotNull(initial T) *Column[T] {
	return &Column[T]{name: c.name, sqlType: c.sqlType, defaultExpr: c.defaultExpr, value: initial}
}

// Field returns a predicate builder using this column's name as operand.
func (c *NullColumn[T]) Field(d *dialect.Dialect) predicate.Builder {
	return predicate.Field(c.name, d)
}

// Describe returns the minimal DDL descriptor for this column.
func (c *NullColumn[T]) Describe() dialect.Column {
	return dialect.Column{Name: c.name, Type: c.sqlType, Default: c.defaultExpr}
}
