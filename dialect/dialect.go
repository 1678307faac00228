// Package dialect provides SQL vocabulary for different database providers.
// A Dialect is an immutable table of operator tokens, type names, naming
// conventions and DDL text templates. Swapping the active Dialect changes
// only the rendered text, never the structure of the objects being rendered.
package dialect

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Op identifies a relational or set operator whose SQL token is supplied
// by the active Dialect.
type Op int

// Supported operators.
const (
	OpEQ Op = iota // equals
	OpNE           // not equals
	OpGT           // greater than
	OpGE           // greater than or equal
	OpLT           // less than
	OpLE           // less than or equal
	OpIsNull
	OpNotNull
	OpLike
	OpILike // case-insensitive like
	OpIn
	OpNotIn
	OpBetween
	OpAll  // quantifier for subquery comparisons
	OpSome // quantifier for subquery comparisons
)

// Kind identifies a logical column type that a Dialect maps to a concrete
// SQL type name.
type Kind int

// Supported logical types.
const (
	KindInt Kind = iota
	KindText
)

// defaultTokens are the operator tokens shared by the built-in dialects.
var defaultTokens = map[Op]string{
	OpEQ:      "=",
	OpNE:      "<>",
	OpGT:      ">",
	OpGE:      ">=",
	OpLT:      "<",
	OpLE:      "<=",
	OpIsNull:  "is null",
	OpNotNull: "is not null",
	OpLike:    "like",
	OpILike:   "ilike",
	OpIn:      "in",
	OpNotIn:   "not in",
	OpBetween: "between",
	OpAll:     "all",
	OpSome:    "some",
}

// defaultTypes are the type names shared by the built-in dialects.
var defaultTypes = map[Kind]string{
	KindInt:  "int8",
	KindText: "text",
}

// Dialect is an immutable provider of SQL vocabulary. Construct one with
// New and the With* options, or use one of the built-in constructors.
// A Dialect is safe for concurrent use.
type Dialect struct {
	name      string
	tokens    map[Op]string
	types     map[Kind]string
	rebind    bool   // rewrite ? placeholders to positional $n
	minServer string // minimum supported server version, empty if unchecked
}

// Option configures a Dialect at construction time.
type Option func(*Dialect)

// WithToken overrides the SQL token for an operator.
func WithToken(op Op, token string) Option {
	return func(d *Dialect) { d.tokens[op] = token }
}

// WithTypeName overrides the SQL type name for a logical type.
func WithTypeName(k Kind, name string) Option {
	return func(d *Dialect) { d.types[k] = name }
}

// WithPositionalParams makes Rebind rewrite ? placeholders to $1, $2, ...
func WithPositionalParams() Option {
	return func(d *Dialect) { d.rebind = true }
}

// WithMinServerVersion sets the minimum server version accepted by
// CheckServerVersion.
func WithMinServerVersion(v string) Option {
	return func(d *Dialect) { d.minServer = v }
}

// New returns a Dialect with the default vocabulary, adjusted by opts.
func New(name string, opts ...Option) *Dialect {
	d := &Dialect{
		name:   name,
		tokens: make(map[Op]string, len(defaultTokens)),
		types:  make(map[Kind]string, len(defaultTypes)),
	}
	for op, tok := range defaultTokens {
		d.tokens[op] = tok
	}
	for k, n := range defaultTypes {
		d.types[k] = n
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default returns the default-style dialect: int8/text type names, lowercase
// tokens, ? placeholders left untouched.
func Default() *Dialect {
	return New("default")
}

// Postgres returns the PostgreSQL dialect.
func Postgres() *Dialect {
	return New("postgres",
		WithPositionalParams(),
		WithMinServerVersion("9.4"),
	)
}

// MySQL returns the MySQL dialect. MySQL has no ILIKE; the default collation
// makes LIKE case-insensitive, so both map to the same token.
func MySQL() *Dialect {
	return New("mysql",
		WithTypeName(KindInt, "bigint"),
		WithToken(OpILike, "like"),
		WithMinServerVersion("5.7"),
	)
}

// SQLite returns the SQLite dialect. SQLite LIKE is case-insensitive for
// ASCII, so ILIKE maps to LIKE.
func SQLite() *Dialect {
	return New("sqlite",
		WithTypeName(KindInt, "integer"),
		WithToken(OpILike, "like"),
	)
}

// ForProvider returns the built-in dialect for a provider name.
func ForProvider(provider string) (*Dialect, error) {
	switch provider {
	case "postgresql", "postgres":
		return Postgres(), nil
	case "mysql":
		return MySQL(), nil
	case "sqlite":
		return SQLite(), nil
	case "", "default":
		return Default(), nil
	default:
		return nil, fmt.Errorf("dialect: unknown provider %q", provider)
	}
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// Token returns the SQL token for an operator.
func (d *Dialect) Token(op Op) string { return d.tokens[op] }

// TypeName returns the SQL type name for a logical type.
func (d *Dialect) TypeName(k Kind) string { return d.types[k] }

// CheckServerVersion reports whether the given server version is supported
// by this dialect. An empty version or a dialect without a minimum always
// passes.
func (d *Dialect) CheckServerVersion(v string) error {
	if v == "" || d.minServer == "" {
		return nil
	}
	server, err := goversion.NewVersion(v)
	if err != nil {
		return fmt.Errorf("dialect: invalid server version %q: %w", v, err)
	}
	min := goversion.Must(goversion.NewVersion(d.minServer))
	if server.LessThan(min) {
		return fmt.Errorf("dialect: %s server %s is older than the minimum supported %s", d.name, v, d.minServer)
	}
	return nil
}

// Rebind rewrites ? placeholders to the dialect's positional style. Dialects
// using ? placeholders return the input unchanged. Question marks inside
// quoted string literals are left alone.
func (d *Dialect) Rebind(query string) string {
	if !d.rebind {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inString := false
	for _, r := range query {
		switch {
		case r == '\'':
			inString = !inString
			b.WriteRune(r)
		case r == '?' && !inString:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
