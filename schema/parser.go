// Package schema parses table-definition text into the minimal descriptors
// the dialect's DDL builders consume.
//
// The definition language is deliberately small:
//
//	table s.users {
//	    id int notnull
//	    email text notnull
//	    bio text default 'n/a'
//	    pkey(id)
//	}
//
// Logical types "int" and "text" resolve through the active dialect's type
// mapping; any other type token is passed to the DDL verbatim.
package schema

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spf13/afero"

	"github.com/satishbabariya/sqlkit/dialect"
)

// File is the parse tree of a schema definition file.
type File struct {
	Tables []*Table `@@*`
}

// Table is one table declaration. The name may be schema-qualified.
type Table struct {
	First   string   `"table" @Ident`
	Second  string   `("." @Ident)?`
	Entries []*Entry `"{" @@* "}"`
}

// Entry is a union of the declarations allowed inside a table body.
type Entry struct {
	PKey   *PKey       `@@`
	Column *ColumnDecl `| @@`
}

// PKey declares the table's primary-key columns.
type PKey struct {
	Columns []string `"pkey" "(" @Ident ("," @Ident)* ")"`
}

// ColumnDecl declares one column.
type ColumnDecl struct {
	Name    string `@Ident`
	Type    string `@Ident`
	NotNull bool   `@"notnull"?`
	Default string `("default" @(String | Number | Ident))?`
}

var schemaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[{}().,]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(schemaLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses a schema definition from a reader.
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", filename, err)
	}
	return f, nil
}

// ParseString parses a schema definition from a string.
func ParseString(filename, src string) (*File, error) {
	return Parse(filename, strings.NewReader(src))
}

// ParseFile parses a schema definition file through the given filesystem.
func ParseFile(fs afero.Fs, path string) (*File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(path, f)
}

// QualifiedName returns the schema and table parts of the declared name.
func (t *Table) QualifiedName() (schema, name string) {
	if t.Second == "" {
		return "", t.First
	}
	return t.First, t.Second
}

// Describe resolves the declaration into the dialect's table descriptor,
// mapping logical type names through the dialect.
func (t *Table) Describe(d *dialect.Dialect) dialect.Table {
	schema, name := t.QualifiedName()
	desc := dialect.Table{Schema: schema, Name: name}
	for _, e := range t.Entries {
		switch {
		case e.PKey != nil:
			desc.PrimaryKey = append(desc.PrimaryKey, e.PKey.Columns...)
		case e.Column != nil:
			desc.Columns = append(desc.Columns, dialect.Column{
				Name:    e.Column.Name,
				Type:    resolveType(d, e.Column.Type),
				NotNull: e.Column.NotNull,
				Default: e.Column.Default,
			})
		}
	}
	return desc
}

// DDL renders the CREATE TABLE statement for every table in the file,
// followed by the ALTER TABLE statement adding its primary key when one is
// declared.
func (f *File) DDL(d *dialect.Dialect) []string {
	var stmts []string
	for _, t := range f.Tables {
		desc := t.Describe(d)
		stmts = append(stmts, d.CreateTable(desc))
		if len(desc.PrimaryKey) > 0 {
			stmts = append(stmts, d.AddPrimaryKey(desc))
		}
	}
	return stmts
}

func resolveType(d *dialect.Dialect, typ string) string {
	switch typ {
	case "int":
		return d.TypeName(dialect.KindInt)
	case "text":
		return d.TypeName(dialect.KindText)
	default:
		return typ
	}
}
