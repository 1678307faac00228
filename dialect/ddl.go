package dialect

import (
	"fmt"
	"strings"
)

// Table is the minimal table descriptor the naming and DDL functions
// consume. It carries names only; richer schema metadata lives upstream.
type Table struct {
	Schema     string
	Name       string
	Columns    []Column
	PrimaryKey []string
}

// Column is the minimal column descriptor for DDL text generation.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default string
}

// Constraint is a named constraint with its definition text.
type Constraint struct {
	Name string
	Def  string
}

// TableName returns the qualified table name, "schema.table". A table
// without a schema renders as the bare table name.
func (d *Dialect) TableName(schema, table string) string {
	if schema == "" {
		return table
	}
	return schema + "." + table
}

// PrimaryKeyName returns the conventional primary-key constraint name,
// "<table>_pkey".
func (d *Dialect) PrimaryKeyName(table string) string {
	return table + "_pkey"
}

// ColumnDef renders a column definition: "<name> <type>", with " NOT NULL"
// appended for non-nullable columns and " default <expr>" for columns with
// a default expression.
func (d *Dialect) ColumnDef(c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.Type)
	if c.Default != "" {
		b.WriteString(" default ")
		b.WriteString(c.Default)
	}
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// PrimaryKeyDef renders a primary-key definition: "primary key(a,b)".
func (d *Dialect) PrimaryKeyDef(cols []string) string {
	return "primary key(" + strings.Join(cols, ",") + ")"
}

// ConstraintDef renders a generic constraint definition:
// "constraint <name> <definition>".
func (d *Dialect) ConstraintDef(name, def string) string {
	return "constraint " + name + " " + def
}

// CreateTable renders a CREATE TABLE statement with one column definition
// per line. The primary key, if any, is added separately via
// AddPrimaryKey. A table with zero columns is a caller contract violation
// and renders an empty column list.
func (d *Dialect) CreateTable(t Table) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = "\t" + d.ColumnDef(c)
	}
	return fmt.Sprintf("create table %s (\n%s)", d.TableName(t.Schema, t.Name), strings.Join(defs, ",\n"))
}

// AlterTable renders the generic ALTER TABLE statement:
// "alter table <table>\n\t<action>".
func (d *Dialect) AlterTable(schema, table, action string) string {
	return fmt.Sprintf("alter table %s\n\t%s", d.TableName(schema, table), action)
}

// AddConstraint renders an ALTER TABLE statement adding a constraint.
func (d *Dialect) AddConstraint(schema, table string, c Constraint) string {
	return d.AlterTable(schema, table, "add "+d.ConstraintDef(c.Name, c.Def))
}

// DropConstraint renders an ALTER TABLE statement dropping a constraint.
func (d *Dialect) DropConstraint(schema, table, name string) string {
	return d.AlterTable(schema, table, "drop constraint "+name)
}

// AddPrimaryKey renders the ALTER TABLE statement adding the table's
// primary-key constraint under the "<table>_pkey" naming convention.
func (d *Dialect) AddPrimaryKey(t Table) string {
	c := Constraint{
		Name: d.PrimaryKeyName(t.Name),
		Def:  d.PrimaryKeyDef(t.PrimaryKey),
	}
	return d.AddConstraint(t.Schema, t.Name, c)
}
