package dialect

import "testing"

func TestNaming(t *testing.T) {
	d := Default()
	if got, want := d.TableName("s", "t"), "s.t"; got != want {
		t.Errorf("TableName = %q, want %q", got, want)
	}
	if got, want := d.TableName("", "t"), "t"; got != want {
		t.Errorf("TableName without schema = %q, want %q", got, want)
	}
	if got, want := d.PrimaryKeyName("users"), "users_pkey"; got != want {
		t.Errorf("PrimaryKeyName = %q, want %q", got, want)
	}
}

func TestColumnDef(t *testing.T) {
	d := Default()
	tests := []struct {
		name string
		col  Column
		want string
	}{
		{"nullable", Column{Name: "bio", Type: "text"}, "bio text"},
		{"not null", Column{Name: "id", Type: "int8", NotNull: true}, "id int8 NOT NULL"},
		{"default", Column{Name: "n", Type: "int8", Default: "0"}, "n int8 default 0"},
		{"default not null", Column{Name: "n", Type: "int8", NotNull: true, Default: "0"}, "n int8 default 0 NOT NULL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ColumnDef(tt.col); got != tt.want {
				t.Errorf("ColumnDef = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimaryKeyDef(t *testing.T) {
	d := Default()
	if got, want := d.PrimaryKeyDef([]string{"id"}), "primary key(id)"; got != want {
		t.Errorf("PrimaryKeyDef = %q, want %q", got, want)
	}
	if got, want := d.PrimaryKeyDef([]string{"a", "b"}), "primary key(a,b)"; got != want {
		t.Errorf("PrimaryKeyDef = %q, want %q", got, want)
	}
}

func TestConstraintDef(t *testing.T) {
	d := Default()
	got := d.ConstraintDef("t_pkey", "primary key(id)")
	if want := "constraint t_pkey primary key(id)"; got != want {
		t.Errorf("ConstraintDef = %q, want %q", got, want)
	}
}

func TestCreateTable(t *testing.T) {
	d := Default()
	table := Table{
		Schema: "s",
		Name:   "t",
		Columns: []Column{
			{Name: "id", Type: "int8", NotNull: true},
		},
	}
	want := "create table s.t (\n\tid int8 NOT NULL)"
	if got := d.CreateTable(table); got != want {
		t.Errorf("CreateTable = %q, want %q", got, want)
	}
}

func TestCreateTable_MultipleColumns(t *testing.T) {
	d := Default()
	table := Table{
		Schema: "app",
		Name:   "users",
		Columns: []Column{
			{Name: "id", Type: "int8", NotNull: true},
			{Name: "email", Type: "text", NotNull: true},
			{Name: "bio", Type: "text"},
		},
	}
	want := "create table app.users (\n\tid int8 NOT NULL,\n\temail text NOT NULL,\n\tbio text)"
	if got := d.CreateTable(table); got != want {
		t.Errorf("CreateTable = %q, want %q", got, want)
	}
}

func TestAlterTable(t *testing.T) {
	d := Default()
	if got, want := d.AlterTable("s", "t", "add column x int8"), "alter table s.t\n\tadd column x int8"; got != want {
		t.Errorf("AlterTable = %q, want %q", got, want)
	}

	add := d.AddConstraint("s", "t", Constraint{Name: "t_pkey", Def: "primary key(id)"})
	if want := "alter table s.t\n\tadd constraint t_pkey primary key(id)"; add != want {
		t.Errorf("AddConstraint = %q, want %q", add, want)
	}

	drop := d.DropConstraint("s", "t", "t_pkey")
	if want := "alter table s.t\n\tdrop constraint t_pkey"; drop != want {
		t.Errorf("DropConstraint = %q, want %q", drop, want)
	}
}

func TestAddPrimaryKey(t *testing.T) {
	d := Default()
	table := Table{
		Schema:     "s",
		Name:       "t",
		PrimaryKey: []string{"id", "tenant_id"},
	}
	want := "alter table s.t\n\tadd constraint t_pkey primary key(id,tenant_id)"
	if got := d.AddPrimaryKey(table); got != want {
		t.Errorf("AddPrimaryKey = %q, want %q", got, want)
	}
}
