package skills

import (
	"context"
	"errors"
	"testing"
)

func noop(context.Context, []string) (string, error) { return "", nil }

func TestNewTable(t *testing.T) {
	tbl, err := NewTable(
		Subcommand{Name: "b", Description: "segundo", Handler: noop},
		Subcommand{Name: "a", Description: "primero", Params: []string{"x"}, Handler: noop},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	all := tbl.All()
	if len(all) != 2 || all[0].Name != "b" || all[1].Name != "a" {
		t.Errorf("All() = %+v, want declaration order", all)
	}
	if sub, ok := tbl.Lookup("a"); !ok || sub.Arity() != 1 {
		t.Errorf("Lookup(a) = %+v, %v", sub, ok)
	}
	if _, ok := tbl.Lookup("c"); ok {
		t.Error("Lookup(c) should fail")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d", tbl.Len())
	}
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		subs []Subcommand
	}{
		{"duplicate", []Subcommand{
			{Name: "a", Description: "x", Handler: noop},
			{Name: "a", Description: "y", Handler: noop},
		}},
		{"empty name", []Subcommand{{Description: "x", Handler: noop}}},
		{"no handler", []Subcommand{{Name: "a", Description: "x"}}},
		{"no description", []Subcommand{{Name: "a", Handler: noop}}},
	}
	for _, tt := range tests {
		if _, err := NewTable(tt.subs...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	_, err := NewTable(tests[0].subs...)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateName", err)
	}
}

func TestTable_ParamsAreCopied(t *testing.T) {
	params := []string{"x"}
	tbl := MustTable(Subcommand{Name: "a", Description: "d", Params: params, Handler: noop})
	params[0] = "y"
	if sub, _ := tbl.Lookup("a"); sub.Params[0] != "x" {
		t.Error("table must not alias the caller's params")
	}
}

func TestMustTable_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate subcommand")
		}
	}()
	MustTable(
		Subcommand{Name: "a", Description: "x", Handler: noop},
		Subcommand{Name: "a", Description: "x", Handler: noop},
	)
}

func TestUsage(t *testing.T) {
	if got := Usage("insertar", []string{"producto"}); got != "insertar <producto>" {
		t.Errorf("Usage = %q", got)
	}
	if got := Usage("listar", nil); got != "listar" {
		t.Errorf("Usage = %q", got)
	}
}
