package skills

import (
	"context"
	"fmt"
	"io"
)

// Skill is the unit of registration in a Registry.
type Skill interface {
	Name() string
	Description() string
	Help(w io.Writer)
}

// Simple skills have a single entry point taking positional arguments.
type Simple interface {
	Skill
	Params() []string
	Invoke(ctx context.Context, args []string) (string, error)
}

// Composite skills expose a fixed table of named subcommands.
type Composite interface {
	Skill
	Subcommands() *Table
}

// Base carries the name and description shared by every skill and is meant
// to be embedded.
type Base struct {
	name        string
	description string
}

func NewBase(name, description string) Base {
	return Base{name: name, description: description}
}

func (b Base) Name() string {
	return b.name
}

func (b Base) Description() string {
	return b.description
}

// HandlerFunc runs one subcommand. The returned string, if not empty, is
// printed by the registry.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

// Subcommand is one row of a composite skill's table.
type Subcommand struct {
	Name        string
	Description string
	Params      []string
	Handler     HandlerFunc
}

func (s Subcommand) Arity() int {
	return len(s.Params)
}

// Table maps subcommand names to handlers. It is built once and never
// mutated afterwards.
type Table struct {
	order  []string
	byName map[string]Subcommand
}

// NewTable builds a table preserving the given order. Every subcommand needs
// a unique non-empty name, a handler and a one-line description.
func NewTable(subs ...Subcommand) (*Table, error) {
	t := &Table{
		order:  make([]string, 0, len(subs)),
		byName: make(map[string]Subcommand, len(subs)),
	}
	for _, s := range subs {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: empty subcommand name", ErrInvalidName)
		}
		if _, exists := t.byName[s.Name]; exists {
			return nil, &DuplicateNameError{Name: s.Name}
		}
		if s.Handler == nil {
			return nil, fmt.Errorf("subcommand %q has no handler", s.Name)
		}
		if s.Description == "" {
			return nil, fmt.Errorf("subcommand %q has no description", s.Name)
		}
		s.Params = append([]string(nil), s.Params...)
		t.byName[s.Name] = s
		t.order = append(t.order, s.Name)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Intended for tables
// declared in skill constructors.
func MustTable(subs ...Subcommand) *Table {
	t, err := NewTable(subs...)
	if err != nil {
		panic(fmt.Sprintf("skills: %v", err))
	}
	return t
}

func (t *Table) Lookup(name string) (Subcommand, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// All returns the subcommands in declaration order.
func (t *Table) All() []Subcommand {
	out := make([]Subcommand, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}

func (t *Table) Len() int {
	return len(t.order)
}

// CheckArity fails with an *ArityError when args does not match params.
func CheckArity(command string, params, args []string) error {
	if len(args) != len(params) {
		return &ArityError{Command: command, Want: len(params), Got: len(args)}
	}
	return nil
}
