package command

import (
	"errors"
	"reflect"
	"testing"
)

func TestShellSplit(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		command string
		args    []string
	}{
		{"bare command", "ayuda", "ayuda", []string{}},
		{"positional", "bitcoin2euro 100", "bitcoin2euro", []string{"100"}},
		{"double quoted", `insertar "1 kg de plátanos"`, "insertar", []string{"1 kg de plátanos"}},
		{"single quoted", `listadelacompra insertar 'Pimientos rojos'`, "listadelacompra", []string{"insertar", "Pimientos rojos"}},
		{"extra whitespace", "  listar   ", "listar", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Shell{}.Split(tt.line)
			if err != nil {
				t.Fatalf("Split(%q) error: %v", tt.line, err)
			}
			if cmd != tt.command {
				t.Errorf("command = %q, want %q", cmd, tt.command)
			}
			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("args = %q, want %q", args, tt.args)
			}
		})
	}
}

func TestShellSplit_UnterminatedQuote(t *testing.T) {
	_, _, err := Shell{}.Split(`insertar "1 kg de plátanos`)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %T, want *MalformedInputError", err)
	}
	if malformed.Line != `insertar "1 kg de plátanos` {
		t.Errorf("Line = %q", malformed.Line)
	}
}

func TestShellSplit_OperatorsAreLiteral(t *testing.T) {
	tests := []struct {
		line string
		args []string
	}{
		{"listadelacompra insertar pan&vino", []string{"insertar", "pan&vino"}},
		{"listadelacompra insertar sal;pimienta", []string{"insertar", "sal;pimienta"}},
		{"listadelacompra insertar a>b", []string{"insertar", "a>b"}},
		{"listadelacompra insertar 2>1", []string{"insertar", "2>1"}},
		{"listadelacompra insertar a|b <c", []string{"insertar", "a|b", "<c"}},
		{"listadelacompra insertar (pan) `x`", []string{"insertar", "(pan)", "`x`"}},
		{`listadelacompra insertar 'a;b' "c&d" e\;f`, []string{"insertar", "a;b", "c&d", "e;f"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args, err := Shell{}.Split(tt.line)
			if err != nil {
				t.Fatalf("Split(%q) error: %v", tt.line, err)
			}
			if cmd != "listadelacompra" {
				t.Errorf("command = %q", cmd)
			}
			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("args = %q, want %q", args, tt.args)
			}
		})
	}
}

func TestShellSplit_QuotedOperator(t *testing.T) {
	_, args, err := Shell{}.Split(`insertar "sal & pimienta"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != "sal & pimienta" {
		t.Errorf("args = %q", args)
	}
}

func TestSplit_Empty(t *testing.T) {
	for _, tok := range []Tokenizer{Shell{}, Comma{}} {
		for _, line := range []string{"", "   "} {
			if _, _, err := tok.Split(line); !errors.Is(err, ErrEmptyCommand) {
				t.Errorf("%T.Split(%q) err = %v, want ErrEmptyCommand", tok, line, err)
			}
		}
	}
}

func TestCommaSplit(t *testing.T) {
	cmd, args, err := Comma{}.Split("listadelacompra, insertar, 1 kg de plátanos canarios")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "listadelacompra" {
		t.Errorf("command = %q", cmd)
	}
	want := []string{"insertar", "1 kg de plátanos canarios"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %q, want %q", args, want)
	}
}

func TestCommaSplit_EmptyField(t *testing.T) {
	if _, _, err := (Comma{}).Split("lista,,listar"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestNew(t *testing.T) {
	if tok, err := New(""); err != nil || tok != (Shell{}) {
		t.Errorf("New(\"\") = %v, %v", tok, err)
	}
	if tok, err := New("COMAS"); err != nil || tok != (Comma{}) {
		t.Errorf("New(\"COMAS\") = %v, %v", tok, err)
	}
	if _, err := New("xml"); err == nil {
		t.Error("expected error for unknown tokenizer")
	}
}
