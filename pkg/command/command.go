// Package command splits raw input lines into a command word and its arguments.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	// ErrEmptyCommand is returned when a line holds no token to use as a command.
	ErrEmptyCommand = errors.New("comando vacío")
	// ErrMalformedInput is the class of every *MalformedInputError.
	ErrMalformedInput = errors.New("línea mal formada")
)

// MalformedInputError reports a line that cannot be tokenized, such as one
// with an unterminated quote.
type MalformedInputError struct {
	Line   string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Tokenizer turns a line into a command word and an ordered argument list.
type Tokenizer interface {
	Split(line string) (string, []string, error)
}

const (
	ShellName = "shell"
	CommaName = "comas"
)

// New returns the tokenizer registered under name.
func New(name string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ShellName:
		return Shell{}, nil
	case CommaName:
		return Comma{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (expected %q or %q)", name, ShellName, CommaName)
	}
}

// Shell splits on whitespace and honours single and double quotes, which
// group their contents into one token and are stripped. A backslash outside
// single quotes escapes the next character. Every other character, shell
// operators included, is part of a word.
type Shell struct{}

// literals are characters shellwords treats as shell syntax when unquoted.
const literals = ";&|<>()`"

func (Shell) Split(line string) (string, []string, error) {
	p := shellwords.NewParser()
	tokens, err := p.Parse(escapeLiterals(line))
	if err != nil {
		return "", nil, &MalformedInputError{Line: line, Reason: "comillas sin cerrar"}
	}
	if p.Position >= 0 {
		return "", nil, &MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("carácter no reconocido en la posición %d", p.Position),
		}
	}
	return head(tokens)
}

// escapeLiterals backslash-escapes unquoted shell syntax so that shellwords
// keeps it inside the surrounding word.
func escapeLiterals(line string) string {
	if !strings.ContainsAny(line, literals) {
		return line
	}
	var (
		b                       strings.Builder
		single, double, escaped bool
	)
	b.Grow(len(line) + 8)
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !single:
			escaped = true
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		case !single && !double && strings.ContainsRune(literals, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Comma splits on commas and trims the surrounding whitespace of each field,
// so "lista, insertar, 1 kg de peras" yields three tokens.
type Comma struct{}

func (Comma) Split(line string) (string, []string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil, ErrEmptyCommand
	}
	fields := strings.Split(line, ",")
	tokens := make([]string, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return "", nil, &MalformedInputError{
				Line:   line,
				Reason: fmt.Sprintf("campo vacío en la posición %d", i),
			}
		}
		tokens = append(tokens, f)
	}
	return head(tokens)
}

func head(tokens []string) (string, []string, error) {
	if len(tokens) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return tokens[0], tokens[1:], nil
}
