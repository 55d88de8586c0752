package skills

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nathfavour/habilidades/pkg/command"
)

// Built-in commands. Skills cannot take these names.
const (
	HelpCommand = "ayuda"
	ExitCommand = "salir"
)

// Asker supplies a value for a parameter the user left out.
type Asker interface {
	Ask(ctx context.Context, param string) (string, error)
}

type AskerFunc func(ctx context.Context, param string) (string, error)

func (f AskerFunc) Ask(ctx context.Context, param string) (string, error) {
	return f(ctx, param)
}

// Registry (the menu) owns the registered skills and dispatches input lines
// to them. Its skill set is fixed at construction.
type Registry struct {
	skills    map[string]Skill
	order     []Skill
	out       io.Writer
	tokenizer command.Tokenizer
	verbose   bool
}

type Option func(*Registry)

// WithOutput sets where help, results and error reports are written.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTokenizer replaces the default shell-style tokenizer.
func WithTokenizer(t command.Tokenizer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tokenizer = t
		}
	}
}

func WithVerbose(v bool) Option {
	return func(r *Registry) {
		r.verbose = v
	}
}

// NewRegistry registers list in order. It fails if a name is empty, repeated,
// or taken by a built-in command.
func NewRegistry(list []Skill, opts ...Option) (*Registry, error) {
	r := &Registry{
		skills:    make(map[string]Skill, len(list)),
		order:     make([]Skill, 0, len(list)),
		out:       os.Stdout,
		tokenizer: command.Shell{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, s := range list {
		if s == nil {
			return nil, fmt.Errorf("%w: nil skill", ErrInvalidName)
		}
		name := s.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty skill name", ErrInvalidName)
		}
		if name == HelpCommand || name == ExitCommand {
			return nil, &DuplicateNameError{Name: name}
		}
		if _, exists := r.skills[name]; exists {
			return nil, &DuplicateNameError{Name: name}
		}
		if _, ok := s.(Composite); !ok {
			if _, ok := s.(Simple); !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotInvocable, name)
			}
		}
		r.skills[name] = s
		r.order = append(r.order, s)
	}
	return r, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, s := range r.order {
		names[i] = s.Name()
	}
	return names
}

func (r *Registry) Get(name string) (Skill, bool) {
	s, ok := r.skills[name]
	return s, ok
}

// Help prints the listing of every skill when name is empty, or the help
// view of the named skill otherwise. Unknown names are reported, not returned.
func (r *Registry) Help(name string) {
	if name == "" {
		writeListing(r.out, r.order)
		return
	}
	s, ok := r.skills[name]
	if !ok {
		_, _ = fmt.Fprintln(r.out, (&SkillNotFoundError{Name: name}).Error())
		return
	}
	s.Help(r.out)
}

// Execute runs one line and reports any failure on the output. It returns
// true when the caller should stop reading input.
func (r *Registry) Execute(ctx context.Context, line string) bool {
	return r.ExecuteWith(ctx, line, nil)
}

// ExecuteWith is Execute with an Asker used to fill in missing arguments.
func (r *Registry) ExecuteWith(ctx context.Context, line string, ask Asker) bool {
	stop, err := r.Dispatch(ctx, line, ask)
	if err != nil {
		if r.verbose {
			log.Printf("[verbose] dispatch failed: line=%q err=%v", line, err)
		}
		_, _ = fmt.Fprintln(r.out, err)
	}
	return stop
}

// Dispatch runs one line and returns its error instead of reporting it.
func (r *Registry) Dispatch(ctx context.Context, line string, ask Asker) (bool, error) {
	name, args, err := r.tokenizer.Split(line)
	if err != nil {
		return false, err
	}
	if r.verbose {
		log.Printf("[verbose] dispatch: command=%s args=%d", name, len(args))
	}

	switch name {
	case HelpCommand:
		if len(args) > 1 {
			return false, &ArityError{Command: HelpCommand, Want: 1, Got: len(args)}
		}
		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		r.Help(target)
		return false, nil
	case ExitCommand:
		if err := CheckArity(ExitCommand, nil, args); err != nil {
			return false, err
		}
		return true, nil
	}

	s, ok := r.skills[name]
	if !ok {
		return false, &SkillNotFoundError{Name: name}
	}

	var out string
	switch sk := s.(type) {
	case Composite:
		if len(args) == 0 {
			return false, &SubcommandNotFoundError{Skill: name}
		}
		sub, ok := sk.Subcommands().Lookup(args[0])
		if !ok {
			return false, &SubcommandNotFoundError{Skill: name, Name: args[0]}
		}
		cmdName := name + " " + sub.Name
		rest, err := complete(ctx, sub.Params, args[1:], ask)
		if err != nil {
			return false, err
		}
		if err := CheckArity(cmdName, sub.Params, rest); err != nil {
			return false, err
		}
		if out, err = sub.Handler(ctx, rest); err != nil {
			return false, fmt.Errorf("%s: %w", cmdName, err)
		}
	case Simple:
		rest, err := complete(ctx, sk.Params(), args, ask)
		if err != nil {
			return false, err
		}
		if err := CheckArity(name, sk.Params(), rest); err != nil {
			return false, err
		}
		if out, err = sk.Invoke(ctx, rest); err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return false, fmt.Errorf("%w: %s", ErrNotInvocable, name)
	}

	if out != "" {
		_, _ = fmt.Fprintln(r.out, out)
	}
	return false, nil
}

// complete asks for every parameter beyond the ones already given. Without an
// Asker, or with too many arguments, args is returned unchanged.
func complete(ctx context.Context, params, args []string, ask Asker) ([]string, error) {
	if ask == nil || len(args) >= len(params) {
		return args, nil
	}
	filled := append(make([]string, 0, len(params)), args...)
	for _, p := range params[len(args):] {
		v, err := ask.Ask(ctx, p)
		if err != nil {
			return nil, err
		}
		filled = append(filled, v)
	}
	return filled, nil
}
