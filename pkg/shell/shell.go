// Package shell runs the read-dispatch loop on top of a skills.Registry.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathfavour/habilidades/pkg/command"
	"github.com/nathfavour/habilidades/pkg/skills"
)

const DefaultPrompt = "> "

// ErrInputClosed is returned by the argument prompt when input ends before
// the user answers.
var ErrInputClosed = errors.New("entrada terminada")

var (
	purple = lipgloss.Color("#7D56F4")
	red    = lipgloss.Color("#ED567A")

	stylePrompt = lipgloss.NewStyle().Bold(true).Foreground(purple)
	styleError  = lipgloss.NewStyle().Foreground(red)
)

// Recorder receives every non-empty line the shell executes along with its
// outcome.
type Recorder interface {
	Record(ctx context.Context, line string, err error) error
}

type Shell struct {
	registry *skills.Registry
	reader   *bufio.Reader
	out      io.Writer
	prompt   string
	ask      bool
	color    bool
	verbose  bool
	recorder Recorder
}

type Option func(*Shell)

// WithPrompt replaces the default "> " prompt.
func WithPrompt(p string) Option {
	return func(s *Shell) {
		s.prompt = p
	}
}

// WithAsk makes the shell prompt for arguments a command is missing instead
// of failing with an arity error.
func WithAsk(ask bool) Option {
	return func(s *Shell) {
		s.ask = ask
	}
}

func WithColor(color bool) Option {
	return func(s *Shell) {
		s.color = color
	}
}

func WithVerbose(v bool) Option {
	return func(s *Shell) {
		s.verbose = v
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Shell) {
		s.recorder = r
	}
}

// New builds a shell reading from in. out should be the writer the registry
// was built with so that prompts and results interleave correctly.
func New(reg *skills.Registry, in io.Reader, out io.Writer, opts ...Option) *Shell {
	if out == nil {
		out = io.Discard
	}
	s := &Shell{
		registry: reg,
		reader:   bufio.NewReader(in),
		out:      out,
		prompt:   DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes lines until a command asks to stop, input ends, or
// ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.verbose {
		log.Printf("[verbose] shell start: prompt=%q ask=%v", s.prompt, s.ask)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printPrompt()
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			// End of input counts as a request to stop.
			_, _ = fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if s.Execute(ctx, line) {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. Lines have no length
// limit. A final line missing its newline is still returned.
func (s *Shell) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Execute runs one line, reporting any failure, and returns true when the
// shell should stop.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	var asker skills.Asker
	if s.ask {
		asker = skills.AskerFunc(s.askParam)
	}
	stop, err := s.registry.Dispatch(ctx, line, asker)
	if err != nil {
		s.report(err)
	}
	if !errors.Is(err, command.ErrEmptyCommand) {
		s.record(ctx, line, err)
	}
	return stop
}

// Emulate echoes line after the prompt and executes it, as if typed.
func (s *Shell) Emulate(ctx context.Context, line string) bool {
	_, _ = fmt.Fprintf(s.out, "%s%s\n", s.render(stylePrompt, s.prompt), line)
	return s.Execute(ctx, line)
}

func (s *Shell) askParam(_ context.Context, param string) (string, error) {
	_, _ = fmt.Fprintf(s.out, "%s? ", param)
	v, err := s.readLine()
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", param, err)
	}
	return v, nil
}

func (s *Shell) printPrompt() {
	_, _ = fmt.Fprint(s.out, s.render(stylePrompt, s.prompt))
}

func (s *Shell) report(err error) {
	if s.verbose {
		log.Printf("[verbose] command failed: %v", err)
	}
	_, _ = fmt.Fprintln(s.out, s.render(styleError, err.Error()))
}

func (s *Shell) record(ctx context.Context, line string, err error) {
	if s.recorder == nil {
		return
	}
	if rerr := s.recorder.Record(ctx, line, err); rerr != nil {
		log.Printf("history: failed to record line: %v", rerr)
	}
}

func (s *Shell) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
