package cli

import (
	"io"

	"github.com/nathfavour/habilidades/pkg/catalog"
	"github.com/nathfavour/habilidades/pkg/command"
	"github.com/nathfavour/habilidades/pkg/config"
	"github.com/nathfavour/habilidades/pkg/history"
	"github.com/nathfavour/habilidades/pkg/shell"
	"github.com/nathfavour/habilidades/pkg/skills"
)

// session wires the catalog, registry, shell and optional journal for one
// invocation.
type session struct {
	registry *skills.Registry
	shell    *shell.Shell
	history  *history.Store
}

func newSession(s config.Settings, in io.Reader, out io.Writer) (*session, error) {
	reg, err := newRegistry(s, out)
	if err != nil {
		return nil, err
	}

	opts := []shell.Option{
		shell.WithPrompt(s.Prompt),
		shell.WithAsk(s.AskMissing),
		shell.WithColor(s.Color),
		shell.WithVerbose(s.Verbose),
	}
	sess := &session{registry: reg}
	if s.History.Enabled {
		store, err := history.Open(s.History.Path)
		if err != nil {
			return nil, err
		}
		sess.history = store
		opts = append(opts, shell.WithRecorder(store))
	}
	sess.shell = shell.New(reg, in, out, opts...)
	return sess, nil
}

// newRegistry builds the registry alone, for commands that never read input.
func newRegistry(s config.Settings, out io.Writer) (*skills.Registry, error) {
	cat, err := catalog.Load(s.Catalog)
	if err != nil {
		return nil, err
	}
	list, err := cat.Build()
	if err != nil {
		return nil, err
	}
	tok, err := command.New(s.Tokenizer)
	if err != nil {
		return nil, err
	}
	return skills.NewRegistry(list,
		skills.WithOutput(out),
		skills.WithTokenizer(tok),
		skills.WithVerbose(s.Verbose),
	)
}

func (s *session) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
