package tui

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathfavour/habilidades/pkg/command"
	"github.com/nathfavour/habilidades/pkg/shell"
	"github.com/nathfavour/habilidades/pkg/skills"
)

var (
	// Colors
	purple = lipgloss.Color("#7D56F4")
	red    = lipgloss.Color("#ED567A")
	gray   = lipgloss.Color("#626262")
	white  = lipgloss.Color("#FAFAFA")

	// Styles
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(purple).
			Padding(0, 1)

	styleEcho = lipgloss.NewStyle().
			Foreground(purple)

	styleError = lipgloss.NewStyle().
			Foreground(red)

	styleFooter = lipgloss.NewStyle().
			Foreground(gray)
)

// chrome is the number of rows taken by the header, input and footer.
const chrome = 4

// Model is a full-screen front end over a skills.Registry. The registry must
// write its output into the buffer given to New.
type Model struct {
	ctx      context.Context
	registry *skills.Registry
	output   *bytes.Buffer
	recorder shell.Recorder

	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	ready      bool
	quitting   bool
}

func New(ctx context.Context, reg *skills.Registry, output *bytes.Buffer, rec shell.Recorder) Model {
	ti := textinput.New()
	ti.Prompt = shell.DefaultPrompt
	ti.Placeholder = skills.HelpCommand
	ti.Focus()

	return Model{
		ctx:      ctx,
		registry: reg,
		output:   output,
		recorder: rec,
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if m.submit(line) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one line and appends the echo, output and any error to the
// transcript. It returns true when the line asked to stop.
func (m *Model) submit(line string) bool {
	m.transcript = append(m.transcript, styleEcho.Render(shell.DefaultPrompt+line))

	stop, err := m.registry.Dispatch(m.ctx, line, nil)
	if out := strings.TrimRight(m.output.String(), "\n"); out != "" {
		m.transcript = append(m.transcript, out)
	}
	m.output.Reset()
	if err != nil {
		m.transcript = append(m.transcript, styleError.Render(err.Error()))
	}
	if m.recorder != nil && !errors.Is(err, command.ErrEmptyCommand) {
		if rerr := m.recorder.Record(m.ctx, line, err); rerr != nil {
			log.Printf("history: failed to record line: %v", rerr)
		}
	}

	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
	return stop
}

// Transcript returns everything shown so far, one entry per echo, output
// block or error.
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing habilidades..."
	}

	header := styleHeader.Render("HABILIDADES")
	footer := styleFooter.Render("[enter] Ejecutar • [pgup/pgdn] Desplazar • [esc] Salir")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.input.View(), footer)
}
