package skills

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const listingHeader = "Habilidades disponibles:"

// Usage renders a command followed by its parameters, e.g. "insertar <producto>".
func Usage(command string, params []string) string {
	var b strings.Builder
	b.WriteString(command)
	for _, p := range params {
		b.WriteString(" <")
		b.WriteString(p)
		b.WriteString(">")
	}
	return b.String()
}

func writeListing(w io.Writer, list []Skill) {
	_, _ = fmt.Fprintln(w, listingHeader)
	for _, s := range list {
		_, _ = fmt.Fprintf(w, "\t%s:\t%s\n", s.Name(), s.Description())
	}
}

func writeHeader(w io.Writer, s Skill) {
	_, _ = fmt.Fprintf(w, "Comando:\t%s\n", s.Name())
	_, _ = fmt.Fprintf(w, "Descripción:\t%s\n", s.Description())
}

// WriteSimpleHelp prints the help view of a simple skill.
func WriteSimpleHelp(w io.Writer, s Simple) {
	writeHeader(w, s)
	_, _ = fmt.Fprintf(w, "Uso:\t%s\n", Usage(s.Name(), s.Params()))
}

// WriteCompositeHelp prints the help view of a composite skill: its name and
// description followed by one aligned line per subcommand.
func WriteCompositeHelp(w io.Writer, c Composite) {
	writeHeader(w, c)
	_, _ = fmt.Fprintln(w, "Subcomandos:")

	subs := c.Subcommands().All()
	usages := make([]string, len(subs))
	width := 0
	for i, s := range subs {
		usages[i] = Usage(s.Name, s.Params)
		if n := runewidth.StringWidth(usages[i]); n > width {
			width = n
		}
	}
	for i, s := range subs {
		_, _ = fmt.Fprintf(w, "\t%s  %s\n", runewidth.FillRight(usages[i], width), s.Description)
	}
}
