package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/fcsr-dev/fcsr/internal/checker"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
)

// styles colours terminal output. Colours are dropped when the writer is not a terminal.
type styles struct {
	name     lipgloss.Style
	expected lipgloss.Style
	declared lipgloss.Style
	warn     lipgloss.Style
	ok       lipgloss.Style
	fail     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		name:     r.NewStyle().Foreground(lipgloss.Color("6")),
		expected: r.NewStyle().Foreground(lipgloss.Color("2")),
		declared: r.NewStyle().Foreground(lipgloss.Color("1")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		ok:       r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (s styles) warning(w diagnostics.Warning) string {
	prefix := s.warn.Render("warn")
	if w.Kind != diagnostics.KindRangeMismatch {
		return prefix + " " + w.Message()
	}
	return fmt.Sprintf("%s Package %s must depend on the current version of %s: %s vs %s",
		prefix,
		s.name.Render(strconv.Quote(w.Consumer)),
		s.name.Render(strconv.Quote(w.Dependency)),
		s.expected.Render(strconv.Quote(w.Expected)),
		s.declared.Render(strconv.Quote(w.Range)),
	)
}

func (s styles) summary(res checker.Result) string {
	counts := fmt.Sprintf("%d packages, %d internal dependencies, %d warnings",
		len(res.Graph.Nodes), res.Graph.EdgeCount(), res.Report.Len())
	if !res.Valid() {
		return s.fail.Render("invalid") + " " + counts
	}
	return s.ok.Render("ok") + " " + counts
}
