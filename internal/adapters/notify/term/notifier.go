package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JiYeong0127/paperdeck/internal/ports"
)

type styles struct {
	success lipgloss.Style
	info    lipgloss.Style
	failure lipgloss.Style
	detail  lipgloss.Style
}

func newStyles() styles {
	return styles{
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		info:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:  lipgloss.NewStyle().Faint(true),
	}
}

// Notifier prints one styled notice line per outcome. Notices go to stderr
// so they never interleave with rendered output on stdout, and every write
// error is swallowed: a broken pipe must not disturb cache reconciliation.
type Notifier struct {
	out    io.Writer
	styles styles
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{out: os.Stderr, styles: newStyles()}
}

// NewNotifierTo is for tests and alternate sinks.
func NewNotifierTo(out io.Writer) *Notifier {
	return &Notifier{out: out, styles: newStyles()}
}

func (n *Notifier) Success(message string) {
	n.print(n.styles.success.Render("✓"), message, "")
}

func (n *Notifier) Info(message string) {
	n.print(n.styles.info.Render("•"), message, "")
}

func (n *Notifier) Failure(message string, detail string) {
	n.print(n.styles.failure.Render("✗"), message, detail)
}

func (n *Notifier) print(mark, message, detail string) {
	line := mark + " " + strings.TrimSpace(message)
	if detail = strings.TrimSpace(detail); detail != "" {
		line += " " + n.styles.detail.Render("("+detail+")")
	}
	_, _ = fmt.Fprintln(n.out, line)
}
