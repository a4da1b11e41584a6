// Package printer renders styled output for the interactive console.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/redlinehq/redline/internal/core/styles"
)

const ruleWidth = 80

// Printer writes styled lines to an output writer.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Default returns a Printer writing to stdout.
func Default() *Printer {
	return New(os.Stdout)
}

// Printf writes a plain formatted line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Title writes a bold heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.out, styles.Title().Render(text))
}

// Section writes a heading framed by horizontal rules.
func (p *Printer) Section(text string) {
	rule := styles.Muted().Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, styles.Section().Render(text))
	fmt.Fprintln(p.out, rule)
}

// Successf writes a success line with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.Success().Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.Warning().Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.Error().Render("✗ "+fmt.Sprintf(format, args...)))
}

// Mutedf writes a de-emphasized line.
func (p *Printer) Mutedf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.Muted().Render(fmt.Sprintf(format, args...)))
}

// Panel writes a titled block of body text framed by rules. Used for passage
// and document display.
func (p *Printer) Panel(title, body string) {
	p.Section(title)
	fmt.Fprintln(p.out, body)
	fmt.Fprintln(p.out, styles.Muted().Render(strings.Repeat("=", ruleWidth)))
}

// NumberedLines writes up to max lines prefixed with 1-based line numbers,
// truncating long lines at the given width.
func (p *Printer) NumberedLines(lines []string, max, width int) {
	style := lipgloss.NewStyle().Foreground(styles.CurrentPalette.Muted)
	for i, line := range lines {
		if i >= max {
			break
		}
		if len(line) > width {
			line = line[:width] + "..."
		}
		fmt.Fprintf(p.out, "%s %s\n", style.Render(fmt.Sprintf("%d:", i+1)), line)
	}
}
