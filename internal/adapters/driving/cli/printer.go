package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
)

// Ensure statusPrinter implements the interface.
var _ driven.StatusSink = (*statusPrinter)(nil)

// statusPrinter writes search status lines as they happen.
// In quiet mode only the rejected candidates are kept.
type statusPrinter struct {
	mu     sync.Mutex
	out    io.Writer
	styles *Styles
	quiet  bool
	tried  []string
}

func newStatusPrinter(out io.Writer, quiet bool) *statusPrinter {
	return &statusPrinter{
		out:    out,
		styles: stylesFor(out),
		quiet:  quiet,
	}
}

// Progress prints a rejected candidate.
func (p *statusPrinter) Progress(pr domain.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tried = append(p.tried, pr.Candidate)
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.styles.Muted.Render(pr.Message()))
}

// Complete prints the outcome message.
func (p *statusPrinter) Complete(o domain.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.styleFor(o.Kind).Render(o.Message()))
}

// Tried returns the rejected candidates in order, never nil.
func (p *statusPrinter) Tried() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(make([]string, 0, len(p.tried)), p.tried...)
}

func (p *statusPrinter) styleFor(kind domain.OutcomeKind) lipgloss.Style {
	switch kind {
	case domain.OutcomeFound:
		return p.styles.Success
	case domain.OutcomeExhausted, domain.OutcomeCancelled:
		return p.styles.Warning
	default:
		return p.styles.Error
	}
}
