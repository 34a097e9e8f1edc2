package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/sumtree"
	"github.com/npillmayer/sumtree/dense"
	"golang.org/x/term"
)

// Option configures a renderer.
type Option func(*printer)

type printer struct {
	label    string
	colorize bool
	colorSet bool
}

// WithLabel sets the header label; the default is the subject's package
// name.
func WithLabel(label string) Option {
	return func(p *printer) {
		p.label = label
	}
}

// WithColor forces colored or plain output. Without this option color
// is enabled only when the writer is an interactive terminal.
func WithColor(on bool) Option {
	return func(p *printer) {
		p.colorize = on
		p.colorSet = true
	}
}

var (
	headerColor = color.New(color.FgCyan)
	indexColor  = color.New(color.FgBlue)
)

func newPrinter(w io.Writer, label string, opts []Option) *printer {
	p := &printer{label: label}
	for _, opt := range opts {
		opt(p)
	}
	if !p.colorSet {
		if f, ok := w.(*os.File); ok {
			p.colorize = term.IsTerminal(int(f.Fd()))
		}
	}
	return p
}

func (p *printer) header(w io.Writer, format string, args ...interface{}) error {
	if p.colorize {
		_, err := headerColor.Fprintf(w, format, args...)
		return err
	}
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func (p *printer) entry(w io.Writer, index int, value interface{}) error {
	if p.colorize {
		if _, err := indexColor.Fprintf(w, "%4d:", index); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, " %v\n", value)
		return err
	}
	_, err := fmt.Fprintf(w, "%4d: %v\n", index, value)
	return err
}

// Tree writes the logical contents of a sum tree to w, one position per
// line, preceded by a header with length, capacity and the full-range
// aggregate.
func Tree[T any](w io.Writer, t *sumtree.Tree[T], opts ...Option) error {
	p := newPrinter(w, "sumtree", opts)
	if t.Len() == 0 {
		return p.header(w, "%s: len=0 cap=%d\n", p.label, t.Cap())
	}
	total, err := t.QueryRange(0, t.Len()-1)
	if err != nil {
		return err
	}
	if err := p.header(w, "%s: len=%d cap=%d total=%v\n", p.label, t.Len(), t.Cap(), total); err != nil {
		return err
	}
	return t.Each(func(i int, v T) error {
		return p.entry(w, i, v)
	})
}

// View writes the dense logical view to w, one surviving element per
// line, preceded by a header with the alive count, the remaining
// structural capacity and the full-range aggregate.
func View[T any](w io.Writer, v *dense.View[T], opts ...Option) error {
	p := newPrinter(w, "dense view", opts)
	if v.Len() == 0 {
		return p.header(w, "%s: len=0 cap=%d\n", p.label, v.Cap())
	}
	total, err := v.QueryRange(0, v.Len()-1)
	if err != nil {
		return err
	}
	if err := p.header(w, "%s: len=%d cap=%d total=%v\n", p.label, v.Len(), v.Cap(), total); err != nil {
		return err
	}
	return v.Each(func(i int, value T) error {
		return p.entry(w, i, value)
	})
}
