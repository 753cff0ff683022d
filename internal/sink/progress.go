package sink

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Progress is the live table printed while a run is going
type Progress struct {
	out   io.Writer
	found *color.Color
}

// NewProgress writes to out, coloring funded lines when colored is set
func NewProgress(out io.Writer, colored bool) *Progress {
	found := color.New(color.FgHiGreen)
	if colored {
		found.EnableColor()
	} else {
		found.DisableColor()
	}
	return &Progress{out: out, found: found}
}

func (p *Progress) Header() {
	fmt.Fprint(p.out, Header())
}

func (p *Progress) Found(line string) {
	p.found.Fprintln(p.out, "[FOUND] "+line)
}

func (p *Progress) Zero(line string) {
	fmt.Fprintln(p.out, "[ZERO]  "+line)
}

func (p *Progress) Failed(line string) {
	fmt.Fprintln(p.out, line)
}

func (p *Progress) Summary(summary string) {
	fmt.Fprintln(p.out, Separator())
	fmt.Fprint(p.out, summary)
}

// Printf writes a free-form status line
func (p *Progress) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
