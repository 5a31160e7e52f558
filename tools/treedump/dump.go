// Package treedump renders trees as indented text, with optional color
// on terminals, and diffs two renderings. It exists for debugging
// passes: dump the tree before and after a transform and eyeball the
// difference.
package treedump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/verdantlang/treewalk/walk"
)

var (
	kindColor = color.New(color.FgCyan, color.Bold)
	nameColor = color.New(color.FgGreen)
	leafColor = color.New(color.FgYellow)
)

// Dump renders the tree rooted at root as plain indented text. Equal
// trees dump identically, so the output is safe to compare or to use as
// a golden fixture.
func Dump[N any](shape walk.Shape[N], root N) string {
	var sb strings.Builder
	p := &Printer[N]{shape: shape, w: &sb}
	p.Print(root)
	return sb.String()
}

// Printer writes tree dumps to a fixed writer. Color is enabled
// automatically when the writer is a terminal.
type Printer[N any] struct {
	shape walk.Shape[N]
	w     io.Writer
	color bool
}

// NewPrinter returns a printer writing to w.
func NewPrinter[N any](shape walk.Shape[N], w io.Writer) *Printer[N] {
	p := &Printer[N]{shape: shape, w: w}
	if f, ok := w.(*os.File); ok {
		p.color = isatty.IsTerminal(f.Fd())
	}
	return p
}

// Color forces color on or off, overriding terminal detection.
func (p *Printer[N]) Color(on bool) {
	p.color = on
}

// Print writes the dump of the tree rooted at root.
func (p *Printer[N]) Print(root N) {
	p.node(root, 0)
}

func (p *Printer[N]) node(n N, depth int) {
	fmt.Fprintf(p.w, "%s%s\n", indent(depth), p.paint(kindColor, p.shape.Kind(n)))
	for name, value := range p.shape.Fields(n) {
		p.slot(name, value, depth+1)
	}
}

func (p *Printer[N]) slot(name string, value any, depth int) {
	label := p.paint(nameColor, name)
	if list, ok := p.shape.List(value); ok {
		fmt.Fprintf(p.w, "%s%s: [%d]\n", indent(depth), label, len(list))
		for _, el := range list {
			if c, ok := p.shape.Node(el); ok {
				p.node(c, depth+1)
			} else {
				fmt.Fprintf(p.w, "%s%s\n", indent(depth+1), p.leaf(el))
			}
		}
		return
	}
	if c, ok := p.shape.Node(value); ok {
		fmt.Fprintf(p.w, "%s%s:\n", indent(depth), label)
		p.node(c, depth+1)
		return
	}
	fmt.Fprintf(p.w, "%s%s: %s\n", indent(depth), label, p.leaf(value))
}

func (p *Printer[N]) leaf(v any) string {
	return p.paint(leafColor, fmt.Sprintf("%v", v))
}

func (p *Printer[N]) paint(c *color.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
