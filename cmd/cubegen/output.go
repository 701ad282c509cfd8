package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/cognicore/cubegen/pkg/cubegen"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// printer writes results as JSON, preceded by a color swatch per object when
// the output is a color terminal.
type printer struct {
	w      io.Writer
	term   *termenv.Output
	swatch bool
}

func newPrinter(w io.Writer, color bool) *printer {
	out := termenv.NewOutput(w)
	if f, ok := w.(*os.File); !ok || f == nil {
		color = false
	}
	return &printer{
		w:      w,
		term:   out,
		swatch: color && out.Profile != termenv.Ascii,
	}
}

func (p *printer) result(res cube.Result) error {
	if res.Object != nil {
		p.line(*res.Object, "")
	}
	return p.json(res)
}

func (p *printer) group(res cubegen.GroupResult) error {
	for i, obj := range res.Objects {
		p.line(obj, fmt.Sprintf("%v", res.Positions[i]))
	}
	return p.json(res)
}

func (p *printer) composite(res cubegen.CompositeResult) error {
	for i, obj := range res.Objects {
		p.line(obj, fmt.Sprintf("%v", res.Positions[i]))
	}
	for _, obj := range res.Variations {
		p.line(obj, "variation")
	}
	return p.json(res)
}

func (p *printer) line(obj cube.Object, label string) {
	if !p.swatch {
		return
	}
	hex := obj.Base.Color.Hex()
	block := p.term.String("      ").Background(p.term.Color(hex))
	fmt.Fprintf(p.w, "%s %s %-24s %s\n", block, hex, obj.Meta.Name, label)
}

func (p *printer) json(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
