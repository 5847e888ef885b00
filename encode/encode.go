package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/ir"
)

type EncState struct {
	indent   int
	maxDepth int
	totals   bool

	Color func(fstree.Kind, ColorAttr, string) string
}

// Encode writes m to w, one entry per line in path order.
func Encode(m *fstree.Model, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		totals: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	// ContainerTotals and Walk share the model's path order, so the
	// totals are consumed in step with the containers.
	var totals []fstree.Sized
	if es.totals {
		totals = m.ContainerTotals()
	}
	var (
		err error
		ci  int
	)
	buf := &strings.Builder{}
	m.Walk(func(e fstree.Entry, depth int) bool {
		size, sized := e.Size, e.Kind == fstree.Leaf
		if e.Kind == fstree.Container && totals != nil {
			size, sized = totals[ci].Total, true
			ci++
		}
		if es.maxDepth > 0 && depth > es.maxDepth {
			return true
		}
		buf.Reset()
		es.line(buf, e, depth, size, sized)
		_, err = io.WriteString(w, buf.String())
		return err == nil
	})
	return err
}

func (es *EncState) line(buf *strings.Builder, e fstree.Entry, depth int, size uint64, sized bool) {
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
	buf.WriteString(es.color(e.Kind, SepColor, "- "))
	name := ir.RootName
	if !e.Path.IsRoot() {
		name = e.Path.Last()
	}
	buf.WriteString(es.color(e.Kind, NameColor, name))
	buf.WriteString(es.color(e.Kind, SepColor, " ("))
	buf.WriteString(es.color(e.Kind, KindColor, e.Kind.String()))
	if sized {
		buf.WriteString(es.color(e.Kind, SepColor, ", "))
		buf.WriteString(es.color(e.Kind, SizeColor, "size="+strconv.FormatUint(size, 10)))
	}
	buf.WriteString(es.color(e.Kind, SepColor, ")"))
	buf.WriteByte('\n')
}

func (es *EncState) color(k fstree.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}
