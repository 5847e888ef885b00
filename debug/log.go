package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/advent/encode"
	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr.  Models, instruction slices and
// generic JSON-like values are rendered in a readable multi-line form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *fstree.Model:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *fstree.Model] %v", x)
				continue
			}
			args[i] = buf.String()
		case []ir.Instruction:
			lines := make([]string, len(x))
			for j := range x {
				lines[j] = x[j].String()
			}
			args[i] = strings.Join(lines, "; ")
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v to stderr as indented JSON, or with %v if v cannot be
// marshalled.
func LogAny(v any) {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
