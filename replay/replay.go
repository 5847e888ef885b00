package replay

import (
	"errors"
	"fmt"

	"github.com/signadot/advent/debug"
	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/ir"
)

// NavigationError reports an attempt to ascend above the root.
type NavigationError struct {
	Index       int // index of the offending instruction
	Instruction ir.Instruction
}

func (e *NavigationError) Unwrap() error {
	return ir.ErrNavigation
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("instruction %d %q: %s", e.Index, e.Instruction, ir.ErrNavigation)
}

type replayOpts struct {
	model *fstree.Model
}

type ReplayOption func(*replayOpts)

// Into replays into m rather than into a new model.  On error m may
// hold the effects of the instructions before the failing one.
func Into(m *fstree.Model) ReplayOption {
	return func(o *replayOpts) { o.model = m }
}

// Replay applies instrs in order to a model whose cursor starts at the
// root.  If an instruction fails, replay stops and no model is
// returned.
func Replay(instrs []ir.Instruction, opts ...ReplayOption) (*fstree.Model, error) {
	rOpts := &replayOpts{}
	for _, opt := range opts {
		opt(rOpts)
	}
	m := rOpts.model
	if m == nil {
		m = fstree.New()
	}
	cur := &Cursor{}
	for i, in := range instrs {
		if err := step(m, cur, in); err != nil {
			if errors.Is(err, ir.ErrNavigation) {
				return nil, &NavigationError{Index: i, Instruction: in}
			}
			return nil, fmt.Errorf("instruction %d %q: %w", i, in, err)
		}
	}
	if debug.Replay() {
		debug.Logf("replayed %d instructions, cursor at %s:\n%v\n", len(instrs), cur.Path(), m)
	}
	return m, nil
}

func step(m *fstree.Model, cur *Cursor, in ir.Instruction) error {
	switch in.Kind {
	case ir.ChangeLocation:
		if err := cur.Move(in); err != nil {
			return err
		}
		if in.Target() == ir.TargetChild {
			m.EnsureContainer(cur.Path())
		}
	case ir.ListMarker:
	case ir.DeclareChild:
		m.EnsureContainer(cur.Path().Append(in.Name))
	case ir.DeclareEntry:
		return m.RecordLeaf(cur.Path().Append(in.Name), in.Size)
	default:
		return fmt.Errorf("unknown instruction kind %s", in.Kind)
	}
	return nil
}
