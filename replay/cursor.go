package replay

import (
	"github.com/signadot/advent/ir"
	"github.com/signadot/advent/ir/fpath"
)

// Cursor is the current container during replay.
type Cursor struct {
	path fpath.Path
}

func (c *Cursor) Path() fpath.Path {
	return c.path
}

// Move applies a ChangeLocation target.  It returns ir.ErrNavigation
// when asked to ascend from the root.
func (c *Cursor) Move(in ir.Instruction) error {
	switch in.Target() {
	case ir.TargetRoot:
		c.path = fpath.Root()
	case ir.TargetParent:
		if c.path.IsRoot() {
			return ir.ErrNavigation
		}
		c.path = c.path.Parent()
	default:
		c.path = c.path.Append(in.Name)
	}
	return nil
}
