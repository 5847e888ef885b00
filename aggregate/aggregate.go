package aggregate

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/signadot/advent/debug"
	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/ir"
	"github.com/signadot/advent/ir/fpath"
)

const (
	DefaultThreshold uint64 = 100000
	DefaultCapacity  uint64 = 70000000
	DefaultRequired  uint64 = 30000000
)

// UnsatisfiableError reports that no container is large enough to free
// the needed space.
type UnsatisfiableError struct {
	Needed  uint64
	Largest uint64 // largest container total, the root's
}

func (e *UnsatisfiableError) Unwrap() error {
	return ir.ErrUnsatisfiable
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("%s: need %d, largest container is %d", ir.ErrUnsatisfiable, e.Needed, e.Largest)
}

// TotalUnderThreshold sums the totals of all containers whose total is
// at most threshold.  Nested qualifying containers are each counted.
// The sum saturates at math.MaxUint64.
func TotalUnderThreshold(m *fstree.Model, threshold uint64) uint64 {
	var (
		sum   uint64
		under []string
	)
	for _, s := range m.ContainerTotals() {
		if s.Total <= threshold {
			sum = fstree.AddSizes(sum, s.Total)
			under = append(under, s.Path.String())
		}
	}
	if debug.Aggregate() {
		debug.Logf("total of containers <= %d: %d\n", threshold, sum)
		debug.LogAny(under)
	}
	return sum
}

// MinimumSufficient returns the smallest container total which, if
// freed, leaves at least required of capacity unused.
func MinimumSufficient(m *fstree.Model, capacity, required uint64) (uint64, error) {
	used := m.Total(fpath.Root())
	needed := Needed(used, capacity, required)
	best, found := uint64(0), false
	var largest uint64
	for _, s := range m.ContainerTotals() {
		largest = max(largest, s.Total)
		if s.Total < needed {
			continue
		}
		if !found || s.Total < best {
			best, found = s.Total, true
		}
	}
	if debug.Aggregate() {
		debug.Logf("used %d of %d, need %d freed: best=%d found=%t\n", used, capacity, needed, best, found)
	}
	if !found {
		return 0, &UnsatisfiableError{Needed: needed, Largest: largest}
	}
	return best, nil
}

// Needed is how much must be freed so that at least required of capacity
// is unused when used is in use.  It is 0 when enough is already free
// and math.MaxUint64 when the amount does not fit in a uint64.
func Needed(used, capacity, required uint64) uint64 {
	if capacity >= required {
		slack := capacity - required
		if used > slack {
			return used - slack
		}
		return 0
	}
	res, carry := bits.Add64(used, required-capacity, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return res
}
