package spline

import "fmt"

// HandleMode describes how the two handles of a control point are coupled.
type HandleMode uint8

const (
	// Free handles move independently of each other.
	Free HandleMode = iota
	// Aligned handles stay on a line through the anchor, on opposite sides,
	// but keep their own distances from it.
	Aligned
	// Mirrored handles are point reflections of each other through the
	// anchor.
	Mirrored
)

func (m HandleMode) String() string {
	switch m {
	case Free:
		return "Free"
	case Aligned:
		return "Aligned"
	case Mirrored:
		return "Mirrored"
	default:
		return fmt.Sprintf("HandleMode(%d)", uint8(m))
	}
}

// Handle selects one of the three vectors of a [ControlPoint].
type Handle uint8

const (
	Anchor Handle = iota
	HandleIn
	HandleOut
)

func (h Handle) String() string {
	switch h {
	case Anchor:
		return "Anchor"
	case HandleIn:
		return "HandleIn"
	case HandleOut:
		return "HandleOut"
	default:
		return fmt.Sprintf("Handle(%d)", uint8(h))
	}
}

// ControlPoint is an anchor on the path together with its two handles.
// HandleIn shapes the segment arriving at the anchor, HandleOut the segment
// leaving it. Handles are absolute positions, not offsets from the anchor.
type ControlPoint[V Vector[V]] struct {
	HandleIn  V
	Anchor    V
	HandleOut V
	Mode      HandleMode
}

// Get returns the vector selected by h. Unknown selectors return the anchor.
func (cp ControlPoint[V]) Get(h Handle) V {
	switch h {
	case HandleIn:
		return cp.HandleIn
	case HandleOut:
		return cp.HandleOut
	default:
		return cp.Anchor
	}
}

// Clone returns a deep copy of the control point.
func (cp ControlPoint[V]) Clone() ControlPoint[V] {
	return ControlPoint[V]{
		HandleIn:  cp.HandleIn.Clone(),
		Anchor:    cp.Anchor.Clone(),
		HandleOut: cp.HandleOut.Clone(),
		Mode:      cp.Mode,
	}
}

// moveAnchor moves the anchor to v and translates both handles along with it.
func (cp *ControlPoint[V]) moveAnchor(v V) {
	delta := v.Sub(cp.Anchor)
	cp.Anchor = v.Clone()
	cp.HandleIn = cp.HandleIn.Add(delta)
	cp.HandleOut = cp.HandleOut.Add(delta)
}

// align enforces the point's mode on the handle opposite to moved. Moving the
// anchor uses HandleIn as the reference.
func (cp *ControlPoint[V]) align(moved Handle) {
	if cp.Mode == Free {
		return
	}
	fixed, enforced := cp.HandleIn, cp.HandleOut
	if moved == HandleOut {
		fixed, enforced = cp.HandleOut, cp.HandleIn
	}

	offset := fixed.Sub(cp.Anchor)
	switch cp.Mode {
	case Aligned:
		if offset.Hypot() == 0 {
			// the reference handle sits on the anchor and has no direction
			return
		}
		dist := enforced.Sub(cp.Anchor).Hypot()
		enforced = cp.Anchor.Sub(offset.Normalize().Mul(dist))
	case Mirrored:
		enforced = cp.Anchor.Sub(offset)
	default:
		return
	}

	if moved == HandleOut {
		cp.HandleIn = enforced
	} else {
		cp.HandleOut = enforced
	}
}
