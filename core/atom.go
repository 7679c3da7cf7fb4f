package core

// Handle uniquely identifies an atom within a single store instance.
// Handles are allocated monotonically starting at 1 and never recycled;
// a handle carries no meaning across store instances.
type Handle uint64

// InvalidHandle is the reserved "no atom" sentinel. Operations that reject
// their input (wrong type category, empty name, dangling reference) return
// it instead of an error value.
const InvalidHandle Handle = 0

// Valid reports whether the handle could refer to an atom.
func (h Handle) Valid() bool { return h != InvalidHandle }

// TruthValue expresses uncertain belief in an atom as a (strength,
// confidence) pair. Both components live in [0,1]; stores clamp them on
// every write.
type TruthValue struct {
	Strength   float32 `json:"strength"`
	Confidence float32 `json:"confidence"`
}

// DefaultTruthValue is the annotation assigned to freshly created atoms.
func DefaultTruthValue() TruthValue {
	return TruthValue{Strength: 0.5, Confidence: 0.1}
}

// Clamp returns the truth value with both components forced into [0,1].
func (tv TruthValue) Clamp() TruthValue {
	return TruthValue{
		Strength:   clamp01(tv.Strength),
		Confidence: clamp01(tv.Confidence),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AttentionValue expresses short/long/very-long-term cognitive salience.
// Unlike TruthValue its components are unconstrained.
type AttentionValue struct {
	STI  float32 `json:"sti"`
	LTI  float32 `json:"lti"`
	VLTI float32 `json:"vlti"`
}

// Atom is the unit of storage: a typed record that is either a node
// (carries a name) or a link (carries an ordered sequence of handles to
// other atoms in the same store), annotated with truth and attention
// values. Values handed out by stores are owned snapshots obtained via
// Clone; mutating them never affects stored state.
type Atom struct {
	Handle   Handle         `json:"handle"`
	Type     AtomType       `json:"type"`
	Name     string         `json:"name,omitempty"`     // nodes only
	Outgoing []Handle       `json:"outgoing,omitempty"` // links only
	TV       TruthValue     `json:"tv"`
	AV       AttentionValue `json:"av"`
}

// NewAtom constructs an atom with default annotations.
func NewAtom(h Handle, t AtomType) Atom {
	return Atom{Handle: h, Type: t, TV: DefaultTruthValue()}
}

// IsNode reports whether the atom is a named node.
func (a Atom) IsNode() bool { return a.Type.IsNode() }

// IsLink reports whether the atom connects other atoms.
func (a Atom) IsLink() bool { return a.Type.IsLink() }

// Arity returns the number of outgoing targets (zero for nodes).
func (a Atom) Arity() int { return len(a.Outgoing) }

// Clone returns a deep copy; the outgoing slice is duplicated so the copy
// shares no state with the original.
func (a Atom) Clone() Atom {
	cp := a
	if a.Outgoing != nil {
		cp.Outgoing = make([]Handle, len(a.Outgoing))
		copy(cp.Outgoing, a.Outgoing)
	}
	return cp
}
