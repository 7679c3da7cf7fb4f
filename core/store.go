package core

// AtomStore is the contract for a hypergraph knowledge store. A store owns
// its atoms exclusively: atoms have no identity outside the store that
// created them, and they live until the store is discarded (there is no
// per-atom deletion).
//
// All methods are total: invalid input yields InvalidHandle, a false ok
// flag or an empty result, never a panic. Implementations must be safe for
// concurrent use by multiple goroutines.
//
// Annotation accessors are store-mediated by handle rather than exposed on
// a shared atom pointer; every access re-validates the handle under the
// store's lock and read paths return owned snapshots.
type AtomStore interface {
	// AddNode creates (or finds) the node with the given type and name.
	// Two calls with equal (type, name) return the same handle. It returns
	// InvalidHandle if typ is not a node kind or name is empty.
	AddNode(typ AtomType, name string) Handle

	// AddLink creates (or finds) the link with the given type and ordered
	// outgoing targets. Element order is significant for identity. It
	// returns InvalidHandle, without mutating the store, if typ is not a
	// link kind, outgoing is empty, or any target is not present.
	AddLink(typ AtomType, outgoing []Handle) Handle

	// Atom returns a snapshot of the atom, or ok=false if the handle is
	// invalid or unknown.
	Atom(h Handle) (Atom, bool)

	// Atoms returns a snapshot of every stored atom. Order is unspecified.
	Atoms() []Atom

	// TruthValue reads the truth annotation of the atom.
	TruthValue(h Handle) (TruthValue, bool)

	// SetTruthValue writes the truth annotation, clamping both components
	// into [0,1]. It reports false for unknown handles.
	SetTruthValue(h Handle, tv TruthValue) bool

	// AttentionValue reads the attention annotation of the atom.
	AttentionValue(h Handle) (AttentionValue, bool)

	// SetAttentionValue writes the attention annotation unmodified.
	SetAttentionValue(h Handle, av AttentionValue) bool

	// Outgoing returns a copy of the link's target sequence, or nil for
	// nodes and unknown handles.
	Outgoing(h Handle) []Handle

	// PatternMatch collects up to max handles of atoms whose type equals
	// the type of the pattern atom, excluding the pattern itself. Matching
	// is type-equality only; names, structure and annotations are ignored.
	// Result order is unspecified. An unknown pattern yields no results.
	PatternMatch(pattern Handle, max int) []Handle

	// ForwardInference performs one-hop forward chaining: it collects the
	// conclusion (second target) of every ImplicationLink of arity two
	// whose premise (first target) equals the given handle, up to max. It
	// never chains through a conclusion.
	ForwardInference(premise Handle, max int) []Handle

	// ConsolidateMemory merges sufficiently similar atoms. The current
	// implementation is a declared extension point that performs no work
	// and reports true.
	ConsolidateMemory(similarityThreshold float32) bool

	// Size returns the total number of stored atoms.
	Size() int

	// NodeCount returns the number of stored node atoms.
	NodeCount() int

	// LinkCount returns the number of stored link atoms.
	LinkCount() int
}
