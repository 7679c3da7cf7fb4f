package core

// AtomType enumerates the closed set of atom kinds understood by the store.
// The first five are node kinds (named atoms), the rest are link kinds
// (atoms connecting other atoms). The enumeration is closed: AddNode and
// AddLink reject types from the wrong category.
type AtomType int

const (
	// Node is the generic named atom kind.
	Node AtomType = iota
	// ConceptNode names a concept ("Cat", "Animal").
	ConceptNode
	// PredicateNode names a property or relation ("HasFur").
	PredicateNode
	// NumberNode names a numeric literal.
	NumberNode
	// VariableNode names a placeholder for future variable binding.
	VariableNode
	// Link is the generic connective atom kind.
	Link
	// ListLink groups an ordered sequence of atoms.
	ListLink
	// EvaluationLink applies a predicate to a list of arguments.
	EvaluationLink
	// ImplicationLink states premise -> conclusion; the forward inference
	// scan only considers links of this type with exactly two targets.
	ImplicationLink
	// AndLink is a logical conjunction of its targets.
	AndLink
	// OrLink is a logical disjunction of its targets.
	OrLink
	// NotLink is a logical negation of its target.
	NotLink
	// SimilarityLink states a symmetric resemblance between targets.
	SimilarityLink
	// InheritanceLink states that the first target is a kind of the second.
	InheritanceLink
)

// IsNode reports whether the type belongs to the node category.
func (t AtomType) IsNode() bool {
	return t >= Node && t <= VariableNode
}

// IsLink reports whether the type belongs to the link category.
func (t AtomType) IsLink() bool {
	return t >= Link && t <= InheritanceLink
}

// String returns the canonical name of the atom type.
func (t AtomType) String() string {
	switch t {
	case Node:
		return "Node"
	case ConceptNode:
		return "ConceptNode"
	case PredicateNode:
		return "PredicateNode"
	case NumberNode:
		return "NumberNode"
	case VariableNode:
		return "VariableNode"
	case Link:
		return "Link"
	case ListLink:
		return "ListLink"
	case EvaluationLink:
		return "EvaluationLink"
	case ImplicationLink:
		return "ImplicationLink"
	case AndLink:
		return "AndLink"
	case OrLink:
		return "OrLink"
	case NotLink:
		return "NotLink"
	case SimilarityLink:
		return "SimilarityLink"
	case InheritanceLink:
		return "InheritanceLink"
	default:
		return "UnknownAtomType"
	}
}
