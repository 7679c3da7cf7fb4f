// Package space contains concrete AtomStore implementations. The store
// contract and atom record types reside in the core package. Import
// github.com/hupe1980/cogmesh/core and depend on core.AtomStore in your
// code; select an implementation (like the in-memory store below) at
// wiring time.
package space

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/logging"
)

// Options configures an InMemoryStore.
type Options struct {
	// Logger receives store lifecycle and operation diagnostics.
	// Defaults to NoOpLogger.
	Logger logging.Logger
}

// InMemoryStore is a volatile AtomStore keeping all atoms in process-local
// maps guarded by a single RWMutex. Instances are fully independent: a
// handle issued by one store is meaningless to every other. Atoms returned
// to callers are cloned so external mutation can never corrupt internal
// state; annotation writes go back through the store, which re-validates
// the handle under the lock.
//
// Handle allocation is a monotonic bump counter starting at 1. Atoms are
// never deleted individually; discard the whole store instead.
type InMemoryStore struct {
	id     string
	logger logging.Logger

	mu         sync.RWMutex
	atoms      map[core.Handle]*core.Atom
	nameIndex  map[string][]core.Handle // node name -> candidate handles
	linkIndex  map[string]core.Handle   // link signature -> handle
	nextHandle core.Handle
}

// New constructs an empty in-memory atom store.
func New(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	s := &InMemoryStore{
		id:         uuid.NewString(),
		logger:     opts.Logger,
		atoms:      make(map[core.Handle]*core.Atom),
		nameIndex:  make(map[string][]core.Handle),
		linkIndex:  make(map[string]core.Handle),
		nextHandle: 1,
	}
	s.logger.Debug("atom store created", "space_id", s.id)
	return s
}

// ID returns the unique identifier of this store instance, used for log
// correlation only.
func (s *InMemoryStore) ID() string { return s.id }

// AddNode creates or finds the node with the given type and name. Node
// identity is (type, name): repeated calls return the same handle. It
// returns InvalidHandle if typ is not a node kind or name is empty.
func (s *InMemoryStore) AddNode(typ core.AtomType, name string) core.Handle {
	if !typ.IsNode() || name == "" {
		return core.InvalidHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.nameIndex[name] {
		if a, ok := s.atoms[h]; ok && a.Type == typ {
			return h
		}
	}

	h := s.allocateLocked()
	atom := core.NewAtom(h, typ)
	atom.Name = name
	s.atoms[h] = &atom
	s.nameIndex[name] = append(s.nameIndex[name], h)

	s.logger.Debug("node added", "space_id", s.id, "handle", uint64(h), "type", typ.String(), "name", name)
	return h
}

// AddLink creates or finds the link with the given type and ordered
// outgoing targets. Identity is (type, outgoing) with element order
// significant. It returns InvalidHandle, leaving the store unchanged, if
// typ is not a link kind, outgoing is empty, or any target does not exist
// in this store.
func (s *InMemoryStore) AddLink(typ core.AtomType, outgoing []core.Handle) core.Handle {
	if !typ.IsLink() || len(outgoing) == 0 {
		return core.InvalidHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, target := range outgoing {
		if _, ok := s.atoms[target]; !ok {
			return core.InvalidHandle
		}
	}

	sig := linkSignature(typ, outgoing)
	if h, ok := s.linkIndex[sig]; ok {
		return h
	}

	h := s.allocateLocked()
	atom := core.NewAtom(h, typ)
	atom.Outgoing = make([]core.Handle, len(outgoing))
	copy(atom.Outgoing, outgoing)
	s.atoms[h] = &atom
	s.linkIndex[sig] = h

	s.logger.Debug("link added", "space_id", s.id, "handle", uint64(h), "type", typ.String(), "arity", len(outgoing))
	return h
}

// allocateLocked issues the next handle; caller must hold the write lock.
func (s *InMemoryStore) allocateLocked() core.Handle {
	h := s.nextHandle
	s.nextHandle++
	return h
}

// linkSignature serializes link identity as "type:h1,h2,...".
func linkSignature(typ core.AtomType, outgoing []core.Handle) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(typ)))
	sb.WriteByte(':')
	for i, h := range outgoing {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(h), 10))
	}
	return sb.String()
}

// Atom returns a snapshot of the stored atom, or ok=false if the handle is
// invalid or unknown.
func (s *InMemoryStore) Atom(h core.Handle) (core.Atom, bool) {
	if !h.Valid() {
		return core.Atom{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[h]
	if !ok {
		return core.Atom{}, false
	}
	return a.Clone(), true
}

// Atoms returns a snapshot of every stored atom in unspecified order.
func (s *InMemoryStore) Atoms() []core.Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Atom, 0, len(s.atoms))
	for _, a := range s.atoms {
		out = append(out, a.Clone())
	}
	return out
}

// TruthValue reads the truth annotation of the atom.
func (s *InMemoryStore) TruthValue(h core.Handle) (core.TruthValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[h]
	if !ok {
		return core.TruthValue{}, false
	}
	return a.TV, true
}

// SetTruthValue writes the truth annotation, clamping both components into
// [0,1]. It reports false for unknown handles.
func (s *InMemoryStore) SetTruthValue(h core.Handle, tv core.TruthValue) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.atoms[h]
	if !ok {
		return false
	}
	a.TV = tv.Clamp()
	return true
}

// AttentionValue reads the attention annotation of the atom.
func (s *InMemoryStore) AttentionValue(h core.Handle) (core.AttentionValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[h]
	if !ok {
		return core.AttentionValue{}, false
	}
	return a.AV, true
}

// SetAttentionValue writes the attention annotation unmodified. Unlike
// truth values, attention components are unconstrained.
func (s *InMemoryStore) SetAttentionValue(h core.Handle, av core.AttentionValue) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.atoms[h]
	if !ok {
		return false
	}
	a.AV = av
	return true
}

// Outgoing returns a copy of the link's target sequence, or nil for nodes
// and unknown handles.
func (s *InMemoryStore) Outgoing(h core.Handle) []core.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[h]
	if !ok || !a.Type.IsLink() {
		return nil
	}
	out := make([]core.Handle, len(a.Outgoing))
	copy(out, a.Outgoing)
	return out
}

// PatternMatch collects up to max handles of atoms with the same type as
// the pattern atom, excluding the pattern itself. Matching is
// type-equality only and result order is unspecified.
func (s *InMemoryStore) PatternMatch(pattern core.Handle, max int) []core.Handle {
	if !pattern.Valid() || max <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.atoms[pattern]
	if !ok {
		return nil
	}
	var results []core.Handle
	for h, a := range s.atoms {
		if len(results) >= max {
			break
		}
		if a.Type == p.Type && h != pattern {
			results = append(results, h)
		}
	}
	return results
}

// ForwardInference performs one-hop forward chaining: for every
// ImplicationLink of arity two whose first target equals premise, the
// second target is collected, up to max conclusions. Conclusions are never
// chained through; zero conclusions is a successful outcome.
func (s *InMemoryStore) ForwardInference(premise core.Handle, max int) []core.Handle {
	if !premise.Valid() || max <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var conclusions []core.Handle
	for _, a := range s.atoms {
		if len(conclusions) >= max {
			break
		}
		if a.Type == core.ImplicationLink && len(a.Outgoing) == 2 && a.Outgoing[0] == premise {
			conclusions = append(conclusions, a.Outgoing[1])
		}
	}
	return conclusions
}

// ConsolidateMemory is a declared extension point for merging similar
// atoms. It currently performs no work and reports true.
//
// TODO: define the merge policy (similarity metric over truth/attention
// values, canonical atom selection, rewriting links that reference a
// merged-away atom) before implementing.
func (s *InMemoryStore) ConsolidateMemory(similarityThreshold float32) bool {
	s.logger.Debug("memory consolidation requested", "space_id", s.id, "threshold", similarityThreshold)
	return true
}

// Size returns the total number of stored atoms.
func (s *InMemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.atoms)
}

// NodeCount returns the number of stored node atoms.
func (s *InMemoryStore) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, a := range s.atoms {
		if a.Type.IsNode() {
			count++
		}
	}
	return count
}

// LinkCount returns the number of stored link atoms.
func (s *InMemoryStore) LinkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, a := range s.atoms {
		if a.Type.IsLink() {
			count++
		}
	}
	return count
}
