// Package cogmesh provides a high-level façade over the atom store and its
// service abstractions (state bridge, knowledge extraction & logging)
// enabling rapid construction of cognitive knowledge bases. Most
// applications interact with this package by:
//  1. Creating a CogMesh via New() (optionally overriding the default
//     in-memory store, the logger or the language model)
//  2. Populating it with concepts and links (AddConcept, Inherits, Implies,
//     Evaluate) or through the model paths (EncodeState, ExtractKnowledge)
//  3. Querying it (Match, Infer, Stats) and reading state back (DecodeState)
//
// The façade delegates storage to a core.AtomStore while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger and
// a real model adapter.
package cogmesh

import (
	"context"

	"github.com/hupe1980/cogmesh/bridge"
	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/extract"
	"github.com/hupe1980/cogmesh/logging"
	"github.com/hupe1980/cogmesh/model"
	"github.com/hupe1980/cogmesh/space"
)

// Options configures the CogMesh instance.
type Options struct {
	// Store holds the atoms (defaults to a fresh in-memory store).
	Store core.AtomStore
	// Model is the language model used by ExtractKnowledge. Optional: the
	// store and state bridge work without one.
	Model model.Model
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Stats is a point-in-time census of the store.
type Stats struct {
	Atoms int
	Nodes int
	Links int
}

// CogMesh is the high-level façade aggregating the store and its services.
type CogMesh struct {
	opts      Options
	store     core.AtomStore
	codec     *bridge.Codec
	extractor *extract.Extractor
}

// New creates a new CogMesh instance with optional overrides. An unset
// store is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *CogMesh {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Store == nil {
		opts.Store = space.New(func(o *space.Options) { o.Logger = opts.Logger })
	}

	m := &CogMesh{
		opts:  opts,
		store: opts.Store,
		codec: bridge.NewCodec(opts.Store, func(o *bridge.Options) { o.Logger = opts.Logger }),
	}
	if opts.Model != nil {
		m.extractor = extract.New(opts.Model, opts.Store, func(o *extract.Options) { o.Logger = opts.Logger })
	}
	return m
}

// Store exposes the underlying atom store for direct access.
func (m *CogMesh) Store() core.AtomStore { return m.store }

// AddConcept creates (or finds) a concept node.
func (m *CogMesh) AddConcept(name string) core.Handle {
	return m.store.AddNode(core.ConceptNode, name)
}

// AddPredicate creates (or finds) a predicate node.
func (m *CogMesh) AddPredicate(name string) core.Handle {
	return m.store.AddNode(core.PredicateNode, name)
}

// Inherits asserts that child is a kind of parent.
func (m *CogMesh) Inherits(child, parent core.Handle) core.Handle {
	return m.store.AddLink(core.InheritanceLink, []core.Handle{child, parent})
}

// Implies asserts a premise -> conclusion rule usable by Infer.
func (m *CogMesh) Implies(premise, conclusion core.Handle) core.Handle {
	return m.store.AddLink(core.ImplicationLink, []core.Handle{premise, conclusion})
}

// Evaluate applies a predicate to the given arguments: the arguments are
// grouped into a ListLink which is then paired with the predicate in an
// EvaluationLink. The evaluation handle is returned.
func (m *CogMesh) Evaluate(predicate core.Handle, args ...core.Handle) core.Handle {
	list := m.store.AddLink(core.ListLink, args)
	if !list.Valid() {
		return core.InvalidHandle
	}
	return m.store.AddLink(core.EvaluationLink, []core.Handle{predicate, list})
}

// Match returns up to max atoms of the same type as the pattern atom.
func (m *CogMesh) Match(pattern core.Handle, max int) []core.Handle {
	return m.store.PatternMatch(pattern, max)
}

// Infer returns up to max one-hop conclusions implied by the premise.
func (m *CogMesh) Infer(premise core.Handle, max int) []core.Handle {
	return m.store.ForwardInference(premise, max)
}

// EncodeState projects a model state vector into concept nodes.
func (m *CogMesh) EncodeState(state []float32) error {
	return m.codec.Encode(state)
}

// DecodeState reconstructs a state vector of length n from concept nodes.
func (m *CogMesh) DecodeState(n int) ([]float32, error) {
	out := make([]float32, n)
	if err := m.codec.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractKnowledge asks the configured model to describe the text as a
// knowledge graph and asserts it into the store. It returns
// extract.ErrNoModel when no model was configured.
func (m *CogMesh) ExtractKnowledge(ctx context.Context, text string) (extract.Result, error) {
	if m.extractor == nil {
		return extract.Result{}, extract.ErrNoModel
	}
	return m.extractor.Extract(ctx, text)
}

// Consolidate triggers memory consolidation on the store.
func (m *CogMesh) Consolidate(similarityThreshold float32) bool {
	return m.store.ConsolidateMemory(similarityThreshold)
}

// Stats returns the current atom census.
func (m *CogMesh) Stats() Stats {
	return Stats{
		Atoms: m.store.Size(),
		Nodes: m.store.NodeCount(),
		Links: m.store.LinkCount(),
	}
}
