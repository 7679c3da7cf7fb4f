package testutil

import (
	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/space"
)

// SpaceBuilder seeds an in-memory atom store with fluent chaining for tests.
// Example:
//
//	store := NewSpaceBuilder().
//		Concepts("Cat", "Animal").
//		Inherits("Cat", "Animal").
//		Implies("Rain", "WetGround").
//		Build()
type SpaceBuilder struct {
	store *space.InMemoryStore
}

// NewSpaceBuilder creates a builder around a fresh store. Use chainable
// methods then call Build.
func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{store: space.New()}
}

// Concepts adds concept nodes by name (chainable).
func (b *SpaceBuilder) Concepts(names ...string) *SpaceBuilder {
	for _, n := range names {
		b.store.AddNode(core.ConceptNode, n)
	}
	return b
}

// Predicates adds predicate nodes by name (chainable).
func (b *SpaceBuilder) Predicates(names ...string) *SpaceBuilder {
	for _, n := range names {
		b.store.AddNode(core.PredicateNode, n)
	}
	return b
}

// Inherits asserts child->parent inheritance between concepts, creating the
// nodes as needed (chainable).
func (b *SpaceBuilder) Inherits(child, parent string) *SpaceBuilder {
	c := b.store.AddNode(core.ConceptNode, child)
	p := b.store.AddNode(core.ConceptNode, parent)
	b.store.AddLink(core.InheritanceLink, []core.Handle{c, p})
	return b
}

// Implies asserts premise->conclusion implication between concepts, creating
// the nodes as needed (chainable).
func (b *SpaceBuilder) Implies(premise, conclusion string) *SpaceBuilder {
	p := b.store.AddNode(core.ConceptNode, premise)
	c := b.store.AddNode(core.ConceptNode, conclusion)
	b.store.AddLink(core.ImplicationLink, []core.Handle{p, c})
	return b
}

// Truth sets the truth value of the named concept (chainable).
func (b *SpaceBuilder) Truth(name string, strength, confidence float32) *SpaceBuilder {
	h := b.store.AddNode(core.ConceptNode, name)
	b.store.SetTruthValue(h, core.TruthValue{Strength: strength, Confidence: confidence})
	return b
}

// Build returns the seeded store.
func (b *SpaceBuilder) Build() *space.InMemoryStore {
	return b.store
}
