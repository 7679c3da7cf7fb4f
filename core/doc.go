// Package core defines the domain contracts for CogMesh: atom records,
// handles, truth/attention annotations and the AtomStore interface.
// Implementations live in sibling packages (the in-memory store in space,
// the model-state codec in bridge). Import core and depend on core.AtomStore
// in your code; select an implementation at wiring time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends to be added without introducing dependency cycles.
package core
