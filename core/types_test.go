package core

import "testing"

func TestTypeCategories(t *testing.T) {
	nodes := []AtomType{Node, ConceptNode, PredicateNode, NumberNode, VariableNode}
	links := []AtomType{Link, ListLink, EvaluationLink, ImplicationLink, AndLink, OrLink, NotLink, SimilarityLink, InheritanceLink}
	for _, typ := range nodes {
		if !typ.IsNode() || typ.IsLink() {
			t.Errorf("%s misclassified: IsNode=%v IsLink=%v", typ, typ.IsNode(), typ.IsLink())
		}
	}
	for _, typ := range links {
		if !typ.IsLink() || typ.IsNode() {
			t.Errorf("%s misclassified: IsNode=%v IsLink=%v", typ, typ.IsNode(), typ.IsLink())
		}
	}
}

func TestTypeString(t *testing.T) {
	if ImplicationLink.String() != "ImplicationLink" {
		t.Fatalf("unexpected name: %s", ImplicationLink)
	}
	if AtomType(99).String() != "UnknownAtomType" {
		t.Fatalf("out-of-range type should stringify as unknown")
	}
}
