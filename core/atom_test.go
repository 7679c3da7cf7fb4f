package core

import "testing"

func TestTruthValueClamp(t *testing.T) {
	tv := TruthValue{Strength: 1.5, Confidence: -0.2}.Clamp()
	if tv.Strength != 1.0 || tv.Confidence != 0.0 {
		t.Fatalf("expected (1.0, 0.0), got (%v, %v)", tv.Strength, tv.Confidence)
	}
	in := TruthValue{Strength: 0.25, Confidence: 0.75}
	if out := in.Clamp(); out != in {
		t.Fatalf("in-range value changed by clamp: %+v", out)
	}
}

func TestDefaultAnnotations(t *testing.T) {
	a := NewAtom(1, ConceptNode)
	if a.TV != (TruthValue{Strength: 0.5, Confidence: 0.1}) {
		t.Fatalf("unexpected default truth value: %+v", a.TV)
	}
	if a.AV != (AttentionValue{}) {
		t.Fatalf("expected zero attention value, got %+v", a.AV)
	}
}

func TestAtomCloneIsolation(t *testing.T) {
	orig := NewAtom(7, ListLink)
	orig.Outgoing = []Handle{1, 2, 3}
	cp := orig.Clone()
	cp.Outgoing[0] = 99
	if orig.Outgoing[0] != 1 {
		t.Fatalf("clone shares outgoing storage with original")
	}
}

func TestHandleValid(t *testing.T) {
	if InvalidHandle.Valid() {
		t.Fatal("InvalidHandle must not be valid")
	}
	if !Handle(1).Valid() {
		t.Fatal("handle 1 must be valid")
	}
}
