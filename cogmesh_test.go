package cogmesh

import (
	"context"
	"testing"

	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/extract"
	"github.com/hupe1980/cogmesh/internal/testutil"
	"github.com/hupe1980/cogmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCogMesh_KnowledgeBaseRoundTrip(t *testing.T) {
	mesh := New()

	cat := mesh.AddConcept("Cat")
	animal := mesh.AddConcept("Animal")
	mammal := mesh.AddConcept("Mammal")
	hasFur := mesh.AddPredicate("HasFur")
	require.True(t, cat.Valid() && animal.Valid() && mammal.Valid() && hasFur.Valid())

	catAnimal := mesh.Inherits(cat, animal)
	catMammal := mesh.Inherits(cat, mammal)
	rule := mesh.Implies(catAnimal, catMammal)
	eval := mesh.Evaluate(hasFur, mammal)
	require.True(t, catAnimal.Valid() && catMammal.Valid() && rule.Valid() && eval.Valid())

	stats := mesh.Stats()
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 5, stats.Links) // 2 inheritance + 1 implication + list + evaluation
	assert.Equal(t, stats.Atoms, stats.Nodes+stats.Links)

	matches := mesh.Match(cat, 10)
	assert.Len(t, matches, 2) // Animal and Mammal, not Cat itself, not HasFur

	conclusions := mesh.Infer(catAnimal, 10)
	require.Len(t, conclusions, 1)
	assert.Equal(t, catMammal, conclusions[0])

	assert.True(t, mesh.Consolidate(0.8))
	assert.Equal(t, stats, mesh.Stats(), "consolidation stub must not change the census")
}

func TestCogMesh_EvaluateRejectsEmptyArgs(t *testing.T) {
	mesh := New()
	p := mesh.AddPredicate("HasFur")
	assert.Equal(t, core.InvalidHandle, mesh.Evaluate(p))
}

func TestCogMesh_StateBridge(t *testing.T) {
	mesh := New()

	state := make([]float32, 6)
	state[1] = 0.6
	state[4] = -0.3
	require.NoError(t, mesh.EncodeState(state))

	out, err := mesh.DecodeState(6)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, float64(out[1]), 1e-5)
	assert.InDelta(t, -0.3, float64(out[4]), 1e-5)
	assert.Zero(t, out[0])
}

func TestCogMesh_CustomStore(t *testing.T) {
	seeded := testutil.NewSpaceBuilder().
		Implies("Rain", "WetGround").
		Build()
	mesh := New(func(o *Options) { o.Store = seeded })

	rain := mesh.AddConcept("Rain")
	wet := mesh.AddConcept("WetGround")
	conclusions := mesh.Infer(rain, 5)
	require.Len(t, conclusions, 1)
	assert.Equal(t, wet, conclusions[0])
}

func TestCogMesh_ExtractKnowledge(t *testing.T) {
	mesh := New()
	_, err := mesh.ExtractKnowledge(context.Background(), "text")
	assert.ErrorIs(t, err, extract.ErrNoModel)

	mock := model.NewMockModel("mock", "mock")
	mock.AddResponse("Cats are animals.", `{"inheritance":[{"child":"Cat","parent":"Animal"}]}`)
	mesh = New(func(o *Options) { o.Model = mock })

	res, err := mesh.ExtractKnowledge(context.Background(), "Cats are animals.")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inheritance)
	assert.Equal(t, 2, mesh.Stats().Nodes)
}
