package extract

import (
	"context"
	"testing"

	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/model"
	"github.com/hupe1980/cogmesh/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animalKnowledge = `Cats are animals. Rain makes the ground wet.`

const animalJSON = "Here is the graph:\n```json\n" + `{
  "concepts": [
    {"name": "Cat", "strength": 0.9, "confidence": 0.8},
    {"name": "Animal"},
    {"name": ""}
  ],
  "inheritance": [
    {"child": "Cat", "parent": "Animal"},
    {"child": "", "parent": "Animal"}
  ],
  "implications": [
    {"premise": "Rain", "conclusion": "WetGround"}
  ]
}` + "\n```"

func TestExtractor_AssertsKnowledge(t *testing.T) {
	mock := model.NewMockModel("mock-extractor", "mock")
	mock.AddResponse(animalKnowledge, animalJSON)
	store := space.New()

	res, err := New(mock, store).Extract(context.Background(), animalKnowledge)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 2, res.Concepts) // the empty name entry is skipped
	assert.Equal(t, 1, res.Inheritance)
	assert.Equal(t, 1, res.Implications)

	cat := store.AddNode(core.ConceptNode, "Cat")
	tv, ok := store.TruthValue(cat)
	require.True(t, ok)
	assert.InDelta(t, 0.9, float64(tv.Strength), 1e-6)
	assert.InDelta(t, 0.8, float64(tv.Confidence), 1e-6)

	animal, ok := store.Atom(store.AddNode(core.ConceptNode, "Animal"))
	require.True(t, ok)
	assert.Equal(t, core.TruthValue{Strength: 0.5, Confidence: 0.5}, animal.TV)

	rain := store.AddNode(core.ConceptNode, "Rain")
	wet := store.AddNode(core.ConceptNode, "WetGround")
	conclusions := store.ForwardInference(rain, 10)
	require.Len(t, conclusions, 1)
	assert.Equal(t, wet, conclusions[0])
}

func TestExtractor_Idempotent(t *testing.T) {
	mock := model.NewMockModel("mock-extractor", "mock")
	mock.AddResponse(animalKnowledge, animalJSON)
	store := space.New()
	ex := New(mock, store)

	_, err := ex.Extract(context.Background(), animalKnowledge)
	require.NoError(t, err)
	size := store.Size()

	res, err := ex.Extract(context.Background(), animalKnowledge)
	require.NoError(t, err)
	assert.Equal(t, size, store.Size(), "re-extraction must deduplicate through the store")
	assert.Equal(t, 2, res.Concepts)
}

func TestExtractor_MalformedOutput(t *testing.T) {
	mock := model.NewMockModel("mock-extractor", "mock")
	mock.AddResponse("garbage in", "I cannot produce JSON today.")
	store := space.New()

	_, err := New(mock, store).Extract(context.Background(), "garbage in")
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.Equal(t, 0, store.Size())
}

func TestExtractor_MissingDependencies(t *testing.T) {
	store := space.New()
	_, err := New(nil, store).Extract(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNoModel)

	_, err = New(model.NewMockModel("m", "mock"), nil).Extract(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestJSONObjectExtraction(t *testing.T) {
	payload, ok := jsonObject("prefix {\"a\": 1} suffix")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, payload)

	_, ok = jsonObject("no braces here")
	assert.False(t, ok)

	_, ok = jsonObject("{not json}")
	assert.False(t, ok)
}
