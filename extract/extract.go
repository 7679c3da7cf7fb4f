// Package extract turns free text into atoms. An Extractor prompts a
// language model for a structured knowledge description (concepts,
// inheritance pairs, implication rules) and asserts the parsed result into
// an AtomStore. It complements the low-level state bridge: where bridge
// moves raw activation vectors, extract moves symbolic knowledge.
package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/logging"
	"github.com/hupe1980/cogmesh/model"
	"github.com/tidwall/gjson"
)

var (
	// ErrNoModel is returned when no language model is configured.
	ErrNoModel = fmt.Errorf("extract: no model configured")
	// ErrNoStore is returned when no atom store is configured.
	ErrNoStore = fmt.Errorf("extract: no atom store configured")
	// ErrMalformedOutput is returned when the model response contains no
	// parseable JSON object.
	ErrMalformedOutput = fmt.Errorf("extract: model output contains no valid JSON object")
)

const systemPrompt = `You turn text into a knowledge graph description.
Respond with a single JSON object and nothing else, using this shape:
{
  "concepts": [{"name": "Cat", "strength": 0.9, "confidence": 0.8}],
  "inheritance": [{"child": "Cat", "parent": "Animal"}],
  "implications": [{"premise": "Rain", "conclusion": "WetGround"}]
}
Use short CamelCase names. Strength and confidence are in [0,1].`

// Options configures an Extractor.
type Options struct {
	// Temperature forwarded to the model; low values keep output parseable.
	Temperature float64
	// MaxTokens forwarded to the model.
	MaxTokens int64
	// Logger receives extraction diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Result summarizes one extraction run.
type Result struct {
	// RunID correlates log entries of a single run.
	RunID string
	// Concepts, Inheritance and Implications count the assertions made
	// against the store (deduplicated assertions still count).
	Concepts     int
	Inheritance  int
	Implications int
}

// Extractor asserts model-extracted knowledge into an AtomStore.
type Extractor struct {
	model model.Model
	store core.AtomStore
	opts  Options
}

// New constructs an Extractor bound to a model and a store.
func New(m model.Model, store core.AtomStore, optFns ...func(o *Options)) *Extractor {
	opts := Options{
		Temperature: 0.2,
		MaxTokens:   2048,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Extractor{model: m, store: store, opts: opts}
}

// Extract asks the model to describe the text as a knowledge graph and
// asserts the result. Entries the model got wrong (empty names, junk
// fields) are skipped individually; a response without any JSON object at
// all yields ErrMalformedOutput.
func (e *Extractor) Extract(ctx context.Context, text string) (Result, error) {
	if e.model == nil {
		return Result{}, ErrNoModel
	}
	if e.store == nil {
		return Result{}, ErrNoStore
	}

	res := Result{RunID: uuid.NewString()}
	logger := e.opts.Logger

	start := time.Now()
	resp, err := e.model.Complete(ctx, model.Request{
		System:      systemPrompt,
		Prompt:      text,
		Temperature: e.opts.Temperature,
		MaxTokens:   e.opts.MaxTokens,
	})
	if err != nil {
		logger.Error("model call failed", "run_id", res.RunID, "error", err)
		return Result{}, fmt.Errorf("extract: model call: %w", err)
	}
	logger.Debug("model call completed", "run_id", res.RunID, "model", e.model.Info().Name,
		"tokens", resp.Usage.TotalTokens, "duration", time.Since(start))

	payload, ok := jsonObject(resp.Text)
	if !ok {
		return Result{}, ErrMalformedOutput
	}
	doc := gjson.Parse(payload)

	doc.Get("concepts").ForEach(func(_, c gjson.Result) bool {
		name := c.Get("name").String()
		if name == "" {
			return true
		}
		h := e.store.AddNode(core.ConceptNode, name)
		if !h.Valid() {
			return true
		}
		tv := core.TruthValue{Strength: 0.5, Confidence: 0.5}
		if v := c.Get("strength"); v.Exists() {
			tv.Strength = float32(v.Float())
		}
		if v := c.Get("confidence"); v.Exists() {
			tv.Confidence = float32(v.Float())
		}
		e.store.SetTruthValue(h, tv)
		res.Concepts++
		return true
	})

	doc.Get("inheritance").ForEach(func(_, p gjson.Result) bool {
		if e.assertPair(core.InheritanceLink, p.Get("child").String(), p.Get("parent").String()) {
			res.Inheritance++
		}
		return true
	})

	doc.Get("implications").ForEach(func(_, p gjson.Result) bool {
		if e.assertPair(core.ImplicationLink, p.Get("premise").String(), p.Get("conclusion").String()) {
			res.Implications++
		}
		return true
	})

	logger.Info("knowledge extracted", "run_id", res.RunID, "concepts", res.Concepts,
		"inheritance", res.Inheritance, "implications", res.Implications)
	return res, nil
}

// assertPair creates both concept nodes and the connecting link; it reports
// whether the link was asserted.
func (e *Extractor) assertPair(typ core.AtomType, from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	fh := e.store.AddNode(core.ConceptNode, from)
	th := e.store.AddNode(core.ConceptNode, to)
	if !fh.Valid() || !th.Valid() {
		return false
	}
	return e.store.AddLink(typ, []core.Handle{fh, th}).Valid()
}

// jsonObject slices the outermost {...} from the model output. Models often
// wrap JSON in prose or code fences; everything outside the braces is
// discarded.
func jsonObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	payload := text[start : end+1]
	if !gjson.Valid(payload) {
		return "", false
	}
	return payload, true
}
