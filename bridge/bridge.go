// Package bridge implements the deterministic, intentionally lossy codec
// between a language model's flat state vector and concept-node atoms in an
// AtomStore. Encode projects significant activations into "state_<i>"
// concept nodes; Decode reconstructs a vector from those nodes. The round
// trip loses information on purpose: sub-threshold magnitudes are never
// represented, and the sign of a decoded value is derived solely from the
// node's short-term importance.
package bridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/cogmesh/core"
	"github.com/hupe1980/cogmesh/logging"
)

// ErrNoStore is returned when a codec is used without a backing store.
var ErrNoStore = fmt.Errorf("bridge: no atom store configured")

// Options configures a Codec. The defaults reproduce the canonical encoding
// convention; change them only if both sides of the bridge agree.
type Options struct {
	// ConceptPrefix is prepended to the state index to form node names.
	ConceptPrefix string
	// ActivationThreshold is the minimum absolute value an activation must
	// exceed to be represented at all.
	ActivationThreshold float32
	// MaxConcepts caps how many leading state elements are considered.
	MaxConcepts int
	// EncodeConfidence is the truth-value confidence assigned to every
	// encoded concept.
	EncodeConfidence float32
	// Logger receives codec diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Codec encodes state vectors into an AtomStore and decodes them back.
type Codec struct {
	store core.AtomStore
	opts  Options
}

// NewCodec constructs a codec bound to the given store.
func NewCodec(store core.AtomStore, optFns ...func(o *Options)) *Codec {
	opts := Options{
		ConceptPrefix:       "state_",
		ActivationThreshold: 0.1,
		MaxConcepts:         100,
		EncodeConfidence:    0.8,
		Logger:              logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Codec{store: store, opts: opts}
}

// Encode projects the state vector into concept nodes. For every index i
// below MaxConcepts whose activation magnitude exceeds the threshold, a
// concept node named "<prefix><i>" is created (deduplicated by the store),
// its truth value set to (|v|, EncodeConfidence) and its attention value to
// (max(v,0), 0, 0). Sub-threshold and out-of-range elements are skipped.
func (c *Codec) Encode(state []float32) error {
	if c.store == nil {
		return ErrNoStore
	}
	limit := len(state)
	if limit > c.opts.MaxConcepts {
		limit = c.opts.MaxConcepts
	}
	encoded := 0
	for i := 0; i < limit; i++ {
		v := state[i]
		if abs32(v) <= c.opts.ActivationThreshold {
			continue
		}
		name := c.opts.ConceptPrefix + strconv.Itoa(i)
		h := c.store.AddNode(core.ConceptNode, name)
		if !h.Valid() {
			continue
		}
		c.store.SetTruthValue(h, core.TruthValue{Strength: abs32(v), Confidence: c.opts.EncodeConfidence})
		sti := v
		if sti < 0 {
			sti = 0
		}
		c.store.SetAttentionValue(h, core.AttentionValue{STI: sti})
		encoded++
	}
	c.opts.Logger.Debug("state encoded", "elements", len(state), "concepts", encoded)
	return nil
}

// Decode zero-fills out and then, for every concept node whose name is the
// prefix followed by an integer below len(out), writes
// strength * (+1 if STI > 0, else -1) at that index. Nodes with malformed
// names are skipped silently. The forced sign is part of the contract:
// values encoded with STI <= 0 always decode negative.
func (c *Codec) Decode(out []float32) error {
	if c.store == nil {
		return ErrNoStore
	}
	for i := range out {
		out[i] = 0
	}
	recovered := 0
	for _, a := range c.store.Atoms() {
		if a.Type != core.ConceptNode || !strings.HasPrefix(a.Name, c.opts.ConceptPrefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(a.Name, c.opts.ConceptPrefix))
		if err != nil || idx < 0 || idx >= len(out) {
			continue
		}
		sign := float32(-1)
		if a.AV.STI > 0 {
			sign = 1
		}
		out[idx] = a.TV.Strength * sign
		recovered++
	}
	c.opts.Logger.Debug("state decoded", "elements", len(out), "concepts", recovered)
	return nil
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
