// Package generator draws quiz elements and question kinds.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/elemquiz/internal/model"
)

// CutoffYear splits the table: elements discovered before it are drawn twice as often.
const CutoffYear = 1946

// Generator draws weighted-random elements and resolves random modes.
type Generator struct {
	rnd      *rand.Rand
	elements []model.Element
	weights  []float64
	total    float64
}

// New returns a Generator over elements using the base discovery weights.
// A nil rnd is replaced by one seeded with the current time.
func New(elements []model.Element, rnd *rand.Rand) *Generator {
	return NewWeighted(elements, rnd, nil, 0)
}

// NewWeighted returns a Generator that additionally multiplies the weight of
// every element in weakSet by 1+factor.
func NewWeighted(elements []model.Element, rnd *rand.Rand, weakSet map[int]struct{}, factor float64) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	weights := make([]float64, len(elements))
	total := 0.0
	for i, e := range elements {
		w := float64(BaseWeight(e))
		if _, ok := weakSet[e.Number]; ok {
			w *= 1 + factor
		}
		weights[i] = w
		total += w
	}
	return &Generator{
		rnd:      rnd,
		elements: elements,
		weights:  weights,
		total:    total,
	}
}

// BaseWeight returns 2 for elements discovered before CutoffYear and 1 otherwise.
func BaseWeight(e model.Element) int {
	if e.Discovered.Before(CutoffYear) {
		return 2
	}
	return 1
}

// Weights returns a copy of the per-element selection weights.
func (g *Generator) Weights() []float64 {
	out := make([]float64, len(g.weights))
	copy(out, g.weights)
	return out
}

// Element draws one element with probability proportional to its weight.
// Draws are independent; the same element may repeat.
func (g *Generator) Element() model.Element {
	r := g.rnd.Float64() * g.total
	acc := 0.0
	idx := len(g.elements) - 1
	for j, w := range g.weights {
		acc += w
		if r < acc {
			idx = j
			break
		}
	}
	return g.elements[idx]
}

// ResolveMode returns mode unchanged unless it is ModeRandom, in which case a
// concrete kind is chosen uniformly.
func (g *Generator) ResolveMode(mode model.Mode) model.Mode {
	if mode != model.ModeRandom {
		return mode
	}
	return model.ConcreteModes[g.rnd.Intn(len(model.ConcreteModes))]
}
