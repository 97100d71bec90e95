package insult

import (
	"errors"
	"fmt"
	"math/rand/v2"

	m "github.com/mouse-blink/knave/internal/model"
)

// ErrPoolExhausted is returned when the pool cannot supply one distinct
// insult per identifier.
var ErrPoolExhausted = errors.New("insult pool exhausted")

// Allocator assigns a distinct insult to each identifier. An Allocator is
// not safe for concurrent use; create one per invocation.
type Allocator struct {
	pool  Pool
	rand  *rand.Rand
	style Style
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithPool replaces the built-in word lists.
func WithPool(p Pool) Option {
	return func(a *Allocator) {
		a.pool = p
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(a *Allocator) {
		a.rand = r
	}
}

// WithSeed makes allocation deterministic for a given seed.
func WithSeed(seed uint64) Option {
	return func(a *Allocator) {
		a.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithStyle sets the casing of generated insults.
func WithStyle(s Style) Option {
	return func(a *Allocator) {
		a.style = s
	}
}

// NewAllocator creates an Allocator using the default pool and a randomly
// seeded source unless options say otherwise.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{pool: DefaultPool(), style: StyleSnake}
	for _, opt := range opts {
		opt(a)
	}

	if a.rand == nil {
		a.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return a
}

// Pool returns the word lists in use.
func (a *Allocator) Pool() Pool {
	return a.pool
}

// Allocate maps every identifier to a distinct insult.
func (a *Allocator) Allocate(ids []string) (*m.RenameMap, error) {
	return a.AllocateAvoiding(ids, nil)
}

// AllocateAvoiding is Allocate with a set of names the insults must not
// take, such as identifiers already present in the text. Draws are repeated
// until unique; the capacity check bounds the retries.
func (a *Allocator) AllocateAvoiding(ids []string, avoid map[string]struct{}) (*m.RenameMap, error) {
	mapping := m.NewRenameMap()
	if len(ids) == 0 {
		return mapping, nil
	}

	blocked := 0

	for name := range avoid {
		if a.pool.Recognizes(name) {
			blocked++
		}
	}

	if need := len(ids) + blocked; need > a.pool.Capacity() {
		return nil, fmt.Errorf("%w: %d names needed, %d available", ErrPoolExhausted, need, a.pool.Capacity())
	}

	for _, id := range ids {
		if _, ok := mapping.Lookup(id); ok {
			continue
		}

		for {
			candidate := a.style.Apply(a.pool.Draw(a.rand))
			if _, taken := avoid[candidate]; taken {
				continue
			}

			if mapping.Set(id, candidate) {
				break
			}
		}
	}

	return mapping, nil
}
