package insult

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyPool() Pool {
	return Pool{
		Adjectives: []string{"artless"},
		Compounds:  []string{"base_court"},
		Nouns:      []string{"knave", "lout"},
	}
}

func TestPool_Capacity(t *testing.T) {
	p := DefaultPool()

	assert.Equal(t, len(p.Adjectives)*len(p.Compounds)*len(p.Nouns), p.Capacity())
	assert.Equal(t, 2, tinyPool().Capacity())
}

func TestPool_DrawUsesEveryList(t *testing.T) {
	a := NewAllocator(WithSeed(3))
	p := a.Pool()

	for range 50 {
		name := p.Draw(a.rand)
		assert.True(t, p.Recognizes(name), name)
	}
}

func TestPool_Recognizes(t *testing.T) {
	p := DefaultPool()

	assert.True(t, p.Recognizes("artless_base_court_knave"))
	assert.True(t, p.Recognizes("artlessBaseCourtKnave"))
	assert.True(t, p.Recognizes("reeky_hedge_born_hedge_born_cur"))
	assert.False(t, p.Recognizes("artless_knave"))
	assert.False(t, p.Recognizes("artless_base_court"))
	assert.False(t, p.Recognizes("counter"))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleSnake, s)

	s, err = ParseStyle("camel")
	require.NoError(t, err)
	assert.Equal(t, StyleCamel, s)

	_, err = ParseStyle("kebab")
	require.Error(t, err)
}

func TestStyle_Apply(t *testing.T) {
	assert.Equal(t, "artless_base_court_knave", StyleSnake.Apply("artless_base_court_knave"))
	assert.Equal(t, "artlessBaseCourtKnave", StyleCamel.Apply("artless_base_court_knave"))
}

func TestAllocator_AllocateIsInjective(t *testing.T) {
	ids := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}

	mapping, err := NewAllocator(WithSeed(1)).Allocate(ids)
	require.NoError(t, err)
	require.Equal(t, len(ids), mapping.Len())

	seen := make(map[string]bool)

	for _, id := range ids {
		replacement, ok := mapping.Lookup(id)
		require.True(t, ok, id)
		assert.False(t, seen[replacement], "duplicate replacement %s", replacement)
		assert.True(t, DefaultPool().Recognizes(replacement))

		seen[replacement] = true
	}
}

func TestAllocator_DuplicateIDsMapOnce(t *testing.T) {
	mapping, err := NewAllocator(WithSeed(1)).Allocate([]string{"x", "x"})
	require.NoError(t, err)

	assert.Equal(t, 1, mapping.Len())
}

func TestAllocator_EmptyInput(t *testing.T) {
	mapping, err := NewAllocator().Allocate(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, mapping.Len())
}

func TestAllocator_SeedIsDeterministic(t *testing.T) {
	ids := []string{"one", "two", "three"}

	first, err := NewAllocator(WithSeed(42)).Allocate(ids)
	require.NoError(t, err)

	second, err := NewAllocator(WithSeed(42)).Allocate(ids)
	require.NoError(t, err)

	assert.Equal(t, first.Pairs(), second.Pairs())
}

func TestAllocator_TinyPoolIsExhausted(t *testing.T) {
	a := NewAllocator(WithPool(tinyPool()), WithSeed(1))

	mapping, err := a.Allocate([]string{"x", "y"})
	require.NoError(t, err)

	got := []string{}
	for _, pair := range mapping.Pairs() {
		got = append(got, pair.Replacement)
	}

	assert.ElementsMatch(t, []string{"artless_base_court_knave", "artless_base_court_lout"}, got)

	_, err = a.Allocate([]string{"x", "y", "z"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPoolExhausted))
}

func TestAllocator_AvoidsNamesAlreadyPresent(t *testing.T) {
	a := NewAllocator(WithPool(tinyPool()), WithSeed(9))
	avoid := map[string]struct{}{
		"artless_base_court_knave": {},
		"unrelated":                {},
	}

	mapping, err := a.AllocateAvoiding([]string{"x"}, avoid)
	require.NoError(t, err)

	got, ok := mapping.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "artless_base_court_lout", got)

	_, err = a.AllocateAvoiding([]string{"x", "y"}, avoid)
	require.ErrorIs(t, err, ErrPoolExhausted)
}

func TestAllocator_CamelStyle(t *testing.T) {
	mapping, err := NewAllocator(WithStyle(StyleCamel), WithSeed(5)).Allocate([]string{"value"})
	require.NoError(t, err)

	got, ok := mapping.Lookup("value")
	require.True(t, ok)
	assert.False(t, strings.Contains(got, "_"), got)
	assert.True(t, DefaultPool().Recognizes(got))
}
