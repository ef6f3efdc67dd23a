package phrases

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingElement struct {
	writes []string
	err    error
}

func (e *recordingElement) SetText(_ context.Context, text string) error {
	if e.err != nil {
		return e.err
	}
	e.writes = append(e.writes, text)
	return nil
}

type mapSurface map[string]*recordingElement

func (s mapSurface) Element(_ context.Context, id string) (Element, error) {
	el, ok := s[id]
	if !ok {
		return nil, ErrTargetNotFound
	}
	return el, nil
}

func fixed(index int) Source {
	return SourceFunc(func(int) int { return index })
}

func mustSet(t *testing.T, phrases ...string) Set {
	t.Helper()
	set, err := NewSet(phrases...)
	require.NoError(t, err)
	return set
}

func TestNewSet(t *testing.T) {
	_, err := NewSet()
	assert.ErrorIs(t, err, ErrEmptySet)

	input := []string{"A", "B", "A"}
	set, err := NewSet(input...)
	require.NoError(t, err)
	input[0] = "changed"
	assert.Equal(t, []string{"A", "B", "A"}, set.All())

	all := set.All()
	all[1] = "changed"
	assert.Equal(t, "B", set.At(1))
	assert.Equal(t, 3, set.Len())
}

func TestUpdateMessageFixedIndex(t *testing.T) {
	var tests = []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			target := &recordingElement{}
			rotator := NewRotator(mustSet(t, "A", "B"), fixed(tt.index))
			require.NoError(t, rotator.UpdateMessage(context.Background(), target))
			assert.Equal(t, []string{tt.want}, target.writes)
		})
	}
}

func TestUpdateMessageKeepsPhraseVerbatim(t *testing.T) {
	target := &recordingElement{}
	rotator := NewRotator(mustSet(t, "  spaced out \n"), fixed(0))
	require.NoError(t, rotator.UpdateMessage(context.Background(), target))
	assert.Equal(t, []string{"  spaced out \n"}, target.writes)
}

func TestUpdateMessageNilTarget(t *testing.T) {
	drawn := false
	rotator := NewRotator(mustSet(t, "A"), SourceFunc(func(int) int {
		drawn = true
		return 0
	}))
	err := rotator.UpdateMessage(context.Background(), nil)
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.False(t, drawn)
}

func TestUpdateMessageReturnsTargetError(t *testing.T) {
	boom := errors.New("boom")
	rotator := NewRotator(mustSet(t, "A"), fixed(0))
	err := rotator.UpdateMessage(context.Background(), &recordingElement{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestUpdateElementMissingTarget(t *testing.T) {
	drawn := false
	rotator := NewRotator(mustSet(t, "A", "B"), SourceFunc(func(int) int {
		drawn = true
		return 0
	}))
	other := &recordingElement{}
	surface := mapSurface{"other": other}

	err := rotator.UpdateElement(context.Background(), surface, "footermessage")
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.False(t, drawn, "phrase set must not be read when the target is missing")
	assert.Empty(t, other.writes)
}

func TestUpdateElementMembership(t *testing.T) {
	set := mustSet(t, "one", "two", "three")
	target := &recordingElement{}
	surface := mapSurface{"footermessage": target}
	rotator := NewRotator(set, rand.New(rand.NewPCG(7, 11)))

	for i := 0; i < 200; i++ {
		require.NoError(t, rotator.UpdateElement(context.Background(), surface, "footermessage"))
	}
	require.Len(t, target.writes, 200)
	for _, text := range target.writes {
		assert.Contains(t, set.All(), text)
	}
}

func TestPickIsUniformByIndex(t *testing.T) {
	const draws = 40000
	rotator := NewRotator(mustSet(t, "A", "X", "B", "X"), rand.New(rand.NewPCG(1, 2)))

	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[rotator.Pick()]++
	}
	assert.InDelta(t, 0.5, float64(counts["X"])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(counts["A"])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(counts["B"])/draws, 0.02)
}

func TestNewRotatorDefaultSource(t *testing.T) {
	rotator := NewRotator(mustSet(t, "only"), nil)
	assert.Equal(t, "only", rotator.Pick())
}

func TestZeroSet(t *testing.T) {
	drawn := false
	rotator := NewRotator(Set{}, SourceFunc(func(int) int {
		drawn = true
		return 0
	}))
	target := &recordingElement{}

	assert.ErrorIs(t, rotator.UpdateMessage(context.Background(), target), ErrEmptySet)
	assert.Empty(t, target.writes)
	assert.Equal(t, "", rotator.Pick())
	assert.False(t, drawn)
}
