package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsIdle(t *testing.T) {
	var s State[string]
	assert.True(t, s.IsIdle())
	assert.Equal(t, PhaseIdle, s.Phase())
	_, ok := s.Payload()
	assert.False(t, ok)
	assert.Equal(t, "", s.Message())
}

func TestExactlyOnePhase(t *testing.T) {
	states := []State[int]{Idle[int](), Loading[int](), Success(7), Failure[int]("boom")}
	for _, s := range states {
		count := 0
		for _, b := range []bool{s.IsIdle(), s.IsLoading(), s.IsSuccess(), s.IsFailure()} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "phase %s", s.Phase())
	}
}

func TestPayloadAndMessage(t *testing.T) {
	v, ok := Success(42).Payload()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "", Success(42).Message())

	f := Failure[int]("rate limited")
	assert.Equal(t, "rate limited", f.Message())
	_, ok = f.Payload()
	assert.False(t, ok)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestTokens(t *testing.T) {
	var tokens Tokens
	assert.False(t, tokens.IsLatest(0))

	first := tokens.Next()
	assert.True(t, tokens.IsLatest(first))

	second := tokens.Next()
	assert.Greater(t, second, first)
	assert.False(t, tokens.IsLatest(first))
	assert.True(t, tokens.IsLatest(second))
}
