package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

func newTestGate(threshold time.Duration, start time.Time) (*RevealGate, *fakeTimeProvider) {
	gate := NewRevealGateWithThreshold(threshold)
	tp := &fakeTimeProvider{now: start}
	gate.timeProvider = tp
	return gate, tp
}

func TestRevealGate_LongPressReveals(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)
	assert.Equal(t, StatePressing, gate.State())

	tp.now = start.Add(DefaultRevealThreshold)
	state := gate.PressEnd(tp.now)
	assert.Equal(t, StateRevealed, state)

	id, ok := gate.RevealedReview()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestRevealGate_RevealsWhileStillHolding(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)

	// До порога удержание остаётся обычным нажатием
	tp.now = start.Add(499 * time.Millisecond)
	assert.Equal(t, StatePressing, gate.State())
	_, ok := gate.RevealedReview()
	assert.False(t, ok)

	// Порог истёк, палец ещё не отпущен: кнопка уже открыта
	tp.now = start.Add(600 * time.Millisecond)
	assert.Equal(t, StateRevealed, gate.State())

	id, ok := gate.RevealedReview()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	// Отпускание после порога кнопку не закрывает
	state := gate.PressEnd(start.Add(700 * time.Millisecond))
	assert.Equal(t, StateRevealed, state)
}

func TestRevealGate_ShortPressIsAClick(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)
	tp.now = start.Add(499 * time.Millisecond)
	state := gate.PressEnd(tp.now)

	assert.Equal(t, StateIdle, state)
	_, ok := gate.RevealedReview()
	assert.False(t, ok)
}

func TestRevealGate_NonOwnerNeverArms(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	// Жест по чужому отзыву не вооружает gate даже при долгом удержании
	gate.PressStart(7, false, start)
	assert.Equal(t, StateIdle, gate.State())

	tp.now = start.Add(2 * time.Second)
	assert.Equal(t, StateIdle, gate.State())

	state := gate.PressEnd(tp.now)
	assert.Equal(t, StateIdle, state)
}

func TestRevealGate_OutsideClickHides(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)
	tp.now = start.Add(time.Second)
	gate.PressEnd(tp.now)
	require.Equal(t, StateRevealed, gate.State())

	gate.OutsideClick()

	assert.Equal(t, StateIdle, gate.State())
	_, ok := gate.RevealedReview()
	assert.False(t, ok)
}

func TestRevealGate_DeleteCompletedHides(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)
	tp.now = start.Add(time.Second)
	gate.PressEnd(tp.now)

	gate.DeleteCompleted()

	assert.Equal(t, StateIdle, gate.State())
}

func TestRevealGate_NewPressReplacesRevealed(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(DefaultRevealThreshold, start)

	gate.PressStart(7, true, start)
	tp.now = start.Add(time.Second)
	gate.PressEnd(tp.now)
	require.Equal(t, StateRevealed, gate.State())

	// Долгое нажатие на другой отзыв переносит открытую кнопку
	second := start.Add(5 * time.Second)
	gate.PressStart(8, true, second)
	tp.now = second.Add(time.Second)
	gate.PressEnd(tp.now)

	id, ok := gate.RevealedReview()
	require.True(t, ok)
	assert.Equal(t, int64(8), id)
}

func TestRevealGate_CustomThreshold(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gate, tp := newTestGate(100*time.Millisecond, start)

	gate.PressStart(7, true, start)
	tp.now = start.Add(150 * time.Millisecond)
	state := gate.PressEnd(tp.now)

	assert.Equal(t, StateRevealed, state)
}
