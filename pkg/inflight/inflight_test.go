package inflight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_RunsAndReleases(t *testing.T) {
	guard := NewGuard()
	calls := 0

	err := guard.Do(context.Background(), "key", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, guard.IsPending("key"))
}

func TestDo_RejectsReentrantCall(t *testing.T) {
	guard := NewGuard()

	err := guard.Do(context.Background(), "key", func(ctx context.Context) error {
		// Повторный запуск того же ключа, пока операция выполняется
		inner := guard.Do(ctx, "key", func(ctx context.Context) error {
			t.Fatal("inner fn must not run")
			return nil
		})
		assert.ErrorIs(t, inner, ErrAlreadyPending)
		assert.True(t, guard.IsPending("key"))
		return nil
	})

	require.NoError(t, err)
	assert.False(t, guard.IsPending("key"))
}

func TestDo_IndependentKeys(t *testing.T) {
	guard := NewGuard()

	err := guard.Do(context.Background(), "a", func(ctx context.Context) error {
		return guard.Do(ctx, "b", func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
}

func TestDo_ReleasesAfterError(t *testing.T) {
	guard := NewGuard()
	boom := errors.New("boom")

	err := guard.Do(context.Background(), "key", func(ctx context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Ключ освобождён, повторный запуск возможен
	err = guard.Do(context.Background(), "key", func(ctx context.Context) error {
		return nil
	})
	assert.NoError(t, err)
}
