//go:build unit

package deadline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"azulhomes/internal/pkg/deadline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwait(t *testing.T) {
	ctx := context.Background()

	t.Run("operation settles before deadline", func(t *testing.T) {
		res := deadline.Await(ctx, time.Second, func(_ context.Context) (string, error) {
			return "delivered", nil
		})

		require.True(t, res.Completed())
		assert.NoError(t, res.Err)
		assert.Equal(t, "delivered", res.Value)
	})

	t.Run("operation error settles before deadline", func(t *testing.T) {
		opErr := errors.New("delivery rejected")
		res := deadline.Await(ctx, time.Second, func(_ context.Context) (string, error) {
			return "", opErr
		})

		require.True(t, res.Completed())
		assert.ErrorIs(t, res.Err, opErr)
	})

	t.Run("deadline fires before operation settles", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)

		start := time.Now()
		res := deadline.Await(ctx, 20*time.Millisecond, func(_ context.Context) (string, error) {
			<-block
			return "too late", nil
		})

		assert.True(t, res.TimedOut)
		assert.False(t, res.Completed())
		assert.NoError(t, res.Err)
		assert.Empty(t, res.Value)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("slow success still wins inside the bound", func(t *testing.T) {
		res := deadline.Await(ctx, time.Second, func(_ context.Context) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return 42, nil
		})

		require.True(t, res.Completed())
		assert.Equal(t, 42, res.Value)
	})

	t.Run("cancelled context settles the wait", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		block := make(chan struct{})
		defer close(block)

		res := deadline.Await(cancelled, time.Second, func(_ context.Context) (string, error) {
			<-block
			return "", nil
		})

		assert.False(t, res.TimedOut)
		assert.ErrorIs(t, res.Err, context.Canceled)
	})
}
