package maintenance

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(maxRetries int) *Tracker {
	return NewTracker(slog.Default(), "schedule", maxRetries, time.Millisecond)
}

func TestTracker_ShowHide(t *testing.T) {
	tracker := newTestTracker(3)

	assert.False(t, tracker.Unavailable())

	tracker.ShowMaintenance()
	assert.True(t, tracker.Unavailable())

	tracker.HideMaintenance()
	assert.False(t, tracker.Unavailable())
	assert.Equal(t, 0, tracker.RetryCount())
}

func TestTracker_RetrySuccessHidesMaintenance(t *testing.T) {
	tracker := newTestTracker(3)
	tracker.ShowMaintenance()

	recovered := tracker.Retry(context.Background(), func(ctx context.Context) (bool, error) {
		return true, nil
	})

	assert.True(t, recovered)
	assert.False(t, tracker.Unavailable())
	assert.Equal(t, 0, tracker.RetryCount(), "success resets the counter")
}

func TestTracker_RetryExhaustion(t *testing.T) {
	tracker := newTestTracker(2)
	tracker.ShowMaintenance()

	calls := 0
	failing := func(ctx context.Context) (bool, error) {
		calls++
		return false, errors.New("still down")
	}

	for i := 0; i < 5; i++ {
		tracker.Retry(context.Background(), failing)
	}

	assert.Equal(t, 2, calls, "loader invoked at most maxRetries times")
	assert.Equal(t, 2, tracker.RetryCount(), "retryCount never exceeds maxRetries")
	assert.False(t, tracker.CanRetry())
	assert.True(t, tracker.Unavailable())
}

func TestTracker_RetryCancelled(t *testing.T) {
	tracker := NewTracker(slog.Default(), "news", 3, time.Minute)
	tracker.ShowMaintenance()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recovered := tracker.Retry(ctx, func(ctx context.Context) (bool, error) {
		require.Fail(t, "loader must not run after cancellation")
		return false, nil
	})

	assert.False(t, recovered)
	assert.True(t, tracker.Unavailable())
}

func TestTracker_LoaderErrorKeepsUnavailable(t *testing.T) {
	tracker := newTestTracker(3)
	tracker.ShowMaintenance()

	recovered := tracker.Retry(context.Background(), func(ctx context.Context) (bool, error) {
		return false, errors.New("backend down")
	})

	assert.False(t, recovered)
	assert.True(t, tracker.Unavailable())
	assert.True(t, tracker.CanRetry(), "a failed attempt still leaves remaining retries")
	assert.Equal(t, 1, tracker.RetryCount())
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	tracker := newTestTracker(3)
	tracker.ShowMaintenance()
	registry.Register("schedule", tracker, func(ctx context.Context) (bool, error) {
		return true, nil
	})

	t.Run("unknown section", func(t *testing.T) {
		_, ok := registry.Status("pricing")
		assert.False(t, ok)

		_, ok = registry.Retry(context.Background(), "pricing")
		assert.False(t, ok)
	})

	t.Run("status reflects tracker", func(t *testing.T) {
		status, ok := registry.Status("schedule")
		require.True(t, ok)
		assert.True(t, status.Unavailable)
		assert.True(t, status.CanRetry)
		assert.Equal(t, 0, status.RetryCount)
	})

	t.Run("retry recovers through loader", func(t *testing.T) {
		status, ok := registry.Retry(context.Background(), "schedule")
		require.True(t, ok)
		assert.False(t, status.Unavailable)
		assert.Equal(t, 0, status.RetryCount, "recovery resets the retry counter")
	})
}

func TestRegistry_MarkUnavailable(t *testing.T) {
	registry := NewRegistry()

	tracker := newTestTracker(3)
	registry.Register("news", tracker, func(ctx context.Context) (bool, error) {
		return true, nil
	})

	assert.False(t, registry.MarkUnavailable("pricing"))
	assert.False(t, tracker.Unavailable())

	require.True(t, registry.MarkUnavailable("news"))
	assert.True(t, tracker.Unavailable())

	status, ok := registry.Status("news")
	require.True(t, ok)
	assert.True(t, status.Unavailable)

	// восстановление через повтор снова доступно после пометки
	recovered, ok := registry.Retry(context.Background(), "news")
	require.True(t, ok)
	assert.False(t, recovered.Unavailable)
}
