package notification

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubService counts drain calls without touching a real queue.
type stubService struct {
	processed int32
}

func (s *stubService) Notify(ctx context.Context, userID uint, message string) error {
	return nil
}

func (s *stubService) ProcessOne(ctx context.Context) (int, error) {
	atomic.AddInt32(&s.processed, 1)
	return 0, nil
}

func (s *stubService) RetryFailed(ctx context.Context, timeout time.Duration) (int, error) {
	return 0, nil
}

func TestWorker_StopsOnCancellation(t *testing.T) {
	svc := &stubService{}
	worker := NewWorker(svc, WorkerConfig{
		IdleInterval: 10 * time.Millisecond,
		SweepTimeout: 10 * time.Millisecond,
	}, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}

	assert.Positive(t, atomic.LoadInt32(&svc.processed))
}

func TestWorker_AlreadyCancelledExitsImmediately(t *testing.T) {
	svc := &stubService{}
	worker := NewWorker(svc, WorkerConfig{}, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, worker.Run(ctx))
	assert.Zero(t, atomic.LoadInt32(&svc.processed))
}

func TestWorker_DefaultsApplied(t *testing.T) {
	worker := NewWorker(&stubService{}, WorkerConfig{}, zap.NewNop().Sugar())

	assert.Equal(t, 5*time.Second, worker.config.IdleInterval)
	assert.Equal(t, 10*time.Second, worker.config.SweepTimeout)
}
