package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestScheduler_RunsUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("count", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("fail", 5*time.Millisecond, func(ctx context.Context) error {
		return errors.New("boom")
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler()
	s.AddJob("noop", time.Hour, func(ctx context.Context) error { return nil })
	s.Start(ctx)

	cancel()
	s.Stop()
}

func TestScheduler_RunOnce(t *testing.T) {
	var order []string
	s := NewScheduler()
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return errors.New("ignored")
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"first", "second"}, order)
}
