package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gsushant/task-reminder-api/internal/model"
)

type fakeSource struct {
	tasks []model.Task
	err   error
	from  time.Time
	to    time.Time
	calls int32
}

func (f *fakeSource) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	atomic.AddInt32(&f.calls, 1)
	f.from, f.to = from, to
	return f.tasks, f.err
}

type fakeNotifier struct {
	failIDs map[int64]bool
	got     []int64
}

func (f *fakeNotifier) Notify(ctx context.Context, t model.Task) error {
	f.got = append(f.got, t.ID)
	if f.failIDs[t.ID] {
		return errors.New("smtp is down")
	}
	return nil
}

func TestScheduler_Scan_Window(t *testing.T) {
	source := &fakeSource{}
	s := New(source, &fakeNotifier{}, zap.NewNop(), time.Hour, 24*time.Hour)

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	_, err := s.Scan(context.Background(), now)

	require.NoError(t, err)
	assert.True(t, source.from.Equal(now), "window must open at now")
	assert.True(t, source.to.Equal(now.Add(24*time.Hour)), "window must close at now+24h")
}

func TestScheduler_Scan_NotifiesEachDueTask(t *testing.T) {
	source := &fakeSource{tasks: []model.Task{{ID: 1}, {ID: 2}, {ID: 3}}}
	notifier := &fakeNotifier{}
	s := New(source, notifier, zap.NewNop(), time.Hour, 24*time.Hour)

	sent, err := s.Scan(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Equal(t, []int64{1, 2, 3}, notifier.got)
}

func TestScheduler_Scan_FailureDoesNotStopBatch(t *testing.T) {
	source := &fakeSource{tasks: []model.Task{{ID: 1}, {ID: 2}, {ID: 3}}}
	notifier := &fakeNotifier{failIDs: map[int64]bool{2: true}}
	s := New(source, notifier, zap.NewNop(), time.Hour, 24*time.Hour)

	sent, err := s.Scan(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{1, 2, 3}, notifier.got, "every due task must be attempted")
}

func TestScheduler_Scan_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	s := New(source, &fakeNotifier{}, zap.NewNop(), time.Hour, 24*time.Hour)

	_, err := s.Scan(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	source := &fakeSource{}
	s := New(source, &fakeNotifier{}, zap.NewNop(), 10*time.Millisecond, 24*time.Hour)

	s.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt32(&source.calls), int32(1),
		"the ticker must have scanned at least once")
}
