package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct{ runs int }

func (j *countingJob) Run(context.Context) { j.runs++ }

func TestDisabledSchedulerStartsAndStops(t *testing.T) {
	s := New("", &countingJob{})
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Start())
	s.Stop()
}

func TestInvalidSpec(t *testing.T) {
	s := New("not a spec", &countingJob{})
	assert.True(t, s.Enabled())
	assert.Error(t, s.Start())
}

func TestValidSpec(t *testing.T) {
	s := New("0 3 * * *", &countingJob{})
	assert.NoError(t, s.Start())
	s.Stop()
}

type blockingJob struct {
	once     sync.Once
	started  chan struct{}
	release  chan struct{}
	finished chan struct{}
}

func (j *blockingJob) Run(context.Context) {
	j.once.Do(func() {
		close(j.started)
		<-j.release
		close(j.finished)
	})
}

func TestStopWaitsForRunningJob(t *testing.T) {
	job := &blockingJob{
		started:  make(chan struct{}),
		release:  make(chan struct{}),
		finished: make(chan struct{}),
	}
	s := New("@every 1s", job)
	require.NoError(t, s.Start())

	select {
	case <-job.started:
	case <-time.After(5 * time.Second):
		t.Fatal("job never ran")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while the job was running")
	case <-time.After(100 * time.Millisecond):
	}

	close(job.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after the job finished")
	}
	select {
	case <-job.finished:
	default:
		t.Fatal("job did not finish before Stop returned")
	}
}
