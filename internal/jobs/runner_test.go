package jobs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type blockingTask struct {
	schedule string
	runs     atomic.Int32
	release  chan struct{}
}

func newBlockingTask(schedule string) *blockingTask {
	return &blockingTask{
		schedule: schedule,
		release:  make(chan struct{}),
	}
}

func (b *blockingTask) Schedule() string {
	return b.schedule
}

func (b *blockingTask) Run() {
	b.runs.Add(1)
	<-b.release
}

// A run that outlives its schedule makes the next tick skip. The
// executor must keep ticking and run the job again once the slow run
// finishes.
func TestTaskExecutor_RecoversAfterOverlapSkip(t *testing.T) {
	task := newBlockingTask("@every 1s")

	executor := NewTaskExecutor(nil, []CronJob{task})
	executor.Run()
	defer executor.Stop()

	// first run starts and blocks across at least one more tick
	assert.Eventually(t, func() bool {
		return task.runs.Load() == 1
	}, 3*time.Second, 50*time.Millisecond)
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(1), task.runs.Load())

	// unblock; the following ticks must schedule the job again
	close(task.release)
	assert.Eventually(t, func() bool {
		return task.runs.Load() >= 2
	}, 4*time.Second, 50*time.Millisecond)
}
