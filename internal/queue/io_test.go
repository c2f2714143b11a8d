package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/feedbacksim/internal/process"
	"github.com/google/feedbacksim/internal/queue"
)

func TestIOSetAddAndRemove(t *testing.T) {
	var s queue.IOSet
	p1 := process.NewProcess(1, 0, []int{1}, []int{1})
	p2 := process.NewProcess(2, 0, []int{1}, []int{1})
	s.Add(p1)
	s.Add(p2)
	require.Equal(t, 2, s.Len())

	s.RemoveAt(0)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Items()[0].PID)
}

func TestIOSetReplace(t *testing.T) {
	var s queue.IOSet
	s.Add(process.NewProcess(1, 0, []int{1}, []int{1}))
	s.Add(process.NewProcess(2, 0, []int{1}, []int{1}))

	replacement := []*process.Process{process.NewProcess(3, 0, []int{1}, []int{1})}
	s.Replace(replacement)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 3, s.Items()[0].PID)
}

func TestRecentQueueSetGet(t *testing.T) {
	var r queue.RecentQueue
	assert.Equal(t, queue.None, r.Get(1))

	r.Set(1, queue.Q2)
	assert.Equal(t, queue.Q2, r.Get(1))
	assert.Equal(t, queue.None, r.Get(2))
}
