package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/feedbacksim/internal/process"
	"github.com/google/feedbacksim/internal/queue"
)

func TestFIFOOrdering(t *testing.T) {
	var f queue.FIFO
	assert.True(t, f.Empty())

	p1 := process.NewProcess(1, 0, []int{1}, nil)
	p2 := process.NewProcess(2, 0, []int{1}, nil)
	p3 := process.NewProcess(3, 0, []int{1}, nil)
	f.Put(p1)
	f.Put(p2)
	f.Put(p3)
	require.Equal(t, 3, f.Len())

	head, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, head.PID)

	got, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, 1, got.PID)
	assert.Equal(t, 2, f.Len())

	got, ok = f.Get()
	require.True(t, ok)
	assert.Equal(t, 2, got.PID)
}

func TestFIFORemovePreservesOrder(t *testing.T) {
	var f queue.FIFO
	for _, pid := range []int{1, 2, 3, 4} {
		f.Put(process.NewProcess(pid, 0, []int{1}, nil))
	}

	assert.True(t, f.Remove(2))
	assert.False(t, f.Remove(2))

	var order []int
	for _, p := range f.Items() {
		order = append(order, p.PID)
	}
	assert.Equal(t, []int{1, 3, 4}, order)
}

func TestFIFOEmptyGetPeek(t *testing.T) {
	var f queue.FIFO
	_, ok := f.Peek()
	assert.False(t, ok)
	_, ok = f.Get()
	assert.False(t, ok)
}
