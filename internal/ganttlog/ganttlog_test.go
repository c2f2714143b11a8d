package ganttlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/feedbacksim/internal/ganttlog"
)

func TestSegmentLengthAndString(t *testing.T) {
	s := ganttlog.Segment{PID: 3, Start: 10, End: 14, Algo: ganttlog.RR1}
	assert.Equal(t, 4, s.Length())
	assert.Equal(t, "(3, 10, 14, RR1)", s.String())
}

func TestLogAppendAndTotalBusyTicks(t *testing.T) {
	var log ganttlog.Log
	log.Append(ganttlog.Segment{PID: 1, Start: 0, End: 3, Algo: ganttlog.RR1})
	log.Append(ganttlog.Segment{PID: 2, Start: 3, End: 5, Algo: ganttlog.SRTF})

	assert.Len(t, log.Segments(), 2)
	assert.Equal(t, 5, log.TotalBusyTicks())
}
