package clouds

import (
	"sort"
	"time"
)

type FrameID uint64

// Pacer schedules callbacks once per display refresh.
type Pacer interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Pacer driven by whoever owns the display loop calling Flush
// once per refresh. It is not safe for concurrent use.
type FrameQueue struct {
	nextID  FrameID
	pending map[FrameID]func(now time.Time)
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func(time.Time))}
}

func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.nextID++
	q.pending[q.nextID] = fn
	return q.nextID
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending reports how many callbacks wait for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs, in request order, every callback that was pending when Flush
// was called. Callbacks requested while flushing run on the next Flush.
// A callback cancelled by an earlier callback in the same flush is skipped.
func (q *FrameQueue) Flush(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}

	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn(now)
		ran++
	}

	return ran
}
