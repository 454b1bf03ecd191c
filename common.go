package main

import "time"

// FrameHistory keeps the most recent frame durations in a ring.
type FrameHistory struct {
	start  int
	length int
	data   []time.Duration
}

func NewFrameHistory(size int) FrameHistory {
	return FrameHistory{
		data: make([]time.Duration, size),
	}
}

func (h *FrameHistory) Len() int {
	return h.length
}

// Push records d, dropping the oldest entry once the ring is full.
func (h *FrameHistory) Push(d time.Duration) {
	if len(h.data) == 0 {
		return
	}

	end := (h.start + h.length) % len(h.data)
	h.data[end] = d

	if h.length >= len(h.data) {
		h.start = (h.start + 1) % len(h.data)
	} else {
		h.length++
	}
}

func (h *FrameHistory) At(index int) time.Duration {
	return h.data[(h.start+index)%len(h.data)]
}

func (h *FrameHistory) Average() time.Duration {
	if h.length == 0 {
		return 0
	}

	var sum time.Duration
	for i := range h.length {
		sum += h.At(i)
	}
	return sum / time.Duration(h.length)
}

func (h *FrameHistory) Max() time.Duration {
	var m time.Duration
	for i := range h.length {
		m = max(m, h.At(i))
	}
	return m
}
