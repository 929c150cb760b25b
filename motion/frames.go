package motion

// FrameHandle identifies a pending frame callback. Zero is never issued.
type FrameHandle uint64

type frameRequest struct {
	handle FrameHandle
	fn     func()
}

// Scheduler is an animation-frame queue. Callbacks requested while a Tick
// is running are deferred to the next Tick, so a self-rescheduling loop
// advances exactly once per frame.
type Scheduler struct {
	next    FrameHandle
	queue   []frameRequest
	pending map[FrameHandle]struct{}
	frame   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: map[FrameHandle]struct{}{}}
}

// Request schedules fn for the next frame.
func (s *Scheduler) Request(fn func()) FrameHandle {
	s.next++
	h := s.next
	s.queue = append(s.queue, frameRequest{handle: h, fn: fn})
	s.pending[h] = struct{}{}
	return h
}

// Cancel drops a pending callback. Unknown or already-run handles are ignored.
func (s *Scheduler) Cancel(h FrameHandle) {
	delete(s.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Frame returns how many ticks have run.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Tick runs every callback requested before this call, in request order.
func (s *Scheduler) Tick() {
	s.frame++
	batch := s.queue
	s.queue = nil
	for _, req := range batch {
		if _, ok := s.pending[req.handle]; !ok {
			continue
		}
		delete(s.pending, req.handle)
		req.fn()
	}
}
