package ctrldev

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/irati-go/ctrlplane/internal/fifo"
)

// Frame is one routed record: the raw encoded bytes of a msg.Message
// together with the port addressing used to route it (spec.md §3
// "no partial records").
type Frame struct {
	SrcPort uint32
	DstPort uint32
	Payload []byte
}

type state int

const (
	stateOpen state = iota
	stateBound
	stateFlushed
	stateClosed
)

// Endpoint is one bound (or about-to-be-bound) logical port: its
// pending receive queue, its state, and the wait primitive blocking
// readers suspend on. It replaces the original source's wake-and-
// sleep (wait_queue_head_t) with an explicit sync.Cond plus a
// context-driven cancellation watcher (spec.md §9 "wake-and-sleep
// becomes explicit condvar/channel equivalent").
type Endpoint struct {
	core *Core

	mu    sync.Mutex
	cond  *sync.Cond
	state state
	port  uint32
	queue fifo.Queue[Frame]

	// highWater optionally bounds the queue depth. Zero means
	// unbounded. When set, a Write that would exceed it drops the
	// oldest queued frame rather than blocking the writer or failing
	// outright (spec.md §5 "unspecified drop policy" — this
	// implementation's choice, see DESIGN.md).
	highWater int
	limiter   *rate.Limiter
}

// Open allocates an unbound endpoint owned by core. It corresponds to
// the control device's open() entry point (spec.md §4.3).
func Open(core *Core) *Endpoint {
	e := &Endpoint{core: core, state: stateOpen}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// SetHighWaterMark bounds the receive queue to at most n frames;
// zero disables the bound. SetRateLimiter additionally metering
// admission is optional and orthogonal (spec.md §5 backpressure).
func (e *Endpoint) SetHighWaterMark(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.highWater = n
}

// SetRateLimiter installs an optional token-bucket admission gate on
// this endpoint's inbound queue (spec.md §5 "backpressure... optional
// high-water mark").
func (e *Endpoint) SetRateLimiter(l *rate.Limiter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.limiter = l
}

// isFlushed reports whether the endpoint has relinquished its port
// reservation (spec.md §4.5 FLUSHED state).
func (e *Endpoint) isFlushed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateFlushed
}

// Bind assigns port to this endpoint (BIND ioctl, spec.md §4.3). It
// fails with ErrAlreadyBound if this endpoint has already left the
// OPEN state, or ErrPortInUse if another unflushed endpoint already
// holds port (spec.md §8 scenario F).
func (e *Endpoint) Bind(port uint32) error {
	e.mu.Lock()
	if e.state != stateOpen {
		e.mu.Unlock()
		return ErrAlreadyBound
	}
	e.mu.Unlock()

	e.port = port
	if err := e.core.register(e); err != nil {
		return err
	}

	e.mu.Lock()
	e.state = stateBound
	e.mu.Unlock()
	return nil
}

// Flush marks the endpoint as having relinquished its port
// reservation without destroying it (spec.md §4.5): a subsequent Bind
// to the same port by another endpoint is accepted, but Read/Write
// keep working on the queue already accumulated.
func (e *Endpoint) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != stateBound {
		return ErrNotBound
	}
	e.state = stateFlushed
	return nil
}

// Write routes payload to dst. dst == KernelHandlerPort decodes
// payload and dispatches it through the core's handler table; any
// other destination is delivered to that port's pending queue
// (spec.md §4.3 "write routing").
func (e *Endpoint) Write(dst uint32, payload []byte) error {
	e.mu.Lock()
	// Writes are legal in OPEN, BOUND, and FLUSHED; only a released
	// endpoint rejects them (spec.md §4.5).
	closed := e.state == stateClosed
	src := e.port
	e.mu.Unlock()
	if closed {
		return ErrClosed
	}

	if dst == KernelHandlerPort {
		return e.core.dispatchRaw(src, payload)
	}

	target, ok := e.core.lookup(dst)
	if !ok {
		return ErrBadPort
	}
	return target.enqueue(Frame{SrcPort: src, DstPort: dst, Payload: payload})
}

func (e *Endpoint) enqueue(f Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateClosed {
		return ErrClosed
	}
	if e.limiter != nil && !e.limiter.Allow() {
		e.core.log.Warn("ctrldev: rate limiter dropped frame", "port", e.port)
		return nil
	}
	if e.highWater > 0 && e.queue.Len() >= e.highWater {
		dropped := e.queue.Pop()
		e.core.log.Warn("ctrldev: high water mark reached, dropping oldest frame",
			"port", e.port, "dropped_src", dropped.SrcPort)
	}
	e.queue.Push(&f)
	e.cond.Broadcast()
	return nil
}

// Read pops the next frame's payload into buf (spec.md §4.3 "read's
// two call shapes").
//
//   - len(buf) == 0 peeks the next frame's size without dequeuing it.
//   - blocking selects between suspending until a frame arrives and
//     returning ErrWouldBlock immediately when the queue is empty.
//   - ctx, if non-nil, lets a blocked read be cancelled externally;
//     cancellation surfaces as ErrInterrupted, distinct from the
//     endpoint being closed (spec.md §8 scenario E).
//   - a destination buffer smaller than the pending frame returns
//     ErrBufferTooSmall without dequeuing (spec.md §4.3).
func (e *Endpoint) Read(ctx context.Context, buf []byte, blocking bool) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.queue.Len() == 0 {
		if e.state == stateClosed {
			return 0, ErrClosed
		}
		if !blocking {
			return 0, ErrWouldBlock
		}
		stopWatch := e.watchCancelLocked(ctx)
		defer stopWatch()
		for e.queue.Len() == 0 && e.state != stateClosed {
			if ctx != nil && ctx.Err() != nil {
				return 0, ErrInterrupted
			}
			e.cond.Wait()
		}
		if e.state == stateClosed {
			return 0, ErrClosed
		}
		if e.queue.Len() == 0 {
			// Woken by cancellation rather than by a frame arriving or a close.
			return 0, ErrInterrupted
		}
	}

	front := e.queue.Peek()
	if len(buf) == 0 {
		return len(front.Payload), nil
	}
	if len(buf) < len(front.Payload) {
		return 0, ErrBufferTooSmall
	}
	e.queue.Pop()
	return copy(buf, front.Payload), nil
}

// watchCancelLocked spawns a goroutine that broadcasts on the
// endpoint's condition variable when ctx is cancelled, waking a
// blocked Read so it can observe ctx.Err() and return ErrInterrupted.
// Must be called with e.mu held; the returned func must be deferred
// to stop the watcher.
func (e *Endpoint) watchCancelLocked(ctx context.Context) func() {
	if ctx == nil || ctx.Done() == nil {
		return func() {}
	}
	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.cond.Broadcast()
			e.mu.Unlock()
		case <-stop:
		}
	}()
	return func() { close(stop) }
}

// Poll reports the readiness bitmask for this endpoint in terms of
// golang.org/x/sys/unix's POLLIN/POLLOUT constants (spec.md §6,
// grounded on the original ctrldev.c poll implementation): POLLIN
// when a frame is queued or the endpoint is closed, POLLOUT whenever
// the endpoint is bound or flushed (writes never block in this
// implementation).
func (e *Endpoint) Poll() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var mask uint32
	if e.queue.Len() > 0 || e.state == stateClosed {
		mask |= pollIn
	}
	if e.state == stateBound || e.state == stateFlushed {
		mask |= pollOut
	}
	return mask
}

// Release closes the endpoint (spec.md §4.3 "release"): any blocked
// Read wakes with ErrClosed, not ErrInterrupted (spec.md §8 scenario
// E), queued frames are dropped, and the port is returned to the
// registry for reuse.
func (e *Endpoint) Release() {
	e.mu.Lock()
	if e.state == stateClosed {
		e.mu.Unlock()
		return
	}
	e.state = stateClosed
	e.queue.Drain()
	e.cond.Broadcast()
	e.mu.Unlock()

	e.core.unregister(e)
}
