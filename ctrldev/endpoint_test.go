package ctrldev

import (
	"context"
	"testing"
	"time"
)

func newTestCore() *Core {
	return NewCore(nil)
}

// TestScenarioD_ForwardingByPort: endpoint X bound to port 10 and
// endpoint Y bound to port 20. Y writes a frame with dst=10 and a
// one-byte payload marker 0xAB. X's reader (blocking) wakes, reads
// the frame, and observes 0xAB.
func TestScenarioD_ForwardingByPort(t *testing.T) {
	core := newTestCore()

	x := Open(core)
	if err := x.Bind(10); err != nil {
		t.Fatalf("bind X: %v", err)
	}
	y := Open(core)
	if err := y.Bind(20); err != nil {
		t.Fatalf("bind Y: %v", err)
	}

	type result struct {
		n   int
		err error
		buf []byte
	}
	done := make(chan result, 1)
	go func() {
		buf := make([]byte, 16)
		n, err := x.Read(context.Background(), buf, true)
		done <- result{n, err, buf[:n]}
	}()

	// Give the reader a moment to block before the write arrives.
	time.Sleep(10 * time.Millisecond)

	if err := y.Write(10, []byte{0xAB}); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("read: %v", r.err)
		}
		if r.n != 1 || r.buf[0] != 0xAB {
			t.Fatalf("got %v, want [0xAB]", r.buf)
		}
	case <-time.After(time.Second):
		t.Fatal("reader never woke")
	}
}

// TestScenarioE_CloseRacesReader: endpoint Z has one blocked reader.
// Another goroutine closes Z. The reader returns ErrClosed (not
// ErrInterrupted) and any frames previously in Z's queue are freed.
func TestScenarioE_CloseRacesReader(t *testing.T) {
	core := newTestCore()
	z := Open(core)
	if err := z.Bind(30); err != nil {
		t.Fatalf("bind: %v", err)
	}

	type result struct {
		err error
	}
	done := make(chan result, 1)
	go func() {
		buf := make([]byte, 16)
		_, err := z.Read(context.Background(), buf, true)
		done <- result{err}
	}()

	time.Sleep(10 * time.Millisecond)
	z.Release()

	select {
	case r := <-done:
		if r.err != ErrClosed {
			t.Fatalf("got %v, want ErrClosed", r.err)
		}
	case <-time.After(time.Second):
		t.Fatal("reader never woke on close")
	}

	if _, ok := core.lookup(30); ok {
		t.Fatal("port 30 should have been released from the registry")
	}
}

// TestScenarioE_QueuedFramesFreedOnClose: frames enqueued before
// release but never read must not be observable afterward.
func TestScenarioE_QueuedFramesFreedOnClose(t *testing.T) {
	core := newTestCore()
	z := Open(core)
	if err := z.Bind(31); err != nil {
		t.Fatalf("bind: %v", err)
	}
	w := Open(core)
	if err := w.Bind(32); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := w.Write(31, []byte{1, 2, 3}); err != nil {
		t.Fatalf("write: %v", err)
	}

	z.Release()

	buf := make([]byte, 16)
	if _, err := z.Read(context.Background(), buf, false); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed after release, even with a queued frame", err)
	}
}

// TestScenarioF_PortInUseRejection: endpoint P binds to port 7;
// endpoint Q attempts to bind to port 7 while P is unflushed — bind
// fails. P flushes; Q's retry succeeds.
func TestScenarioF_PortInUseRejection(t *testing.T) {
	core := newTestCore()
	p := Open(core)
	if err := p.Bind(7); err != nil {
		t.Fatalf("bind P: %v", err)
	}

	q := Open(core)
	if err := q.Bind(7); err != ErrPortInUse {
		t.Fatalf("got %v, want ErrPortInUse", err)
	}

	if err := p.Flush(); err != nil {
		t.Fatalf("flush P: %v", err)
	}

	if err := q.Bind(7); err != nil {
		t.Fatalf("Q retry bind: %v", err)
	}

	got, ok := core.lookup(7)
	if !ok || got != q {
		t.Fatal("port 7 should now be owned by Q")
	}
}

func TestNonBlockingReadOnEmptyQueue(t *testing.T) {
	core := newTestCore()
	e := Open(core)
	if err := e.Bind(40); err != nil {
		t.Fatalf("bind: %v", err)
	}
	buf := make([]byte, 16)
	if _, err := e.Read(context.Background(), buf, false); err != ErrWouldBlock {
		t.Fatalf("got %v, want ErrWouldBlock", err)
	}
}

func TestZeroLengthReadPeeksSizeWithoutDequeue(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Bind(50); err != nil {
		t.Fatalf("bind: %v", err)
	}
	y := Open(core)
	if err := y.Bind(51); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := y.Write(50, []byte{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("write: %v", err)
	}

	n, err := x.Read(context.Background(), nil, false)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if n != 5 {
		t.Fatalf("peek size = %d, want 5", n)
	}

	// Idempotent: a second peek must report the same size without
	// dequeuing (spec.md §8 property 6).
	n2, err := x.Read(context.Background(), nil, false)
	if err != nil || n2 != 5 {
		t.Fatalf("second peek = (%d, %v), want (5, nil)", n2, err)
	}

	buf := make([]byte, 5)
	n3, err := x.Read(context.Background(), buf, false)
	if err != nil || n3 != 5 {
		t.Fatalf("final read = (%d, %v), want (5, nil)", n3, err)
	}
}

func TestBufferTooSmallLeavesFrameQueued(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Bind(60); err != nil {
		t.Fatalf("bind: %v", err)
	}
	y := Open(core)
	if err := y.Bind(61); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := y.Write(60, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("write: %v", err)
	}

	small := make([]byte, 2)
	if _, err := x.Read(context.Background(), small, false); err != ErrBufferTooSmall {
		t.Fatalf("got %v, want ErrBufferTooSmall", err)
	}

	big := make([]byte, 8)
	n, err := x.Read(context.Background(), big, false)
	if err != nil {
		t.Fatalf("retry read: %v", err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
}

func TestReadCancelledByContext(t *testing.T) {
	core := newTestCore()
	e := Open(core)
	if err := e.Bind(70); err != nil {
		t.Fatalf("bind: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 16)
		_, err := e.Read(ctx, buf, true)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != ErrInterrupted {
			t.Fatalf("got %v, want ErrInterrupted", err)
		}
	case <-time.After(time.Second):
		t.Fatal("reader never woke on cancellation")
	}
}

func TestWriteToUnknownPortFails(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Bind(80); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := x.Write(999, []byte{1}); err != ErrBadPort {
		t.Fatalf("got %v, want ErrBadPort", err)
	}
}

// TestWriteBeforeBindToUnknownPort: spec.md §4.5 allows writes in the
// OPEN state (before a bind), so an unbound endpoint's write is only
// rejected for routing reasons (unknown destination), not for being
// unbound.
func TestWriteBeforeBindToUnknownPort(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Write(1, []byte{1}); err != ErrBadPort {
		t.Fatalf("got %v, want ErrBadPort", err)
	}
}

func TestWriteAfterReleaseFails(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Bind(85); err != nil {
		t.Fatalf("bind: %v", err)
	}
	x.Release()
	if err := x.Write(1, []byte{1}); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestHighWaterMarkDropsOldestFrame(t *testing.T) {
	core := newTestCore()
	x := Open(core)
	if err := x.Bind(90); err != nil {
		t.Fatalf("bind: %v", err)
	}
	x.SetHighWaterMark(2)

	y := Open(core)
	if err := y.Bind(91); err != nil {
		t.Fatalf("bind: %v", err)
	}

	for _, b := range [][]byte{{1}, {2}, {3}} {
		if err := y.Write(90, b); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if x.queue.Len() != 2 {
		t.Fatalf("queue len = %d, want 2", x.queue.Len())
	}
	buf := make([]byte, 1)
	n, err := x.Read(context.Background(), buf, false)
	if err != nil || n != 1 || buf[0] != 2 {
		t.Fatalf("oldest surviving frame = (%d bytes, %v, %v), want frame {2}", n, err, buf)
	}
}
