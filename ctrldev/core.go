// Package ctrldev implements the control device multiplexer: the
// per-endpoint receive queues, the handler table bound to logical
// port 0, and the port registry that routes frames between endpoints
// (spec.md §2 "Control device multiplexer", §4.3).
package ctrldev

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/irati-go/ctrlplane/msg"
)

// KernelHandlerPort is the reserved destination port that routes a
// frame to the handler table instead of a peer endpoint's queue
// (spec.md §3 "port 0 = kernel handler target").
const KernelHandlerPort uint32 = 0

// IPCManagerPort is the logical port conventionally bound by the IPC
// Manager (spec.md §3 "port 1 reserved for IPC-Manager by
// convention"). Closing it is not an error condition in itself but is
// logged, since the IPC Manager disappearing usually means the whole
// control plane is tearing down.
const IPCManagerPort uint32 = 1

// Handler processes a dispatched message on behalf of the kernel
// handler table. It returns an ordinal-specific reply message, or an
// error (commonly *HandlerRejected) if it declines the request.
type Handler func(src uint32, m msg.Message) (msg.Message, error)

// Core owns the endpoint registry, the ordinal handler table, and the
// event sequence counter shared by every endpoint it mints. It is the
// explicit replacement for the original source's global singleton
// state (spec.md §9 "global singletons become explicit Core
// objects").
type Core struct {
	log *slog.Logger

	mu        sync.Mutex // guards endpoints; always acquired before any endpoint's own mutex
	endpoints map[uint32]*Endpoint

	handlersMu sync.Mutex
	handlers   map[msg.Ordinal]Handler

	seqMu sync.Mutex
	seq   uint32
}

// NewCore constructs an empty multiplexer core. A nil logger defaults
// to slog.Default().
func NewCore(log *slog.Logger) *Core {
	if log == nil {
		log = slog.Default()
	}
	return &Core{
		log:       log,
		endpoints: make(map[uint32]*Endpoint),
		handlers:  make(map[msg.Ordinal]Handler),
	}
}

// RegisterHandler installs h as the handler for ordinal o, replacing
// any previous handler. It rejects invalid ordinals using the
// corrected form of handler_register's range check (msg.Ordinal.Valid,
// spec.md §9 REDESIGN FLAGS): the original accepted every
// registration, in or out of range, because its bounds check could
// never be true.
func (c *Core) RegisterHandler(o msg.Ordinal, h Handler) error {
	if !o.Valid() {
		return msg.ErrUnknownOrdinal
	}
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.handlers[o] = h
	return nil
}

func (c *Core) handlerFor(o msg.Ordinal) (Handler, bool) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	h, ok := c.handlers[o]
	return h, ok
}

// Dispatch runs the registered handler for m's ordinal, as the
// KernelHandlerPort write path does (spec.md §4.3).
func (c *Core) Dispatch(src uint32, m msg.Message) (msg.Message, error) {
	h, ok := c.handlerFor(m.Envelope().Type)
	if !ok {
		return nil, ErrNoHandler
	}
	return h(src, m)
}

// dispatchRaw decodes payload, runs it through Dispatch, and queues
// the encoded reply back onto src's own endpoint for a subsequent
// Read (spec.md §4.3 "write to port 0 decodes, dispatches, and queues
// the reply for the caller"). A handler's rejection is encoded as a
// ShapeResult reply rather than surfaced as a transport error, so the
// caller always observes it through Read.
func (c *Core) dispatchRaw(src uint32, payload []byte) error {
	m, err := msg.Deserialize(payload)
	if err != nil {
		return err
	}
	defer msg.Release(m)

	reply, derr := c.Dispatch(src, m)
	if derr != nil {
		var rejected *HandlerRejected
		if errors.As(derr, &rejected) {
			rs := &msg.ShapeResult{Result: rejected.Code}
			rs.Envelope().Type = m.Envelope().Type
			reply = rs
		} else {
			return derr
		}
	}
	if reply == nil {
		return nil
	}
	defer msg.Release(reply)

	encoded, err := msg.Serialize(reply)
	if err != nil {
		return err
	}

	srcEp, ok := c.lookup(src)
	if !ok {
		return ErrBadPort
	}
	return srcEp.enqueue(Frame{SrcPort: KernelHandlerPort, DstPort: src, Payload: encoded})
}

// NextSeq returns the next monotonically increasing event id. Wrap-
// around is not an error (spec.md §7 "only sequence-wrap... log
// warnings without returning errors") but is logged, since a wrapped
// event id can alias an older in-flight request.
func (c *Core) NextSeq() uint32 {
	c.seqMu.Lock()
	defer c.seqMu.Unlock()
	c.seq++
	if c.seq == 0 {
		c.log.Warn("ctrldev: event sequence counter wrapped")
	}
	return c.seq
}

func (c *Core) register(e *Endpoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.endpoints[e.port]; ok {
		if !existing.isFlushed() {
			return ErrPortInUse
		}
		// A flushed occupant has relinquished the port; evict it so
		// the new bind can take over (spec.md §8 scenario F).
		delete(c.endpoints, e.port)
	}
	c.endpoints[e.port] = e
	return nil
}

func (c *Core) lookup(port uint32) (*Endpoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.endpoints[port]
	return e, ok
}

// Deliver routes f to its destination endpoint's queue exactly as an
// Endpoint.Write to a non-kernel port would. It is exported for
// out-of-band producers — namely mgmtsdu's receive-side worker
// deferral (spec.md §4.4) — that enqueue frames without going through
// a writer endpoint of their own.
func (c *Core) Deliver(f Frame) error {
	target, ok := c.lookup(f.DstPort)
	if !ok {
		return ErrBadPort
	}
	return target.enqueue(f)
}

func (c *Core) unregister(e *Endpoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.endpoints[e.port] == e {
		delete(c.endpoints, e.port)
	}
	if e.port == IPCManagerPort {
		c.log.Warn("ctrldev: IPC Manager endpoint closed")
	}
}
