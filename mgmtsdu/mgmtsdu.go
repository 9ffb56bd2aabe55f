// Package mgmtsdu implements the out-of-band management-SDU side
// channel: the small framing header stamped on a management PDU
// before it is handed to the lower IPCP, and the worker-deferred path
// that turns an inbound kernel PDU into a queued notification without
// blocking the receive path on user wake-up (spec.md §4.4).
package mgmtsdu

import (
	"github.com/irati-go/ctrlplane/ctrldev"
	"github.com/irati-go/ctrlplane/msg"
	"github.com/irati-go/ctrlplane/wire"
)

// PDU type and QoS constants carried by Header, matching the values
// irati_kmsg_ipcp_mgmt_sdu's framing stamps on every management PDU.
const (
	PDUTypeManagement uint8 = 1
	ManagementQoS     uint8 = 1
)

// headerWireLen is Header's fixed on-wire size: type + qos + two
// u32 addresses.
const headerWireLen = 1 + 1 + 4 + 4

// Header is the small framing header prefixed to a management SDU's
// payload before it is handed to the lower IPCP (spec.md §4.4 "small
// framing header... before handing it to the lower IPCP").
type Header struct {
	Type    uint8
	QoS     uint8
	SrcAddr uint32
	DstAddr uint32
}

// Encapsulate prepends a management-SDU framing header (type =
// management, qos = 1) to payload, producing the bytes actually
// handed to the lower IPCP.
func Encapsulate(srcAddr, dstAddr uint32, payload []byte) []byte {
	w := wire.NewWriter(make([]byte, headerWireLen+len(payload)))
	w.U8(PDUTypeManagement)
	w.U8(ManagementQoS)
	w.U32(srcAddr)
	w.U32(dstAddr)
	w.Raw(payload)
	return w.Bytes()
}

// Decapsulate splits a framed PDU back into its header and payload.
func Decapsulate(framed []byte) (Header, []byte, error) {
	r := wire.NewReader(framed)
	var h Header
	var err error
	if h.Type, err = r.U8(); err != nil {
		return Header{}, nil, err
	}
	if h.QoS, err = r.U8(); err != nil {
		return Header{}, nil, err
	}
	if h.SrcAddr, err = r.U32(); err != nil {
		return Header{}, nil, err
	}
	if h.DstAddr, err = r.U32(); err != nil {
		return Header{}, nil, err
	}
	payload, err := r.Raw(r.Remaining())
	if err != nil {
		return Header{}, nil, err
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return h, out, nil
}

// Worker defers delivery of inbound management PDUs so the kernel
// data path never blocks on user-space wake-up (spec.md §4.4, steps
// 1-3: copy the payload, build a notification, enqueue it). It holds
// no state of its own beyond the core it delivers into; Deliver does
// the copy-and-enqueue synchronously on whatever goroutine the kernel
// data path schedules it on (the original source's deferred-work
// item, here just an ordinary call the caller may run on its own
// worker goroutine).
type Worker struct {
	core *ctrldev.Core
}

// NewWorker builds a management-SDU worker bound to core's endpoint
// registry.
func NewWorker(core *ctrldev.Core) *Worker {
	return &Worker{core: core}
}

// Deliver implements the receive-side deferral: it copies pdu into a
// freshly allocated buffer, builds a ManagementSDUReadNotif addressed
// to dstPort, and enqueues it via the standard write path exactly as
// a peer endpoint's write would (spec.md §4.4 steps 1-3).
func (w *Worker) Deliver(dstPort uint32, pdu []byte) error {
	notif, err := msg.New(msg.ManagementSDUReadNotif)
	if err != nil {
		return err
	}
	defer msg.Release(notif)

	cp := make([]byte, len(pdu))
	copy(cp, pdu)

	sdu := notif.(*msg.ShapeManagementSDU)
	sdu.PortID = dstPort
	sdu.Payload = &msg.Buffer{Data: cp}

	encoded, err := msg.Serialize(notif)
	if err != nil {
		return err
	}

	return w.core.Deliver(ctrldev.Frame{SrcPort: ctrldev.KernelHandlerPort, DstPort: dstPort, Payload: encoded})
}
