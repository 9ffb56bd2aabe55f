package mgmtsdu

import (
	"bytes"
	"context"
	"testing"

	"github.com/irati-go/ctrlplane/ctrldev"
	"github.com/irati-go/ctrlplane/msg"
)

func TestEncapsulateDecapsulateRoundTrip(t *testing.T) {
	payload := []byte("tunneled management PDU")
	framed := Encapsulate(7, 9, payload)

	h, got, err := Decapsulate(framed)
	if err != nil {
		t.Fatalf("decapsulate: %v", err)
	}
	if h.Type != PDUTypeManagement || h.QoS != ManagementQoS {
		t.Fatalf("header = %+v, want type=%d qos=%d", h, PDUTypeManagement, ManagementQoS)
	}
	if h.SrcAddr != 7 || h.DstAddr != 9 {
		t.Fatalf("addrs = %d/%d, want 7/9", h.SrcAddr, h.DstAddr)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}
}

func TestWorkerDeliverEnqueuesNotification(t *testing.T) {
	core := ctrldev.NewCore(nil)
	ipcp := ctrldev.Open(core)
	if err := ipcp.Bind(55); err != nil {
		t.Fatalf("bind: %v", err)
	}

	w := NewWorker(core)
	pdu := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := w.Deliver(55, pdu); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	buf := make([]byte, 256)
	n, err := ipcp.Read(context.Background(), buf, false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	m, err := msg.Deserialize(buf[:n])
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	defer msg.Release(m)

	sdu, ok := m.(*msg.ShapeManagementSDU)
	if !ok {
		t.Fatalf("got %T, want *ShapeManagementSDU", m)
	}
	if sdu.PortID != 55 {
		t.Fatalf("PortID = %d, want 55", sdu.PortID)
	}
	if sdu.Payload == nil || !bytes.Equal(sdu.Payload.Data, pdu) {
		t.Fatalf("payload = %v, want %v", sdu.Payload, pdu)
	}
}

func TestWorkerDeliverUnknownPortFails(t *testing.T) {
	core := ctrldev.NewCore(nil)
	w := NewWorker(core)
	if err := w.Deliver(999, []byte{1}); err != ctrldev.ErrBadPort {
		t.Fatalf("got %v, want ErrBadPort", err)
	}
}
