package ctrldev

import (
	"testing"

	"github.com/irati-go/ctrlplane/msg"
)

func TestRegisterHandlerRejectsInvalidOrdinal(t *testing.T) {
	core := newTestCore()
	if err := core.RegisterHandler(msg.Min, func(uint32, msg.Message) (msg.Message, error) {
		return nil, nil
	}); err != msg.ErrUnknownOrdinal {
		t.Fatalf("got %v, want ErrUnknownOrdinal", err)
	}
}

func TestDispatchRawRoundTrip(t *testing.T) {
	core := newTestCore()
	core.RegisterHandler(msg.AssignToDIFRequest, func(src uint32, m msg.Message) (msg.Message, error) {
		req, ok := m.(*msg.ShapeAssignToDIF)
		if !ok {
			t.Fatalf("handler got %T, want *ShapeAssignToDIF", m)
		}
		reply, err := msg.New(msg.AssignToDIFResponse)
		if err != nil {
			t.Fatalf("msg.New: %v", err)
		}
		res := reply.(*msg.ShapeResult)
		if req.Config != nil && req.Config.Address != 0 {
			res.Result = 0
		} else {
			res.Result = -1
		}
		return reply, nil
	})

	kernel := Open(core)
	if err := kernel.Bind(KernelHandlerPort); err != nil {
		t.Fatalf("bind kernel port: %v", err)
	}
	caller := Open(core)
	if err := caller.Bind(100); err != nil {
		t.Fatalf("bind caller: %v", err)
	}

	req, err := msg.New(msg.AssignToDIFRequest)
	if err != nil {
		t.Fatalf("msg.New request: %v", err)
	}
	req.(*msg.ShapeAssignToDIF).Config = &msg.DIFConfig{Address: 42}
	encoded, err := msg.Serialize(req)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	msg.Release(req)

	if err := caller.Write(KernelHandlerPort, encoded); err != nil {
		t.Fatalf("write to kernel port: %v", err)
	}

	buf := make([]byte, 256)
	n, err := caller.Read(nil, buf, false)
	if err != nil {
		t.Fatalf("read reply: %v", err)
	}
	reply, err := msg.Deserialize(buf[:n])
	if err != nil {
		t.Fatalf("deserialize reply: %v", err)
	}
	defer msg.Release(reply)
	res, ok := reply.(*msg.ShapeResult)
	if !ok {
		t.Fatalf("reply is %T, want *ShapeResult", reply)
	}
	if res.Result != 0 {
		t.Fatalf("result = %d, want 0", res.Result)
	}
}

func TestDispatchRawNoHandlerRegistered(t *testing.T) {
	core := newTestCore()

	kernel := Open(core)
	if err := kernel.Bind(KernelHandlerPort); err != nil {
		t.Fatalf("bind kernel port: %v", err)
	}
	caller := Open(core)
	if err := caller.Bind(101); err != nil {
		t.Fatalf("bind caller: %v", err)
	}

	req, err := msg.New(msg.AssignToDIFRequest)
	if err != nil {
		t.Fatalf("msg.New: %v", err)
	}
	encoded, err := msg.Serialize(req)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	msg.Release(req)

	if err := caller.Write(KernelHandlerPort, encoded); err != ErrNoHandler {
		t.Fatalf("got %v, want ErrNoHandler", err)
	}
}
