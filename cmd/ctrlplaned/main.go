// Command ctrlplaned wires a ctrldev.Core with one kernel handler
// registered and exposes two logical endpoints (the kernel
// handler port and an IPC-Manager port), demonstrating the write/read
// cycle a real IPC Manager would drive over the control device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/irati-go/ctrlplane/ctrldev"
	"github.com/irati-go/ctrlplane/msg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	core := ctrldev.NewCore(log)
	registerHandlers(core, log)

	kernel := ctrldev.Open(core)
	if err := kernel.Bind(ctrldev.KernelHandlerPort); err != nil {
		return fmt.Errorf("bind kernel port: %w", err)
	}
	defer kernel.Release()

	ipcm := ctrldev.Open(core)
	if err := ipcm.Bind(ctrldev.IPCManagerPort); err != nil {
		return fmt.Errorf("bind IPC-Manager port: %w", err)
	}
	defer ipcm.Release()

	req, err := msg.New(msg.AssignToDIFRequest)
	if err != nil {
		return err
	}
	req.(*msg.ShapeAssignToDIF).Config = &msg.DIFConfig{Address: 1}
	encoded, err := msg.Serialize(req)
	msg.Release(req)
	if err != nil {
		return err
	}

	if err := ipcm.Write(ctrldev.KernelHandlerPort, encoded); err != nil {
		return fmt.Errorf("write request: %w", err)
	}

	buf := make([]byte, 4096)
	n, err := ipcm.Read(context.Background(), buf, true)
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	reply, err := msg.Deserialize(buf[:n])
	if err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	defer msg.Release(reply)

	log.Info("assign-to-dif replied", "result", reply.(*msg.ShapeResult).Result)
	return nil
}

// registerHandlers installs the kernel-side handler table the IPC
// Manager's requests are dispatched against. A real deployment would
// back these with the IPCP core; here ASSIGN_TO_DIF_REQUEST is
// accepted unconditionally to demonstrate the write/read cycle.
func registerHandlers(core *ctrldev.Core, log *slog.Logger) {
	core.RegisterHandler(msg.AssignToDIFRequest, func(src uint32, m msg.Message) (msg.Message, error) {
		req := m.(*msg.ShapeAssignToDIF)
		log.Debug("assign-to-dif", "src", src, "address", req.Config.Address)
		reply, err := msg.New(msg.AssignToDIFResponse)
		if err != nil {
			return nil, err
		}
		reply.(*msg.ShapeResult).Result = 0
		return reply, nil
	})
}
