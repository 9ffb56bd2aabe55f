package msg

import "github.com/irati-go/ctrlplane/wire"

// IPCPNeighbor is one enrolled neighbor record: its name, the DIF
// supporting the (N-1) connectivity to it, its addresses, enrollment
// timers, and the names of every DIF known to support reaching it.
type IPCPNeighbor struct {
	Name                  *Name
	SupportingDIFName     *Name
	Address               uint32
	OldAddress            uint32
	AverageRTTInMs        uint32
	LastHeardFromTimeMs   int64
	Enrolled              bool
	UnderlyingPortID      uint32
	NumberOfEnrollmentAttempts uint32
	SupportingDIFNames    []*Name
}

func ipcpNeighborWireLen(n *IPCPNeighbor) int {
	if n == nil {
		n = &IPCPNeighbor{}
	}
	size := n.Name.wireLen() + n.SupportingDIFName.wireLen()
	size += 4 + 4 + 4 + 8 + 1 + 4 + 4 + 2
	for _, d := range n.SupportingDIFNames {
		size += d.wireLen()
	}
	return size
}

func ipcpNeighborEncode(w *wire.Writer, n *IPCPNeighbor) {
	if n == nil {
		n = &IPCPNeighbor{}
	}
	n.Name.encode(w)
	n.SupportingDIFName.encode(w)
	w.U32(n.Address)
	w.U32(n.OldAddress)
	w.U32(n.AverageRTTInMs)
	w.I64(n.LastHeardFromTimeMs)
	w.Bool(n.Enrolled)
	w.U32(n.UnderlyingPortID)
	w.U32(n.NumberOfEnrollmentAttempts)
	w.U16(uint16(len(n.SupportingDIFNames)))
	for _, d := range n.SupportingDIFNames {
		d.encode(w)
	}
}

func ipcpNeighborDecode(r *wire.Reader) (*IPCPNeighbor, error) {
	n := &IPCPNeighbor{}
	var err error
	if n.Name, err = decodeName(r); err != nil {
		return nil, err
	}
	if n.SupportingDIFName, err = decodeName(r); err != nil {
		return nil, err
	}
	if n.Address, err = r.U32(); err != nil {
		return nil, err
	}
	if n.OldAddress, err = r.U32(); err != nil {
		return nil, err
	}
	if n.AverageRTTInMs, err = r.U32(); err != nil {
		return nil, err
	}
	if n.LastHeardFromTimeMs, err = r.I64(); err != nil {
		return nil, err
	}
	if n.Enrolled, err = r.Bool(); err != nil {
		return nil, err
	}
	if n.UnderlyingPortID, err = r.U32(); err != nil {
		return nil, err
	}
	if n.NumberOfEnrollmentAttempts, err = r.U32(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	n.SupportingDIFNames = make([]*Name, count)
	for i := range n.SupportingDIFNames {
		if n.SupportingDIFNames[i], err = decodeName(r); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func freeIPCPNeighbor(n *IPCPNeighbor) {
	if n == nil {
		return
	}
	freeName(n.Name)
	freeName(n.SupportingDIFName)
	for _, d := range n.SupportingDIFNames {
		freeName(d)
	}
	n.SupportingDIFNames = nil
}

// IPCPNeighborList is the sub-object kind wire.KindIPCPNeighborList: a
// u16-prefixed sequence of neighbor records.
type IPCPNeighborList struct {
	Neighbors []*IPCPNeighbor
}

func ipcpNeighborListWireLen(l *IPCPNeighborList) int {
	if l == nil {
		return 2
	}
	n := 2
	for _, nb := range l.Neighbors {
		n += ipcpNeighborWireLen(nb)
	}
	return n
}

func ipcpNeighborListEncode(w *wire.Writer, l *IPCPNeighborList) {
	if l == nil {
		l = &IPCPNeighborList{}
	}
	w.U16(uint16(len(l.Neighbors)))
	for _, nb := range l.Neighbors {
		ipcpNeighborEncode(w, nb)
	}
}

func ipcpNeighborListDecode(r *wire.Reader) (*IPCPNeighborList, error) {
	l := &IPCPNeighborList{}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	l.Neighbors = make([]*IPCPNeighbor, count)
	for i := range l.Neighbors {
		if l.Neighbors[i], err = ipcpNeighborDecode(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func freeIPCPNeighborList(l *IPCPNeighborList) {
	if l == nil {
		return
	}
	for _, nb := range l.Neighbors {
		freeIPCPNeighbor(nb)
	}
	l.Neighbors = nil
}
