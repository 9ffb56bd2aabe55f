package msg

import "github.com/irati-go/ctrlplane/wire"

// PortIDAltList is one alternative-port-id group inside a PFF entry:
// a set of ports any of which may be used to forward a matching PDU.
type PortIDAltList struct {
	PortIDs []uint32
}

func portIDAltListWireLen(l *PortIDAltList) int {
	if l == nil {
		return 2
	}
	return 2 + 4*len(l.PortIDs)
}

func portIDAltListEncode(w *wire.Writer, l *PortIDAltList) {
	if l == nil {
		l = &PortIDAltList{}
	}
	w.U16(uint16(len(l.PortIDs)))
	for _, p := range l.PortIDs {
		w.U32(p)
	}
}

func portIDAltListDecode(r *wire.Reader) (*PortIDAltList, error) {
	l := &PortIDAltList{}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	l.PortIDs = make([]uint32, count)
	for i := range l.PortIDs {
		if l.PortIDs[i], err = r.U32(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// PFFEntry is one PDU-forwarding-table row: a destination address,
// its QoS id, a forwarding cost, and the alternative port-id groups
// that may carry PDUs matching it.
type PFFEntry struct {
	Address  uint32
	QoSID    uint32
	Cost     uint32
	PortAlts []*PortIDAltList
}

func pffEntryWireLen(e *PFFEntry) int {
	if e == nil {
		e = &PFFEntry{}
	}
	n := 4 + 4 + 4 + 2
	for _, a := range e.PortAlts {
		n += portIDAltListWireLen(a)
	}
	return n
}

func pffEntryEncode(w *wire.Writer, e *PFFEntry) {
	if e == nil {
		e = &PFFEntry{}
	}
	w.U32(e.Address)
	w.U32(e.QoSID)
	w.U32(e.Cost)
	w.U16(uint16(len(e.PortAlts)))
	for _, a := range e.PortAlts {
		portIDAltListEncode(w, a)
	}
}

func pffEntryDecode(r *wire.Reader) (*PFFEntry, error) {
	e := &PFFEntry{}
	var err error
	if e.Address, err = r.U32(); err != nil {
		return nil, err
	}
	if e.QoSID, err = r.U32(); err != nil {
		return nil, err
	}
	if e.Cost, err = r.U32(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	e.PortAlts = make([]*PortIDAltList, count)
	for i := range e.PortAlts {
		if e.PortAlts[i], err = portIDAltListDecode(r); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// PFFEntryList is the sub-object kind wire.KindPFFEntryList: a
// u16-prefixed sequence of PFFEntry records, in insertion order
// (spec.md §9 "owned sequences... insertion order preserved").
type PFFEntryList struct {
	Entries []*PFFEntry
}

func pffEntryListWireLen(l *PFFEntryList) int {
	if l == nil {
		return 2
	}
	n := 2
	for _, e := range l.Entries {
		n += pffEntryWireLen(e)
	}
	return n
}

func pffEntryListEncode(w *wire.Writer, l *PFFEntryList) {
	if l == nil {
		l = &PFFEntryList{}
	}
	w.U16(uint16(len(l.Entries)))
	for _, e := range l.Entries {
		pffEntryEncode(w, e)
	}
}

func pffEntryListDecode(r *wire.Reader) (*PFFEntryList, error) {
	l := &PFFEntryList{}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	l.Entries = make([]*PFFEntry, count)
	for i := range l.Entries {
		if l.Entries[i], err = pffEntryDecode(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func freePFFEntryList(l *PFFEntryList) {
	if l == nil {
		return
	}
	l.Entries = nil
}
