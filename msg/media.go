package msg

import "github.com/irati-go/ctrlplane/wire"

// MediaDIFInfo associates a supporting DIF with the base stations
// currently reachable through it.
type MediaDIFInfo struct {
	DIFName             *Name
	AvailableBaseStations []uint32
}

func mediaDIFInfoWireLen(m *MediaDIFInfo) int {
	if m == nil {
		m = &MediaDIFInfo{}
	}
	return m.DIFName.wireLen() + 2 + 4*len(m.AvailableBaseStations)
}

func mediaDIFInfoEncode(w *wire.Writer, m *MediaDIFInfo) {
	if m == nil {
		m = &MediaDIFInfo{}
	}
	m.DIFName.encode(w)
	w.U16(uint16(len(m.AvailableBaseStations)))
	for _, bs := range m.AvailableBaseStations {
		w.U32(bs)
	}
}

func mediaDIFInfoDecode(r *wire.Reader) (*MediaDIFInfo, error) {
	m := &MediaDIFInfo{}
	var err error
	if m.DIFName, err = decodeName(r); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	m.AvailableBaseStations = make([]uint32, count)
	for i := range m.AvailableBaseStations {
		if m.AvailableBaseStations[i], err = r.U32(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func freeMediaDIFInfo(m *MediaDIFInfo) {
	if m == nil {
		return
	}
	freeName(m.DIFName)
	m.AvailableBaseStations = nil
}

// MediaReport is the sub-object kind wire.KindMediaReport: a scan
// report an IPCP emits naming which base stations are visible through
// which supporting DIFs.
type MediaReport struct {
	IPCPID            uint16
	DIFName           *Name
	CurrentBaseStation uint32
	Entries           []*MediaDIFInfo
}

func mediaReportWireLen(m *MediaReport) int {
	if m == nil {
		m = &MediaReport{}
	}
	n := 2 + m.DIFName.wireLen() + 4 + 2
	for _, e := range m.Entries {
		n += mediaDIFInfoWireLen(e)
	}
	return n
}

func mediaReportEncode(w *wire.Writer, m *MediaReport) {
	if m == nil {
		m = &MediaReport{}
	}
	w.U16(m.IPCPID)
	m.DIFName.encode(w)
	w.U32(m.CurrentBaseStation)
	w.U16(uint16(len(m.Entries)))
	for _, e := range m.Entries {
		mediaDIFInfoEncode(w, e)
	}
}

func mediaReportDecode(r *wire.Reader) (*MediaReport, error) {
	m := &MediaReport{}
	var err error
	if m.IPCPID, err = r.U16(); err != nil {
		return nil, err
	}
	if m.DIFName, err = decodeName(r); err != nil {
		return nil, err
	}
	if m.CurrentBaseStation, err = r.U32(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	m.Entries = make([]*MediaDIFInfo, count)
	for i := range m.Entries {
		if m.Entries[i], err = mediaDIFInfoDecode(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func freeMediaReport(m *MediaReport) {
	if m == nil {
		return
	}
	freeName(m.DIFName)
	for _, e := range m.Entries {
		freeMediaDIFInfo(e)
	}
	m.Entries = nil
}
