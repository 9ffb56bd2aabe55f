package msg

import "github.com/irati-go/ctrlplane/wire"

// QoSCube bundles a QoS profile with the DTP/DTCP configuration that
// realizes it (spec.md §4.1 "QoS cube").
type QoSCube struct {
	ID                uint32
	Name              string
	AverageBandwidth  uint32
	AverageSDUBandwidth uint32
	PeakBandwidthDuration uint32
	UndetectedBitErrorRate uint32
	PartialDelivery   bool
	OrderedDelivery   bool
	MaxAllowableGap   int32
	Delay             uint32
	Jitter            uint32
	DTP               *DTPConfig
	DTCP              *DTCPConfig
}

func qosCubeWireLen(q *QoSCube) int {
	if q == nil {
		q = &QoSCube{}
	}
	n := 4 + stringWireLen(q.Name) + 4*5 + 1 + 1 + 4 + 4
	n += dtpConfigWireLen(q.DTP) + dtcpConfigWireLen(q.DTCP)
	return n
}

func qosCubeEncode(w *wire.Writer, q *QoSCube) {
	if q == nil {
		q = &QoSCube{}
	}
	w.U32(q.ID)
	encodeString(w, q.Name)
	w.U32(q.AverageBandwidth)
	w.U32(q.AverageSDUBandwidth)
	w.U32(q.PeakBandwidthDuration)
	w.U32(q.UndetectedBitErrorRate)
	w.Bool(q.PartialDelivery)
	w.Bool(q.OrderedDelivery)
	w.I32(q.MaxAllowableGap)
	w.U32(q.Delay)
	w.U32(q.Jitter)
	dtpConfigEncode(w, q.DTP)
	dtcpConfigEncode(w, q.DTCP)
}

func qosCubeDecode(r *wire.Reader) (*QoSCube, error) {
	q := &QoSCube{}
	var err error
	if q.ID, err = r.U32(); err != nil {
		return nil, err
	}
	if q.Name, err = decodeString(r); err != nil {
		return nil, err
	}
	if q.AverageBandwidth, err = r.U32(); err != nil {
		return nil, err
	}
	if q.AverageSDUBandwidth, err = r.U32(); err != nil {
		return nil, err
	}
	if q.PeakBandwidthDuration, err = r.U32(); err != nil {
		return nil, err
	}
	if q.UndetectedBitErrorRate, err = r.U32(); err != nil {
		return nil, err
	}
	if q.PartialDelivery, err = r.Bool(); err != nil {
		return nil, err
	}
	if q.OrderedDelivery, err = r.Bool(); err != nil {
		return nil, err
	}
	if q.MaxAllowableGap, err = r.I32(); err != nil {
		return nil, err
	}
	if q.Delay, err = r.U32(); err != nil {
		return nil, err
	}
	if q.Jitter, err = r.U32(); err != nil {
		return nil, err
	}
	if q.DTP, err = dtpConfigDecode(r); err != nil {
		return nil, err
	}
	if q.DTCP, err = dtcpConfigDecode(r); err != nil {
		return nil, err
	}
	return q, nil
}

func freeQoSCube(q *QoSCube) {
	if q == nil {
		return
	}
	freeDTPConfig(q.DTP)
	freeDTCPConfig(q.DTCP)
}
