package msg

import (
	"errors"

	"github.com/irati-go/ctrlplane/wire"
)

// wrapTruncated maps the wire package's kind-agnostic ErrTruncated
// into the codec-level ErrTruncatedInput (spec.md §7), so callers of
// this package only ever see the msg error taxonomy.
func wrapTruncated(err error) error {
	if errors.Is(err, wire.ErrTruncated) {
		return ErrTruncatedInput
	}
	return err
}

// New constructs the zero-value record for ordinal o with its
// envelope's Type field set, or ErrUnknownOrdinal if o names nothing
// in the registry.
func New(o Ordinal) (Message, error) {
	ctor, ok := registry[o]
	if !ok {
		return nil, ErrUnknownOrdinal
	}
	m := ctor()
	m.Envelope().Type = o
	return m, nil
}

// LayoutDescriptor is the generated layout table entry for one
// ordinal: the fixed prefix size (envelope + scalars) and, in
// canonical kind order, how many sub-object slots of each kind follow
// it. It is derived directly from the shape's slot accessors rather
// than hand-duplicated, so it can never drift from the walker that
// uses the same accessors (spec.md §8 property 3, the four-way
// agreement test).
type LayoutDescriptor struct {
	CopyLen int
	Counts  [wire.KindBuffer + 1]int
}

func describe(m Message) LayoutDescriptor {
	var d LayoutDescriptor
	d.CopyLen = envelopeWireLen + m.scalarLen()
	d.Counts[wire.KindName] = len(m.nameSlots())
	d.Counts[wire.KindString] = len(m.stringSlots())
	d.Counts[wire.KindFlowSpec] = len(m.flowSpecSlots())
	d.Counts[wire.KindDIFConfig] = len(m.difConfigSlots())
	d.Counts[wire.KindDTPConfig] = len(m.dtpConfigSlots())
	d.Counts[wire.KindDTCPConfig] = len(m.dtcpConfigSlots())
	d.Counts[wire.KindQueryRIBResp] = len(m.queryRIBRespSlots())
	d.Counts[wire.KindPFFEntryList] = len(m.pffEntryListSlots())
	d.Counts[wire.KindSDUPCryptoState] = len(m.sdupCryptoStateSlots())
	d.Counts[wire.KindDIFProperties] = len(m.difPropertiesListSlots())
	d.Counts[wire.KindIPCPNeighborList] = len(m.ipcpNeighborListSlots())
	d.Counts[wire.KindMediaReport] = len(m.mediaReportSlots())
	d.Counts[wire.KindBuffer] = len(m.bufferSlots())
	return d
}

// Layout returns the layout descriptor for ordinal o.
func Layout(o Ordinal) (LayoutDescriptor, error) {
	m, err := New(o)
	if err != nil {
		return LayoutDescriptor{}, err
	}
	return describe(m), nil
}

// Serlen computes the exact number of bytes Serialize(m) will write.
// This is the length pass of the layout walker (spec.md §4.2).
func Serlen(m Message) int {
	n := envelopeWireLen + m.scalarLen()
	for _, p := range m.nameSlots() {
		n += (*p).wireLen()
	}
	for _, p := range m.stringSlots() {
		n += stringWireLen(*p)
	}
	for _, p := range m.flowSpecSlots() {
		n += flowSpecWireLen(*p)
	}
	for _, p := range m.difConfigSlots() {
		n += difConfigWireLen(*p)
	}
	for _, p := range m.dtpConfigSlots() {
		n += dtpConfigWireLen(*p)
	}
	for _, p := range m.dtcpConfigSlots() {
		n += dtcpConfigWireLen(*p)
	}
	for _, p := range m.queryRIBRespSlots() {
		n += queryRIBRespWireLen(*p)
	}
	for _, p := range m.pffEntryListSlots() {
		n += pffEntryListWireLen(*p)
	}
	for _, p := range m.sdupCryptoStateSlots() {
		n += sdupCryptoStateWireLen(*p)
	}
	for _, p := range m.difPropertiesListSlots() {
		n += difPropertiesListWireLen(*p)
	}
	for _, p := range m.ipcpNeighborListSlots() {
		n += ipcpNeighborListWireLen(*p)
	}
	for _, p := range m.mediaReportSlots() {
		n += mediaReportWireLen(*p)
	}
	for _, p := range m.bufferSlots() {
		n += (*p).wireLen()
	}
	return n
}

func validateOversize(m Message) error {
	for _, p := range m.stringSlots() {
		if err := checkStringLen(*p); err != nil {
			return err
		}
	}
	for _, p := range m.nameSlots() {
		n := *p
		if n == nil {
			continue
		}
		for _, s := range [...]string{n.ProcessName, n.ProcessInstance, n.EntityName, n.EntityInstance} {
			if err := checkStringLen(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// Serialize is the encode pass: it copies the fixed prefix (envelope
// plus scalars) verbatim, then walks the canonical kind order once,
// invoking each declared sub-object's encoder against the same moving
// cursor (spec.md §4.2).
func Serialize(m Message) ([]byte, error) {
	if err := validateOversize(m); err != nil {
		return nil, err
	}
	w := wire.NewWriter(make([]byte, Serlen(m)))
	m.Envelope().encode(w)
	m.encodeScalars(w)
	for _, p := range m.nameSlots() {
		(*p).encode(w)
	}
	for _, p := range m.stringSlots() {
		encodeString(w, *p)
	}
	for _, p := range m.flowSpecSlots() {
		flowSpecEncode(w, *p)
	}
	for _, p := range m.difConfigSlots() {
		difConfigEncode(w, *p)
	}
	for _, p := range m.dtpConfigSlots() {
		dtpConfigEncode(w, *p)
	}
	for _, p := range m.dtcpConfigSlots() {
		dtcpConfigEncode(w, *p)
	}
	for _, p := range m.queryRIBRespSlots() {
		queryRIBRespEncode(w, *p)
	}
	for _, p := range m.pffEntryListSlots() {
		pffEntryListEncode(w, *p)
	}
	for _, p := range m.sdupCryptoStateSlots() {
		sdupCryptoStateEncode(w, *p)
	}
	for _, p := range m.difPropertiesListSlots() {
		difPropertiesListEncode(w, *p)
	}
	for _, p := range m.ipcpNeighborListSlots() {
		ipcpNeighborListEncode(w, *p)
	}
	for _, p := range m.mediaReportSlots() {
		mediaReportEncode(w, *p)
	}
	for _, p := range m.bufferSlots() {
		(*p).encode(w)
	}
	return w.Bytes(), nil
}

// Deserialize is the decode pass: it reads the envelope to select the
// ordinal's shape, copies the fixed scalar prefix, then walks the
// same canonical kind order allocating each declared sub-object. Any
// failure unwinds everything decoded so far via Release before
// returning (spec.md §4.2, §7 "AllocFailed... unwinds via deep-free").
// The consumed byte count must equal len(data) exactly; residue is
// ErrTrailingBytes.
func Deserialize(data []byte) (Message, error) {
	r := wire.NewReader(data)
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, wrapTruncated(err)
	}
	if !env.Type.Valid() {
		return nil, ErrUnknownOrdinal
	}
	ctor, ok := registry[env.Type]
	if !ok {
		return nil, ErrUnknownOrdinal
	}
	m := ctor()
	*m.Envelope() = env

	fail := func(err error) (Message, error) {
		Release(m)
		return nil, wrapTruncated(err)
	}

	if err := m.decodeScalars(r); err != nil {
		return fail(err)
	}
	for _, p := range m.nameSlots() {
		if *p, err = decodeName(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.stringSlots() {
		if *p, err = decodeString(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.flowSpecSlots() {
		if *p, err = flowSpecDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.difConfigSlots() {
		if *p, err = difConfigDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.dtpConfigSlots() {
		if *p, err = dtpConfigDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.dtcpConfigSlots() {
		if *p, err = dtcpConfigDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.queryRIBRespSlots() {
		if *p, err = queryRIBRespDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.pffEntryListSlots() {
		if *p, err = pffEntryListDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.sdupCryptoStateSlots() {
		if *p, err = sdupCryptoStateDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.difPropertiesListSlots() {
		if *p, err = difPropertiesListDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.ipcpNeighborListSlots() {
		if *p, err = ipcpNeighborListDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.mediaReportSlots() {
		if *p, err = mediaReportDecode(r); err != nil {
			return fail(err)
		}
	}
	for _, p := range m.bufferSlots() {
		if *p, err = decodeBuffer(r); err != nil {
			return fail(err)
		}
	}
	if r.Remaining() != 0 {
		return fail(ErrTrailingBytes)
	}
	return m, nil
}

// Release is the deep-free pass: it walks the same canonical kind
// order as Serialize/Deserialize and frees every sub-object slot. It
// is safe to call on a partially decoded message (every slot starts
// nil and free funcs no-op on nil).
func Release(m Message) {
	for _, p := range m.nameSlots() {
		freeName(*p)
		*p = nil
	}
	for _, p := range m.stringSlots() {
		*p = ""
	}
	for _, p := range m.flowSpecSlots() {
		*p = nil
	}
	for _, p := range m.difConfigSlots() {
		freeDIFConfig(*p)
		*p = nil
	}
	for _, p := range m.dtpConfigSlots() {
		freeDTPConfig(*p)
		*p = nil
	}
	for _, p := range m.dtcpConfigSlots() {
		freeDTCPConfig(*p)
		*p = nil
	}
	for _, p := range m.queryRIBRespSlots() {
		freeQueryRIBResp(*p)
		*p = nil
	}
	for _, p := range m.pffEntryListSlots() {
		freePFFEntryList(*p)
		*p = nil
	}
	for _, p := range m.sdupCryptoStateSlots() {
		freeSDUPCryptoState(*p)
		*p = nil
	}
	for _, p := range m.difPropertiesListSlots() {
		freeDIFPropertiesList(*p)
		*p = nil
	}
	for _, p := range m.ipcpNeighborListSlots() {
		freeIPCPNeighborList(*p)
		*p = nil
	}
	for _, p := range m.mediaReportSlots() {
		freeMediaReport(*p)
		*p = nil
	}
	for _, p := range m.bufferSlots() {
		freeBuffer(*p)
		*p = nil
	}
}
