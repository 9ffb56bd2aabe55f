package msg

import "github.com/irati-go/ctrlplane/wire"

// pciOffsetTableWidth is the fixed width of the optional PCI-offset
// table: either absent (length 0) or one machine word (spec.md §4.1
// "u8 length = 0 or sizeof(size_t)"). This reimplementation targets a
// single build, so the word size is fixed at 8 bytes (64-bit), same
// as the host-native-width wire note in spec.md §6.
const pciOffsetTableWidth = 8

// DTConstants are the DIF-wide data-transfer constants every EFCP
// connection inherits (field widths, PDU size/lifetime bounds).
type DTConstants struct {
	AddressLength        uint16
	CEPIDLength          uint16
	LengthLength         uint16
	PortIDLength         uint16
	QoSIDLength          uint16
	SequenceNumberLength uint16
	MaxPDUSize           uint32
	MaxPDULifetime       uint32
	DIFIntegrity         bool
	RateBased            bool
}

func dtConstantsWireLen(*DTConstants) int { return 2*6 + 4*2 + 1 + 1 }

func dtConstantsEncode(w *wire.Writer, c *DTConstants) {
	if c == nil {
		c = &DTConstants{}
	}
	w.U16(c.AddressLength)
	w.U16(c.CEPIDLength)
	w.U16(c.LengthLength)
	w.U16(c.PortIDLength)
	w.U16(c.QoSIDLength)
	w.U16(c.SequenceNumberLength)
	w.U32(c.MaxPDUSize)
	w.U32(c.MaxPDULifetime)
	w.Bool(c.DIFIntegrity)
	w.Bool(c.RateBased)
}

func dtConstantsDecode(r *wire.Reader) (*DTConstants, error) {
	c := &DTConstants{}
	var err error
	if c.AddressLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.CEPIDLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.LengthLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.PortIDLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.QoSIDLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.SequenceNumberLength, err = r.U16(); err != nil {
		return nil, err
	}
	if c.MaxPDUSize, err = r.U32(); err != nil {
		return nil, err
	}
	if c.MaxPDULifetime, err = r.U32(); err != nil {
		return nil, err
	}
	if c.DIFIntegrity, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.RateBased, err = r.Bool(); err != nil {
		return nil, err
	}
	return c, nil
}

// EFCPConfig is the EFCP layer configuration embedded in DIFConfig:
// DT constants, the policy applied when a flow carries no matching
// QoS cube, an optional fixed-width PCI-offset table, and the DIF's
// catalogue of QoS cubes.
type EFCPConfig struct {
	Constants         *DTConstants
	UnknownFlowPolicy *Policy
	PCIOffsetTable    []byte // nil or exactly pciOffsetTableWidth bytes
	QoSCubes          []*QoSCube
}

func efcpConfigWireLen(c *EFCPConfig) int {
	if c == nil {
		c = &EFCPConfig{}
	}
	n := dtConstantsWireLen(c.Constants) + policyWireLen(c.UnknownFlowPolicy)
	n += 1 + len(c.PCIOffsetTable)
	n += 2
	for _, q := range c.QoSCubes {
		n += qosCubeWireLen(q)
	}
	return n
}

func efcpConfigEncode(w *wire.Writer, c *EFCPConfig) {
	if c == nil {
		c = &EFCPConfig{}
	}
	dtConstantsEncode(w, c.Constants)
	policyEncode(w, c.UnknownFlowPolicy)
	w.U8(uint8(len(c.PCIOffsetTable)))
	w.Raw(c.PCIOffsetTable)
	w.U16(uint16(len(c.QoSCubes)))
	for _, q := range c.QoSCubes {
		qosCubeEncode(w, q)
	}
}

func efcpConfigDecode(r *wire.Reader) (*EFCPConfig, error) {
	c := &EFCPConfig{}
	var err error
	if c.Constants, err = dtConstantsDecode(r); err != nil {
		return nil, err
	}
	if c.UnknownFlowPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	tableLen, err := r.U8()
	if err != nil {
		return nil, err
	}
	if tableLen != 0 {
		raw, err := r.Raw(int(tableLen))
		if err != nil {
			return nil, err
		}
		c.PCIOffsetTable = append([]byte(nil), raw...)
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	c.QoSCubes = make([]*QoSCube, count)
	for i := range c.QoSCubes {
		if c.QoSCubes[i], err = qosCubeDecode(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func freeEFCPConfig(c *EFCPConfig) {
	if c == nil {
		return
	}
	freePolicy(c.UnknownFlowPolicy)
	c.PCIOffsetTable = nil
	for _, q := range c.QoSCubes {
		freeQoSCube(q)
	}
	c.QoSCubes = nil
}
