package msg

import "github.com/irati-go/ctrlplane/wire"

// ConfigEntry is one (name, value) pair in a DIF configuration's
// named-parameter list.
type ConfigEntry struct {
	Name  string
	Value string
}

func configEntryWireLen(e ConfigEntry) int { return stringWireLen(e.Name) + stringWireLen(e.Value) }

func configEntryEncode(w *wire.Writer, e ConfigEntry) {
	encodeString(w, e.Name)
	encodeString(w, e.Value)
}

func configEntryDecode(r *wire.Reader) (ConfigEntry, error) {
	var e ConfigEntry
	var err error
	if e.Name, err = decodeString(r); err != nil {
		return e, err
	}
	if e.Value, err = decodeString(r); err != nil {
		return e, err
	}
	return e, nil
}

// GenericConfig is the shared shape of the seven component
// configurations DIFConfig embeds (RMT, flow-allocation, enrollment-
// task, namespace-management, routing, resource-allocation, security
// management): a selected policy set plus a named-parameter list. The
// distilled spec describes each of these only in terms of "a policy
// plus parameters"; rather than inventing seven near-identical struct
// definitions this type is reused and named per field in DIFConfig.
type GenericConfig struct {
	PolicySet *Policy
	Params    []ConfigEntry
}

func genericConfigWireLen(c *GenericConfig) int {
	if c == nil {
		c = &GenericConfig{}
	}
	n := policyWireLen(c.PolicySet) + 2
	for _, e := range c.Params {
		n += configEntryWireLen(e)
	}
	return n
}

func genericConfigEncode(w *wire.Writer, c *GenericConfig) {
	if c == nil {
		c = &GenericConfig{}
	}
	policyEncode(w, c.PolicySet)
	w.U16(uint16(len(c.Params)))
	for _, e := range c.Params {
		configEntryEncode(w, e)
	}
}

func genericConfigDecode(r *wire.Reader) (*GenericConfig, error) {
	c := &GenericConfig{}
	var err error
	if c.PolicySet, err = policyDecode(r); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	c.Params = make([]ConfigEntry, count)
	for i := range c.Params {
		if c.Params[i], err = configEntryDecode(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func freeGenericConfig(c *GenericConfig) {
	if c == nil {
		return
	}
	freePolicy(c.PolicySet)
	c.Params = nil
}

// DIFConfig is the sub-object kind wire.KindDIFConfig: the full
// configuration handed to an IPCP being assigned to a DIF. The seven
// component configs are always serialized in the fixed order named
// here (spec.md §4.1 "DIF config").
type DIFConfig struct {
	Address          uint32
	Params           []ConfigEntry
	EFCP             *EFCPConfig
	RMT              *GenericConfig
	FlowAllocation   *GenericConfig
	EnrollmentTask   *GenericConfig
	NamespaceManager *GenericConfig
	Routing          *GenericConfig
	ResourceAlloc    *GenericConfig
	SecurityManager  *GenericConfig
}

func difConfigWireLen(c *DIFConfig) int {
	if c == nil {
		c = &DIFConfig{}
	}
	n := 4 + 2
	for _, e := range c.Params {
		n += configEntryWireLen(e)
	}
	n += efcpConfigWireLen(c.EFCP)
	n += genericConfigWireLen(c.RMT)
	n += genericConfigWireLen(c.FlowAllocation)
	n += genericConfigWireLen(c.EnrollmentTask)
	n += genericConfigWireLen(c.NamespaceManager)
	n += genericConfigWireLen(c.Routing)
	n += genericConfigWireLen(c.ResourceAlloc)
	n += genericConfigWireLen(c.SecurityManager)
	return n
}

func difConfigEncode(w *wire.Writer, c *DIFConfig) {
	if c == nil {
		c = &DIFConfig{}
	}
	w.U32(c.Address)
	w.U16(uint16(len(c.Params)))
	for _, e := range c.Params {
		configEntryEncode(w, e)
	}
	efcpConfigEncode(w, c.EFCP)
	genericConfigEncode(w, c.RMT)
	genericConfigEncode(w, c.FlowAllocation)
	genericConfigEncode(w, c.EnrollmentTask)
	genericConfigEncode(w, c.NamespaceManager)
	genericConfigEncode(w, c.Routing)
	genericConfigEncode(w, c.ResourceAlloc)
	genericConfigEncode(w, c.SecurityManager)
}

func difConfigDecode(r *wire.Reader) (*DIFConfig, error) {
	c := &DIFConfig{}
	var err error
	if c.Address, err = r.U32(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	c.Params = make([]ConfigEntry, count)
	for i := range c.Params {
		if c.Params[i], err = configEntryDecode(r); err != nil {
			return nil, err
		}
	}
	if c.EFCP, err = efcpConfigDecode(r); err != nil {
		return nil, err
	}
	for _, dst := range []**GenericConfig{&c.RMT, &c.FlowAllocation, &c.EnrollmentTask,
		&c.NamespaceManager, &c.Routing, &c.ResourceAlloc, &c.SecurityManager} {
		if *dst, err = genericConfigDecode(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func freeDIFConfig(c *DIFConfig) {
	if c == nil {
		return
	}
	c.Params = nil
	freeEFCPConfig(c.EFCP)
	freeGenericConfig(c.RMT)
	freeGenericConfig(c.FlowAllocation)
	freeGenericConfig(c.EnrollmentTask)
	freeGenericConfig(c.NamespaceManager)
	freeGenericConfig(c.Routing)
	freeGenericConfig(c.ResourceAlloc)
	freeGenericConfig(c.SecurityManager)
}
