package msg

import "github.com/irati-go/ctrlplane/wire"

// PolicyParm is one (name, value) string pair inside a Policy's
// parameter list.
type PolicyParm struct {
	Name  string
	Value string
}

// Policy names a pluggable, versioned behavior (spec.md GLOSSARY
// "Policy"): a name, a version string, and a u16-prefixed sequence of
// named parameters.
type Policy struct {
	Name    string
	Version string
	Parms   []PolicyParm
}

func policyWireLen(p *Policy) int {
	if p == nil {
		return stringWireLen("") + stringWireLen("") + 2
	}
	n := stringWireLen(p.Name) + stringWireLen(p.Version) + 2
	for _, parm := range p.Parms {
		n += stringWireLen(parm.Name) + stringWireLen(parm.Value)
	}
	return n
}

func policyEncode(w *wire.Writer, p *Policy) {
	if p == nil {
		p = &Policy{}
	}
	encodeString(w, p.Name)
	encodeString(w, p.Version)
	w.U16(uint16(len(p.Parms)))
	for _, parm := range p.Parms {
		encodeString(w, parm.Name)
		encodeString(w, parm.Value)
	}
}

func policyDecode(r *wire.Reader) (*Policy, error) {
	p := &Policy{}
	var err error
	if p.Name, err = decodeString(r); err != nil {
		return nil, err
	}
	if p.Version, err = decodeString(r); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p.Parms = make([]PolicyParm, count)
	for i := range p.Parms {
		if p.Parms[i].Name, err = decodeString(r); err != nil {
			return nil, err
		}
		if p.Parms[i].Value, err = decodeString(r); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func freePolicy(p *Policy) {
	if p == nil {
		return
	}
	p.Parms = nil
}
