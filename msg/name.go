package msg

import (
	"strings"

	"github.com/irati-go/ctrlplane/wire"
)

// Name is the sub-object kind wire.KindName: RINA's 4-tuple naming
// scheme (process name, process instance, entity name, entity
// instance). Each field is an independent String sub-object; the
// wire form cannot distinguish an absent field from an empty one
// (spec.md §4.1), so Name carries plain strings rather than *string.
type Name struct {
	ProcessName     string
	ProcessInstance string
	EntityName      string
	EntityInstance  string
}

// maxColons bounds the number of ':' separators tolerated when a Name
// is round-tripped through the alternative pipe/colon single-string
// form used by some CLI front ends. Exceeding it, or a leading colon,
// makes the name invalid.
const maxColons = 3

// Valid rejects names whose alternative single-string encoding would
// be ambiguous: a leading colon, or more separators than the 4-tuple
// can account for.
func (n *Name) Valid() bool {
	if n == nil {
		return true
	}
	if strings.HasPrefix(n.ProcessName, ":") {
		return false
	}
	total := strings.Count(n.ProcessName, ":") + strings.Count(n.ProcessInstance, ":") +
		strings.Count(n.EntityName, ":") + strings.Count(n.EntityInstance, ":")
	return total <= maxColons
}

func (n *Name) wireLen() int {
	if n == nil {
		return 4 * 2
	}
	return stringWireLen(n.ProcessName) + stringWireLen(n.ProcessInstance) +
		stringWireLen(n.EntityName) + stringWireLen(n.EntityInstance)
}

func (n *Name) encode(w *wire.Writer) {
	if n == nil {
		n = &Name{}
	}
	encodeString(w, n.ProcessName)
	encodeString(w, n.ProcessInstance)
	encodeString(w, n.EntityName)
	encodeString(w, n.EntityInstance)
}

func decodeName(r *wire.Reader) (*Name, error) {
	n := &Name{}
	var err error
	if n.ProcessName, err = decodeString(r); err != nil {
		return nil, err
	}
	if n.ProcessInstance, err = decodeString(r); err != nil {
		return nil, err
	}
	if n.EntityName, err = decodeString(r); err != nil {
		return nil, err
	}
	if n.EntityInstance, err = decodeString(r); err != nil {
		return nil, err
	}
	return n, nil
}

func freeName(n *Name) {
	if n == nil {
		return
	}
	*n = Name{}
}
