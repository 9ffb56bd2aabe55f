package msg

import "github.com/irati-go/ctrlplane/wire"

// RIBObject is one element of a QueryRIBResp: a named, versioned RIB
// node with an opaque value payload.
type RIBObject struct {
	ObjectClass    string
	ObjectName     string
	ObjectInstance uint64
	DisplayableValue string
	Value          *Buffer
}

func ribObjectWireLen(o *RIBObject) int {
	if o == nil {
		o = &RIBObject{}
	}
	return stringWireLen(o.ObjectClass) + stringWireLen(o.ObjectName) + 8 +
		stringWireLen(o.DisplayableValue) + o.Value.wireLen()
}

func ribObjectEncode(w *wire.Writer, o *RIBObject) {
	if o == nil {
		o = &RIBObject{}
	}
	encodeString(w, o.ObjectClass)
	encodeString(w, o.ObjectName)
	w.U64(o.ObjectInstance)
	encodeString(w, o.DisplayableValue)
	o.Value.encode(w)
}

func ribObjectDecode(r *wire.Reader) (*RIBObject, error) {
	o := &RIBObject{}
	var err error
	if o.ObjectClass, err = decodeString(r); err != nil {
		return nil, err
	}
	if o.ObjectName, err = decodeString(r); err != nil {
		return nil, err
	}
	if o.ObjectInstance, err = r.U64(); err != nil {
		return nil, err
	}
	if o.DisplayableValue, err = decodeString(r); err != nil {
		return nil, err
	}
	if o.Value, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	return o, nil
}

func freeRIBObject(o *RIBObject) {
	if o == nil {
		return
	}
	freeBuffer(o.Value)
}

// QueryRIBResp is the sub-object kind wire.KindQueryRIBResp: the
// u16-prefixed sequence of RIB objects returned by a RIB query.
type QueryRIBResp struct {
	Objects []*RIBObject
}

func queryRIBRespWireLen(q *QueryRIBResp) int {
	if q == nil {
		return 2
	}
	n := 2
	for _, o := range q.Objects {
		n += ribObjectWireLen(o)
	}
	return n
}

func queryRIBRespEncode(w *wire.Writer, q *QueryRIBResp) {
	if q == nil {
		q = &QueryRIBResp{}
	}
	w.U16(uint16(len(q.Objects)))
	for _, o := range q.Objects {
		ribObjectEncode(w, o)
	}
}

func queryRIBRespDecode(r *wire.Reader) (*QueryRIBResp, error) {
	q := &QueryRIBResp{}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	q.Objects = make([]*RIBObject, count)
	for i := range q.Objects {
		if q.Objects[i], err = ribObjectDecode(r); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func freeQueryRIBResp(q *QueryRIBResp) {
	if q == nil {
		return
	}
	for _, o := range q.Objects {
		freeRIBObject(o)
	}
	q.Objects = nil
}
