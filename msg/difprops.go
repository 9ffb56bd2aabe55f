package msg

import "github.com/irati-go/ctrlplane/wire"

// DIFPropertiesEntry is one (DIF name, max SDU size) pair.
type DIFPropertiesEntry struct {
	DIFName    *Name
	MaxSDUSize uint32
}

func difPropertiesEntryWireLen(e *DIFPropertiesEntry) int {
	if e == nil {
		e = &DIFPropertiesEntry{}
	}
	return e.DIFName.wireLen() + 4
}

func difPropertiesEntryEncode(w *wire.Writer, e *DIFPropertiesEntry) {
	if e == nil {
		e = &DIFPropertiesEntry{}
	}
	e.DIFName.encode(w)
	w.U32(e.MaxSDUSize)
}

func difPropertiesEntryDecode(r *wire.Reader) (*DIFPropertiesEntry, error) {
	e := &DIFPropertiesEntry{}
	var err error
	if e.DIFName, err = decodeName(r); err != nil {
		return nil, err
	}
	if e.MaxSDUSize, err = r.U32(); err != nil {
		return nil, err
	}
	return e, nil
}

func freeDIFPropertiesEntry(e *DIFPropertiesEntry) {
	if e == nil {
		return
	}
	freeName(e.DIFName)
}

// DIFPropertiesList is the sub-object kind wire.KindDIFProperties: the
// u16-prefixed sequence of (name, max-SDU-size) pairs an application
// queries for.
type DIFPropertiesList struct {
	Entries []*DIFPropertiesEntry
}

func difPropertiesListWireLen(l *DIFPropertiesList) int {
	if l == nil {
		return 2
	}
	n := 2
	for _, e := range l.Entries {
		n += difPropertiesEntryWireLen(e)
	}
	return n
}

func difPropertiesListEncode(w *wire.Writer, l *DIFPropertiesList) {
	if l == nil {
		l = &DIFPropertiesList{}
	}
	w.U16(uint16(len(l.Entries)))
	for _, e := range l.Entries {
		difPropertiesEntryEncode(w, e)
	}
}

func difPropertiesListDecode(r *wire.Reader) (*DIFPropertiesList, error) {
	l := &DIFPropertiesList{}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	l.Entries = make([]*DIFPropertiesEntry, count)
	for i := range l.Entries {
		if l.Entries[i], err = difPropertiesEntryDecode(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func freeDIFPropertiesList(l *DIFPropertiesList) {
	if l == nil {
		return
	}
	for _, e := range l.Entries {
		freeDIFPropertiesEntry(e)
	}
	l.Entries = nil
}
