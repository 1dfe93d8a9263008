package shm

import (
	"unsafe"
)

// dictEntry heads one slab allocation; the key bytes and value bytes
// follow it contiguously. Entries link into a singly linked list
// rooted at the zone payload. Worker processes inherit the master's
// mapping address, so the absolute pointers are valid everywhere.
type dictEntry struct {
	next unsafe.Pointer
	klen uintptr
	vlen uintptr
}

const dictEntrySize = unsafe.Sizeof(dictEntry{})

// Dict is a string dictionary living inside a shared zone. Every
// operation takes the zone mutex; lookups are linear, which suits the
// small, explicitly-declared dictionaries modules share across
// workers.
type Dict struct {
	zone *Zone
}

// NewDict registers a shared zone of size bytes holding a dictionary.
// Configuration parse time only. On reload the existing entries are
// carried over with the zone payload.
func NewDict(cf unsafe.Pointer, name string, size uintptr) (*Dict, error) {
	z, err := AddZone(cf, name, size, func(z *Zone, old unsafe.Pointer) error {
		if old != nil {
			// Reload with the same zone: entries stay where they are.
			return nil
		}
		z.SetPayload(nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Dict{zone: z}, nil
}

// Zone returns the backing zone.
func (d *Dict) Zone() *Zone { return d.zone }

func (e *dictEntry) key() []byte {
	return unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(e), dictEntrySize)), e.klen)
}

func (e *dictEntry) value() []byte {
	return unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(e), dictEntrySize+e.klen)), e.vlen)
}

// find walks the list under the mutex, returning the entry and its
// predecessor's next slot for unlinking.
func (d *Dict) find(key string) (prev *unsafe.Pointer, e *dictEntry) {
	root := d.zone.slab()
	prev = &root.Data
	for *prev != nil {
		e = (*dictEntry)(*prev)
		if string(e.key()) == key {
			return prev, e
		}
		prev = &e.next
	}
	return prev, nil
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (string, bool) {
	d.zone.Lock()
	defer d.zone.Unlock()

	_, e := d.find(key)
	if e == nil {
		return "", false
	}
	return string(e.value()), true
}

// Set stores value under key, replacing any previous value.
func (d *Dict) Set(key, value string) error {
	d.zone.Lock()
	defer d.zone.Unlock()

	dp, err := d.zone.AllocLocked(dictEntrySize + uintptr(len(key)) + uintptr(len(value)))
	if err != nil {
		return err
	}
	e := (*dictEntry)(dp)
	e.klen = uintptr(len(key))
	e.vlen = uintptr(len(value))
	copy(e.key(), key)
	copy(e.value(), value)

	if prev, old := d.find(key); old != nil {
		e.next = old.next
		*prev = dp
		d.zone.FreeLocked(unsafe.Pointer(old))
		return nil
	}

	root := d.zone.slab()
	e.next = root.Data
	root.Data = dp
	return nil
}

// Delete removes key, reporting whether it was present.
func (d *Dict) Delete(key string) bool {
	d.zone.Lock()
	defer d.zone.Unlock()

	prev, e := d.find(key)
	if e == nil {
		return false
	}
	*prev = e.next
	d.zone.FreeLocked(unsafe.Pointer(e))
	return true
}

// Len counts the stored entries.
func (d *Dict) Len() int {
	d.zone.Lock()
	defer d.zone.Unlock()

	n := 0
	for p := d.zone.slab().Data; p != nil; p = (*dictEntry)(p).next {
		n++
	}
	return n
}
