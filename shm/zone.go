package shm

import (
	"unsafe"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/pool"
)

// Zone is a named shared memory segment backed by a slab allocator.
type Zone struct {
	name string
	raw  unsafe.Pointer
}

// AddZone registers a shared zone of size bytes during configuration
// parsing. init runs in the master once the segment is mapped; old is
// the previous cycle's zone payload on reload, nil on a fresh start.
//
// Registering the same name twice returns the same underlying zone.
func AddZone(cf unsafe.Pointer, name string, size uintptr, init func(z *Zone, old unsafe.Pointer) error) (*Zone, error) {
	cfc := (*ffi.Conf)(cf)
	p := pool.FromRaw(cfc.Pool)

	n, err := p.Alloc(unsafe.Sizeof(ffi.Str{}))
	if err != nil {
		return nil, err
	}
	if err := p.NewStr((*ffi.Str)(n), name); err != nil {
		return nil, err
	}

	zp := call.SharedMemoryAdd(cf, n, size, call.ModuleHandle())
	if zp == nil {
		return nil, errors.New(errors.PhaseConf, errors.KindInvalidInput).
			Path(name).
			Detail("shared zone registration failed; conflicting size or tag").
			Build()
	}

	z := &Zone{name: name, raw: zp}
	call.SetupShmZone(zp, func(zone, odata unsafe.Pointer) int {
		z.raw = zone
		if init == nil {
			return ffi.OK
		}
		if err := init(z, odata); err != nil {
			return ffi.Error
		}
		return ffi.OK
	})
	return z, nil
}

// Name returns the zone name.
func (z *Zone) Name() string { return z.name }

// Raw exposes the native zone pointer.
func (z *Zone) Raw() unsafe.Pointer { return z.raw }

// slab returns the zone's slab pool, which sits at the start of the
// mapped segment.
func (z *Zone) slab() *ffi.SlabPool {
	zone := (*ffi.ShmZone)(z.raw)
	return (*ffi.SlabPool)(zone.Shm.Addr)
}

// Lock takes the zone's cross-process mutex.
func (z *Zone) Lock() { call.ShmtxLock(unsafe.Pointer(z.slab())) }

// Unlock releases the zone's cross-process mutex.
func (z *Zone) Unlock() { call.ShmtxUnlock(unsafe.Pointer(z.slab())) }

// AllocLocked carves size bytes out of the slab. Caller holds the
// zone mutex.
func (z *Zone) AllocLocked(size uintptr) (unsafe.Pointer, error) {
	d := call.SlabAllocLocked(unsafe.Pointer(z.slab()), size)
	if d == nil {
		return nil, errors.AllocationFailed(size)
	}
	return d, nil
}

// FreeLocked returns a slab allocation. Caller holds the zone mutex.
func (z *Zone) FreeLocked(d unsafe.Pointer) {
	call.SlabFreeLocked(unsafe.Pointer(z.slab()), d)
}

// Payload returns the zone's root pointer slot, shared by every
// worker mapping the segment.
func (z *Zone) Payload() unsafe.Pointer {
	return z.slab().Data
}

// SetPayload stores the zone's root pointer slot.
func (z *Zone) SetPayload(p unsafe.Pointer) {
	z.slab().Data = p
}
