package call

/*
#include <ngx_config.h>
#include <ngx_core.h>

void ngx_go_shm_zone_setup(ngx_shm_zone_t *zone);
void ngx_go_shmtx_lock(ngx_slab_pool_t *pool);
void ngx_go_shmtx_unlock(ngx_slab_pool_t *pool);
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	shmMu    sync.Mutex
	shmInits = map[uintptr]func(zone, odata unsafe.Pointer) int{}
)

// SetupShmZone installs the shared init trampoline on a zone returned
// by SharedMemoryAdd. fn runs once the segment is mapped, with the
// previous cycle's zone data on reload.
func SetupShmZone(zone unsafe.Pointer, fn func(zone, odata unsafe.Pointer) int) {
	shmMu.Lock()
	shmInits[uintptr(zone)] = fn
	shmMu.Unlock()
	C.ngx_go_shm_zone_setup((*C.ngx_shm_zone_t)(zone))
}

// ShmtxLock takes the slab pool's cross-process mutex.
func ShmtxLock(sp unsafe.Pointer) {
	C.ngx_go_shmtx_lock((*C.ngx_slab_pool_t)(sp))
}

// ShmtxUnlock releases the slab pool's cross-process mutex.
func ShmtxUnlock(sp unsafe.Pointer) {
	C.ngx_go_shmtx_unlock((*C.ngx_slab_pool_t)(sp))
}

//export ngxGoShmZoneInit
func ngxGoShmZoneInit(zone *C.ngx_shm_zone_t, data unsafe.Pointer) C.ngx_int_t {
	shmMu.Lock()
	fn := shmInits[uintptr(unsafe.Pointer(zone))]
	shmMu.Unlock()
	if fn == nil {
		return 0
	}
	return C.ngx_int_t(fn(unsafe.Pointer(zone), data))
}
