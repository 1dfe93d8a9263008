package call

/*
#include <ngx_config.h>
#include <ngx_core.h>

void ngx_go_set_cleanup(ngx_pool_cleanup_t *c, uintptr_t handle);
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	cleanupMu  sync.Mutex
	cleanupSeq uintptr
	cleanups   = map[uintptr]func(){}
)

// SetCleanup installs fn as the handler of a cleanup slot previously
// obtained from PoolCleanupAdd with a zero data size. fn runs exactly
// once, on the worker thread, when the owning pool is destroyed.
func SetCleanup(c unsafe.Pointer, fn func()) {
	cleanupMu.Lock()
	cleanupSeq++
	h := cleanupSeq
	cleanups[h] = fn
	cleanupMu.Unlock()
	C.ngx_go_set_cleanup((*C.ngx_pool_cleanup_t)(c), C.uintptr_t(h))
}

//export ngxGoPoolCleanup
func ngxGoPoolCleanup(h C.uintptr_t) {
	cleanupMu.Lock()
	fn := cleanups[uintptr(h)]
	delete(cleanups, uintptr(h))
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}
}
