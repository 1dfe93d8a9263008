package call

/*
#include <ngx_config.h>
#include <ngx_core.h>
#include <ngx_event.h>
#include <ngx_http.h>

ngx_int_t ngx_go_peer_wrap(ngx_http_request_t *r, uintptr_t handle);
ngx_int_t ngx_go_peer_original_get(ngx_peer_connection_t *pc);
void ngx_go_peer_original_free(ngx_peer_connection_t *pc, ngx_uint_t state);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// PeerHooks intercept upstream peer selection for one request.
type PeerHooks struct {
	// Get picks the next peer. Return OK after filling the peer
	// connection, or delegate through PeerOriginalGet.
	Get func(pc unsafe.Pointer) int
	// Free releases a peer after a connection attempt; state carries
	// the native failure bits. Optional.
	Free func(pc unsafe.Pointer, state uint)
}

var (
	peerMu    sync.Mutex
	peerSeq   uintptr
	peerHooks = map[uintptr]PeerHooks{}
)

// WrapUpstreamPeer interposes hooks around the balancer configured for
// the request's upstream, saving the original callbacks for
// delegation. The returned release function must run when the request
// pool is destroyed.
func WrapUpstreamPeer(r unsafe.Pointer, h PeerHooks) (release func(), rc int) {
	peerMu.Lock()
	peerSeq++
	handle := peerSeq
	peerHooks[handle] = h
	peerMu.Unlock()

	rc = int(C.ngx_go_peer_wrap((*C.ngx_http_request_t)(r), C.uintptr_t(handle)))
	if rc != 0 {
		peerMu.Lock()
		delete(peerHooks, handle)
		peerMu.Unlock()
		return nil, rc
	}
	return func() {
		peerMu.Lock()
		delete(peerHooks, handle)
		peerMu.Unlock()
	}, 0
}

// PeerOriginalGet runs the balancer the wrap displaced.
func PeerOriginalGet(pc unsafe.Pointer) int {
	return int(C.ngx_go_peer_original_get((*C.ngx_peer_connection_t)(pc)))
}

// PeerOriginalFree runs the displaced free callback.
func PeerOriginalFree(pc unsafe.Pointer, state uint) {
	C.ngx_go_peer_original_free((*C.ngx_peer_connection_t)(pc), C.ngx_uint_t(state))
}

//export ngxGoPeerGet
func ngxGoPeerGet(pc *C.ngx_peer_connection_t, handle C.uintptr_t) C.ngx_int_t {
	peerMu.Lock()
	h := peerHooks[uintptr(handle)]
	peerMu.Unlock()
	if h.Get == nil {
		return C.ngx_int_t(C.ngx_go_peer_original_get(pc))
	}
	return C.ngx_int_t(h.Get(unsafe.Pointer(pc)))
}

//export ngxGoPeerFree
func ngxGoPeerFree(pc *C.ngx_peer_connection_t, handle C.uintptr_t, state C.ngx_uint_t) {
	peerMu.Lock()
	h := peerHooks[uintptr(handle)]
	peerMu.Unlock()
	if h.Free == nil {
		C.ngx_go_peer_original_free(pc, state)
		return
	}
	h.Free(unsafe.Pointer(pc), uint(state))
}
