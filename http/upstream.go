package http

import (
	"unsafe"

	"github.com/ngx-go/ngx/core"
	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
)

// PeerConn borrows the native peer connection during one selection
// round. Valid only inside the hook invocation.
type PeerConn struct {
	raw unsafe.Pointer
}

// Raw exposes the native peer connection pointer.
func (p *PeerConn) Raw() unsafe.Pointer { return p.raw }

// SelectOriginal delegates the round to the balancer the hook
// displaced.
func (p *PeerConn) SelectOriginal() core.Status {
	return core.Status(call.PeerOriginalGet(p.raw))
}

// FreeOriginal runs the displaced free callback.
func (p *PeerConn) FreeOriginal(state uint) {
	call.PeerOriginalFree(p.raw, state)
}

// WrapUpstreamPeer interposes a peer-selection hook around the
// balancer configured for this request's upstream. get decides each
// round: fill the peer connection and return OK, or delegate through
// SelectOriginal. free, optional, observes connection outcomes.
//
// The upstream must exist already; wrap from a peer initializer or
// once proxying has set it up. The hook is released with the request
// pool.
func (r *Request) WrapUpstreamPeer(get func(pc *PeerConn) core.Status, free func(pc *PeerConn, state uint)) error {
	if r.raw.Upstream == nil {
		return errors.InvalidInput(errors.PhaseRequest, "request has no upstream")
	}

	h := call.PeerHooks{
		Get: func(pc unsafe.Pointer) int {
			return int(get(&PeerConn{raw: pc}))
		},
	}
	if free != nil {
		h.Free = func(pc unsafe.Pointer, state uint) {
			free(&PeerConn{raw: pc}, state)
		}
	}

	release, rc := call.WrapUpstreamPeer(r.Raw(), h)
	if rc != ffi.OK {
		return errors.RequestFailed(rc, "upstream peer wrap failed")
	}
	return r.Pool().AddCleanup(release)
}
