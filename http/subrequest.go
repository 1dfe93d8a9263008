package http

import (
	"unsafe"

	"github.com/ngx-go/ngx/core"
	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
)

// Subrequest dispatch flags.
const (
	SubrequestInMemory   = ffi.HTTPSubrequestInMemory
	SubrequestWaited     = ffi.HTTPSubrequestWaited
	SubrequestBackground = ffi.HTTPSubrequestBackground
)

// Subrequest dispatches an internal subrequest against uri. done runs
// on the worker thread exactly once, when the subrequest finalizes,
// with the subrequest and its final status; its return feeds back
// into the parent's finalization.
//
// The returned Request is the freshly created subrequest. It shares
// the parent's pools and connection.
func (r *Request) Subrequest(uri, args string, flags uintptr, done func(sr *Request, rc core.Status) core.Status) (*Request, error) {
	p := r.Pool()

	var u ffi.Str
	if err := p.NewStr(&u, uri); err != nil {
		return nil, err
	}

	var ap unsafe.Pointer
	if args != "" {
		a, err := p.Alloc(unsafe.Sizeof(ffi.Str{}))
		if err != nil {
			return nil, err
		}
		if err := p.NewStr((*ffi.Str)(a), args); err != nil {
			return nil, err
		}
		ap = a
	}

	ps := call.PostSubrequest(p.Raw(), func(srp unsafe.Pointer, rc int) int {
		return int(done(WrapRequest(srp), core.Status(rc)))
	})
	if ps == nil {
		return nil, errors.New(errors.PhaseRequest, errors.KindAllocation).
			Detail("subrequest completion record allocation failed").
			Build()
	}

	var srp unsafe.Pointer
	rc := call.HTTPSubrequest(r.Raw(), unsafe.Pointer(&u), ap,
		unsafe.Pointer(&srp), ps, flags)
	if rc != ffi.OK {
		return nil, errors.RequestFailed(rc, "subrequest creation failed")
	}
	return WrapRequest(srp), nil
}
