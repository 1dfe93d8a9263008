package http

import (
	"iter"
	"reflect"
	"strings"
	"unsafe"

	"github.com/ngx-go/ngx/core"
	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/internal/unique"
	"github.com/ngx-go/ngx/log"
	"github.com/ngx-go/ngx/pool"
)

// Request borrows a native request for the duration of a handler
// call or a continuation running on the worker thread. Never retain
// one across suspensions; rewrap from the raw pointer instead.
type Request struct {
	raw *ffi.HTTPRequest
}

// WrapRequest wraps a native request pointer.
func WrapRequest(p unsafe.Pointer) *Request {
	return &Request{raw: (*ffi.HTTPRequest)(p)}
}

// Raw exposes the native request pointer.
func (r *Request) Raw() unsafe.Pointer { return unsafe.Pointer(r.raw) }

// Pool returns the request pool. Allocations live until the request
// finishes.
func (r *Request) Pool() *pool.Pool { return pool.FromRaw(r.raw.Pool) }

// Log returns the request's error log sink.
func (r *Request) Log() *log.Sink { return log.PoolSink(r.raw.Pool) }

// IsMain reports whether this is the client's request rather than a
// subrequest.
func (r *Request) IsMain() bool { return r.raw.Main == unsafe.Pointer(r.raw) }

// Method returns the request method name as parsed.
func (r *Request) Method() string { return core.StrString(&r.raw.MethodName) }

// Path returns the decoded request path.
func (r *Request) Path() string { return core.StrString(&r.raw.URI) }

// UnparsedURI returns the URI exactly as received.
func (r *Request) UnparsedURI() string { return core.StrString(&r.raw.UnparsedURI) }

// Args returns the raw query string.
func (r *Request) Args() string { return core.StrString(&r.raw.Args) }

// UserAgent returns the User-Agent header value, if present.
func (r *Request) UserAgent() (string, bool) {
	return headerValue(r.raw.HeadersIn.UserAgent)
}

// Authorization returns the Authorization header value, if present.
func (r *Request) Authorization() (string, bool) {
	return headerValue(r.raw.HeadersIn.Authorization)
}

// Upstream exposes the native upstream state, nil when the request
// has none. Peer selection wiring is left to consuming modules.
func (r *Request) Upstream() unsafe.Pointer { return r.raw.Upstream }

func headerValue(elt unsafe.Pointer) (string, bool) {
	if elt == nil {
		return "", false
	}
	return core.StrString(&(*ffi.TableElt)(elt).Value), true
}

// HeadersIn iterates the received headers as key, value pairs.
func (r *Request) HeadersIn() iter.Seq2[string, string] {
	return headerSeq(&r.raw.HeadersIn.Headers)
}

// HeadersOut iterates the response headers staged so far.
func (r *Request) HeadersOut() iter.Seq2[string, string] {
	return headerSeq(&r.raw.HeadersOut.Headers)
}

func headerSeq(l *ffi.List) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for el := range core.ListElements(l) {
			h := (*ffi.TableElt)(el)
			if h.Hash == 0 {
				// Deleted entry.
				continue
			}
			if !yield(core.StrString(&h.Key), core.StrString(&h.Value)) {
				return
			}
		}
	}
}

// HeaderIn looks up a received header by case-insensitive name.
func (r *Request) HeaderIn(name string) (string, bool) {
	for k, v := range r.HeadersIn() {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// AddHeaderIn appends a header to the received set, visible to later
// phases and to proxied upstream requests.
func (r *Request) AddHeaderIn(key, value string) error {
	return r.pushHeader(&r.raw.HeadersIn.Headers, key, value)
}

// AddHeaderOut appends a response header.
func (r *Request) AddHeaderOut(key, value string) error {
	return r.pushHeader(&r.raw.HeadersOut.Headers, key, value)
}

func (r *Request) pushHeader(l *ffi.List, key, value string) error {
	el := call.ListPush(unsafe.Pointer(l))
	if el == nil {
		return errors.AllocationFailed(unsafe.Sizeof(ffi.TableElt{}))
	}
	h := (*ffi.TableElt)(el)
	h.Hash = 1
	h.Next = nil

	p := r.Pool()
	if err := p.NewStr(&h.Key, key); err != nil {
		return err
	}
	if err := p.NewStr(&h.Value, value); err != nil {
		return err
	}
	lower, err := p.Bytes([]byte(strings.ToLower(key)))
	if err != nil {
		return err
	}
	h.LowcaseKey = lower
	return nil
}

// SetStatus stages the response status line.
func (r *Request) SetStatus(status int) {
	r.raw.HeadersOut.Status = uintptr(status)
	r.raw.HeadersOut.StatusLine = ffi.Str{}
}

// SetContentLength stages the response Content-Length.
func (r *Request) SetContentLength(n int64) {
	r.raw.HeadersOut.ContentLengthN = n
}

// SetContentType stages the response Content-Type.
func (r *Request) SetContentType(v string) error {
	if err := r.Pool().NewStr(&r.raw.HeadersOut.ContentType, v); err != nil {
		return err
	}
	r.raw.HeadersOut.ContentTypeLen = r.raw.HeadersOut.ContentType.Len
	return nil
}

// HeaderOnly reports whether the response must carry no body.
func (r *Request) HeaderOnly() bool {
	return call.HTTPRequestHeaderOnly(r.Raw()) != 0
}

// SendHeader sends the staged response header.
func (r *Request) SendHeader() core.Status {
	return core.Status(call.HTTPSendHeader(r.Raw()))
}

// Output passes a buffer chain down the output filter stack.
func (r *Request) Output(chain *ffi.Chain) core.Status {
	return core.Status(call.HTTPOutputFilter(r.Raw(), unsafe.Pointer(chain)))
}

// WriteString sends s as a response body buffer. last marks the end
// of the response.
func (r *Request) WriteString(s string, last bool) core.Status {
	p := r.Pool()
	b, err := p.CreateBufferFromString(s)
	if err != nil {
		return core.Error
	}
	b.SetLastBuf(last && r.IsMain())
	b.SetLastInChain(last)

	cl, err := p.Chain(b)
	if err != nil {
		return core.Error
	}
	return r.Output(cl)
}

// DiscardBody reads and discards the request body, required before
// responding without consuming it.
func (r *Request) DiscardBody() core.Status {
	return core.Status(call.HTTPDiscardRequestBody(r.Raw()))
}

// Finalize hands the request back to the pipeline with a final
// status. After a suspension this is how a continuation completes the
// content phase.
func (r *Request) Finalize(status core.Status) {
	call.HTTPFinalizeRequest(r.Raw(), int(status))
}

// InternalRedirect restarts request processing at a new location.
// The current handler must return without touching the request again.
func (r *Request) InternalRedirect(uri string) core.Status {
	p := r.Pool()
	var u ffi.Str
	if err := p.NewStr(&u, uri); err != nil {
		return core.Error
	}
	return core.Status(call.HTTPInternalRedirect(r.Raw(), unsafe.Pointer(&u), nil))
}

// reqValues holds Go values attached to individual requests, keyed by
// the request's module context slot. Subrequests share the parent's
// pool but carry their own slot, so their attachments never alias.
var reqValues = unique.NewStore()

// token returns the request's identity key, minting it on first use.
// A one byte pool allocation gives a unique address per request; the
// module context slot remembers it across handler invocations.
func (r *Request) token() (uintptr, error) {
	if tok := call.RequestCtx(r.Raw()); tok != nil {
		return uintptr(tok), nil
	}
	p := r.Pool()
	tok, err := p.Calloc(1)
	if err != nil {
		return 0, err
	}
	call.SetRequestCtx(r.Raw(), tok)
	key := uintptr(tok)
	if err := p.AddCleanup(func() { reqValues.Drop(key) }); err != nil {
		call.SetRequestCtx(r.Raw(), nil)
		return 0, err
	}
	return key, nil
}

// Ctx returns the module context of type T attached to the request.
func Ctx[T any](r *Request) (*T, bool) {
	tok := call.RequestCtx(r.Raw())
	if tok == nil {
		return nil, false
	}
	v, ok := reqValues.Lookup(uintptr(tok), reflect.TypeOf((*T)(nil)))
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// SetCtx attaches a module context to the request, dropped when the
// request finishes.
func SetCtx[T any](r *Request, v *T) error {
	tok, err := r.token()
	if err != nil {
		return err
	}
	reqValues.Attach(tok, v)
	return nil
}
