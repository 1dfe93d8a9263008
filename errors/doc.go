// Package errors provides structured error types for the binding layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Build-time phases (acquire, configure, compile,
// bind) produce unrecoverable errors that abort the build; conf errors
// abort server startup; request errors are isolated to one request.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBind, errors.KindLayout).
//		Symbol("ngx_http_request_t").
//		Detail("bit-field layout differs between probe and headers").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnresolvedSymbol("ngx_palloc")
//	err := errors.ConfError(errors.KindArity, "nginx.conf", 42, "expected 1 argument")
//
// All errors implement the standard error interface and support
// errors.Is/As. Phase and Kind act as wildcards when matching:
//
//	errors.Is(err, &errors.Error{Kind: errors.KindCancelled})
package errors
