package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in the build or request lifecycle the error occurred
type Phase string

const (
	PhaseAcquire   Phase = "acquire"   // source download and verification
	PhaseConfigure Phase = "configure" // native configure invocation
	PhaseCompile   Phase = "compile"   // native object compilation
	PhaseBind      Phase = "bind"      // declaration generation
	PhaseConf      Phase = "conf"      // directive parsing and merge
	PhaseRequest   Phase = "request"   // request processing
	PhaseEvent     Phase = "event"     // event loop registration
	PhaseRuntime   Phase = "runtime"   // other runtime operations
)

// Kind categorizes the error
type Kind string

const (
	KindNetwork      Kind = "network"
	KindChecksum     Kind = "checksum"
	KindSignature    Kind = "signature"
	KindExtraction   Kind = "extraction"
	KindUnsupported  Kind = "unsupported"
	KindExitStatus   Kind = "exit_status"
	KindSymbol       Kind = "symbol"
	KindLayout       Kind = "layout"
	KindAllocation   Kind = "allocation"
	KindParse        Kind = "parse"
	KindMerge        Kind = "merge"
	KindArity        Kind = "arity"
	KindScope        Kind = "scope"
	KindCancelled    Kind = "cancelled"
	KindDeclined     Kind = "declined"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindNotOnLoop    Kind = "not_on_loop"
)

// Error is the structured error type used throughout the library.
//
// Output holds captured tool output for build-phase failures. File and
// Line locate configuration errors in the parsed nginx.conf.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	File   string
	Detail string
	Output string
	Path   []string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.File != "" {
		fmt.Fprintf(&b, " in %s:%d", e.File, e.Line)
	}

	if e.Symbol != "" {
		b.WriteString(": symbol ")
		b.WriteString(e.Symbol)
	}

	if e.Detail != "" {
		if e.Symbol != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	if e.Output != "" {
		b.WriteString("\n--- captured output ---\n")
		b.WriteString(e.Output)
	}

	return b.String()
}

// Unwrap supports errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches against another *Error by Phase and Kind. Zero fields in
// the target act as wildcards, so errors.Is(err, &Error{Kind: KindCancelled})
// matches any cancellation regardless of phase.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return true
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsCancelled reports whether err is a cancellation delivered to a
// suspended task whose owning pool was destroyed.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the context path (module, directive, field)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Symbol sets the native symbol name
func (b *Builder) Symbol(s string) *Builder {
	b.err.Symbol = s
	return b
}

// Location sets the configuration file position
func (b *Builder) Location(file string, line int) *Builder {
	b.err.File = file
	b.err.Line = line
	return b
}

// Output attaches captured tool output
func (b *Builder) Output(out string) *Builder {
	b.err.Output = out
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Acquisition creates a source acquisition error. All acquisition
// failures are fatal to the build.
func Acquisition(kind Kind, cause error, detail string) *Error {
	return &Error{Phase: PhaseAcquire, Kind: kind, Cause: cause, Detail: detail}
}

// Configure creates a native configure failure carrying the captured
// tool output.
func Configure(cause error, output, detail string) *Error {
	return &Error{Phase: PhaseConfigure, Kind: KindExitStatus, Cause: cause, Output: output, Detail: detail}
}

// Compile creates a native compilation failure carrying the captured
// tool output.
func Compile(cause error, output, detail string) *Error {
	return &Error{Phase: PhaseCompile, Kind: KindExitStatus, Cause: cause, Output: output, Detail: detail}
}

// UnresolvedSymbol creates a binding error for an allow-listed symbol
// missing from the configured headers. Indicates allow-list drift
// against the native release.
func UnresolvedSymbol(symbol string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindSymbol,
		Symbol: symbol,
		Detail: "not found in configured headers; allow-list drift against the native release",
	}
}

// LayoutAmbiguous creates a binding error for a struct whose layout
// could not be determined for the target platform. Guessing is never an
// option.
func LayoutAmbiguous(symbol, detail string) *Error {
	return &Error{Phase: PhaseBind, Kind: KindLayout, Symbol: symbol, Detail: detail}
}

// AllocationFailed creates a pool exhaustion error
func AllocationFailed(size uintptr) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("pool failed to allocate %d bytes", size),
	}
}

// ConfError creates a directive parse or merge error with location info.
// Aborts server startup; no partial configuration is applied.
func ConfError(kind Kind, file string, line int, detail string) *Error {
	return &Error{Phase: PhaseConf, Kind: kind, File: file, Line: line, Detail: detail}
}

// RequestFailed creates a handler-level failure mapped to a pipeline
// status. Isolated to the request, never crashes the worker.
func RequestFailed(status int, detail string) *Error {
	return &Error{
		Phase:  PhaseRequest,
		Kind:   KindExitStatus,
		Detail: fmt.Sprintf("status %d: %s", status, detail),
	}
}

// Cancelled creates the error delivered to a suspended task whose
// owning pool was destroyed.
func Cancelled(what string) *Error {
	return &Error{Phase: PhaseEvent, Kind: KindCancelled, Detail: what}
}

// NotFound creates a lookup failure
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{Phase: phase, Kind: KindUnsupported, Detail: what}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{Phase: phase, Kind: KindInvalidInput, Detail: detail}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Cause: cause}
}
