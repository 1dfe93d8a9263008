package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBind,
				Kind:   KindSymbol,
				Path:   []string{"allowlist", "functions"},
				Symbol: "ngx_palloc",
				Detail: "not found",
			},
			contains: []string{"[bind]", "symbol", "allowlist.functions", "ngx_palloc", "not found"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRequest,
				Kind:  KindDeclined,
			},
			contains: []string{"[request]", "declined"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAcquire,
				Kind:   KindNetwork,
				Detail: "all mirrors failed",
				Cause:  errors.New("connection refused"),
			},
			contains: []string{"[acquire]", "network", "all mirrors failed", "caused by", "connection refused"},
		},
		{
			name: "error with location",
			err: &Error{
				Phase:  PhaseConf,
				Kind:   KindArity,
				File:   "nginx.conf",
				Line:   17,
				Detail: "expected 1 argument, got 3",
			},
			contains: []string{"[conf]", "arity", "nginx.conf:17", "expected 1 argument"},
		},
		{
			name: "error with captured output",
			err: &Error{
				Phase:  PhaseConfigure,
				Kind:   KindExitStatus,
				Detail: "exit status 1",
				Output: "checking for OS\nerror: C compiler cc is not found",
			},
			contains: []string{"[configure]", "exit_status", "captured output", "C compiler cc is not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseBind, KindLayout).
		Symbol("ngx_buf_t").
		Path("structs").
		Detail("size mismatch: probe %d, generated %d", 104, 96).
		Build()

	if err.Phase != PhaseBind || err.Kind != KindLayout {
		t.Fatalf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if err.Symbol != "ngx_buf_t" {
		t.Errorf("symbol: got %q", err.Symbol)
	}
	if want := "size mismatch: probe 104, generated 96"; err.Detail != want {
		t.Errorf("detail: got %q, want %q", err.Detail, want)
	}
}

func TestIs_Wildcards(t *testing.T) {
	err := Cancelled("request pool destroyed")

	if !errors.Is(err, &Error{Kind: KindCancelled}) {
		t.Error("kind wildcard match failed")
	}
	if !errors.Is(err, &Error{Phase: PhaseEvent, Kind: KindCancelled}) {
		t.Error("exact match failed")
	}
	if errors.Is(err, &Error{Kind: KindAllocation}) {
		t.Error("mismatched kind matched")
	}
	if !IsCancelled(err) {
		t.Error("IsCancelled failed")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("short read")
	err := Acquisition(KindExtraction, cause, "truncated archive")

	if !errors.Is(err, cause) {
		t.Error("unwrap chain broken")
	}
	if !IsKind(err, KindExtraction) {
		t.Error("IsKind failed")
	}
}

func TestWrappedThroughFmt(t *testing.T) {
	inner := UnresolvedSymbol("ngx_http_top_header_filter")
	// A caller wrapping with %w must still be matchable.
	outer := errorsJoin("generate bindings: ", inner)

	var e *Error
	if !errors.As(outer, &e) {
		t.Fatal("errors.As through wrapper failed")
	}
	if e.Symbol != "ngx_http_top_header_filter" {
		t.Errorf("symbol: got %q", e.Symbol)
	}
}

func errorsJoin(prefix string, err error) error {
	return &wrapped{prefix: prefix, err: err}
}

type wrapped struct {
	err    error
	prefix string
}

func (w *wrapped) Error() string { return w.prefix + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
