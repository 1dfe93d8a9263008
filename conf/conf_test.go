package conf

import (
	stderrors "errors"
	"testing"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
)

func TestDirectiveValidate_Arity(t *testing.T) {
	d := &Directive{Name: "signer_key", MinArgs: 1, MaxArgs: 2, Scopes: AnyScope}

	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"too few", nil, false},
		{"min", []string{"a"}, true},
		{"max", []string{"a", "b"}, true},
		{"too many", []string{"a", "b", "c"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invocation{
				Directive: d,
				Args:      tt.args,
				Scope:     LocScope,
				File:      "nginx.conf",
				Line:      42,
			}
			err := d.Validate(inv)
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.IsKind(err, errors.KindArity) {
				t.Fatalf("Validate() = %v, want arity error", err)
			}
			var ce *errors.Error
			if !stderrors.As(err, &ce) {
				t.Fatal("not a structured error")
			}
			if ce.File != "nginx.conf" || ce.Line != 42 {
				t.Errorf("location = %s:%d, want nginx.conf:42", ce.File, ce.Line)
			}
		})
	}
}

func TestDirectiveValidate_Scope(t *testing.T) {
	d := &Directive{Name: "worker_dict", MinArgs: 1, MaxArgs: 1, Scopes: MainScope}
	inv := &Invocation{Directive: d, Args: []string{"x"}, Scope: LocScope, File: "f", Line: 7}
	if err := d.Validate(inv); !errors.IsKind(err, errors.KindScope) {
		t.Fatalf("Validate() = %v, want scope error", err)
	}
	inv.Scope = MainScope
	if err := d.Validate(inv); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestDirectiveApply(t *testing.T) {
	var got []string
	d := &Directive{
		Name:    "signer_header",
		MinArgs: 2,
		MaxArgs: 2,
		Scopes:  AnyScope,
		Set: func(inv *Invocation) error {
			got = inv.Args
			return nil
		},
	}
	inv := &Invocation{Directive: d, Args: []string{"X-Sig", "hmac"}, Scope: SrvScope}
	if err := d.Apply(inv); err != nil {
		t.Fatalf("Apply() = %v", err)
	}
	if len(got) != 2 || got[0] != "X-Sig" {
		t.Errorf("Set saw %v", got)
	}
}

func TestCommandType(t *testing.T) {
	tests := []struct {
		name string
		d    Directive
		want uintptr
	}{
		{
			"flag take1 loc",
			Directive{MinArgs: 1, MaxArgs: 1, Scopes: LocScope},
			ffi.HTTPLocConf | ffi.ConfTake1,
		},
		{
			"noargs main",
			Directive{Scopes: MainScope},
			ffi.HTTPMainConf | ffi.ConfNoargs,
		},
		{
			"unbounded everywhere",
			Directive{MinArgs: 1, MaxArgs: -1, Scopes: AnyScope},
			ffi.HTTPMainConf | ffi.HTTPSrvConf | ffi.HTTPLocConf | ffi.Conf1more,
		},
		{
			"range srv",
			Directive{MinArgs: 1, MaxArgs: 2, Scopes: SrvScope},
			ffi.HTTPSrvConf | ffi.ConfAny,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.CommandType(); got != tt.want {
				t.Errorf("CommandType() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestMergedSentinel(t *testing.T) {
	var m Merged[int]
	if m.IsSet() {
		t.Error("zero Merged is set")
	}
	if got := m.Or(7); got != 7 {
		t.Errorf("Or(7) = %d", got)
	}

	// Explicit zero stays distinguishable from unset.
	z := Explicit(0)
	if !z.IsSet() {
		t.Error("Explicit(0) not set")
	}
	if got := z.Or(7); got != 0 {
		t.Errorf("Explicit(0).Or(7) = %d, want 0", got)
	}
}

func TestOverridePrecedence(t *testing.T) {
	outer := Explicit("outer")
	inner := Explicit("inner")

	if got := Override(outer, inner); got.Or("") != "inner" {
		t.Errorf("inner explicit should win, got %q", got.Or(""))
	}
	if got := Override(outer, Unset[string]()); got.Or("") != "outer" {
		t.Errorf("unset inner should inherit, got %q", got.Or(""))
	}
	if got := Override(Unset[string](), Unset[string]()); got.IsSet() {
		t.Error("both unset should stay unset")
	}
}

func TestCombine(t *testing.T) {
	app := func(a, b []string) []string { return append(append([]string(nil), a...), b...) }

	got := Combine(Explicit([]string{"a"}), Explicit([]string{"b"}), app)
	if v := got.Or(nil); len(v) != 2 || v[0] != "a" || v[1] != "b" {
		t.Errorf("Combine = %v, want [a b]", v)
	}
	if got := Combine(Unset[[]string](), Explicit([]string{"b"}), app); got.Or(nil)[0] != "b" {
		t.Error("unset outer should pass inner through")
	}
	if got := Combine(Explicit([]string{"a"}), Unset[[]string](), app); got.Or(nil)[0] != "a" {
		t.Error("unset inner should inherit outer")
	}
}

// Merging three nested scopes must not depend on fold order: merging
// main into server first and then location must equal merging server
// into location first and then applying main.
func TestMergeAssociativity(t *testing.T) {
	app := func(a, b []string) []string { return append(append([]string(nil), a...), b...) }

	cases := [][3]Merged[[]string]{
		{Explicit([]string{"m"}), Explicit([]string{"s"}), Explicit([]string{"l"})},
		{Explicit([]string{"m"}), Unset[[]string](), Explicit([]string{"l"})},
		{Unset[[]string](), Explicit([]string{"s"}), Unset[[]string]()},
		{Unset[[]string](), Unset[[]string](), Unset[[]string]()},
	}
	for _, c := range cases {
		main, srv, loc := c[0], c[1], c[2]

		left := Combine(Combine(main, srv, app), loc, app)
		right := Combine(main, Combine(srv, loc, app), app)
		lv, ls := left.Get()
		rv, rs := right.Get()
		if ls != rs || len(lv) != len(rv) {
			t.Fatalf("combine not associative: %v vs %v", lv, rv)
		}
		for i := range lv {
			if lv[i] != rv[i] {
				t.Fatalf("combine not associative: %v vs %v", lv, rv)
			}
		}

		lo, los := Override(Override(main, srv), loc).Get()
		ro, ros := Override(main, Override(srv, loc)).Get()
		if los != ros || len(lo) != len(ro) {
			t.Fatalf("override not associative: %v vs %v", lo, ro)
		}
		for i := range lo {
			if lo[i] != ro[i] {
				t.Fatalf("override not associative: %v vs %v", lo, ro)
			}
		}
	}
}
