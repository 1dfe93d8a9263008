package conf

import (
	"strconv"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
)

// Scope is a bitmask of configuration contexts a directive may appear
// in.
type Scope uint

const (
	MainScope Scope = 1 << iota
	SrvScope
	LocScope

	AnyScope = MainScope | SrvScope | LocScope
)

func (s Scope) String() string {
	switch s {
	case MainScope:
		return "main"
	case SrvScope:
		return "server"
	case LocScope:
		return "location"
	}
	return "mixed"
}

// MergePolicy selects how an inner scope's value combines with the
// outer one during merge.
type MergePolicy int

const (
	// PolicyOverride keeps the innermost explicit value.
	PolicyOverride MergePolicy = iota
	// PolicyCombine folds inner and outer values together, outer
	// first. The directive supplies the fold through MergeScopes.
	PolicyCombine
)

// Directive describes one configuration keyword.
//
// MinArgs and MaxArgs bound the argument count after the keyword
// itself. MaxArgs < 0 means unbounded.
type Directive struct {
	Name    string
	MinArgs int
	MaxArgs int
	Scopes  Scope
	Policy  MergePolicy

	// Set applies a validated invocation to the module's scope
	// configuration. Returning an error aborts startup.
	Set func(inv *Invocation) error
}

// Invocation is one occurrence of a directive in a configuration file,
// already arity- and scope-checked.
type Invocation struct {
	Directive *Directive
	Args      []string
	Scope     Scope
	File      string
	Line      int

	// Conf points at the module's configuration for the scope the
	// directive appeared in. The Set handler owns the cast.
	Conf any
}

// Errorf builds a configuration error located at the invocation.
func (inv *Invocation) Errorf(format string, args ...any) error {
	return errors.New(errors.PhaseConf, errors.KindParse).
		Path(inv.Directive.Name).
		Location(inv.File, inv.Line).
		Detail(format, args...).
		Build()
}

// Validate checks arity and scope, returning a located error on
// violation.
func (d *Directive) Validate(inv *Invocation) error {
	if n := len(inv.Args); n < d.MinArgs || (d.MaxArgs >= 0 && n > d.MaxArgs) {
		return errors.New(errors.PhaseConf, errors.KindArity).
			Path(d.Name).
			Location(inv.File, inv.Line).
			Detail("%d arguments, want %s", n, d.arityString()).
			Build()
	}
	if d.Scopes&inv.Scope == 0 {
		return errors.New(errors.PhaseConf, errors.KindScope).
			Path(d.Name).
			Location(inv.File, inv.Line).
			Detail("not allowed in %s context", inv.Scope).
			Build()
	}
	return nil
}

// Apply validates the invocation and runs the directive's Set handler.
func (d *Directive) Apply(inv *Invocation) error {
	if err := d.Validate(inv); err != nil {
		return err
	}
	if d.Set == nil {
		return nil
	}
	return d.Set(inv)
}

func (d *Directive) arityString() string {
	switch {
	case d.MaxArgs < 0:
		return "at least " + strconv.Itoa(d.MinArgs)
	case d.MinArgs == d.MaxArgs:
		return "exactly " + strconv.Itoa(d.MinArgs)
	default:
		return strconv.Itoa(d.MinArgs) + " to " + strconv.Itoa(d.MaxArgs)
	}
}

// CommandType lowers the directive's arity and scopes into the native
// command type bitmask.
func (d *Directive) CommandType() uintptr {
	var t uintptr
	if d.Scopes&MainScope != 0 {
		t |= ffi.HTTPMainConf
	}
	if d.Scopes&SrvScope != 0 {
		t |= ffi.HTTPSrvConf
	}
	if d.Scopes&LocScope != 0 {
		t |= ffi.HTTPLocConf
	}
	switch {
	case d.MaxArgs < 0:
		switch d.MinArgs {
		case 0, 1:
			t |= ffi.Conf1more
		default:
			t |= ffi.Conf2more
		}
	case d.MinArgs == 0 && d.MaxArgs == 0:
		t |= ffi.ConfNoargs
	case d.MinArgs == d.MaxArgs:
		switch d.MinArgs {
		case 1:
			t |= ffi.ConfTake1
		case 2:
			t |= ffi.ConfTake2
		case 3:
			t |= ffi.ConfTake3
		default:
			t |= ffi.ConfAny
		}
	default:
		t |= ffi.ConfAny
	}
	return t
}
