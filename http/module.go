package http

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/ngx-go/ngx/async"
	"github.com/ngx-go/ngx/conf"
	"github.com/ngx-go/ngx/core"
	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/event"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/pool"
)

// Module is the configuration-only variant: a name and a directive
// table. Scope configuration and lifecycle participation come from
// the optional interfaces below.
type Module interface {
	Name() string
	Directives() []*conf.Directive
}

// HandlerModule is the phase handler variant.
type HandlerModule interface {
	Module
	Phase() Phase
	Handle(r *Request) core.Status
}

// MainConfModule supplies a main scope configuration object.
type MainConfModule interface {
	CreateMainConf() any
}

// SrvConfModule supplies a server scope configuration object and its
// merge with the enclosing scope.
type SrvConfModule interface {
	CreateSrvConf() any
	MergeSrvConf(parent, child any) error
}

// LocConfModule supplies a location scope configuration object and
// its merge with the enclosing scope.
type LocConfModule interface {
	CreateLocConf() any
	MergeLocConf(parent, child any) error
}

// ProcessModule joins worker process lifecycle.
type ProcessModule interface {
	InitProcess() error
	ExitProcess()
}

// framework binds the registered module to the native descriptor.
type framework struct {
	mod        Module
	directives []*conf.Directive

	mu    sync.Mutex
	confs map[uintptr]any

	loop  *event.WorkerLoop
	sched *async.Scheduler
}

var (
	regMu sync.Mutex
	fw    *framework
)

// Register installs m as the worker's Go module. Call from an init
// function; the native loader reads the descriptor when configuration
// parsing starts. A second registration fails.
func Register(m Module) error {
	regMu.Lock()
	defer regMu.Unlock()

	if fw != nil {
		return errors.InvalidInput(errors.PhaseConf,
			"a module is already registered; the descriptor table holds one")
	}

	f := &framework{
		mod:        m,
		directives: m.Directives(),
		confs:      map[uintptr]any{},
	}

	cmds := call.CommandsAlloc(len(f.directives))
	if cmds == nil {
		return errors.AllocationFailed(uintptr(len(f.directives)) * unsafe.Sizeof(ffi.Command{}))
	}
	for i, d := range f.directives {
		call.CommandInit(cmds, i, d.Name, d.CommandType(), confOffset(d.Scopes))
	}
	call.SetCommands(cmds)

	call.SetModuleHooks(call.ModuleHooks{
		ConfSet:           f.confSet,
		CreateConf:        f.createConf,
		MergeConf:         f.mergeConf,
		PostConfiguration: f.postConfiguration,
		InitProcess:       f.initProcess,
		ExitProcess:       f.exitProcess,
		Phase:             f.phase,
	})

	fw = f
	return nil
}

// confOffset picks the scope configuration the set handler receives:
// the innermost scope the directive may appear in.
func confOffset(s conf.Scope) uintptr {
	switch {
	case s&conf.LocScope != 0:
		return ffi.HTTPLocConfOffset
	case s&conf.SrvScope != 0:
		return ffi.HTTPSrvConfOffset
	default:
		return ffi.HTTPMainConfOffset
	}
}

// scopeOf maps the parser's current command context to a directive
// scope.
func scopeOf(cmdType uintptr) conf.Scope {
	switch {
	case cmdType&ffi.HTTPLocConf != 0:
		return conf.LocScope
	case cmdType&ffi.HTTPSrvConf != 0:
		return conf.SrvScope
	default:
		return conf.MainScope
	}
}

func (f *framework) lookupConf(key unsafe.Pointer) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confs[uintptr(key)]
}

// createConf allocates a stable one byte key from the configuration
// pool and parks the module's Go configuration object behind it. The
// core only ever sees the key.
func (f *framework) createConf(cf unsafe.Pointer, kind uintptr) unsafe.Pointer {
	var obj any
	switch kind {
	case 0:
		if m, ok := f.mod.(MainConfModule); ok {
			obj = m.CreateMainConf()
		}
	case 1:
		if m, ok := f.mod.(SrvConfModule); ok {
			obj = m.CreateSrvConf()
		}
	case 2:
		if m, ok := f.mod.(LocConfModule); ok {
			obj = m.CreateLocConf()
		}
	}

	p := pool.FromRaw((*ffi.Conf)(cf).Pool)
	key, err := p.Calloc(1)
	if err != nil {
		return nil
	}

	f.mu.Lock()
	f.confs[uintptr(key)] = obj
	f.mu.Unlock()
	return key
}

func (f *framework) mergeConf(cf unsafe.Pointer, kind uintptr, parent, child unsafe.Pointer) error {
	pc := f.lookupConf(parent)
	cc := f.lookupConf(child)

	var err error
	switch kind {
	case 1:
		if m, ok := f.mod.(SrvConfModule); ok {
			err = m.MergeSrvConf(pc, cc)
		}
	case 2:
		if m, ok := f.mod.(LocConfModule); ok {
			err = m.MergeLocConf(pc, cc)
		}
	}
	if err != nil {
		return errors.Wrap(errors.PhaseConf, errors.KindMerge, err,
			f.mod.Name()+" scope merge failed")
	}
	return nil
}

func (f *framework) confSet(cf unsafe.Pointer, index uintptr, confKey unsafe.Pointer) error {
	if index >= uintptr(len(f.directives)) {
		return errors.InvalidInput(errors.PhaseConf, "directive index out of range")
	}
	d := f.directives[index]

	cfc := (*ffi.Conf)(cf)
	var args []string
	first := true
	for el := range core.ArrayElements((*ffi.Array)(cfc.Args)) {
		if first {
			// Element zero is the directive name itself.
			first = false
			continue
		}
		args = append(args, core.StrString((*ffi.Str)(el)))
	}

	inv := &conf.Invocation{
		Directive: d,
		Args:      args,
		Scope:     scopeOf(cfc.CmdType),
		File:      core.StrString((*ffi.Str)(call.ConfFile(cf))),
		Line:      call.ConfLine(cf),
		Conf:      f.lookupConf(confKey),
	}
	return d.Apply(inv)
}

func (f *framework) postConfiguration(cf unsafe.Pointer) int {
	if hm, ok := f.mod.(HandlerModule); ok {
		if rc := call.RegisterPhase(cf, int(hm.Phase())); rc != ffi.OK {
			return rc
		}
	}
	return ffi.OK
}

func (f *framework) initProcess(cycle unsafe.Pointer) int {
	f.loop = event.Attach()
	f.sched = async.NewScheduler(f.loop)

	if pm, ok := f.mod.(ProcessModule); ok {
		if err := pm.InitProcess(); err != nil {
			Logger().Error("init process failed", zap.Error(err))
			return ffi.Error
		}
	}
	return ffi.OK
}

func (f *framework) exitProcess(cycle unsafe.Pointer) {
	if pm, ok := f.mod.(ProcessModule); ok {
		pm.ExitProcess()
	}
	if f.loop != nil {
		f.loop.Shutdown()
	}
}

// Scheduler returns the worker's async scheduler. Nil before the
// process initializes.
func Scheduler() *async.Scheduler {
	if fw == nil {
		return nil
	}
	return fw.sched
}

// MainConf returns the registered module's main scope configuration
// for the request.
func MainConf[T any](r *Request) (*T, bool) {
	return confAs[T](call.MainConf(r.Raw()))
}

// SrvConf returns the module's server scope configuration for the
// request.
func SrvConf[T any](r *Request) (*T, bool) {
	return confAs[T](call.SrvConf(r.Raw()))
}

// LocConf returns the module's location scope configuration for the
// request.
func LocConf[T any](r *Request) (*T, bool) {
	return confAs[T](call.LocConf(r.Raw()))
}

func confAs[T any](key unsafe.Pointer) (*T, bool) {
	if fw == nil || key == nil {
		return nil, false
	}
	v, ok := fw.lookupConf(key).(*T)
	return v, ok
}
