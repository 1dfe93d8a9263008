package call

/*
#include <ngx_config.h>
#include <ngx_core.h>
#include <ngx_event.h>
#include <ngx_http.h>

extern ngx_module_t ngx_go_module;

char *ngx_go_conf_error(void);
ngx_command_t *ngx_go_commands_alloc(ngx_uint_t n);
void ngx_go_command_init(ngx_command_t *cmd, u_char *name, size_t len,
    ngx_uint_t type, ngx_uint_t conf, ngx_uint_t index);
void ngx_go_module_set_commands(ngx_command_t *cmds);
ngx_int_t ngx_go_phase_register(ngx_conf_t *cf, ngx_uint_t phase);
void *ngx_go_main_conf(ngx_http_request_t *r);
void *ngx_go_srv_conf(ngx_http_request_t *r);
void *ngx_go_loc_conf(ngx_http_request_t *r);
void *ngx_go_request_ctx(ngx_http_request_t *r);
void ngx_go_set_request_ctx(ngx_http_request_t *r, void *ctx);
ngx_http_post_subrequest_t *ngx_go_post_subrequest(ngx_pool_t *pool,
    uintptr_t handle);
ngx_uint_t ngx_go_conf_line(ngx_conf_t *cf);
ngx_str_t *ngx_go_conf_file(ngx_conf_t *cf);
void ngx_go_request_wakeup(ngx_http_request_t *r);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// ModuleHooks receives the native module lifecycle. The framework
// installs them once, before configuration parsing; the call package
// only dispatches.
type ModuleHooks struct {
	// ConfSet applies directive index to the scope configuration
	// keyed by conf. A non-nil error aborts configuration loading.
	ConfSet func(cf unsafe.Pointer, index uintptr, conf unsafe.Pointer) error
	// CreateConf returns the scope configuration key for kind
	// (0 main, 1 srv, 2 loc), or nil on allocation failure.
	CreateConf func(cf unsafe.Pointer, kind uintptr) unsafe.Pointer
	// MergeConf folds parent into child for kind (1 srv, 2 loc).
	MergeConf func(cf unsafe.Pointer, kind uintptr, parent, child unsafe.Pointer) error

	PostConfiguration func(cf unsafe.Pointer) int
	InitProcess       func(cycle unsafe.Pointer) int
	ExitProcess       func(cycle unsafe.Pointer)

	// Phase handles a request reaching a registered phase slot.
	Phase func(r unsafe.Pointer) int
}

var hooks ModuleHooks

// SetModuleHooks installs the lifecycle hooks. Call once from an init
// function, before the master process parses configuration.
func SetModuleHooks(h ModuleHooks) { hooks = h }

// ModuleHandle returns the address of the native module descriptor,
// usable wherever a module identity is needed, such as a shared
// memory tag.
func ModuleHandle() unsafe.Pointer { return unsafe.Pointer(&C.ngx_go_module) }

// CommandsAlloc returns a zeroed command table with n slots plus the
// null terminator. The table lives as long as the module; it is never
// freed.
func CommandsAlloc(n int) unsafe.Pointer {
	return unsafe.Pointer(C.ngx_go_commands_alloc(C.ngx_uint_t(n)))
}

// CommandInit fills slot i of a table from CommandsAlloc. confOffset
// selects which scope configuration the set handler receives.
func CommandInit(cmds unsafe.Pointer, i int, name string, ctype, confOffset uintptr) {
	cmd := (*C.ngx_command_t)(unsafe.Add(cmds, uintptr(i)*C.sizeof_ngx_command_t))
	cname := C.CBytes([]byte(name))
	C.ngx_go_command_init(cmd, (*C.u_char)(cname), C.size_t(len(name)),
		C.ngx_uint_t(ctype), C.ngx_uint_t(confOffset), C.ngx_uint_t(i))
}

// SetCommands patches the command table into the module descriptor.
// Must happen before configuration parsing.
func SetCommands(cmds unsafe.Pointer) {
	C.ngx_go_module_set_commands((*C.ngx_command_t)(cmds))
}

// RegisterPhase pushes the shared phase handler onto a core phase
// slot. Postconfiguration time only.
func RegisterPhase(cf unsafe.Pointer, phase int) int {
	return int(C.ngx_go_phase_register((*C.ngx_conf_t)(cf), C.ngx_uint_t(phase)))
}

// MainConf returns the module's main scope configuration key for r.
func MainConf(r unsafe.Pointer) unsafe.Pointer {
	return C.ngx_go_main_conf((*C.ngx_http_request_t)(r))
}

// SrvConf returns the module's server scope configuration key for r.
func SrvConf(r unsafe.Pointer) unsafe.Pointer {
	return C.ngx_go_srv_conf((*C.ngx_http_request_t)(r))
}

// LocConf returns the module's location scope configuration key for r.
func LocConf(r unsafe.Pointer) unsafe.Pointer {
	return C.ngx_go_loc_conf((*C.ngx_http_request_t)(r))
}

// RequestCtx returns the module context slot of r.
func RequestCtx(r unsafe.Pointer) unsafe.Pointer {
	return C.ngx_go_request_ctx((*C.ngx_http_request_t)(r))
}

// SetRequestCtx stores ctx in the module context slot of r.
func SetRequestCtx(r, ctx unsafe.Pointer) {
	C.ngx_go_set_request_ctx((*C.ngx_http_request_t)(r), ctx)
}

// ConfLine returns the line the directive being parsed sits on.
func ConfLine(cf unsafe.Pointer) int {
	return int(C.ngx_go_conf_line((*C.ngx_conf_t)(cf)))
}

// ConfFile returns the native name string of the file being parsed.
func ConfFile(cf unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.ngx_go_conf_file((*C.ngx_conf_t)(cf)))
}

// RequestWakeup posts the request's connection write event, driving
// the phase engine to re-enter suspended handlers. Worker thread only.
func RequestWakeup(r unsafe.Pointer) {
	C.ngx_go_request_wakeup((*C.ngx_http_request_t)(r))
}

var (
	psMu       sync.Mutex
	psSeq      uintptr
	psHandlers = map[uintptr]func(r unsafe.Pointer, rc int) int{}
)

// PostSubrequest allocates a completion record from pool that invokes
// fn once when the subrequest finalizes. Returns nil on allocation
// failure.
func PostSubrequest(pool unsafe.Pointer, fn func(r unsafe.Pointer, rc int) int) unsafe.Pointer {
	psMu.Lock()
	psSeq++
	h := psSeq
	psHandlers[h] = fn
	psMu.Unlock()

	ps := C.ngx_go_post_subrequest((*C.ngx_pool_t)(pool), C.uintptr_t(h))
	if ps == nil {
		psMu.Lock()
		delete(psHandlers, h)
		psMu.Unlock()
		return nil
	}
	return unsafe.Pointer(ps)
}

// confCString copies msg into configuration pool memory for the char*
// return convention of set and merge handlers.
func confCString(cf *C.ngx_conf_t, msg string) *C.char {
	d := C.ngx_pnalloc(cf.pool, C.size_t(len(msg)+1))
	if d == nil {
		return C.ngx_go_conf_error()
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(d)), len(msg)+1)
	copy(buf, msg)
	buf[len(msg)] = 0
	return (*C.char)(unsafe.Pointer(d))
}

//export ngxGoConfSet
func ngxGoConfSet(cf *C.ngx_conf_t, cmd *C.ngx_command_t, conf unsafe.Pointer) *C.char {
	if hooks.ConfSet == nil {
		return nil
	}
	err := hooks.ConfSet(unsafe.Pointer(cf), uintptr(cmd.post), conf)
	if err == nil {
		return nil
	}
	return confCString(cf, err.Error())
}

//export ngxGoCreateConf
func ngxGoCreateConf(cf *C.ngx_conf_t, kind C.ngx_uint_t) unsafe.Pointer {
	if hooks.CreateConf == nil {
		// Scope unused by the module; a placeholder keeps the core's
		// conf ctx slots populated.
		return unsafe.Pointer(C.ngx_pcalloc(cf.pool, 1))
	}
	return hooks.CreateConf(unsafe.Pointer(cf), uintptr(kind))
}

//export ngxGoMergeConf
func ngxGoMergeConf(cf *C.ngx_conf_t, kind C.ngx_uint_t, prev, conf unsafe.Pointer) *C.char {
	if hooks.MergeConf == nil {
		return nil
	}
	err := hooks.MergeConf(unsafe.Pointer(cf), uintptr(kind), prev, conf)
	if err == nil {
		return nil
	}
	return confCString(cf, err.Error())
}

//export ngxGoPostConfiguration
func ngxGoPostConfiguration(cf *C.ngx_conf_t) C.ngx_int_t {
	if hooks.PostConfiguration == nil {
		return 0
	}
	return C.ngx_int_t(hooks.PostConfiguration(unsafe.Pointer(cf)))
}

//export ngxGoInitProcess
func ngxGoInitProcess(cycle *C.ngx_cycle_t) C.ngx_int_t {
	if hooks.InitProcess == nil {
		return 0
	}
	return C.ngx_int_t(hooks.InitProcess(unsafe.Pointer(cycle)))
}

//export ngxGoExitProcess
func ngxGoExitProcess(cycle *C.ngx_cycle_t) {
	if hooks.ExitProcess != nil {
		hooks.ExitProcess(unsafe.Pointer(cycle))
	}
}

//export ngxGoPhaseHandler
func ngxGoPhaseHandler(r *C.ngx_http_request_t) C.ngx_int_t {
	if hooks.Phase == nil {
		return C.NGX_DECLINED
	}
	return C.ngx_int_t(hooks.Phase(unsafe.Pointer(r)))
}

//export ngxGoPostSubrequest
func ngxGoPostSubrequest(r *C.ngx_http_request_t, handle C.uintptr_t, rc C.ngx_int_t) C.ngx_int_t {
	psMu.Lock()
	fn := psHandlers[uintptr(handle)]
	delete(psHandlers, uintptr(handle))
	psMu.Unlock()
	if fn == nil {
		return rc
	}
	return C.ngx_int_t(fn(unsafe.Pointer(r), int(rc)))
}
