// Package ngx provides a Go binding and module-authoring layer over the
// nginx core.
//
// The library does not reimplement nginx. It builds the native core from
// source, generates a layout-matching declaration surface for a fixed
// allow-list of its C structures and functions, and wraps that surface
// with safe types so extension modules can participate in nginx's
// pool-based memory model, configuration merge phases, and request
// pipeline without touching raw native state.
//
// # Architecture Overview
//
// The library is organized into build-time and runtime halves:
//
//	ngx/                 Root package with the Allocator contract and pinned release
//	├── buildcfg/        Immutable build configuration, cache keys, configure args
//	├── acquire/         Release download, verification, and build cache
//	├── configure/       Native configure/compile orchestration, build log scraping
//	├── bindgen/         Allow-list driven declaration generation and layout probing
//	├── ffi/             Generated declaration surface (layout mirrors, cgo calls)
//	├── core/            Safe string/array/list views over native structures
//	├── pool/            Pool-scoped allocation and cleanup handlers
//	├── log/             Bridge into the nginx error log, zap adapter
//	├── conf/            Directive registration and configuration merge
//	├── http/            HTTP module contract, phases, request wrapper
//	├── event/           Timer, posted-event, and loop-wakeup registration
//	├── async/           Cooperative task bridge over the worker event loop
//	└── shm/             Cross-worker shared memory dictionary capability
//
// # Ownership Model
//
// Memory pools, the cycle, and all request state are owned by the native
// core. Everything this library hands out is a borrow whose lifetime ends
// with the owning pool; safe types never outlive it and never expose raw
// link pointers.
//
// # Threading Model
//
// One worker process runs one event loop thread. All runtime-side calls
// must happen on that thread; the async package is the only sanctioned
// way to re-enter it from elsewhere.
package ngx
