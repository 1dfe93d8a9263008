// Package http is the extension module framework. A Go module
// declares its directives, scope configurations and phase handler;
// Register lowers that into the native module descriptor, command
// table and phase registration, and routes the native lifecycle back
// into the module.
//
// One Go module links into a worker process at a time: the descriptor
// the native loader reads is a single static table, so Register
// rejects a second module. Compose behavior inside one module instead.
//
// Handlers run on the worker thread under the phase engine's state
// machine. A handler that needs a result not yet available suspends
// through Async and is re-entered when the spawned work settles;
// request teardown cancels outstanding work through the request pool.
package http
