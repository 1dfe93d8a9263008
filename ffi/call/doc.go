// Package call holds the cgo wrappers over the allow-listed nginx
// entry points, the generated bit-field accessor shims, and the
// hand-written notify bridge for the macros the generator cannot bind.
//
// Include paths are not baked into the generated files. Set CGO_CFLAGS
// to the include set reported by ngx-build before compiling a worker
// binary; the zz_layout_assert.c translation unit then fails native
// compilation if those headers disagree with the generation run.
//
// Every wrapper takes and returns raw pointers. Ownership stays with
// the worker: nothing here retains a pointer past the call.
package call
