// Package ffi holds the generated declaration surface: pure-Go layout
// mirrors of the allow-listed nginx structs and the probed constant
// values. It contains no cgo, so packages building on the mirrors stay
// testable without a worker process; the call wrappers live in
// ffi/call.
//
// The checked-in instance is pinned to nginx 1.27.4 on linux/amd64
// with the default build configuration. Regenerate with ngx-build
// after changing the release, the configure flags, or the allow-list;
// the zz_layout_assert.c file in ffi/call fails native compilation if
// the mirrors and the headers ever disagree.
//
// Mirrors are views over worker-owned memory. Bit-field members and
// function pointers appear as padding and are reached through the
// generated accessors in ffi/call.
package ffi
