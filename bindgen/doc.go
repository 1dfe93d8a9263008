// Package bindgen generates the declaration surface for a configured
// nginx source tree.
//
// The generator never guesses layout. A restricted header scanner
// (internal/cparse) locates the allow-listed declarations, then a probe
// program is compiled against the exact header set the core was built
// with and executed to record sizes, offsets and constant values. The
// native compiler is the only layout oracle; if a probe cannot be
// compiled or an allow-listed symbol is missing from the headers,
// generation fails.
//
// Emitted files carry the zz_generated_ prefix: pure-Go struct mirrors
// and constants for the ffi package, cgo call wrappers and bit-field
// accessor shims for ffi/call, and a C file of _Static_assert checks
// that pins the mirrors to the probed layout at native compile time.
// Output is byte-identical for identical inputs.
package bindgen
