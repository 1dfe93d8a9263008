// Package buildcfg defines the build configuration resolved once per
// build and immutable thereafter.
//
// The same Config value drives source acquisition, the native configure
// and compile steps, and binding generation. Deriving everything from
// one frozen value is what keeps the generated declaration surface and
// the compiled native objects from drifting apart: a surface generated
// under one Config is only ever linked against objects built under the
// same Config.
package buildcfg
