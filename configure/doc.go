// Package configure drives the native core's own configure script and
// build, and scrapes the resulting build tree for the contract handed
// to the binding generator.
//
// The generated objs/Makefile is the single source of truth for header
// locations: the include list is parsed out of its ALL_INCS block and
// no independent header search happens downstream. Preprocessor
// defines come from the generated ngx_auto_config.h for the same
// reason: whatever the native compiler saw, the binding generator
// sees.
//
// The process entry object (src/core/nginx.o) is excluded from the
// produced archive; the safe host process owns main.
package configure
