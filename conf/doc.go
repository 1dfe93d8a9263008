// Package conf models configuration directives and scope merging.
//
// A Directive describes one configuration keyword: its argument arity,
// the scopes it may appear in, and how an inner scope's value merges
// with an outer one. Merged values carry an explicit unset sentinel so
// "not configured" and "configured to the zero value" never collapse.
//
// Precedence is innermost explicit wins, then inheritance from the
// enclosing scope, then the directive's default. Any parse or merge
// failure aborts startup with a file:line error; no partial
// configuration is ever applied.
package conf
