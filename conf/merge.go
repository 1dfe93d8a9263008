package conf

// Merged is a configuration value with an explicit unset sentinel.
// The zero Merged is unset; a zero value that was actually configured
// stays distinguishable from one that was not.
type Merged[T any] struct {
	val T
	set bool
}

// Explicit returns a set value.
func Explicit[T any](v T) Merged[T] {
	return Merged[T]{val: v, set: true}
}

// Unset returns the unset sentinel.
func Unset[T any]() Merged[T] {
	return Merged[T]{}
}

// IsSet reports whether the value was explicitly configured.
func (m Merged[T]) IsSet() bool { return m.set }

// Get returns the configured value and whether it was set.
func (m Merged[T]) Get() (T, bool) { return m.val, m.set }

// Or returns the configured value, or def when unset. This is where a
// directive's default applies, after all scopes have merged.
func (m Merged[T]) Or(def T) T {
	if m.set {
		return m.val
	}
	return def
}

// Override merges two scopes under PolicyOverride: the inner explicit
// value wins, an unset inner scope inherits the outer value.
func Override[T any](outer, inner Merged[T]) Merged[T] {
	if inner.set {
		return inner
	}
	return outer
}

// Combine merges two scopes under PolicyCombine, folding outer into
// inner with fold when both are set. Merging over nested scopes is
// associative whenever fold is.
func Combine[T any](outer, inner Merged[T], fold func(outer, inner T) T) Merged[T] {
	switch {
	case outer.set && inner.set:
		return Explicit(fold(outer.val, inner.val))
	case inner.set:
		return inner
	default:
		return outer
	}
}
