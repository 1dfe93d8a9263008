// Package core provides safe views over the native data structures:
// string access without copying, status code mapping, and bounds-
// checked iteration over arrays, lists and queues.
//
// Views never take ownership. The underlying memory belongs to a
// worker pool and stays valid only for the scope the caller borrowed
// it in; holding a view past its request is a use-after-free waiting
// to happen. Link pointers are never exposed, so iteration cannot be
// used to detach or reorder native nodes.
package core
