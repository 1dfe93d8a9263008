// Package pool wraps pool-scoped allocation. A Pool borrows a native
// pool pointer; it never creates or destroys the pool itself. Memory
// carved out of a pool lives until the pool is destroyed wholesale, so
// individual release is a no-op and allocation failure is propagated,
// never retried.
//
// Go values attached to a pool through AllocateValue live on the Go
// heap, keyed by the pool's address, and are detached by a cleanup
// handler when the pool goes down.
package pool
