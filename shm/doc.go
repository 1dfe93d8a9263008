// Package shm exposes cross-worker shared memory as an explicit
// capability. A Zone is registered during configuration and mapped
// before workers fork; Dict is a slab-backed string dictionary inside
// a zone, guarded by the zone's cross-process mutex.
//
// Nothing here is assumed available by default: a module that wants
// shared state declares a zone, and every access pays the mutex.
package shm
