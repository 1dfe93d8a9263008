package pool

import (
	"reflect"

	"github.com/ngx-go/ngx/internal/unique"
)

// store holds the Go-side pool attachments, keyed by the native pool
// address. A pool's entry is removed by its cleanup handler during
// ngx_destroy_pool, before the allocator can reuse the address, so a
// later pool landing on the same address starts with an empty slot.
var store = unique.NewStore()

// AllocateValue attaches v to the pool, keyed by its type. At most one
// value per type per pool; a second call for the same type replaces
// the first. The value is detached when the pool is destroyed.
func AllocateValue[T any](p *Pool, v *T) (*T, error) {
	key := uintptr(p.raw)
	if store.Attach(key, v) {
		// First attachment registers the teardown hook.
		if err := p.AddCleanup(func() { store.Drop(key) }); err != nil {
			store.Drop(key)
			return nil, err
		}
	}
	return v, nil
}

// GetValue returns the value of type T previously attached to the
// pool, if any.
func GetValue[T any](p *Pool) (*T, bool) {
	v, ok := store.Lookup(uintptr(p.raw), reflect.TypeOf((*T)(nil)))
	if !ok {
		return nil, false
	}
	return v.(*T), true
}
