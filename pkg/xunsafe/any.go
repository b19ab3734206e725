//go:build go1.23

package xunsafe

import "unsafe"

// eface mirrors the runtime's layout of an interface value: a pointer to the
// concrete type's descriptor, and a pointer to the concrete data.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// AnyData returns the data pointer held inside the interface value v.
//
// For pointer-shaped concrete types this is the pointer itself; for other
// types it is a pointer to a copy of v's value.
func AnyData(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}

// AnyType returns an opaque, comparable identifier for v's concrete type.
func AnyType(v any) uintptr {
	return uintptr((*eface)(unsafe.Pointer(&v)).typ)
}
