//go:build go1.23

package xunsafe

import (
	"fmt"
	"unsafe"

	"github.com/wisptrie/art/pkg/xunsafe/layout"
)

// Addr is the address of a value of type T.
//
// Unlike *T, an Addr is a plain integer: it can be zero (meaning "no
// address"), compared, hashed, and stored inline in a node header without
// keeping the pointee artificially alive. [Addr.AssertValid] converts it
// back to a real pointer.
type Addr[T any] uintptr

// AssertValid converts a back to a pointer. The zero address converts to nil.
func (a Addr[T]) AssertValid() *T {
	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Add adds n, scaled by the size of T, to a.
func (a Addr[T]) Add(n int) Addr[T] {
	return a + Addr[T](uintptr(n)*uintptr(layout.Size[T]()))
}

// ByteAdd adds n unscaled bytes to a.
func (a Addr[T]) ByteAdd(n int) Addr[T] {
	return a + Addr[T](uintptr(n))
}

// Sub returns the number of T-sized elements between a and b.
func (a Addr[T]) Sub(b Addr[T]) int {
	return int(uintptr(a)-uintptr(b)) / layout.Size[T]()
}

// Padding returns the number of bytes needed to round a up to align.
func (a Addr[T]) Padding(align int) int {
	return int(layout.Padding(uintptr(a), uintptr(align)))
}

// RoundUpTo rounds a up to the nearest multiple of align.
func (a Addr[T]) RoundUpTo(align int) Addr[T] {
	return Addr[T](layout.RoundUp(uintptr(a), uintptr(align)))
}

// SignBit returns the value of the most significant bit of a.
func (a Addr[T]) SignBit() bool {
	return int64(a) < 0
}

// SignBitMask returns an all-ones mask if a's sign bit is set, or an
// all-zeros mask otherwise.
func (a Addr[T]) SignBitMask() Addr[T] {
	return Addr[T](int64(a) >> 63)
}

// ClearSignBit clears the sign bit of a.
func (a Addr[T]) ClearSignBit() Addr[T] {
	return a &^ (Addr[T](1) << 63)
}

// Format implements [fmt.Formatter], printing a as a hexadecimal address.
func (a Addr[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, fmt.Sprintf("%%%c", verb), uintptr(a))
	default:
		fmt.Fprintf(f, "0x%x", uintptr(a))
	}
}
