package arena

import "reflect"

// shapes holds a reflect.Type for each power-of-two byte size
// allocTraceable needs, so the common case skips building one with
// reflect.StructOf on every call. Sized one below a.blocks' 64-entry
// capacity (see alloc.go): 1<<63 does not fit in an int, so no block size
// reaches shift 63.
var shapes = buildShapes(63)

func buildShapes(n int) []reflect.Type {
	out := make([]reflect.Type, n)
	for i := range out {
		out[i] = reflect.StructOf([]reflect.StructField{
			{Name: "Data", Type: reflect.ArrayOf(1<<i, reflect.TypeFor[byte]())},
			{Name: "Arena", Type: reflect.TypeFor[*Arena]()},
		})
	}
	return out
}
